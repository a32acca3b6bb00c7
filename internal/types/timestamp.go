package types

import (
	"bytes"
	"encoding/json"
	"time"
)

// naive layouts carry no zone; they are read as UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
}

// Timestamp is a time that decodes whatever the backend emits: RFC 3339, or
// the zone-less form some stores produce. Unparseable values leave it zero.
type Timestamp struct {
	time.Time
}

// UnmarshalJSON never fails; see Timestamp.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	t.Time = time.Time{}
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return nil
	}
	for _, layout := range timestampLayouts {
		if v, err := time.Parse(layout, s); err == nil {
			t.Time = v
			return nil
		}
	}
	return nil
}
