package types

import "encoding/json"

// ------------------------------
// Response Types
// ------------------------------

// RoadmapList mirrors the list endpoint envelope.
type RoadmapList struct {
	Roadmaps []RoadmapListItem `json:"roadmaps"`
	Total    int               `json:"total"`

	Raw json.RawMessage `json:"-"`
}

// UnmarshalJSON keeps the verbatim body and fills the envelope on a
// best-effort basis, like Roadmap.UnmarshalJSON.
func (l *RoadmapList) UnmarshalJSON(data []byte) error {
	type plain RoadmapList
	var p plain
	_ = json.Unmarshal(data, &p)
	*l = RoadmapList(p)
	l.Raw = append(json.RawMessage{}, data...)
	return nil
}
