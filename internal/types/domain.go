package types

import "encoding/json"

// ------------------------------
// Core Domain Entities
// ------------------------------

// Phase is one step of a roadmap's visual timeline.
type Phase struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Duration    string   `json:"duration"`
	Milestones  []string `json:"milestones"`
}

// VisualData is the timeline rendering of a roadmap.
type VisualData struct {
	Phases        []Phase `json:"phases"`
	TotalDuration string  `json:"total_duration"`
}

// Roadmap represents a generated learning roadmap.
//
// Raw holds the response body exactly as the server sent it. The typed
// fields are a best-effort view: fields whose shape does not match stay zero.
type Roadmap struct {
	ID         int64       `json:"id"`
	UserQuery  string      `json:"user_query"`
	Title      string      `json:"title"`
	Content    string      `json:"content"`
	VisualData *VisualData `json:"visual_data,omitempty"`
	CreatedAt  Timestamp   `json:"created_at"`

	Raw json.RawMessage `json:"-"`
}

// UnmarshalJSON keeps the verbatim body and fills whatever known fields
// decode. It never fails, so any 2xx body reaches the caller.
func (r *Roadmap) UnmarshalJSON(data []byte) error {
	type plain Roadmap
	var p plain
	// type mismatches leave the field zero; decoding carries on past them
	_ = json.Unmarshal(data, &p)
	*r = Roadmap(p)
	r.Raw = append(json.RawMessage{}, data...)
	return nil
}

// RoadmapListItem is the summary shape returned by the list endpoint.
type RoadmapListItem struct {
	ID        int64     `json:"id"`
	UserQuery string    `json:"user_query"`
	Title     string    `json:"title"`
	CreatedAt Timestamp `json:"created_at"`
}
