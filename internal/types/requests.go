package types

// ------------------------------
// Request Types
// ------------------------------

// CreateRoadmapRequest holds the learning goal for a new roadmap.
type CreateRoadmapRequest struct {
	Query string `json:"query"`
}
