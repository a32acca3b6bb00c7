package client

import "github.com/Amirmahdikahdouii/Mini-Mentor/client/internal/types"

// Public type aliases so SDK consumers can import only the client package.
type (
	// Requests
	CreateRoadmapRequest = types.CreateRoadmapRequest

	// Domain entities
	Roadmap         = types.Roadmap
	RoadmapListItem = types.RoadmapListItem
	Phase           = types.Phase
	VisualData      = types.VisualData

	// Responses
	RoadmapList = types.RoadmapList
)
