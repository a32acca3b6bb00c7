package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/Amirmahdikahdouii/Mini-Mentor/client/internal/types"
)

// Default pagination applied when the caller omits skip or limit.
const (
	DefaultSkip  = 0
	DefaultLimit = 50
)

// CreateRoadmap posts the learning goal and returns the created roadmap.
// Client-side validation is left to the server.
func CreateRoadmap(ctx context.Context, s Sender, req types.CreateRoadmapRequest) (*types.Roadmap, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	resp, err := s.Send(s.R(ctx).SetBody(req), http.MethodPost, roadmapsPath)
	if err != nil {
		return nil, err
	}
	var rm types.Roadmap
	if err := decode(resp, &rm, "create roadmap"); err != nil {
		return nil, err
	}
	return &rm, nil
}

// ListRoadmaps returns one page of roadmap summaries with the total count.
// skip and limit are forwarded verbatim.
func ListRoadmaps(ctx context.Context, s Sender, skip, limit int) (*types.RoadmapList, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	req := s.R(ctx).
		SetQueryParam("skip", strconv.Itoa(skip)).
		SetQueryParam("limit", strconv.Itoa(limit))
	resp, err := s.Send(req, http.MethodGet, roadmapsPath)
	if err != nil {
		return nil, err
	}
	var lr types.RoadmapList
	if err := decode(resp, &lr, "list roadmaps"); err != nil {
		return nil, err
	}
	return &lr, nil
}

// GetRoadmap retrieves a roadmap by id. The id is placed in the path as
// given; malformed ids are left for the server to reject.
func GetRoadmap(ctx context.Context, s Sender, id string) (*types.Roadmap, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	resp, err := s.Send(s.R(ctx).SetRawPathParam("id", id), http.MethodGet, roadmapPath)
	if err != nil {
		return nil, err
	}
	var rm types.Roadmap
	if err := decode(resp, &rm, "get roadmap"); err != nil {
		return nil, err
	}
	return &rm, nil
}

// DeleteRoadmap deletes a roadmap by id. Backend returns 204 No Content on success.
func DeleteRoadmap(ctx context.Context, s Sender, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := s.Send(s.R(ctx).SetRawPathParam("id", id), http.MethodDelete, roadmapPath)
	return err
}
