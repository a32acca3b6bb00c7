package types

import (
	"encoding/json"
	"testing"
)

func TestRoadmap_UnmarshalKeepsRawBody(t *testing.T) {
	t.Parallel()
	body := []byte(`{"id":1,"query":"learn rust","status":"pending"}`)
	var r Roadmap
	if err := json.Unmarshal(body, &r); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if r.ID != 1 {
		t.Fatalf("id = %d, want 1", r.ID)
	}
	if string(r.Raw) != string(body) {
		t.Fatalf("raw = %s, want %s", r.Raw, body)
	}
}

func TestRoadmap_UnmarshalVisualData(t *testing.T) {
	t.Parallel()
	body := []byte(`{"id":7,"user_query":"go","title":"Go","content":"# Go",` +
		`"visual_data":{"phases":[{"id":1,"title":"Basics","description":"d","duration":"2 weeks","milestones":["a","b"]}],"total_duration":"2 weeks"},` +
		`"created_at":"2025-01-02T03:04:05Z"}`)
	var r Roadmap
	if err := json.Unmarshal(body, &r); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if r.VisualData == nil || len(r.VisualData.Phases) != 1 || r.VisualData.Phases[0].Milestones[1] != "b" {
		t.Fatalf("unexpected visual data: %+v", r.VisualData)
	}
	if r.CreatedAt.Year() != 2025 {
		t.Fatalf("created_at not decoded: %v", r.CreatedAt)
	}
}

func TestRoadmapList_UnmarshalKeepsRawBody(t *testing.T) {
	t.Parallel()
	body := []byte(`{"items":[],"total":0}`)
	var l RoadmapList
	if err := json.Unmarshal(body, &l); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if l.Total != 0 || len(l.Roadmaps) != 0 {
		t.Fatalf("unexpected envelope: %+v", l)
	}
	if string(l.Raw) != string(body) {
		t.Fatalf("raw = %s, want %s", l.Raw, body)
	}
}

func TestRoadmap_UnmarshalMismatchedShapesKeepBody(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		body string
		id   int64
	}{
		{"naive created_at", `{"id":4,"title":"Go","created_at":"2025-01-02T03:04:05.123456"}`, 4},
		{"string id", `{"id":"abc-1","title":"Go"}`, 0},
		{"scalar body", `"accepted"`, 0},
		{"empty body", ``, 0},
		{"not json", `{bad json`, 0},
	}
	for _, tc := range cases {
		var r Roadmap
		if err := r.UnmarshalJSON([]byte(tc.body)); err != nil {
			t.Fatalf("%s: unexpected error %v", tc.name, err)
		}
		if string(r.Raw) != tc.body {
			t.Fatalf("%s: raw = %q, want %q", tc.name, r.Raw, tc.body)
		}
		if r.ID != tc.id {
			t.Fatalf("%s: id = %d, want %d", tc.name, r.ID, tc.id)
		}
	}
}

func TestRoadmap_StringIDKeepsOtherFields(t *testing.T) {
	t.Parallel()
	var r Roadmap
	if err := r.UnmarshalJSON([]byte(`{"id":"abc-1","title":"Go","user_query":"learn go"}`)); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if r.Title != "Go" || r.UserQuery != "learn go" {
		t.Fatalf("fields after the bad id were dropped: %+v", r)
	}
}

func TestRoadmapList_UnmarshalNeverFails(t *testing.T) {
	t.Parallel()
	body := `{"roadmaps":[{"id":1,"created_at":"2025-01-02 03:04:05"}],"total":"many"}`
	var l RoadmapList
	if err := l.UnmarshalJSON([]byte(body)); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if string(l.Raw) != body || len(l.Roadmaps) != 1 || l.Roadmaps[0].CreatedAt.Hour() != 3 {
		t.Fatalf("unexpected envelope: %+v", l)
	}
}

func TestTimestamp_Layouts(t *testing.T) {
	t.Parallel()
	cases := map[string]bool{
		`"2025-01-02T03:04:05Z"`:             true,
		`"2025-01-02T03:04:05.123456+02:00"`: true,
		`"2025-01-02T03:04:05.123456"`:       true,
		`"2025-01-02 03:04:05"`:              true,
		`"yesterday"`:                        false,
		`null`:                               false,
		`12345`:                              false,
	}
	for in, parsed := range cases {
		var ts Timestamp
		if err := ts.UnmarshalJSON([]byte(in)); err != nil {
			t.Fatalf("%s: unexpected error %v", in, err)
		}
		if parsed == ts.IsZero() {
			t.Fatalf("%s: parsed=%v, zero=%v", in, parsed, ts.IsZero())
		}
		if parsed && ts.Year() != 2025 {
			t.Fatalf("%s: year = %d", in, ts.Year())
		}
	}
}
