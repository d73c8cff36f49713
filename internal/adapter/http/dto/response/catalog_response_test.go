package response

import (
	"encoding/json"
	"strings"
	"testing"

	"kalakruti_api/internal/domain/entities"
)

func TestFromDesigns(t *testing.T) {
	res := FromDesigns("kitchen", []entities.Design{{Slug: "a"}, {Slug: "b"}})
	if !res.Success || res.Category != "kitchen" || res.TotalDesigns != 2 || res.Data[1].Slug != "b" {
		t.Fatalf("unexpected response: %+v", res)
	}
}

func TestFromProjectSummary(t *testing.T) {
	with := FromProjectSummary(entities.Project{ID: "p1", Images: []string{"first.jpg", "second.jpg"}})
	if with.Image == nil || *with.Image != "first.jpg" || with.Type != "delivered" || with.Status != "COMPLETED" {
		t.Fatalf("unexpected summary: %+v", with)
	}

	without := FromProjectSummary(entities.Project{ID: "p2"})
	raw, _ := json.Marshal(without)
	if !strings.Contains(string(raw), `"image":null`) {
		t.Fatalf("expected null image, got %s", raw)
	}
}

func TestFromProjectDetail_EmptyImages(t *testing.T) {
	raw, _ := json.Marshal(FromProjectDetail(entities.Project{ID: "p"}))
	if !strings.Contains(string(raw), `"images":[]`) {
		t.Fatalf("expected empty images array, got %s", raw)
	}
}
