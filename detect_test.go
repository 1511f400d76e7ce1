package perceptron

import (
	"context"
	"net/http"
	"reflect"
	"testing"
)

func TestDetectGeneral(t *testing.T) {
	srv, captured := newTestServer(t, http.StatusOK,
		completion(`<point_box mention="cat"> (10,20) (100,200) </point_box>`, ""))
	c := newTestClient(srv)

	req := NewDetectRequest("test-model", ImageURL("https://example.com/img.jpg"))
	resp, err := c.Detect(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	body := singleRequest(t, captured).body
	hint := messageAt(t, body, 0)
	if hint["content"] != "<hint>BOX</hint>" {
		t.Errorf("expected BOX hint, got %v", hint["content"])
	}
	goal := messageAt(t, body, 1)
	if goal["content"] != "Your goal is to segment out the objects in the scene" {
		t.Errorf("expected general segmentation goal, got %v", goal["content"])
	}
	// Detection sends no user text, only the media part.
	parts := userParts(t, messageAt(t, body, 2))
	if len(parts) != 1 {
		t.Fatalf("expected media part only, got %d parts", len(parts))
	}
	assertSingleCatBox(t, resp, 100, 200)
}

func TestDetectWithClasses(t *testing.T) {
	srv, captured := newTestServer(t, http.StatusOK,
		completion(`<point_box mention="cat"> (10,20) (100,200) </point_box><point_box mention="dog"> (300,400) (500,600) </point_box>`, ""))
	c := newTestClient(srv)

	req := NewDetectRequest("test-model", ImageURL("https://example.com/img.jpg")).
		WithClasses("cat", "dog")
	resp, err := c.Detect(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	goal := messageAt(t, singleRequest(t, captured).body, 1)
	if goal["content"] != "Your goal is to segment out the following categories: cat, dog" {
		t.Errorf("expected class-restricted goal, got %v", goal["content"])
	}
	want := &Pointing{Boxes: []BoundingBox{
		{X1: 10, Y1: 20, X2: 100, Y2: 200, Mention: "cat"},
		{X1: 300, Y1: 400, X2: 500, Y2: 600, Mention: "dog"},
	}}
	if !reflect.DeepEqual(resp.Pointing, want) {
		t.Errorf("expected %+v, got %+v", want, resp.Pointing)
	}
}

func TestDetectMultiple(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusOK,
		completion(`<point_box mention="person"> (50,30) (200,500) </point_box><point_box mention="car"> (400,200) (700,450) </point_box><point_box mention="tree"> (750,50) (900,500) </point_box>`, ""))
	c := newTestClient(srv)

	req := NewDetectRequest("test-model", ImageURL("https://example.com/img.jpg"))
	resp, err := c.Detect(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := &Pointing{Boxes: []BoundingBox{
		{X1: 50, Y1: 30, X2: 200, Y2: 500, Mention: "person"},
		{X1: 400, Y1: 200, X2: 700, Y2: 450, Mention: "car"},
		{X1: 750, Y1: 50, X2: 900, Y2: 500, Mention: "tree"},
	}}
	if !reflect.DeepEqual(resp.Pointing, want) {
		t.Errorf("expected %+v, got %+v", want, resp.Pointing)
	}
}

func TestDetectNoMatches(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusOK, completion("nothing to see here", ""))
	c := newTestClient(srv)

	req := NewDetectRequest("test-model", ImageURL("https://example.com/img.jpg"))
	resp, err := c.Detect(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Pointing != nil {
		t.Errorf("expected nil pointing without annotations, got %+v", resp.Pointing)
	}
}
