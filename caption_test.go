package perceptron

import (
	"context"
	"net/http"
	"reflect"
	"testing"
)

const captionBoxContent = `A cat on a windowsill <point_box mention="cat"> (10,20) (300,400) </point_box>`

func assertSingleCatBox(t *testing.T, resp PointingResponse, x2, y2 int) {
	t.Helper()
	if resp.Content == "" {
		t.Error("expected content")
	}
	want := &Pointing{Boxes: []BoundingBox{{X1: 10, Y1: 20, X2: x2, Y2: y2, Mention: "cat"}}}
	if !reflect.DeepEqual(resp.Pointing, want) {
		t.Errorf("expected %+v, got %+v", want, resp.Pointing)
	}
}

func TestCaptionConciseDefault(t *testing.T) {
	srv, captured := newTestServer(t, http.StatusOK, completion(captionBoxContent, ""))
	c := newTestClient(srv)

	req := NewCaptionRequest("test-model", ImageURL("https://example.com/img.jpg"))
	resp, err := c.Caption(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	body := singleRequest(t, captured).body
	system := messageAt(t, body, 0)
	if system["content"] != "<hint>BOX</hint>" {
		t.Errorf("expected BOX hint by default, got %v", system["content"])
	}
	parts := userParts(t, messageAt(t, body, 1))
	if len(parts) != 2 {
		t.Fatalf("expected media + text parts, got %d", len(parts))
	}
	if parts[1]["text"] != "Provide a concise, human-friendly caption for the upcoming image." {
		t.Errorf("expected concise caption prompt, got %v", parts[1]["text"])
	}
	assertSingleCatBox(t, resp, 300, 400)
}

func TestCaptionDetailedStyle(t *testing.T) {
	srv, captured := newTestServer(t, http.StatusOK, completion(captionBoxContent, ""))
	c := newTestClient(srv)

	req := NewCaptionRequest("test-model", ImageURL("https://example.com/img.jpg")).
		WithStyle(StyleDetailed)
	resp, err := c.Caption(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	parts := userParts(t, messageAt(t, singleRequest(t, captured).body, 1))
	if parts[1]["text"] != "Provide a detailed caption describing key objects, relationships, and context in the upcoming image." {
		t.Errorf("expected detailed caption prompt, got %v", parts[1]["text"])
	}
	assertSingleCatBox(t, resp, 300, 400)
}

func TestCaptionPointFormatOverride(t *testing.T) {
	srv, captured := newTestServer(t, http.StatusOK,
		completion(`<point mention="cat"> (150,210) </point>`, ""))
	c := newTestClient(srv)

	req := NewCaptionRequest("test-model", ImageURL("https://example.com/img.jpg")).
		WithOutputFormat(FormatPoint)
	resp, err := c.Caption(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	system := messageAt(t, singleRequest(t, captured).body, 0)
	if system["content"] != "<hint>POINT</hint>" {
		t.Errorf("expected POINT hint, got %v", system["content"])
	}
	want := &Pointing{Points: []Point{{X: 150, Y: 210, Mention: "cat"}}}
	if !reflect.DeepEqual(resp.Pointing, want) {
		t.Errorf("expected %+v, got %+v", want, resp.Pointing)
	}
}
