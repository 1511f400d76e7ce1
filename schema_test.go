package perceptron

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestJSONSchemaForRequest(t *testing.T) {
	s := JSONSchema(&AnalyzeRequest{})
	var parsed map[string]any
	if err := json.Unmarshal([]byte(s), &parsed); err != nil {
		t.Fatalf("schema is not valid JSON: %v", err)
	}
	if !strings.Contains(s, "message") || !strings.Contains(s, "model") {
		t.Errorf("expected request fields in schema, got %s", s)
	}
}

func TestJSONSchemaForResponse(t *testing.T) {
	s := JSONSchema(&PointingResponse{})
	var parsed map[string]any
	if err := json.Unmarshal([]byte(s), &parsed); err != nil {
		t.Fatalf("schema is not valid JSON: %v", err)
	}
	if !strings.Contains(s, "pointing") {
		t.Errorf("expected pointing field in schema, got %s", s)
	}
}
