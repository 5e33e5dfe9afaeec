package manuscript

import (
	"errors"
	"testing"
)

func TestParseDetails_Valid(t *testing.T) {
	payload := `{
		"methods": [
			{"model_name": "GPT-4", "type": "LLM", "parameters": 1000000},
			{"model_name": "LLaVA", "type": "VLM", "backbone": "ViT-L", "embedding_size": 1024}
		],
		"datasets": [
			{"name": "MIMIC-III", "usage": "evaluation", "focus": "clinical notes",
			 "sample_type": "medical EHR", "is_public": true, "num_samples": 40000}
		],
		"metrics": [
			{"name": "accuracy", "evaluation_type": "QA", "value": 0.87,
			 "description": "exact match over answers", "model_name": "GPT-4"}
		]
	}`

	d, err := ParseDetails([]byte(payload))
	if err != nil {
		t.Fatalf("ParseDetails() error = %v", err)
	}
	if len(d.Methods) != 2 || len(d.Datasets) != 1 || len(d.Metrics) != 1 {
		t.Errorf("parsed counts = %d/%d/%d, want 2/1/1", len(d.Methods), len(d.Datasets), len(d.Metrics))
	}
	if d.Methods[1].EmbeddingSize != 1024 {
		t.Errorf("EmbeddingSize = %d, want 1024", d.Methods[1].EmbeddingSize)
	}
	if !d.Datasets[0].IsPublic {
		t.Error("IsPublic = false, want true")
	}
}

func TestParseDetails_EmptyObject(t *testing.T) {
	d, err := ParseDetails([]byte(`{}`))
	if err != nil {
		t.Fatalf("ParseDetails({}) error = %v", err)
	}
	if len(d.Methods)+len(d.Datasets)+len(d.Metrics) != 0 {
		t.Errorf("empty payload parsed as %+v", d)
	}
}

func TestParseDetails_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"bad method type", `{"methods": [{"model_name": "X", "type": "Audio"}]}`},
		{"missing model_name", `{"methods": [{"type": "LLM"}]}`},
		{"bad usage", `{"datasets": [{"name": "D", "usage": "pretraining"}]}`},
		{"bad sample_type", `{"datasets": [{"name": "D", "usage": "training", "sample_type": "image"}]}`},
		{"string is_public", `{"datasets": [{"name": "D", "usage": "training", "is_public": "true"}]}`},
		{"metric without name", `{"metrics": [{"value": 0.5}]}`},
		{"string metric value", `{"metrics": [{"name": "acc", "value": "0.5"}]}`},
		{"unknown top-level key", `{"results": []}`},
		{"top-level array", `[]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDetails([]byte(tt.payload))
			if !errors.Is(err, ErrInvalidDetails) {
				t.Errorf("ParseDetails() error = %v, want ErrInvalidDetails", err)
			}
		})
	}
}

func TestValidateDetailsJSON_NotJSON(t *testing.T) {
	if err := ValidateDetailsJSON([]byte(`{broken`)); err == nil {
		t.Error("ValidateDetailsJSON() accepted malformed JSON")
	}
}
