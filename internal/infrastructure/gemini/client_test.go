package gemini

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/tishinatyt/meetus/internal/gateway"
)

var questionSchema = gateway.Schema{
	Fields: []gateway.Field{
		{Name: "question", Kind: gateway.FieldString, Required: true},
		{Name: "options", Kind: gateway.FieldStringArray, Required: true},
		{Name: "isAnalysisReady", Kind: gateway.FieldBoolean, Required: true},
	},
}

func TestDecodeStructuredStripsFences(t *testing.T) {
	inputs := []string{
		`{"question": "Q?", "options": ["a"], "isAnalysisReady": false}`,
		"```json\n{\"question\": \"Q?\", \"options\": [\"a\"], \"isAnalysisReady\": false}\n```",
		"```\n{\"question\": \"Q?\", \"options\": [\"a\"], \"isAnalysisReady\": false}\n```",
	}

	for _, input := range inputs {
		raw, err := decodeStructured(input, questionSchema)
		if err != nil {
			t.Errorf("decodeStructured(%q) failed: %v", input, err)
			continue
		}
		var parsed struct {
			Question string `json:"question"`
		}
		if err := json.Unmarshal(raw, &parsed); err != nil || parsed.Question != "Q?" {
			t.Errorf("decoded payload unusable: %q err=%v", raw, err)
		}
	}
}

func TestDecodeStructuredRejectsNonJSON(t *testing.T) {
	_, err := decodeStructured("Sure! Here is your question: what do you like?", questionSchema)
	if !errors.Is(err, gateway.ErrMalformed) {
		t.Errorf("err = %v, want ErrMalformed", err)
	}
}

func TestDecodeStructuredRejectsMissingRequiredField(t *testing.T) {
	_, err := decodeStructured(`{"question": "Q?", "options": ["a"]}`, questionSchema)
	if !errors.Is(err, gateway.ErrMalformed) {
		t.Errorf("err = %v, want ErrMalformed for missing required field", err)
	}
}

func TestDecodeStructuredRejectsWrongKind(t *testing.T) {
	_, err := decodeStructured(`{"question": "Q?", "options": "not an array", "isAnalysisReady": false}`, questionSchema)
	if !errors.Is(err, gateway.ErrMalformed) {
		t.Errorf("err = %v, want ErrMalformed for wrong field type", err)
	}
}

func TestDecodeStructuredAllowsMissingOptionalField(t *testing.T) {
	schema := gateway.Schema{
		Fields: []gateway.Field{
			{Name: "archetype", Kind: gateway.FieldString, Required: true},
			{Name: "interests", Kind: gateway.FieldStringArray},
		},
	}

	raw, err := decodeStructured(`{"archetype": "Party"}`, schema)
	if err != nil {
		t.Fatalf("optional field absence must not fail: %v", err)
	}
	if len(raw) == 0 {
		t.Error("payload dropped")
	}
}

func TestToGenaiSchema(t *testing.T) {
	s := toGenaiSchema(questionSchema)

	if len(s.Properties) != 3 {
		t.Fatalf("got %d properties, want 3", len(s.Properties))
	}
	if s.Properties["question"] == nil || s.Properties["options"] == nil || s.Properties["isAnalysisReady"] == nil {
		t.Fatal("schema properties missing")
	}
	if s.Properties["options"].Items == nil {
		t.Error("array field has no item schema")
	}
	if len(s.Required) != 3 {
		t.Errorf("got %d required fields, want 3", len(s.Required))
	}
}
