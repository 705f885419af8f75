package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/tishinatyt/meetus/internal/gateway"
)

// GeminiClient implements gateway.TextGenerator on top of the Google
// generative AI API. Every failure mode is converted to a gateway sentinel
// before it leaves this package.
type GeminiClient struct {
	client *genai.Client
	model  string
}

func NewGeminiClient(apiKey, model string) (*GeminiClient, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &GeminiClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiClient) Close() {
	c.client.Close()
}

// GenerateStructured requests a JSON object constrained by the schema.
func (c *GeminiClient) GenerateStructured(ctx context.Context, req gateway.Request, schema gateway.Schema) (json.RawMessage, error) {
	model := c.newModel(req)
	model.ResponseMIMEType = "application/json"
	model.ResponseSchema = toGenaiSchema(schema)

	text, err := c.generate(ctx, model, req.Prompt)
	if err != nil {
		return nil, err
	}

	raw, err := decodeStructured(text, schema)
	if err != nil {
		return nil, err
	}
	return raw, nil
}

// GenerateText requests free text.
func (c *GeminiClient) GenerateText(ctx context.Context, req gateway.Request) (string, error) {
	model := c.newModel(req)

	text, err := c.generate(ctx, model, req.Prompt)
	if err != nil {
		return "", err
	}
	return text, nil
}

func (c *GeminiClient) newModel(req gateway.Request) *genai.GenerativeModel {
	model := c.client.GenerativeModel(c.model)
	model.SetTemperature(req.Temperature)
	if req.SystemInstruction != "" {
		model.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(req.SystemInstruction)},
		}
	}
	return model
}

func (c *GeminiClient) generate(ctx context.Context, model *genai.GenerativeModel, prompt string) (string, error) {
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("%w: %v", gateway.ErrUnavailable, err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", gateway.ErrEmpty
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}

	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", gateway.ErrEmpty
	}
	return text, nil
}

// decodeStructured strips markdown fences the model sometimes wraps JSON in,
// parses the object and checks it against the requested field set.
func decodeStructured(text string, schema gateway.Schema) (json.RawMessage, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text), &fields); err != nil {
		return nil, fmt.Errorf("%w: %v", gateway.ErrMalformed, err)
	}

	for _, f := range schema.Fields {
		raw, ok := fields[f.Name]
		if !ok {
			if f.Required {
				return nil, fmt.Errorf("%w: missing field %q", gateway.ErrMalformed, f.Name)
			}
			continue
		}
		if err := checkFieldKind(raw, f.Kind); err != nil {
			return nil, fmt.Errorf("%w: field %q: %v", gateway.ErrMalformed, f.Name, err)
		}
	}

	return json.RawMessage(text), nil
}

func checkFieldKind(raw json.RawMessage, kind gateway.FieldKind) error {
	switch kind {
	case gateway.FieldString:
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return fmt.Errorf("not a string")
		}
	case gateway.FieldStringArray:
		var a []string
		if err := json.Unmarshal(raw, &a); err != nil {
			return fmt.Errorf("not a string array")
		}
	case gateway.FieldBoolean:
		var b bool
		if err := json.Unmarshal(raw, &b); err != nil {
			return fmt.Errorf("not a boolean")
		}
	}
	return nil
}

func toGenaiSchema(schema gateway.Schema) *genai.Schema {
	props := make(map[string]*genai.Schema, len(schema.Fields))
	var required []string
	for _, f := range schema.Fields {
		switch f.Kind {
		case gateway.FieldString:
			props[f.Name] = &genai.Schema{Type: genai.TypeString}
		case gateway.FieldStringArray:
			props[f.Name] = &genai.Schema{
				Type:  genai.TypeArray,
				Items: &genai.Schema{Type: genai.TypeString},
			}
		case gateway.FieldBoolean:
			props[f.Name] = &genai.Schema{Type: genai.TypeBoolean}
		}
		if f.Required {
			required = append(required, f.Name)
		}
	}
	return &genai.Schema{
		Type:       genai.TypeObject,
		Properties: props,
		Required:   required,
	}
}
