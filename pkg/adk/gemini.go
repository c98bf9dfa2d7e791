package adk

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// GeminiProvider is the default assistant backend and the only one with
// tool calling wired end to end.
type GeminiProvider struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewGeminiProvider(ctx context.Context, apiKey string, modelName string) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}

	if modelName == "" {
		modelName = "gemini-1.5-flash"
	}

	model := client.GenerativeModel(modelName)
	model.SetTemperature(0)

	return &GeminiProvider{client: client, model: model}, nil
}

func (g *GeminiProvider) ListModels(ctx context.Context) ([]string, error) {
	iter := g.client.ListModels(ctx)
	var names []string
	for {
		m, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		if !strings.Contains(m.Name, "gemini") {
			continue
		}
		// m.Name is like "models/gemini-1.5-flash", trim the prefix
		names = append(names, strings.TrimPrefix(m.Name, "models/"))
	}
	return names, nil
}

func (g *GeminiProvider) GenerateResponse(ctx context.Context, history []Message, tools []Tool) (string, *ToolCall, error) {
	if decls := declarations(tools); len(decls) > 0 {
		g.model.Tools = []*genai.Tool{{FunctionDeclarations: decls}}
	}

	contents := toContents(history)
	if len(contents) == 0 {
		return "", nil, fmt.Errorf("empty conversation history")
	}

	session := g.model.StartChat()
	session.History = contents[:len(contents)-1]
	last := contents[len(contents)-1]

	resp, err := session.SendMessage(ctx, last.Parts...)
	if err != nil {
		return "", nil, err
	}
	if len(resp.Candidates) == 0 {
		return "", nil, fmt.Errorf("no response candidates")
	}

	var text string
	var call *ToolCall
	for _, part := range resp.Candidates[0].Content.Parts {
		switch p := part.(type) {
		case genai.FunctionCall:
			call = &ToolCall{ToolName: p.Name, Args: p.Args}
		case genai.Text:
			text += string(p)
		}
	}

	if call == nil && text == "" {
		return "", nil, fmt.Errorf("model returned no text and no tool call")
	}
	return text, call, nil
}

func (g *GeminiProvider) Close() {
	g.client.Close()
}

// declarations converts each tool's JSON schema into the genai form so
// the model sees real parameter names instead of an opaque blob.
func declarations(tools []Tool) []*genai.FunctionDeclaration {
	var decls []*genai.FunctionDeclaration
	for _, t := range tools {
		decls = append(decls, &genai.FunctionDeclaration{
			Name:        t.Name(),
			Description: t.Description(),
			Parameters:  toSchema(t.Schema()),
		})
	}
	return decls
}

func toSchema(raw map[string]interface{}) *genai.Schema {
	schema := &genai.Schema{Type: genai.TypeObject, Properties: map[string]*genai.Schema{}}
	props, ok := raw["properties"].(map[string]interface{})
	if !ok {
		return schema
	}
	for name, v := range props {
		prop := &genai.Schema{Type: genai.TypeString}
		if pm, ok := v.(map[string]interface{}); ok {
			if desc, ok := pm["description"].(string); ok {
				prop.Description = desc
			}
		}
		schema.Properties[name] = prop
	}
	return schema
}

func toContents(history []Message) []*genai.Content {
	var contents []*genai.Content
	for _, msg := range history {
		role := "user"
		if msg.Role == "model" {
			role = "model"
		}
		// System and function messages are folded into the user role;
		// the chat session only distinguishes user and model turns.
		contents = append(contents, &genai.Content{
			Parts: []genai.Part{genai.Text(msg.Content)},
			Role:  role,
		})
	}
	return contents
}
