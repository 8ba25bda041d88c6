package llm

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"

	"github.com/PabloGalante/mawazo/internal/domain"
)

// GeminiConfig selects the genai backend. A non-empty APIKey uses the Gemini
// API; otherwise Project and Location select Vertex AI.
type GeminiConfig struct {
	Project   string
	Location  string
	APIKey    string
	ModelName string
}

// GeminiHost serves every host surface from one Gemini model.
type GeminiHost struct {
	client    *genai.Client
	modelName string
}

// NewGeminiHost creates a host backed by Gemini.
func NewGeminiHost(ctx context.Context, cfg GeminiConfig) (*GeminiHost, error) {
	cc := &genai.ClientConfig{}
	switch {
	case cfg.APIKey != "":
		cc.APIKey = cfg.APIKey
		cc.Backend = genai.BackendGeminiAPI
	case cfg.Project != "" && cfg.Location != "":
		cc.Project = cfg.Project
		cc.Location = cfg.Location
		cc.Backend = genai.BackendVertexAI
	default:
		return nil, errors.New("gemini host needs an API key or a GCP project and location")
	}

	modelName := cfg.ModelName
	if modelName == "" {
		modelName = "gemini-2.5-flash-lite"
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("creating genai client: %w", err)
	}

	return &GeminiHost{
		client:    client,
		modelName: modelName,
	}, nil
}

func (g *GeminiHost) generate(ctx context.Context, system, text string) (string, error) {
	temp := float32(0.7)
	topP := float32(0.9)

	cfg := &genai.GenerateContentConfig{
		Temperature:     &temp,
		TopP:            &topP,
		MaxOutputTokens: 2048,
	}
	if system != "" {
		cfg.SystemInstruction = genai.NewContentFromText(system, genai.RoleUser)
	}

	contents := []*genai.Content{genai.NewContentFromText(text, genai.RoleUser)}

	res, err := g.client.Models.GenerateContent(ctx, g.modelName, contents, cfg)
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}

	// only the text, never the structs
	return res.Text(), nil
}

// Create opens a session bound to opts.SystemPrompt.
func (g *GeminiHost) Create(ctx context.Context, opts domain.SessionOptions) (domain.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &geminiSession{host: g, system: opts.SystemPrompt}, nil
}

type geminiSession struct {
	host   *GeminiHost
	system string
}

func (s *geminiSession) Prompt(ctx context.Context, text string) (string, error) {
	return s.host.generate(ctx, s.system, text)
}

func (g *GeminiHost) Prompt(ctx context.Context, prompt string) (string, error) {
	return g.generate(ctx, promptSystem, prompt)
}

func (g *GeminiHost) Rewrite(ctx context.Context, text string) (string, error) {
	return g.generate(ctx, rewriteSystem, text)
}

func (g *GeminiHost) Summarize(ctx context.Context, text string) (string, error) {
	return g.generate(ctx, summarizeSystem, text)
}

func (g *GeminiHost) Write(ctx context.Context, prompt string) (string, error) {
	return g.generate(ctx, writeSystem, prompt)
}

func (g *GeminiHost) Translate(ctx context.Context, text, targetLang string) (string, error) {
	return g.generate(ctx, translateSystem(targetLang), text)
}

func (g *GeminiHost) Proofread(ctx context.Context, text string) (string, error) {
	return g.generate(ctx, proofreadSystem, text)
}
