// Package suggest generates palette suggestions using Google Gen AI.
//
// A text model is prompted with a theme description and asked to reply
// with hex colours, which are parsed into a palette.
package suggest

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"strings"

	"google.golang.org/genai"

	"github.com/jmylchreest/vexil/internal/colour"
)

const (
	// DefaultModel is the text model used when none is specified.
	DefaultModel = "gemini-2.5-flash"

	// DefaultBackend is the Gen AI backend used when none is specified.
	DefaultBackend = "gemini-api"

	// DefaultCount is the number of stripes requested when none is specified.
	DefaultCount = 5

	// promptTemplate asks for machine-parseable output. Models still wrap
	// answers in prose at times, so the response is scanned for hex codes
	// rather than parsed line by line.
	promptTemplate = "Design a terminal colour palette of exactly %d stripes for the theme %q. " +
		"The palette is rendered as ordered horizontal stripes, like a flag. " +
		"Reply with one hex colour per line in #RRGGBB format, in stripe order, and no other text."
)

var hexPattern = regexp.MustCompile(`#[0-9a-fA-F]{6}\b`)

// Options configures a suggestion client.
type Options struct {
	// Model is the text model to use. Empty means DefaultModel.
	Model string

	// Backend selects the Gen AI backend (gemini-api or vertex-ai).
	// Empty means DefaultBackend.
	Backend string
}

// Client requests palette suggestions from Google Gen AI.
type Client struct {
	client *genai.Client
	model  string
}

// NewClient creates a suggestion client.
// The gemini-api backend requires the GOOGLE_API_KEY environment variable.
func NewClient(ctx context.Context, opts Options) (*Client, error) {
	clientConfig := &genai.ClientConfig{}

	backend := opts.Backend
	if backend == "" {
		backend = DefaultBackend
	}
	if backend == "vertex-ai" {
		clientConfig.Backend = genai.BackendVertexAI
	} else {
		clientConfig.Backend = genai.BackendGeminiAPI
	}

	// Check for API key (required for Gemini API backend)
	if clientConfig.Backend == genai.BackendGeminiAPI {
		apiKey := os.Getenv("GOOGLE_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("GOOGLE_API_KEY environment variable is required\nGet one at: https://aistudio.google.com/api-keys")
		}
		clientConfig.APIKey = apiKey
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gen AI client: %w", err)
	}

	model := opts.Model
	if model == "" {
		model = DefaultModel
	}

	return &Client{
		client: client,
		model:  model,
	}, nil
}

// Model returns the model the client queries.
func (c *Client) Model() string {
	return c.model
}

// Suggest asks the model for a palette matching the theme description.
// count is the number of stripes to request; zero means DefaultCount.
func (c *Client) Suggest(ctx context.Context, theme string, count int) (*colour.Palette, error) {
	if strings.TrimSpace(theme) == "" {
		return nil, fmt.Errorf("theme description is required")
	}
	if count <= 0 {
		count = DefaultCount
	}

	prompt := fmt.Sprintf(promptTemplate, count, theme)
	contents := genai.Text(prompt)

	response, err := c.client.Models.GenerateContent(ctx, c.model, contents, &genai.GenerateContentConfig{})
	if err != nil {
		return nil, fmt.Errorf("palette suggestion failed: %w", err)
	}

	if len(response.Candidates) == 0 || response.Candidates[0].Content == nil {
		return nil, fmt.Errorf("no suggestion in response")
	}

	var text strings.Builder
	for _, part := range response.Candidates[0].Content.Parts {
		if part.Text != "" {
			text.WriteString(part.Text)
			text.WriteString("\n")
		}
	}

	palette, err := ParseResponse(text.String())
	if err != nil {
		return nil, err
	}

	return palette, nil
}

// ParseResponse scans model output for hex colours and builds a palette.
// Stripe order follows the order of appearance in the text.
func ParseResponse(text string) (*colour.Palette, error) {
	matches := hexPattern.FindAllString(text, -1)
	if len(matches) == 0 {
		return nil, fmt.Errorf("no hex colours found in model response")
	}

	colours := make([]colour.RGB, 0, len(matches))
	for _, match := range matches {
		rgb, err := colour.ParseHex(match)
		if err != nil {
			return nil, fmt.Errorf("failed to parse suggested colour %q: %w", match, err)
		}
		colours = append(colours, rgb)
	}

	return colour.NewPaletteRGB(colours)
}
