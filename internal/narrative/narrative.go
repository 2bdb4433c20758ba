// Package narrative turns a person's fact list into a short prose biography
// sketch using Claude. The sketch is presentation sugar for the viewer host;
// the record graph itself is never modified.
package narrative

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/gedgraph/gedgraph/internal/models"
)

// sketchMaxTokens caps Claude's response length for biography sketches.
const sketchMaxTokens = 512

// Biographer generates biography sketches backed by Claude.
type Biographer struct {
	client *anthropic.Client
	model  string
	logger *slog.Logger
}

// NewBiographer creates a Biographer backed by Claude.
func NewBiographer(apiKey, model string, logger *slog.Logger) *Biographer {
	c := anthropic.NewClient(option.WithAPIKey(apiKey))
	return &Biographer{
		client: &c,
		model:  model,
		logger: logger,
	}
}

// Sketch generates a short biography paragraph for the person from their
// recorded facts.
func (b *Biographer) Sketch(ctx context.Context, person *models.Person) (string, error) {
	prompt := BuildPrompt(person)

	resp, err := b.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(b.model),
		MaxTokens: sketchMaxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("sketching biography for %s: %w", person.ID, err)
	}

	for i := range resp.Content {
		if resp.Content[i].Type == "text" {
			return strings.TrimSpace(resp.Content[i].Text), nil
		}
	}
	return "", fmt.Errorf("sketching biography for %s: empty response", person.ID)
}

// BuildPrompt assembles the sketch prompt from the person's facts. Exported
// so tests can check the assembled record summary without a live API call.
func BuildPrompt(person *models.Person) string {
	var sb strings.Builder
	sb.WriteString("Write a short factual biography paragraph (max 120 words) from these genealogical records. ")
	sb.WriteString("Do not invent details beyond the records. Output ONLY the paragraph.\n\n")

	name := person.FullName
	if name == "" {
		name = "(name unknown)"
	}
	fmt.Fprintf(&sb, "Name: %s\n", name)
	fmt.Fprintf(&sb, "Sex: %s\n", person.Sex)
	if person.Lifespan != "" {
		fmt.Fprintf(&sb, "Lifespan: %s\n", person.Lifespan)
	}

	for _, f := range person.Facts {
		fmt.Fprintf(&sb, "- %s", f.Type.Label())
		if f.Date != nil && f.Date.Raw != "" {
			fmt.Fprintf(&sb, ", %s", f.Date.Raw)
		}
		if f.Place != "" {
			fmt.Fprintf(&sb, ", %s", f.Place)
		}
		if f.Description != "" {
			fmt.Fprintf(&sb, ": %s", f.Description)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
