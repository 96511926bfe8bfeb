package importer

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const summarizePrompt = `You structure scraped web content into a book outline.
Given the document below, reply with ONLY a JSON object of this shape:
{"name": "...", "description": "...", "chapters": [{"name": "...", "pages": [{"name": "...", "content": "markdown"}]}]}
Split the document into 2-6 chapters with 1-5 pages each. Keep the original
wording in page content; do not invent facts.

Title: %s

Document:
%s`

type anthropicSummarizer struct {
	client anthropic.Client
	model  string
}

// NewAnthropicSummarizer builds the production Summarizer backed by the
// Anthropic messages API.
func NewAnthropicSummarizer(apiKey, model string) Summarizer {
	return &anthropicSummarizer{
		client: anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:  model,
	}
}

func (s *anthropicSummarizer) Summarize(ctx context.Context, title, markdown string) (*BookDraft, error) {
	msg, err := s.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(s.model),
		MaxTokens: 8192,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(fmt.Sprintf(summarizePrompt, title, markdown))),
		},
	})
	if err != nil {
		return nil, err
	}
	if len(msg.Content) == 0 {
		return nil, fmt.Errorf("empty completion")
	}

	return parseDraft(msg.Content[0].Text)
}

// parseDraft tolerates models wrapping the JSON reply in a code fence.
func parseDraft(raw string) (*BookDraft, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var draft BookDraft
	if err := json.Unmarshal([]byte(cleaned), &draft); err != nil {
		return nil, fmt.Errorf("malformed draft JSON: %w", err)
	}
	if draft.Name == "" || len(draft.Chapters) == 0 {
		return nil, fmt.Errorf("draft missing name or chapters")
	}
	return &draft, nil
}
