package importer

import (
	"context"
	"time"

	"bookhive-be/internal/pkg/apperr"
)

// BookDraft is the structured result of the URL import pipeline. Nothing is
// persisted here; the caller turns the draft into ordinary create operations
// only after the whole pipeline succeeded.
type BookDraft struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Chapters    []ChapterDraft `json:"chapters"`
}

type ChapterDraft struct {
	Name  string      `json:"name"`
	Pages []PageDraft `json:"pages"`
}

type PageDraft struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

// Summarizer turns scraped markdown into a structured book draft. The LLM
// call lives behind this interface so the pipeline is testable without a key.
type Summarizer interface {
	Summarize(ctx context.Context, title, markdown string) (*BookDraft, error)
}

// Importer runs the three-stage pipeline: scrape → convert → summarize.
// Stages execute sequentially and are not retried; the first failure aborts
// the whole operation tagged with the originating stage.
type Importer struct {
	scraper    *Scraper
	summarizer Summarizer
}

func NewImporter(scrapeTimeout time.Duration, summarizer Summarizer) *Importer {
	return &Importer{
		scraper:    NewScraper(scrapeTimeout),
		summarizer: summarizer,
	}
}

func (i *Importer) Import(ctx context.Context, url string) (*BookDraft, error) {
	scraped, err := i.scraper.Scrape(ctx, url)
	if err != nil {
		return nil, apperr.Upstream("scrape", err)
	}

	markdown, err := convertToMarkdown(scraped.ContentHTML)
	if err != nil {
		return nil, apperr.Upstream("convert", err)
	}

	draft, err := i.summarizer.Summarize(ctx, scraped.Title, markdown)
	if err != nil {
		return nil, apperr.Upstream("summarize", err)
	}

	return draft, nil
}
