package importer

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/PuerkitoBio/goquery"
)

type ScrapedPage struct {
	Title       string
	ContentHTML string
}

type Scraper struct {
	client *http.Client
}

func NewScraper(timeout time.Duration) *Scraper {
	return &Scraper{
		client: &http.Client{Timeout: timeout},
	}
}

func (s *Scraper) Scrape(ctx context.Context, url string) (*ScrapedPage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "bookhive-importer/1.0")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		title = url
	}

	// Prefer the semantic content root; fall back to body.
	content := doc.Find("article, main").First()
	if content.Length() == 0 {
		content = doc.Find("body").First()
	}
	content.Find("script, style, nav, footer").Remove()

	html, err := content.Html()
	if err != nil {
		return nil, err
	}

	return &ScrapedPage{
		Title:       title,
		ContentHTML: html,
	}, nil
}

func convertToMarkdown(html string) (string, error) {
	converter := md.NewConverter("", true, nil)
	markdown, err := converter.ConvertString(html)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(markdown) == "" {
		return "", fmt.Errorf("page produced no convertible content")
	}
	return markdown, nil
}
