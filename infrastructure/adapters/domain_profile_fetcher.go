package adapters

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"seo-blog-generator/application/ports/outbound"
	"seo-blog-generator/domain"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const maxProfileHeadings = 12

var errUnsupportedScheme = errors.New("domain url scheme must be http or https")

type domainProfileFetcher struct {
	logger  outbound.LoggerPort
	fetcher ContentFetcher
}

// NewDomainProfileFetcher reads the title, meta description and headings of
// the target site's landing page. Only http and https URLs are fetched; pass a
// fetcher from NewPublicContentFetcher to keep internal hosts out of reach.
func NewDomainProfileFetcher(fetcher ContentFetcher, logger outbound.LoggerPort) outbound.DomainProfilePort {
	return &domainProfileFetcher{
		logger:  logger,
		fetcher: fetcher,
	}
}

func (d *domainProfileFetcher) Fetch(ctx context.Context, domainURL string) (*domain.DomainProfile, error) {
	target, err := url.Parse(domainURL)
	if err != nil {
		return nil, fmt.Errorf("parse domain url: %w", err)
	}
	if target.Scheme != "http" && target.Scheme != "https" {
		return nil, fmt.Errorf("%w: %q", errUnsupportedScheme, target.Scheme)
	}
	if target.Hostname() == "" {
		return nil, fmt.Errorf("domain url %q has no host", domainURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build domain request: %w", err)
	}
	req.Header.Set("User-Agent", "seo-blog-generator/1.0")
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	body, err := d.fetcher.FetchContent(req)
	if err != nil {
		return nil, err
	}

	return parseDomainProfile(domainURL, body)
}

func parseDomainProfile(domainURL string, body []byte) (*domain.DomainProfile, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse domain page: %w", err)
	}

	profile := &domain.DomainProfile{
		URL:   domainURL,
		Title: collapseSpace(doc.Find("title").First().Text()),
	}
	if desc, ok := doc.Find(`meta[name="description"]`).Attr("content"); ok {
		profile.Description = collapseSpace(desc)
	} else if desc, ok := doc.Find(`meta[property="og:description"]`).Attr("content"); ok {
		profile.Description = collapseSpace(desc)
	}
	if profile.Title == "" {
		if title, ok := doc.Find(`meta[property="og:title"]`).Attr("content"); ok {
			profile.Title = collapseSpace(title)
		}
	}

	doc.Find("h1, h2").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if heading := collapseSpace(s.Text()); heading != "" {
			profile.Headings = append(profile.Headings, heading)
		}
		return len(profile.Headings) < maxProfileHeadings
	})

	return profile, nil
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
