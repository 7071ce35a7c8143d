// Package seo builds the per-page metadata records (title, description,
// canonical URL, open-graph and twitter fields) consumed by the page
// rendering layer.
package seo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tendant/simple-blog/pkg/simpleblog"
)

const (
	// DefaultSiteName is used when no site name is configured.
	DefaultSiteName = "Your Blog Name"

	fallbackDescription = "Read this insightful blog post on our platform."
	listDescription     = "Explore our collection of insightful blog posts covering various topics. Read the latest articles and stay updated with our content."
)

// OpenGraph holds the open-graph sharing fields for a page.
type OpenGraph struct {
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Type          string     `json:"type"`
	Locale        string     `json:"locale"`
	SiteName      string     `json:"siteName"`
	URL           string     `json:"url"`
	PublishedTime *time.Time `json:"publishedTime,omitempty"`
	ModifiedTime  *time.Time `json:"modifiedTime,omitempty"`
}

// TwitterCard holds the twitter sharing fields for a page.
type TwitterCard struct {
	Card        string `json:"card"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// PageMetadata is the full metadata record for a page. Index false tells
// crawlers to skip the page; it is set on degraded records so a missing or
// unreachable post never gets indexed under a generic title.
type PageMetadata struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Canonical   string       `json:"canonical,omitempty"`
	Index       bool         `json:"index"`
	Follow      bool         `json:"follow"`
	OpenGraph   *OpenGraph   `json:"openGraph,omitempty"`
	Twitter     *TwitterCard `json:"twitter,omitempty"`
}

// Resolver produces metadata records from the post service.
type Resolver struct {
	service  simpleblog.Service
	siteName string
}

// NewResolver creates a resolver for the given site name.
func NewResolver(service simpleblog.Service, siteName string) *Resolver {
	if siteName == "" {
		siteName = DefaultSiteName
	}
	return &Resolver{service: service, siteName: siteName}
}

// ForPost builds the metadata record for a single post page. It never
// returns an error: any lookup failure degrades to a generic non-indexed
// record, so metadata generation can never block page rendering.
func (r *Resolver) ForPost(ctx context.Context, baseURL, id string) PageMetadata {
	post, err := r.service.GetPost(ctx, id)
	if err != nil {
		return r.fallback()
	}

	description := post.MetaDescription
	if description == "" {
		description = fallbackDescription
	}

	canonical := fmt.Sprintf("%s/blog/%s", strings.TrimRight(baseURL, "/"), id)
	published := post.CreatedAt
	modified := post.UpdatedAt

	return PageMetadata{
		Title:       fmt.Sprintf("%s | %s", post.Title, r.siteName),
		Description: description,
		Canonical:   canonical,
		Index:       true,
		Follow:      true,
		OpenGraph: &OpenGraph{
			Title:         post.Title,
			Description:   description,
			Type:          "article",
			Locale:        "en_US",
			SiteName:      r.siteName,
			URL:           canonical,
			PublishedTime: &published,
			ModifiedTime:  &modified,
		},
		Twitter: &TwitterCard{
			Card:        "summary_large_image",
			Title:       post.Title,
			Description: description,
		},
	}
}

// ForList builds the static metadata record for the post listing page.
func (r *Resolver) ForList(baseURL string) PageMetadata {
	title := fmt.Sprintf("Blog Posts | %s", r.siteName)
	canonical := fmt.Sprintf("%s/blog", strings.TrimRight(baseURL, "/"))

	return PageMetadata{
		Title:       title,
		Description: listDescription,
		Canonical:   canonical,
		Index:       true,
		Follow:      true,
		OpenGraph: &OpenGraph{
			Title:       title,
			Description: listDescription,
			Type:        "website",
			Locale:      "en_US",
			SiteName:    r.siteName,
			URL:         canonical,
		},
		Twitter: &TwitterCard{
			Card:        "summary_large_image",
			Title:       title,
			Description: listDescription,
		},
	}
}

func (r *Resolver) fallback() PageMetadata {
	return PageMetadata{
		Title:       fmt.Sprintf("Blog Post | %s", r.siteName),
		Description: fallbackDescription,
		Index:       false,
		Follow:      true,
	}
}
