// Copyright (c) 2026 Aura Learning. All rights reserved.
// Author: dev@aura-learning.fr

/*
Package cms is the read adapter for the legacy content-management backend
where Aura's managers author courses and mock tests.

# Failure Policy

Fetches never surface an error to the caller: any failure — network, non-2xx
status, malformed body, success=false envelope — yields an empty list and a
structured log entry. A browsing page renders an empty state instead of
crashing; the importer keeps the previous catalogue instead of wiping it.
*/
package cms

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/auralearn/aura/internal/catalog"
	"github.com/auralearn/aura/internal/subscription"
)

// # Wire Format

// envelope is the response wrapper of every CMS read endpoint.
type envelope struct {
	Success bool `json:"success"`
	Data    struct {
		Content []record `json:"content"`
	} `json:"data"`
}

// record is one content row as the CMS serialises it.
type record struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	TitleEn       string   `json:"titleEn"`
	Description   string   `json:"description"`
	DescriptionEn string   `json:"descriptionEn"`
	Level         string   `json:"level"`
	Category      string   `json:"category"`
	RequiredTier  string   `json:"requiredTier"`
	Duration      int      `json:"duration"`
	Lessons       int      `json:"lessons"`
	Tags          []string `json:"tags"`
	Rating        float64  `json:"rating"`
	EnrolledCount int      `json:"enrolledCount"`
	ImageURL      string   `json:"imageUrl"`
	CreatedBy     *struct {
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		Role      string `json:"role"`
	} `json:"createdBy"`
	CreatedAt string `json:"createdAt"`
}

// # Client

// Client fetches published content from the CMS read API.
type Client struct {
	baseURL    string
	apiToken   string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient constructs a CMS [Client].
//
// # Parameters
//   - baseURL: Root of the CMS API (e.g. https://cms.aura-learning.fr).
//   - apiToken: Bearer token for the read endpoint; empty for open deployments.
//   - timeout: Per-request timeout.
//   - log: Structured logger for fetch failures.
func NewClient(baseURL, apiToken string, timeout time.Duration, log *slog.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		apiToken:   apiToken,
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

/*
FetchContent retrieves every published item of one kind.

Description: Calls GET {base}/api/content?type={kind} and maps the CMS
records into catalogue items. Per the package failure policy the return is
empty — never an error — when anything goes wrong; the cause is logged.

Parameters:
  - context: context.Context
  - kind: catalog.Kind

Returns:
  - []*catalog.Item: Mapped items, or an empty slice on any failure
*/
func (client *Client) FetchContent(context context.Context, kind catalog.Kind) []*catalog.Item {
	endpoint := fmt.Sprintf("%s/api/content?type=%s", client.baseURL, url.QueryEscape(string(kind)))

	request, err := http.NewRequestWithContext(context, http.MethodGet, endpoint, nil)
	if err != nil {
		client.logFailure(kind, "build_request", err)
		return []*catalog.Item{}
	}
	request.Header.Set("Accept", "application/json")
	if client.apiToken != "" {
		request.Header.Set("Authorization", "Bearer "+client.apiToken)
	}

	response, err := client.httpClient.Do(request)
	if err != nil {
		client.logFailure(kind, "request", err)
		return []*catalog.Item{}
	}
	defer func() { _ = response.Body.Close() }()

	if response.StatusCode < 200 || response.StatusCode > 299 {
		client.logFailure(kind, "status", fmt.Errorf("unexpected status %d", response.StatusCode))
		return []*catalog.Item{}
	}

	var body envelope
	if err := json.NewDecoder(response.Body).Decode(&body); err != nil {
		client.logFailure(kind, "decode", err)
		return []*catalog.Item{}
	}

	if !body.Success {
		client.logFailure(kind, "envelope", fmt.Errorf("cms reported success=false"))
		return []*catalog.Item{}
	}

	items := make([]*catalog.Item, 0, len(body.Data.Content))
	for _, row := range body.Data.Content {
		items = append(items, client.mapRecord(kind, row))
	}

	return items
}

// logFailure records one fetch failure with enough context to debug the
// upstream, without ever reaching the client response.
func (client *Client) logFailure(kind catalog.Kind, stage string, err error) {
	client.log.Error("cms_fetch_failed",
		slog.String("kind", string(kind)),
		slog.String("stage", stage),
		slog.Any("error", err),
	)
}

// # Record Mapping

// categoryByEnum translates the CMS category enums into catalogue tags.
var categoryByEnum = map[string]catalog.Category{
	"GRAMMAR":    catalog.CategoryGrammar,
	"LISTENING":  catalog.CategoryListening,
	"READING":    catalog.CategoryReading,
	"VOCABULARY": catalog.CategoryVocabulary,
	"WRITING":    catalog.CategoryWriting,
	"ORAL":       catalog.CategoryOral,
	"SIMULATION": catalog.CategorySimulation,
	"TCF":        catalog.CategoryTCF,
	"TEF":        catalog.CategoryTEF,
	"DELF":       catalog.CategoryDELF,
	"DALF":       catalog.CategoryDALF,
}

// mapRecord normalises one CMS row into a catalogue [Item].
//
// Malformed enum values never fail the list: unknown categories fall back
// to grammar, unknown levels to A1, and an unknown required tier gates as
// pro — the item renders locked rather than accidentally free.
func (client *Client) mapRecord(kind catalog.Kind, row record) *catalog.Item {
	category, ok := categoryByEnum[row.Category]
	if !ok {
		client.log.Warn("cms_unknown_category",
			slog.String("id", row.ID),
			slog.String("category", row.Category),
		)
		category = catalog.CategoryGrammar
	}

	level := catalog.Level(row.Level)
	if !level.IsValid() {
		client.log.Warn("cms_unknown_level",
			slog.String("id", row.ID),
			slog.String("level", row.Level),
		)
		level = catalog.LevelA1
	}

	tier := subscription.Tier(row.RequiredTier)
	if !tier.IsValid() {
		client.log.Warn("cms_unknown_tier",
			slog.String("id", row.ID),
			slog.String("tier", row.RequiredTier),
		)
		tier = subscription.TierPro
	}

	item := &catalog.Item{
		ID:              row.ID,
		Kind:            kind,
		Title:           row.Title,
		TitleEn:         row.TitleEn,
		Description:     row.Description,
		DescriptionEn:   row.DescriptionEn,
		Level:           level,
		Category:        category,
		RequiredTier:    tier,
		Tags:            row.Tags,
		DurationMinutes: row.Duration,
		Lessons:         row.Lessons,
		Rating:          row.Rating,
		EnrolledCount:   row.EnrolledCount,
		ImageURL:        row.ImageURL,
	}

	if row.CreatedBy != nil {
		item.CreatedBy = &catalog.Author{
			FirstName: row.CreatedBy.FirstName,
			LastName:  row.CreatedBy.LastName,
			Role:      row.CreatedBy.Role,
		}
	}

	if createdAt, err := time.Parse(time.RFC3339, row.CreatedAt); err == nil {
		item.CreatedAt = createdAt
	}

	return item
}
