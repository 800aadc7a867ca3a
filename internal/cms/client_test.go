// Copyright (c) 2026 Aura Learning. All rights reserved.
// Author: dev@aura-learning.fr

package cms

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auralearn/aura/internal/catalog"
	"github.com/auralearn/aura/internal/subscription"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestClient(serverURL string) *Client {
	return NewClient(serverURL, "test-token", 2*time.Second, discardLogger())
}

/*
TestClient_FetchContent_Success verifies the happy path: a well-formed
envelope is decoded and every record is mapped onto a catalogue item with
its enums translated.
*/
func TestClient_FetchContent_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/content", r.URL.Path)
		assert.Equal(t, "course", r.URL.Query().Get("type"))
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"success": true,
			"data": {
				"content": [
					{
						"id": "crs-1",
						"title": "Grammaire de base",
						"titleEn": "Basic Grammar",
						"description": "Les fondations",
						"level": "A1",
						"category": "GRAMMAR",
						"requiredTier": "free",
						"duration": 90,
						"lessons": 12,
						"tags": ["débutant"],
						"rating": 4.5,
						"enrolledCount": 240,
						"createdBy": {"firstName": "Marie", "lastName": "Dubois", "role": "teacher"},
						"createdAt": "2026-02-10T09:00:00Z"
					},
					{
						"id": "crs-2",
						"title": "Compréhension orale C1",
						"description": "Dialogues authentiques",
						"level": "C1",
						"category": "LISTENING",
						"requiredTier": "premium",
						"duration": 120,
						"createdAt": "2026-03-01T09:00:00Z"
					}
				]
			}
		}`))
	}))
	defer server.Close()

	items := newTestClient(server.URL).FetchContent(context.Background(), catalog.KindCourse)
	require.Len(t, items, 2)

	first := items[0]
	assert.Equal(t, "crs-1", first.ID)
	assert.Equal(t, catalog.KindCourse, first.Kind)
	assert.Equal(t, "Grammaire de base", first.Title)
	assert.Equal(t, "Basic Grammar", first.TitleEn)
	assert.Equal(t, catalog.LevelA1, first.Level)
	assert.Equal(t, catalog.CategoryGrammar, first.Category)
	assert.Equal(t, subscription.TierFree, first.RequiredTier)
	assert.Equal(t, 90, first.DurationMinutes)
	assert.Equal(t, 12, first.Lessons)
	assert.Equal(t, 4.5, first.Rating)
	assert.Equal(t, 240, first.EnrolledCount)
	require.NotNil(t, first.CreatedBy)
	assert.Equal(t, "Marie", first.CreatedBy.FirstName)
	assert.Equal(t, time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC), first.CreatedAt)

	second := items[1]
	assert.Equal(t, catalog.CategoryListening, second.Category)
	assert.Equal(t, subscription.TierPremium, second.RequiredTier)
	assert.Nil(t, second.CreatedBy)
	// Absent display stats stay zero, they are never synthesised.
	assert.Zero(t, second.Rating)
	assert.Zero(t, second.EnrolledCount)
}

/*
TestClient_FetchContent_EmptyOnFailure exercises the failure policy: every
upstream failure mode yields an empty, non-nil slice and no panic.
*/
func TestClient_FetchContent_EmptyOnFailure(t *testing.T) {
	testCases := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "not found",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"success": tru`))
			},
		},
		{
			name: "envelope failure",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"success": false, "data": {"content": []}}`))
			},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			server := httptest.NewServer(testCase.handler)
			defer server.Close()

			items := newTestClient(server.URL).FetchContent(context.Background(), catalog.KindTest)

			require.NotNil(t, items)
			assert.Empty(t, items)
		})
	}
}

/*
TestClient_FetchContent_NetworkFailure points the client at a closed port
and expects the same empty result instead of an error.
*/
func TestClient_FetchContent_NetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // closed on purpose

	items := newTestClient(server.URL).FetchContent(context.Background(), catalog.KindCourse)

	require.NotNil(t, items)
	assert.Empty(t, items)
}

/*
TestClient_MapRecord_EnumFallbacks verifies that malformed enum values from
the CMS are normalised instead of dropping the record: unknown categories
fall back to grammar, unknown levels to A1, and an unknown tier locks the
item at pro.
*/
func TestClient_MapRecord_EnumFallbacks(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"success": true,
			"data": {
				"content": [
					{
						"id": "crs-odd",
						"title": "Contenu étrange",
						"level": "Z9",
						"category": "KARAOKE",
						"requiredTier": "platinum",
						"createdAt": "not-a-date"
					}
				]
			}
		}`))
	}))
	defer server.Close()

	items := newTestClient(server.URL).FetchContent(context.Background(), catalog.KindCourse)
	require.Len(t, items, 1)

	item := items[0]
	assert.Equal(t, catalog.CategoryGrammar, item.Category)
	assert.Equal(t, catalog.LevelA1, item.Level)
	assert.Equal(t, subscription.TierPro, item.RequiredTier)
	assert.True(t, item.CreatedAt.IsZero())
}

/*
TestClient_CategoryEnumTable pins the full CMS-enum-to-category translation
table, test certifications included.
*/
func TestClient_CategoryEnumTable(t *testing.T) {
	expected := map[string]catalog.Category{
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

	assert.Equal(t, expected, categoryByEnum)
}
