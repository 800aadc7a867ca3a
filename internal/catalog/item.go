// Copyright (c) 2026 Aura Learning. All rights reserved.
// Author: dev@aura-learning.fr

package catalog

import (
	"time"

	"github.com/auralearn/aura/internal/subscription"
)

// # Content Kinds

// Kind separates the two browsable collections of the catalogue.
type Kind string

const (
	// KindCourse is a lesson-based course (grammar, listening, oral...).
	KindCourse Kind = "course"
	// KindTest is a mock exam for an official certification (TCF, TEF...).
	KindTest Kind = "test"
)

// IsValid reports whether k is a recognised [Kind] value.
func (k Kind) IsValid() bool {
	return k == KindCourse || k == KindTest
}

// # CEFR Levels

// Level is a CEFR proficiency band (A1 through C2).
type Level string

const (
	LevelA1 Level = "A1"
	LevelA2 Level = "A2"
	LevelB1 Level = "B1"
	LevelB2 Level = "B2"
	LevelC1 Level = "C1"
	LevelC2 Level = "C2"
)

// levelRank maps each CEFR level to its 0-based position (A1=0 ... C2=5).
var levelRank = map[Level]int{
	LevelA1: 0, LevelA2: 1,
	LevelB1: 2, LevelB2: 3,
	LevelC1: 4, LevelC2: 5,
}

// IsValid reports whether l is a recognised CEFR band.
func (l Level) IsValid() bool {
	_, ok := levelRank[l]
	return ok
}

// Difficulty compresses the six CEFR bands onto the 5-point scale shown in
// the web UI: A1→1, A2→2, B1→3, B2→4, C1→5, C2→5.
//
// The mapping is deterministic. Unknown levels land on 1 so a malformed
// record renders as easy rather than breaking the page.
func (l Level) Difficulty() int {
	rank, ok := levelRank[l]
	if !ok {
		return 1
	}
	if rank >= 4 {
		return 5
	}
	return rank + 1
}

// # Level Bands

// Band groups CEFR levels the way the browsing UI filters them.
type Band string

const (
	// BandAll disables level filtering.
	BandAll Band = "all"
	// BandBeginner covers A1 and A2.
	BandBeginner Band = "beginner"
	// BandIntermediate covers B1 and B2.
	BandIntermediate Band = "intermediate"
	// BandAdvanced covers C1 and C2.
	BandAdvanced Band = "advanced"
)

// Contains reports whether the given level falls inside the band.
// [BandAll] contains every level; an unknown band contains none.
func (b Band) Contains(level Level) bool {
	rank, ok := levelRank[level]
	if !ok {
		return false
	}
	switch b {
	case BandAll:
		return true
	case BandBeginner:
		return rank <= 1
	case BandIntermediate:
		return rank == 2 || rank == 3
	case BandAdvanced:
		return rank >= 4
	}
	return false
}

// ParseBand normalises a query-string value into a [Band].
// Empty or unrecognised input disables level filtering.
func ParseBand(value string) Band {
	switch Band(value) {
	case BandBeginner, BandIntermediate, BandAdvanced:
		return Band(value)
	}
	return BandAll
}

// # Categories

// Category is the domain tag a content item is filed under.
type Category string

const (
	// Course categories.
	CategoryGrammar    Category = "grammar"
	CategoryListening  Category = "listening"
	CategoryReading    Category = "reading"
	CategoryVocabulary Category = "vocabulary"
	CategoryWriting    Category = "writing"
	CategoryOral       Category = "oral"
	CategorySimulation Category = "simulation"

	// Test categories — the official French certifications Aura prepares for.
	CategoryTCF  Category = "tcf"
	CategoryTEF  Category = "tef"
	CategoryDELF Category = "delf"
	CategoryDALF Category = "dalf"
)

// Categories returns the fixed set of valid categories for a kind,
// in display order.
func Categories(kind Kind) []Category {
	if kind == KindTest {
		return []Category{CategoryTCF, CategoryTEF, CategoryDELF, CategoryDALF}
	}
	return []Category{
		CategoryGrammar, CategoryListening, CategoryReading,
		CategoryVocabulary, CategoryWriting, CategoryOral, CategorySimulation,
	}
}

// # Content Items

// Author identifies the manager or teacher who published an item upstream.
type Author struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role"`
}

// Item is a single browsable entry of the catalogue — a course or a mock
// test. French fields are authoritative; the *En variants are fallbacks for
// the English locale.
//
// Items are authored in the upstream content-management system and imported
// read-only. Nothing in this service ever mutates an item after import; all
// visibility decisions are derived per request.
type Item struct {
	ID            string            `json:"id"`
	Kind          Kind              `json:"kind"`
	Title         string            `json:"title"`
	TitleEn       string            `json:"title_en,omitempty"`
	Description   string            `json:"description"`
	DescriptionEn string            `json:"description_en,omitempty"`
	Level         Level             `json:"level"`
	Category      Category          `json:"category"`
	RequiredTier  subscription.Tier `json:"required_tier"`
	Tags          []string          `json:"tags,omitempty"`

	// DurationMinutes and Lessons describe the workload of the item.
	DurationMinutes int `json:"duration_minutes"`
	Lessons         int `json:"lessons,omitempty"`

	// Display-only stats. They carry no access-control semantics and are
	// taken verbatim from the upstream backend; zero means "not reported"
	// and the JSON field is omitted rather than faked.
	Rating        float64 `json:"rating,omitempty"`
	EnrolledCount int     `json:"enrolled_count,omitempty"`
	ImageURL      string  `json:"image_url,omitempty"`

	CreatedBy *Author   `json:"created_by,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Difficulty returns the item's 1-5 difficulty derived from its CEFR level.
func (item *Item) Difficulty() int {
	return item.Level.Difficulty()
}
