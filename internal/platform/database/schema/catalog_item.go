// Copyright (c) 2026 Aura Learning. All rights reserved.
// Author: dev@aura-learning.fr

// Package schema centralizes table and column identifiers so SQL strings
// in the repositories never drift from the migrations.
package schema

// CatalogItemTable represents the 'catalog_item' table
type CatalogItemTable struct {
	Table string

	ID            string
	Kind          string
	Title         string
	TitleEn       string
	Description   string
	DescriptionEn string
	Level         string
	Category      string
	RequiredTier  string
	Tags          string
	Duration      string
	Lessons       string
	Rating        string
	EnrolledCount string
	ImageURL      string
	CreatedBy     string
	CreatedAt     string
	ImportedAt    string
}

// CatalogItem holds the canonical identifiers of the catalogue table.
var CatalogItem = CatalogItemTable{
	Table: "catalog_item",

	ID:            "id",
	Kind:          "kind",
	Title:         "title",
	TitleEn:       "title_en",
	Description:   "description",
	DescriptionEn: "description_en",
	Level:         "level",
	Category:      "category",
	RequiredTier:  "required_tier",
	Tags:          "tags",
	Duration:      "duration_minutes",
	Lessons:       "lessons",
	Rating:        "rating",
	EnrolledCount: "enrolled_count",
	ImageURL:      "image_url",
	CreatedBy:     "created_by",
	CreatedAt:     "created_at",
	ImportedAt:    "imported_at",
}
