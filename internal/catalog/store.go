// Copyright (c) 2026 Aura Learning. All rights reserved.
// Author: dev@aura-learning.fr

package catalog

import (
	"context"
	"time"
)

// # Catalogue Data Access

// Repository defines the data access contract for the content catalogue.
//
// The catalogue is import-owned: rows are only written by the CMS importer,
// never by request handlers, so the write surface is a single atomic
// replace per kind.
type Repository interface {

	/*
		ListByKind returns every item of one kind in stable order
		(creation date descending, then ID).

		Parameters:
		  - context: context.Context
		  - kind: Kind (course or test)

		Returns:
		  - []*Item: The full collection for the kind
		  - error: Database retrieval failures
	*/
	ListByKind(context context.Context, kind Kind) ([]*Item, error)

	/*
		FindByID returns the item with the given ID and kind.

		Parameters:
		  - context: context.Context
		  - kind: Kind
		  - id: string (UUID)

		Returns:
		  - *Item: The hydrated domain entity
		  - error: dberr.ErrNotFound if missing
	*/
	FindByID(context context.Context, kind Kind, id string) (*Item, error)

	/*
		ReplaceKind atomically swaps the stored collection of one kind for
		the given items, recording the import time.

		Parameters:
		  - context: context.Context
		  - kind: Kind
		  - items: []*Item (The freshly imported collection)
		  - importedAt: time.Time

		Returns:
		  - error: Transaction failures (the previous collection survives)
	*/
	ReplaceKind(context context.Context, kind Kind, items []*Item, importedAt time.Time) error
}

// ListCache is the volatile cache in front of [Repository.ListByKind].
//
// A miss is not an error: callers fall through to the repository and
// repopulate. Cache failures must never fail a browsing request.
type ListCache interface {
	// Get returns the cached collection for a kind, and whether it was present.
	Get(context context.Context, kind Kind) ([]*Item, bool, error)

	// Set stores the collection for a kind with the standard TTL.
	Set(context context.Context, kind Kind, items []*Item) error

	// Invalidate drops the cached collection for a kind.
	Invalidate(context context.Context, kind Kind) error
}
