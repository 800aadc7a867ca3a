// Copyright (c) 2026 Aura Learning. All rights reserved.
// Author: dev@aura-learning.fr

package cms

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/auralearn/aura/internal/catalog"
)

// ContentStore is the slice of the catalogue service the importer writes to.
type ContentStore interface {
	ReplaceCollection(context context.Context, kind catalog.Kind, items []*catalog.Item) error
}

// Importer pulls published content out of the CMS and replaces the local
// catalogue with it, one kind at a time.
type Importer struct {
	client *Client
	store  ContentStore
	log    *slog.Logger
}

// NewImporter constructs an [Importer].
func NewImporter(client *Client, store ContentStore, log *slog.Logger) *Importer {
	return &Importer{client: client, store: store, log: log}
}

/*
SyncAll refreshes both catalogue collections from the CMS.

Description: Fetches courses and tests concurrently and atomically replaces
each collection that came back non-empty. An empty fetch is indistinguishable
from an upstream outage, so it is skipped rather than wiping a previously
healthy catalogue; the skip is logged.

Parameters:
  - context: context.Context

Returns:
  - error: First replace failure across both kinds, nil otherwise
*/
func (importer *Importer) SyncAll(context context.Context) error {
	group, groupContext := errgroup.WithContext(context)

	for _, kind := range []catalog.Kind{catalog.KindCourse, catalog.KindTest} {
		group.Go(func() error {
			return importer.syncKind(groupContext, kind)
		})
	}

	return group.Wait()
}

// syncKind fetches and replaces a single collection.
func (importer *Importer) syncKind(context context.Context, kind catalog.Kind) error {
	started := time.Now()

	items := importer.client.FetchContent(context, kind)
	if len(items) == 0 {
		importer.log.Warn("import_skipped_empty_fetch", slog.String("kind", string(kind)))
		return nil
	}

	if err := importer.store.ReplaceCollection(context, kind, items); err != nil {
		return err
	}

	importer.log.Info("import_completed",
		slog.String("kind", string(kind)),
		slog.Int("items", len(items)),
		slog.Duration("elapsed", time.Since(started)),
	)

	return nil
}

// Run re-syncs the catalogue on a fixed interval until the context is
// cancelled. Failures are logged and the loop keeps going; a transient CMS
// outage must not kill the scheduler.
func (importer *Importer) Run(context context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-context.Done():
			return
		case <-ticker.C:
			if err := importer.SyncAll(context); err != nil {
				importer.log.Error("import_failed", slog.Any("error", err))
			}
		}
	}
}
