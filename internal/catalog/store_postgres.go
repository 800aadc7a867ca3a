// Copyright (c) 2026 Aura Learning. All rights reserved.
// Author: dev@aura-learning.fr

package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/auralearn/aura/internal/platform/database/schema"
	"github.com/auralearn/aura/internal/platform/dberr"
	"github.com/auralearn/aura/internal/subscription"
)

// # PostgreSQL Repository

// pgRepository implements [Repository] using pgx.
type pgRepository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL backed catalogue store.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &pgRepository{pool: pool}
}

// itemColumns is the stable SELECT column list shared by every read query.
var itemColumns = fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s",
	schema.CatalogItem.ID,
	schema.CatalogItem.Kind,
	schema.CatalogItem.Title,
	schema.CatalogItem.TitleEn,
	schema.CatalogItem.Description,
	schema.CatalogItem.DescriptionEn,
	schema.CatalogItem.Level,
	schema.CatalogItem.Category,
	schema.CatalogItem.RequiredTier,
	schema.CatalogItem.Tags,
	schema.CatalogItem.Duration,
	schema.CatalogItem.Lessons,
	schema.CatalogItem.Rating,
	schema.CatalogItem.EnrolledCount,
	schema.CatalogItem.ImageURL,
	schema.CatalogItem.CreatedBy,
	schema.CatalogItem.CreatedAt,
)

/*
ListByKind returns every item of one kind, newest first.

Description: The whole collection is loaded in one query. The catalogue is
authored by a handful of managers and sits in the tens-to-hundreds of rows,
so filtering happens in the service layer against this list (usually via
the Redis cache) rather than in SQL.

Parameters:
  - context: context.Context
  - kind: Kind

Returns:
  - []*Item: The full collection for the kind
  - error: Database execution errors
*/
func (repository *pgRepository) ListByKind(context context.Context, kind Kind) ([]*Item, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1
		ORDER BY %s DESC, %s`,
		itemColumns,
		schema.CatalogItem.Table,
		schema.CatalogItem.Kind,
		schema.CatalogItem.CreatedAt,
		schema.CatalogItem.ID,
	)

	rows, err := repository.pool.Query(context, query, string(kind))
	if err != nil {
		return nil, dberr.Wrap(err)
	}
	defer rows.Close()

	items := make([]*Item, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, dberr.Wrap(err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err)
	}

	return items, nil
}

/*
FindByID returns the item with the given ID and kind.

Parameters:
  - context: context.Context
  - kind: Kind
  - id: string (UUID)

Returns:
  - *Item: The hydrated domain entity
  - error: dberr.ErrNotFound if no row matches
*/
func (repository *pgRepository) FindByID(context context.Context, kind Kind, id string) (*Item, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1 AND %s = $2`,
		itemColumns,
		schema.CatalogItem.Table,
		schema.CatalogItem.ID,
		schema.CatalogItem.Kind,
	)

	row := repository.pool.QueryRow(context, query, id, string(kind))
	item, err := scanItem(row)
	if err != nil {
		return nil, dberr.Wrap(err)
	}

	return item, nil
}

/*
ReplaceKind atomically swaps the stored collection of one kind.

Description: Runs DELETE + batched INSERT inside a single transaction, so a
failed import leaves the previous catalogue fully intact and readers never
observe a half-replaced collection.

Parameters:
  - context: context.Context
  - kind: Kind
  - items: []*Item
  - importedAt: time.Time

Returns:
  - error: Transaction failures
*/
func (repository *pgRepository) ReplaceKind(context context.Context, kind Kind, items []*Item, importedAt time.Time) error {
	transaction, err := repository.pool.BeginTx(context, pgx.TxOptions{})
	if err != nil {
		return dberr.Wrap(err)
	}
	defer func() { _ = transaction.Rollback(context) }()

	deleteQuery := fmt.Sprintf("DELETE FROM %s WHERE %s = $1",
		schema.CatalogItem.Table, schema.CatalogItem.Kind)
	if _, err := transaction.Exec(context, deleteQuery, string(kind)); err != nil {
		return dberr.Wrap(err)
	}

	insertQuery := fmt.Sprintf(`
		INSERT INTO %s (%s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`,
		schema.CatalogItem.Table,
		itemColumns,
		schema.CatalogItem.ImportedAt,
	)

	batch := &pgx.Batch{}
	for _, item := range items {
		createdBy, err := marshalAuthor(item.CreatedBy)
		if err != nil {
			return dberr.Wrap(err)
		}

		batch.Queue(insertQuery,
			item.ID,
			string(item.Kind),
			item.Title,
			item.TitleEn,
			item.Description,
			item.DescriptionEn,
			string(item.Level),
			string(item.Category),
			string(item.RequiredTier),
			item.Tags,
			item.DurationMinutes,
			item.Lessons,
			item.Rating,
			item.EnrolledCount,
			item.ImageURL,
			createdBy,
			item.CreatedAt,
			importedAt,
		)
	}

	if err := transaction.SendBatch(context, batch).Close(); err != nil {
		return dberr.Wrap(err)
	}

	if err := transaction.Commit(context); err != nil {
		return dberr.Wrap(err)
	}

	return nil
}

// # Row Mapping

// scanItem hydrates one [Item] from a row produced with itemColumns.
func scanItem(row pgx.Row) (*Item, error) {
	var (
		item      Item
		kind      string
		level     string
		category  string
		tier      string
		createdBy []byte
	)

	err := row.Scan(
		&item.ID,
		&kind,
		&item.Title,
		&item.TitleEn,
		&item.Description,
		&item.DescriptionEn,
		&level,
		&category,
		&tier,
		&item.Tags,
		&item.DurationMinutes,
		&item.Lessons,
		&item.Rating,
		&item.EnrolledCount,
		&item.ImageURL,
		&createdBy,
		&item.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	item.Kind = Kind(kind)
	item.Level = Level(level)
	item.Category = Category(category)
	item.RequiredTier = subscription.Tier(tier)

	if len(createdBy) > 0 {
		var author Author
		if err := json.Unmarshal(createdBy, &author); err == nil {
			item.CreatedBy = &author
		}
	}

	return &item, nil
}

// marshalAuthor serialises the optional author block for the JSONB column.
func marshalAuthor(author *Author) ([]byte, error) {
	if author == nil {
		return nil, nil
	}
	return json.Marshal(author)
}
