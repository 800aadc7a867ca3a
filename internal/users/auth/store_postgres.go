// Copyright (c) 2026 Aura Learning. All rights reserved.
// Author: dev@aura-learning.fr

package auth

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/auralearn/aura/internal/platform/database/schema"
	"github.com/auralearn/aura/internal/platform/dberr"
	"github.com/auralearn/aura/internal/platform/sec"
	"github.com/auralearn/aura/internal/subscription"
)

// # User Repository

// PostgresUserRepository implements the [UserRepository] interface using pgx.
type PostgresUserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a new PostgreSQL implementation of the [UserRepository].
func NewUserRepository(pool *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{pool: pool}
}

// accountColumns is the canonical select list of the account table.
var accountColumns = fmt.Sprintf(
	"%s, %s, %s, %s, %s, %s, %s, %s, %s, %s",
	schema.UsersAccount.ID,
	schema.UsersAccount.Email,
	schema.UsersAccount.PasswordHash,
	schema.UsersAccount.FirstName,
	schema.UsersAccount.LastName,
	schema.UsersAccount.Role,
	schema.UsersAccount.Tier,
	schema.UsersAccount.IsActive,
	schema.UsersAccount.CreatedAt,
	schema.UsersAccount.UpdatedAt,
)

/*
FindByID retrieves a user record by its primary key.

Description: Standard lookup for token-to-profile resolution, restricted to
active accounts.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - *User: Hydrated account entity
  - error: apperr.NotFound or database errors
*/
func (repository *PostgresUserRepository) FindByID(context context.Context, id string) (*User, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM %s WHERE %s = $1 AND %s = TRUE",
		accountColumns,
		schema.UsersAccount.Table,
		schema.UsersAccount.ID,
		schema.UsersAccount.IsActive,
	)

	return repository.scanUser(repository.pool.QueryRow(context, query, id))
}

/*
FindByEmail retrieves a user record by its unique email address.

Description: Credential lookup for the login flow, restricted to active
accounts so a deactivated learner cannot sign in.

Parameters:
  - context: context.Context
  - email: string

Returns:
  - *User: Hydrated account entity
  - error: apperr.NotFound or database errors
*/
func (repository *PostgresUserRepository) FindByEmail(context context.Context, email string) (*User, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM %s WHERE %s = $1 AND %s = TRUE",
		accountColumns,
		schema.UsersAccount.Table,
		schema.UsersAccount.Email,
		schema.UsersAccount.IsActive,
	)

	return repository.scanUser(repository.pool.QueryRow(context, query, email))
}

// rowScanner abstracts pgx.Row for single-row hydration.
type rowScanner interface {
	Scan(destination ...any) error
}

// scanUser hydrates one account row, translating storage errors into
// domain-friendly ones.
func (repository *PostgresUserRepository) scanUser(row rowScanner) (*User, error) {
	var (
		user User
		role string
		tier string
	)

	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.FirstName,
		&user.LastName,
		&role,
		&tier,
		&user.IsActive,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err)
	}

	user.Role = sec.UserRole(role)
	user.Tier = subscription.Tier(tier)

	return &user, nil
}
