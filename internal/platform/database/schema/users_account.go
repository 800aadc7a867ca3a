// Copyright (c) 2026 Aura Learning. All rights reserved.
// Author: dev@aura-learning.fr

package schema

// UsersAccountTable represents the 'users_account' table
type UsersAccountTable struct {
	Table string

	ID           string
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Role         string
	Tier         string
	IsActive     string
	CreatedAt    string
	UpdatedAt    string
}

// UsersAccount holds the canonical identifiers of the account table.
var UsersAccount = UsersAccountTable{
	Table: "users_account",

	ID:           "id",
	Email:        "email",
	PasswordHash: "password_hash",
	FirstName:    "first_name",
	LastName:     "last_name",
	Role:         "role",
	Tier:         "tier",
	IsActive:     "is_active",
	CreatedAt:    "created_at",
	UpdatedAt:    "updated_at",
}
