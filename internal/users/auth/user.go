// Copyright (c) 2026 Aura Learning. All rights reserved.
// Author: dev@aura-learning.fr

/*
Package auth implements the user identity layer of the Aura platform.

It defines the User entity and the login flow that issues the access tokens
the catalogue gates on. The subscription tier rides inside the token, so a
learner's plan is known on every request without a database round trip.

# Architecture

  - Service: Orchestrates the authentication use cases (Login, Me).
  - Repository: Abstracted interface over Postgres.
  - Security: Bcrypt password hashes and RSA-signed JWTs (platform/sec).
*/
package auth

import (
	"fmt"
	"time"

	"github.com/auralearn/aura/internal/platform/sec"
	"github.com/auralearn/aura/internal/subscription"
)

// # Domain Entities

// User represents a registered learner or staff member of the platform.
type User struct {
	ID           string            `json:"id"`
	Email        string            `json:"email"`
	PasswordHash string            `json:"-"` // Explicitly omitted from JSON for security.
	FirstName    string            `json:"first_name"`
	LastName     string            `json:"last_name"`
	Role         sec.UserRole      `json:"role"`
	Tier         subscription.Tier `json:"tier"`
	IsActive     bool              `json:"is_active"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// FullName renders the display name shown in the account header.
func (user *User) FullName() string {
	return fmt.Sprintf("%s %s", user.FirstName, user.LastName)
}

// # Field Identifiers

// Global field names for validation and identity mapping in the
// authentication domain.
const (
	FieldEmail       = "email"
	FieldPassword    = "password"
	FieldAccessToken = "access_token"
	FieldTokenType   = "token_type"
	FieldExpiresIn   = "expires_in"
	FieldUser        = "user"
)
