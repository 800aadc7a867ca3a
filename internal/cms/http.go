// Copyright (c) 2026 Aura Learning. All rights reserved.
// Author: dev@aura-learning.fr

package cms

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/auralearn/aura/internal/platform/middleware"
	"github.com/auralearn/aura/internal/platform/respond"
	"github.com/auralearn/aura/internal/platform/sec"
)

// # Definitions & Constructors

// Handler exposes the administrative import endpoints.
type Handler struct {
	importer *Importer
}

// NewHandler constructs a new [Handler] around the importer.
func NewHandler(importer *Importer) *Handler {
	return &Handler{importer: importer}
}

// Routes returns a [chi.Router] with the admin import routes.
//
// # Endpoints
//   - POST /import : Triggers a full catalogue re-sync (manager or above).
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireRole(sec.RoleManager))
		r.Post("/import", handler.triggerImport)
	})

	return router
}

/*
TriggerImport kicks off a catalogue re-sync from the CMS.

POST /api/v1/admin/import

Description: Starts the sync in the background and returns immediately; a
full import can take a while and the CMS does not need the admin's browser
to wait on it. Progress and failures land in the structured logs.

Response:
  - 202: Accepted: Sync started
  - 401: ErrUnauthorized: Missing or invalid token
  - 403: ErrForbidden: Caller is not a manager
*/
func (handler *Handler) triggerImport(writer http.ResponseWriter, request *http.Request) {
	// Detached from the request context so closing the browser tab does
	// not abort a half-finished import.
	background := context.WithoutCancel(request.Context())

	go func() {
		if err := handler.importer.SyncAll(background); err != nil {
			handler.importer.log.Error("import_failed", slog.Any("error", err))
		}
	}()

	respond.Accepted(writer, map[string]string{"status": "import_started"})
}
