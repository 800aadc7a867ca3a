// Copyright (c) 2026 Aura Learning. All rights reserved.
// Author: dev@aura-learning.fr

/*
Package catalog implements the browsable content catalogue of the Aura
platform: the courses and mock tests a learner can filter by category,
CEFR level band and free text, gated by subscription tier.

# Routing Strategy

The same handler serves both collections — the course and test pages of
the web app differ only in their category set, so one implementation is
mounted twice (/courses, /tests) with the kind baked in at mount time.
All endpoints are public; anonymous visitors browse gated at the free tier.
*/
package catalog

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/auralearn/aura/internal/platform/ctxutil"
	requestutil "github.com/auralearn/aura/internal/platform/request"
	"github.com/auralearn/aura/internal/platform/respond"
	"github.com/auralearn/aura/pkg/pagination"
	"github.com/auralearn/aura/pkg/slice"
)

// # Handler Implementation

// Handler implements the HTTP layer for catalogue browsing.
type Handler struct {
	service *Service
}

// NewHandler constructs a catalogue [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] serving one content kind.
func (handler *Handler) Routes(kind Kind) chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.list(kind))
	router.Get("/categories", handler.listCategories(kind))
	router.Get("/{id}", handler.get(kind))

	return router
}

// # Browsing Endpoints

/*
GET /api/v1/courses and GET /api/v1/tests.

Description: Retrieves one page of catalogue cards filtered by the query
parameters. By default inaccessible items are included with locked=true
(the pages advertise what an upgrade unlocks); accessible=true switches
this call site to the hidden policy.

Request:
  - q: string (free-text search, accent- and case-insensitive)
  - category: string (domain tag, "all" disables)
  - level: string (all | beginner | intermediate | advanced)
  - accessible: bool (true hides locked items entirely)
  - page, limit: int

Response:
  - 200: []Card with pagination metadata
*/
func (handler *Handler) list(kind Kind) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		queryParams := request.URL.Query()

		criteria := Criteria{
			Category: Category(queryParams.Get("category")),
			Band:     ParseBand(queryParams.Get("level")),
			Search:   queryParams.Get("q"),
		}

		accessibleOnly := queryParams.Get("accessible") == "true"
		userTier := ctxutil.GetUserTier(request.Context())
		page := pagination.FromRequest(request)

		cards, meta, err := handler.service.ListCards(request.Context(), kind, criteria, userTier, accessibleOnly, page)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}

		respond.Paginated(writer, cards, meta)
	}
}

/*
GET /api/v1/courses/{id} and GET /api/v1/tests/{id}.

Description: Retrieves the detail card of one item. Content above the
user's tier is refused with TIER_LOCKED naming the required plan; the
client renders its upgrade call-to-action from that code.

Response:
  - 200: Card
  - 403: TIER_LOCKED when the user's tier cannot open the item
  - 404: NOT_FOUND
*/
func (handler *Handler) get(kind Kind) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		id := requestutil.Param(request, "id")
		userTier := ctxutil.GetUserTier(request.Context())

		card, err := handler.service.GetCard(request.Context(), kind, id, userTier)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}

		respond.OK(writer, card)
	}
}

/*
GET /api/v1/courses/categories and GET /api/v1/tests/categories.

Description: Returns the fixed category set for the kind, in the order
the filter chips are displayed.
*/
func (handler *Handler) listCategories(kind Kind) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		categories := slice.Map(Categories(kind), func(category Category) string {
			return string(category)
		})

		respond.OK(writer, categories)
	}
}
