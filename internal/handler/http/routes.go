// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-restaurant-api/internal/docs"
	"github.com/MKhiriev/go-restaurant-api/internal/negotiate"
	"github.com/MKhiriev/go-restaurant-api/models"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init registers every route and then builds the document publisher from
// the registered routes. In production the documents are written to disk
// before Init returns.
func (h *Handler) Init() (http.Handler, error) {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer, withGZip)
	if h.options.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.options.RequestTimeout))
	}

	router.NotFound(notFound)
	router.MethodNotAllowed(methodNotAllowed)

	router.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.register)
		r.Post("/login", h.login)
		r.Post("/logout", h.logout)
		r.With(h.authenticate).Post("/refresh", h.refresh)
	})

	router.Route("/restaurants", func(r chi.Router) {
		r.With(h.authenticate).Post("/", h.createRestaurant)
		r.With(h.authenticateWithRestaurant).Get("/me", h.myRestaurant)
	})

	router.Route("/items", func(r chi.Router) {
		r.Use(h.authenticateWithRestaurant)

		r.Get("/", h.listItems)
		r.Post("/", h.createItem)
		r.Get("/best-seller", h.bestSeller)
		r.Get("/worst-seller", h.worstSeller)
		r.Get("/{id}", h.getItem)
		r.Delete("/{id}", h.deleteItem)
		r.Post("/{id}/sales", h.recordSale)
	})

	router.Get("/openapi", h.negotiatedDocument)
	router.Get("/openapi/json", h.jsonDocument)
	router.Get("/openapi/yaml", h.yamlDocument)
	if !h.options.Phase.Precomputed() {
		router.Get(liveJSONDocumentPath, h.jsonDocument)
		router.Get("/openapi.yaml", h.yamlDocument)
		router.Get("/docs", h.docsUI)
	}

	router.Get("/health", h.health)

	generate := func() (*openapi3.T, error) {
		routes, err := documentedRoutes(router)
		if err != nil {
			return nil, err
		}
		return docs.Build(docs.Info{Title: h.options.DocsTitle, Version: h.options.Version}, routes)
	}

	if h.options.Phase.Precomputed() {
		publisher, err := docs.NewPrecomputedPublisher(h.options.DocsDir, generate, h.logger)
		if err != nil {
			return nil, fmt.Errorf("error precomputing api documents: %w", err)
		}
		h.publisher = publisher
	} else {
		h.publisher = docs.NewLivePublisher(generate)
	}

	return router, nil
}

// documentedRoutes lists the routes registered on router, described by
// routeDocs.
func documentedRoutes(router chi.Routes) ([]docs.Route, error) {
	var routes []docs.Route
	err := chi.Walk(router, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		path := docs.NormalizePath(route)

		described, ok := routeDocs[routeKey(method, path)]
		if !ok {
			described = docs.Route{Summary: method + " " + path}
		}
		described.Method = method
		described.Path = path

		routes = append(routes, described)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", docs.ErrBuildingDocument, err)
	}
	return routes, nil
}

func routeKey(method, path string) string {
	return method + " " + path
}

// Media types listed in the document for request and response bodies.
var (
	bodyTypes = []string{
		negotiate.MIMEApplicationJSON,
		negotiate.MIMEApplicationYAML,
		negotiate.MIMEForm,
		negotiate.MIMEMultipartForm,
	}
	yamlTypes = []string{negotiate.MIMEApplicationYAML}
	htmlTypes = []string{"text/html"}
)

// Error statuses listed in the document per kind of operation.
var (
	registerErrors         = []int{http.StatusBadRequest, http.StatusConflict}
	loginErrors            = []int{http.StatusBadRequest, http.StatusUnauthorized}
	authErrors             = []int{http.StatusUnauthorized, http.StatusForbidden}
	createRestaurantErrors = []int{http.StatusBadRequest, http.StatusUnauthorized, http.StatusConflict}
	bodyErrors             = []int{http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden, http.StatusUnsupportedMediaType}
	lookupErrors           = []int{http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound}
	lookupBodyErrors       = []int{http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound}
	healthErrors           = []int{http.StatusServiceUnavailable}
)

var routeDocs = map[string]docs.Route{
	routeKey(http.MethodPost, "/auth/register"): {
		Summary:       "Register a user",
		Tag:           "auth",
		Request:       models.Credentials{},
		RequestTypes:  bodyTypes,
		Response:      models.User{},
		Status:        http.StatusCreated,
		ErrorStatuses: registerErrors,
	},
	routeKey(http.MethodPost, "/auth/login"): {
		Summary:       "Log in and receive the token cookie",
		Tag:           "auth",
		Request:       models.Credentials{},
		RequestTypes:  bodyTypes,
		Response:      models.User{},
		ErrorStatuses: loginErrors,
	},
	routeKey(http.MethodPost, "/auth/logout"): {
		Summary:  "Clear the token cookie",
		Tag:      "auth",
		Response: models.MessageResponse{},
	},
	routeKey(http.MethodPost, "/auth/refresh"): {
		Summary:       "Re-issue the token",
		Tag:           "auth",
		Auth:          true,
		Response:      models.User{},
		ErrorStatuses: authErrors,
	},
	routeKey(http.MethodPost, "/restaurants"): {
		Summary:       "Create the caller's restaurant",
		Tag:           "restaurants",
		Auth:          true,
		Request:       models.CreateRestaurantRequest{},
		RequestTypes:  bodyTypes,
		Response:      models.Restaurant{},
		Status:        http.StatusCreated,
		ErrorStatuses: createRestaurantErrors,
	},
	routeKey(http.MethodGet, "/restaurants/me"): {
		Summary:       "Get the caller's restaurant",
		Tag:           "restaurants",
		Auth:          true,
		Response:      models.Restaurant{},
		ErrorStatuses: authErrors,
	},
	routeKey(http.MethodGet, "/items"): {
		Summary:       "List the restaurant's items",
		Tag:           "items",
		Auth:          true,
		Response:      []models.Item{},
		ErrorStatuses: authErrors,
	},
	routeKey(http.MethodPost, "/items"): {
		Summary:       "Create an item",
		Tag:           "items",
		Auth:          true,
		Request:       models.CreateItemRequest{},
		RequestTypes:  bodyTypes,
		Response:      models.Item{},
		Status:        http.StatusCreated,
		ErrorStatuses: bodyErrors,
	},
	routeKey(http.MethodGet, "/items/best-seller"): {
		Summary:       "Get the most sold item",
		Tag:           "stats",
		Auth:          true,
		Response:      models.ItemSales{},
		ErrorStatuses: lookupErrors,
	},
	routeKey(http.MethodGet, "/items/worst-seller"): {
		Summary:       "Get the least sold item",
		Tag:           "stats",
		Auth:          true,
		Response:      models.ItemSales{},
		ErrorStatuses: lookupErrors,
	},
	routeKey(http.MethodGet, "/items/{id}"): {
		Summary:       "Get an item",
		Tag:           "items",
		Auth:          true,
		Response:      models.Item{},
		ErrorStatuses: lookupErrors,
	},
	routeKey(http.MethodDelete, "/items/{id}"): {
		Summary:       "Delete an item",
		Tag:           "items",
		Auth:          true,
		Response:      models.MessageResponse{},
		ErrorStatuses: lookupErrors,
	},
	routeKey(http.MethodPost, "/items/{id}/sales"): {
		Summary:       "Record a sale of an item",
		Tag:           "stats",
		Auth:          true,
		Request:       models.RecordSaleRequest{},
		RequestTypes:  bodyTypes,
		Response:      models.Sale{},
		Status:        http.StatusCreated,
		ErrorStatuses: lookupBodyErrors,
	},
	routeKey(http.MethodGet, "/openapi"): {
		Summary:         "Get the API document in the negotiated format",
		Tag:             "docs",
		ResponseTypes:   negotiate.DocumentTypes,
		ResponseSummary: "API document",
	},
	routeKey(http.MethodGet, "/openapi/json"): {
		Summary:         "Get the API document as JSON",
		Tag:             "docs",
		ResponseSummary: "API document",
	},
	routeKey(http.MethodGet, "/openapi/yaml"): {
		Summary:         "Get the API document as YAML",
		Tag:             "docs",
		ResponseTypes:   yamlTypes,
		ResponseSummary: "API document",
	},
	routeKey(http.MethodGet, "/openapi.json"): {
		Summary:         "Get the API document as JSON",
		Tag:             "docs",
		ResponseSummary: "API document",
	},
	routeKey(http.MethodGet, "/openapi.yaml"): {
		Summary:         "Get the API document as YAML",
		Tag:             "docs",
		ResponseTypes:   yamlTypes,
		ResponseSummary: "API document",
	},
	routeKey(http.MethodGet, "/docs"): {
		Summary:         "Interactive API documentation",
		Tag:             "docs",
		ResponseTypes:   htmlTypes,
		ResponseSummary: "documentation page",
	},
	routeKey(http.MethodGet, "/health"): {
		Summary:       "Liveness and storage check",
		Tag:           "health",
		Response:      models.HealthResponse{},
		ErrorStatuses: healthErrors,
	},
}
