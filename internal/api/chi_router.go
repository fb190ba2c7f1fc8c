// Shelfwise - Book Recommendations with Collaborative Filtering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/shelfwise/internal/config"
	"github.com/tomtom215/shelfwise/internal/middleware"
)

// Router wires handlers and middleware into a chi mux.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a router. A nil security config uses
// DefaultChiMiddlewareConfig.
func NewRouter(handler *Handler, sec *config.SecurityConfig) *Router {
	return &Router{
		handler:       handler,
		chiMiddleware: NewChiMiddleware(ChiMiddlewareConfigFromSecurity(sec)),
	}
}

// SetupChi configures all HTTP routes.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// Applied to all routes, in order.
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.AccessLog)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS()) // global so OPTIONS preflight is answered

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		respondError(w, http.StatusNotFound, ErrCodeNotFound, "Route not found", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(router.chiMiddleware.MaxBodySize())
		r.Use(APISecurityHeaders())
		r.Use(middleware.PrometheusMetrics)

		r.Get("/health", router.handler.Health)

		r.Route("/books", func(r chi.Router) {
			r.Get("/", router.handler.Books)
			r.Get("/{bookID}", router.handler.Book)
			r.Get("/{bookID}/similar", router.handler.SimilarBooks)
		})

		r.Post("/recommendations", router.handler.Recommendations)

		r.Route("/users/{userID}", func(r chi.Router) {
			r.Get("/ratings/{bookID}", router.handler.GetRating)
			r.Put("/ratings/{bookID}", router.handler.PutRating)

			r.Get("/reading-list", router.handler.ReadingList)
			r.Put("/reading-list/{bookID}", router.handler.PutReadingStatus)
			r.Delete("/reading-list/{bookID}", router.handler.DeleteReadingStatus)
		})
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}
