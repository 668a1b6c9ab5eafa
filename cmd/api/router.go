package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"librarycatalog/internal/catalog"
	"librarycatalog/internal/config"
	apphttp "librarycatalog/internal/http"
	"librarycatalog/internal/httpx"
)

func newRouter(cfg config.Config, svc catalog.Service, rateLimiter *httpx.RateLimitMiddleware) http.Handler {
	r := chi.NewRouter()

	r.Use(httpx.RequestIDMiddleware)
	r.Use(httpx.AccessLogMiddleware)
	r.Use(httpx.RecoveryMiddleware)
	r.Use(httpx.SecurityHeadersMiddleware(cfg.EnableHSTS))
	r.Use(httpx.CORSMiddleware(cfg.AllowedOrigins))
	r.Use(httpx.RequestSizeLimitMiddleware(cfg.MaxBodyBytes))
	r.Use(rateLimiter.Middleware)

	r.NotFound(apphttp.NotFound)
	r.MethodNotAllowed(apphttp.MethodNotAllowed)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Mount("/v1", apphttp.NewCatalogHandler(svc).Routes())
	return r
}
