package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/neexbeast/farescout/internal/location"
)

const healthTimeout = 3 * time.Second

// Handlers holds the dependencies for all HTTP handlers.
type Handlers struct {
	resolver *location.Resolver
	store    FareStore
	cache    FareCache
	searcher FareSearcher
	log      *slog.Logger
}

// NewHandlers constructs Handlers with all required dependencies.
func NewHandlers(resolver *location.Resolver, store FareStore, cache FareCache, searcher FareSearcher, log *slog.Logger) *Handlers {
	return &Handlers{
		resolver: resolver,
		store:    store,
		cache:    cache,
		searcher: searcher,
		log:      log,
	}
}

// writeJSON encodes v as JSON and writes it with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// locationInfo is a resolved endpoint as rendered in responses.
type locationInfo struct {
	Code        string `json:"code"`
	DisplayName string `json:"display_name"`
}

func (h *Handlers) describe(code string) locationInfo {
	return locationInfo{Code: code, DisplayName: h.resolver.ResolveDisplayName(code)}
}

// ListLocations handles GET /api/v1/locations.
// domestic=true or domestic=false narrows the list.
func (h *Handlers) ListLocations(w http.ResponseWriter, r *http.Request) {
	entries := h.resolver.Registry().Entries()

	if raw := r.URL.Query().Get("domestic"); raw != "" {
		want, err := strconv.ParseBool(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "domestic must be true or false")
			return
		}
		filtered := entries[:0]
		for _, e := range entries {
			if e.Domestic == want {
				filtered = append(filtered, e)
			}
		}
		entries = filtered
	}

	writeJSON(w, http.StatusOK, map[string]any{"locations": entries, "count": len(entries)})
}

type resolveResponse struct {
	Input       string          `json:"input"`
	Code        string          `json:"code"`
	DisplayName string          `json:"display_name"`
	Status      location.Status `json:"status"`
	Registered  bool            `json:"registered"`
}

// ResolveLocation handles GET /api/v1/locations/resolve?q=.
func (h *Handlers) ResolveLocation(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if strings.TrimSpace(q) == "" {
		writeError(w, http.StatusBadRequest, "query parameter q is required")
		return
	}

	res := h.resolver.Resolve(q)
	_, registered := h.resolver.Registry().Lookup(res.Code)

	writeJSON(w, http.StatusOK, resolveResponse{
		Input:       res.Input,
		Code:        res.Code,
		DisplayName: h.resolver.ResolveDisplayName(res.Code),
		Status:      res.Status,
		Registered:  registered,
	})
}

type classifyResponse struct {
	OriginCode      string             `json:"origin_code"`
	DestinationCode string             `json:"destination_code"`
	RouteType       location.RouteType `json:"route_type"`
}

// ClassifyRoute handles GET /api/v1/routes/classify?origin=&destination=.
func (h *Handlers) ClassifyRoute(w http.ResponseWriter, r *http.Request) {
	origin, destination, ok := routeParams(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, classifyResponse{
		OriginCode:      h.resolver.ResolveCode(origin),
		DestinationCode: h.resolver.ResolveCode(destination),
		RouteType:       h.resolver.ClassifyRoute(origin, destination),
	})
}

// routeParams reads the origin and destination query parameters, writing a
// 400 and returning ok=false when either is blank.
func routeParams(w http.ResponseWriter, r *http.Request) (origin, destination string, ok bool) {
	origin = r.URL.Query().Get("origin")
	destination = r.URL.Query().Get("destination")
	if strings.TrimSpace(origin) == "" || strings.TrimSpace(destination) == "" {
		writeError(w, http.StatusBadRequest, "query parameters origin and destination are required")
		return "", "", false
	}
	return origin, destination, true
}

// HealthHandlerFunc returns an http.HandlerFunc that checks db and redis connectivity.
// It answers 200 when both respond and 503 otherwise.
func HealthHandlerFunc(db, redis Pinger, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
		defer cancel()

		checks := map[string]string{"db": "ok", "redis": "ok"}
		status, overall := http.StatusOK, "ok"

		probe := func(name string, p Pinger) {
			if err := p.Ping(ctx); err != nil {
				log.Error("health check: ping failed", "component", name, "err", err)
				checks[name] = "error"
				status, overall = http.StatusServiceUnavailable, "degraded"
			}
		}
		probe("db", db)
		probe("redis", redis)

		checks["status"] = overall
		writeJSON(w, status, checks)
	}
}
