package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/neexbeast/farescout/internal/fare"
	"github.com/neexbeast/farescout/internal/location"
	"github.com/neexbeast/farescout/internal/source"
	"github.com/neexbeast/farescout/internal/storage"
)

const (
	dateLayout   = "2006-01-02"
	maxBodyBytes = 1 << 20
	maxListLimit = 100
)

type rankRequest struct {
	Offers []fare.Offer `json:"offers"`
}

// RankFares handles POST /api/v1/fares/rank.
func (h *Handlers) RankFares(w http.ResponseWriter, r *http.Request) {
	var req rankRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := fare.ValidateAll(req.Offers); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, fare.NewResult(req.Offers))
}

type searchResponse struct {
	SearchID    *uuid.UUID         `json:"search_id,omitempty"`
	Origin      locationInfo       `json:"origin"`
	Destination locationInfo       `json:"destination"`
	Date        string             `json:"date"`
	RouteType   location.RouteType `json:"route_type"`
	Offers      []fare.Offer       `json:"offers"`
	Best        *fare.Offer        `json:"best,omitempty"`
	Cached      bool               `json:"cached"`
}

// SearchFares handles GET /api/v1/fares/search?origin=&destination=&date=.
// Cache hit → return. Miss → query sources, rank, persist, cache.
// refresh=true drops the cached entry first.
func (h *Handlers) SearchFares(w http.ResponseWriter, r *http.Request) {
	origin, destination, ok := routeParams(w, r)
	if !ok {
		return
	}
	date := strings.TrimSpace(r.URL.Query().Get("date"))
	if _, err := time.Parse(dateLayout, date); err != nil {
		writeError(w, http.StatusBadRequest, "query parameter date must be yyyy-mm-dd")
		return
	}
	refresh, _ := strconv.ParseBool(r.URL.Query().Get("refresh"))

	ctx := r.Context()
	oc := h.resolver.ResolveCode(origin)
	dc := h.resolver.ResolveCode(destination)
	resp := searchResponse{
		Origin:      h.describe(oc),
		Destination: h.describe(dc),
		Date:        date,
		RouteType:   h.resolver.ClassifyRoute(origin, destination),
	}

	if refresh {
		if err := h.cache.Delete(ctx, oc, dc, date); err != nil {
			h.log.Warn("cache delete failed", "origin", oc, "destination", dc, "err", err)
		}
	} else {
		cached, err := h.cache.Get(ctx, oc, dc, date)
		if err != nil {
			h.log.Error("cache get failed", "origin", oc, "destination", dc, "err", err)
		}
		if cached != nil {
			resp.Offers, resp.Best, resp.Cached = cached.Offers, cached.Best, true
			if resp.Offers == nil {
				resp.Offers = []fare.Offer{}
			}
			writeJSON(w, http.StatusOK, resp)
			return
		}
	}

	offers, err := h.searcher.Search(ctx, source.Query{Origin: oc, Destination: dc, Date: date})
	if err != nil {
		h.log.Error("fare search failed", "origin", oc, "destination", dc, "err", err)
		writeError(w, http.StatusInternalServerError, "failed to fetch fares")
		return
	}

	result := fare.NewResult(offers)
	resp.Offers, resp.Best = result.Offers, result.Best

	search := &storage.Search{
		OriginCode:      oc,
		DestinationCode: dc,
		Date:            date,
		RouteType:       resp.RouteType,
		Result:          result,
	}
	if err := h.store.SaveSearch(ctx, search); err != nil {
		h.log.Warn("saving search failed", "origin", oc, "destination", dc, "err", err)
	} else {
		resp.SearchID = &search.ID
	}

	if err := h.cache.Set(ctx, oc, dc, date, &result); err != nil {
		h.log.Warn("cache set failed after search", "origin", oc, "destination", dc, "err", err)
	}

	writeJSON(w, http.StatusOK, resp)
}

// GetSearch handles GET /api/v1/fares/searches/{id}.
func (h *Handlers) GetSearch(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	s, err := h.store.GetSearch(r.Context(), id)
	if err != nil {
		h.log.Error("db get search failed", "id", id, "err", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if s == nil {
		writeError(w, http.StatusNotFound, "search not found")
		return
	}

	writeJSON(w, http.StatusOK, s)
}

// ListSearches handles GET /api/v1/fares/searches?origin=&destination=&limit=.
// Endpoints are resolved the same way as for a search.
func (h *Handlers) ListSearches(w http.ResponseWriter, r *http.Request) {
	origin, destination, ok := routeParams(w, r)
	if !ok {
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxListLimit {
			writeError(w, http.StatusBadRequest, "limit must be between 1 and 100")
			return
		}
		limit = n
	}

	oc, dc := h.resolver.ResolveCode(origin), h.resolver.ResolveCode(destination)
	searches, err := h.store.ListSearchesByRoute(r.Context(), oc, dc, limit)
	if err != nil {
		h.log.Error("db list searches failed", "origin", oc, "destination", dc, "err", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if searches == nil {
		searches = []*storage.Search{}
	}

	writeJSON(w, http.StatusOK, map[string]any{"searches": searches})
}

// idParam parses the {id} path parameter, writing a 400 on failure.
func idParam(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "id must be a uuid")
		return uuid.Nil, false
	}
	return id, true
}

// decodeBody decodes a size-limited JSON body into dst, rejecting unknown fields.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return err
	}
	if dec.More() {
		return errors.New("trailing data after JSON body")
	}
	return nil
}
