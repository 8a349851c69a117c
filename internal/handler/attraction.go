package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/visitdk/attractions-api/internal/domain"
)

// pathName extracts the {name} URL parameter, percent-decoded so names with
// spaces ("Egeskov Slot") round-trip through the URL path.
func pathName(r *http.Request) string {
	raw := chi.URLParam(r, "name")
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}
	return raw
}

// listAttractions handles GET /attractions.
func (s *Server) listAttractions(w http.ResponseWriter, r *http.Request) {
	attractions, err := s.attractions.List(r.Context())
	if err != nil {
		respondInternal(w, err)
		return
	}
	respondJSON(w, http.StatusOK, attractions)
}

// getAttraction handles GET /attractions/{name}.
func (s *Server) getAttraction(w http.ResponseWriter, r *http.Request) {
	attraction, err := s.attractions.GetByName(r.Context(), pathName(r))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondJSON(w, http.StatusNotFound, notFoundBody("attraction not found"))
			return
		}
		respondInternal(w, err)
		return
	}
	respondJSON(w, http.StatusOK, attraction)
}

// createAttraction handles POST /attractions.
// Content is never rejected: duplicate names and empty fields are accepted
// as-is. Only an unparseable body is an error.
func (s *Server) createAttraction(w http.ResponseWriter, r *http.Request) {
	var attraction domain.Attraction
	if err := json.NewDecoder(r.Body).Decode(&attraction); err != nil {
		respondJSON(w, http.StatusBadRequest, requestBody("invalid request body"))
		return
	}

	added, err := s.attractions.Add(r.Context(), attraction)
	if err != nil {
		respondInternal(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, added)
}

// updateAttraction handles PUT /attractions/{name}.
// The path name identifies the record; a diverging name in the body is
// overwritten by it, so the path stays authoritative.
func (s *Server) updateAttraction(w http.ResponseWriter, r *http.Request) {
	var attraction domain.Attraction
	if err := json.NewDecoder(r.Body).Decode(&attraction); err != nil {
		respondJSON(w, http.StatusBadRequest, requestBody("invalid request body"))
		return
	}
	attraction.Name = pathName(r)

	if _, err := s.attractions.Update(r.Context(), attraction); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondJSON(w, http.StatusNotFound, notFoundBody("attraction not found"))
			return
		}
		respondInternal(w, err)
		return
	}
	respondJSON(w, http.StatusOK, attraction)
}

// deleteAttraction handles DELETE /attractions/{name}.
// The store reports a no-op delete as false; this layer translates that to
// 404, the protocol's not-found convention.
func (s *Server) deleteAttraction(w http.ResponseWriter, r *http.Request) {
	removed, err := s.attractions.Delete(r.Context(), pathName(r))
	if err != nil {
		respondInternal(w, err)
		return
	}
	if !removed {
		respondJSON(w, http.StatusNotFound, notFoundBody("attraction not found"))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// listTags handles GET /attractions/tags.
func (s *Server) listTags(w http.ResponseWriter, r *http.Request) {
	tags, err := s.attractions.Tags(r.Context())
	if err != nil {
		respondInternal(w, err)
		return
	}
	respondJSON(w, http.StatusOK, tags)
}

// listCities handles GET /attractions/cities.
func (s *Server) listCities(w http.ResponseWriter, r *http.Request) {
	cities, err := s.attractions.Cities(r.Context())
	if err != nil {
		respondInternal(w, err)
		return
	}
	respondJSON(w, http.StatusOK, cities)
}
