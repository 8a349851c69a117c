// Package handler implements the HTTP layer of the Attractions API.
// All handlers are methods on Server. Methods are split into
// domain-specific files (health.go, attraction.go, export.go) but all share
// the same Server struct so they can access its dependencies.
package handler

import (
	"context"

	"github.com/go-chi/chi/v5"

	"github.com/visitdk/attractions-api/internal/domain"
)

// AttractionServicer defines the business operations the attraction handlers
// depend on. Defining the interface here (in the consumer package) follows
// the Go convention: "accept interfaces, return concrete types". It lets
// handler tests inject a mock without touching the service layer.
type AttractionServicer interface {
	List(ctx context.Context) ([]domain.Attraction, error)
	GetByName(ctx context.Context, name string) (domain.Attraction, error)
	Tags(ctx context.Context) ([]string, error)
	Cities(ctx context.Context) ([]string, error)
	Add(ctx context.Context, a domain.Attraction) (domain.Attraction, error)
	Update(ctx context.Context, updated domain.Attraction) (domain.Attraction, error)
	Delete(ctx context.Context, name string) (bool, error)
}

// ExportServicer defines the export operation the export handler depends on.
type ExportServicer interface {
	Export(ctx context.Context) ([]domain.ExportRow, error)
}

// Server holds the dependencies for all API endpoints.
// Wire it in main.go via RegisterRoutes.
type Server struct {
	attractions AttractionServicer
	export      ExportServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(attractions AttractionServicer, export ExportServicer) *Server {
	return &Server{attractions: attractions, export: export}
}

// RegisterRoutes mounts every endpoint on the given router.
// Static segments (tags, cities, export) are registered alongside the
// {name} wildcard; chi matches static routes first.
func (s *Server) RegisterRoutes(r chi.Router) {
	r.Get("/healthz", s.getHealth)

	r.Route("/attractions", func(r chi.Router) {
		r.Get("/", s.listAttractions)
		r.Post("/", s.createAttraction)
		r.Get("/tags", s.listTags)
		r.Get("/cities", s.listCities)
		r.Get("/export", s.getExport)
		r.Get("/{name}", s.getAttraction)
		r.Put("/{name}", s.updateAttraction)
		r.Delete("/{name}", s.deleteAttraction)
	})
}
