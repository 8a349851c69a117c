// Package service contains the business layer for the Attractions API.
// Services depend on repo interfaces, not implementations, so the store's
// internals can change without touching external callers.
package service

import (
	"context"

	"github.com/visitdk/attractions-api/internal/domain"
	"github.com/visitdk/attractions-api/internal/repo"
)

// AttractionService is the facade external callers use. Every method is a
// direct pass-through to the store: no input transformation, no added rules.
// Not-found results from the store propagate unchanged.
type AttractionService struct {
	attractions repo.AttractionRepo
}

// NewAttractionService constructs an AttractionService backed by the provided repo.
func NewAttractionService(attractions repo.AttractionRepo) *AttractionService {
	return &AttractionService{attractions: attractions}
}

// List returns all attractions in insertion order.
func (s *AttractionService) List(ctx context.Context) ([]domain.Attraction, error) {
	return s.attractions.List(ctx)
}

// GetByName returns the first attraction matching name, or domain.ErrNotFound.
func (s *AttractionService) GetByName(ctx context.Context, name string) (domain.Attraction, error) {
	return s.attractions.FindByName(ctx, name)
}

// Tags returns the distinct tags across all attractions in first-seen order.
func (s *AttractionService) Tags(ctx context.Context) ([]string, error) {
	return s.attractions.DistinctTags(ctx)
}

// Cities returns the distinct cities across all attractions in first-seen order.
func (s *AttractionService) Cities(ctx context.Context) ([]string, error) {
	return s.attractions.DistinctCities(ctx)
}

// Add appends a new attraction and returns it. Duplicate names are permitted.
func (s *AttractionService) Add(ctx context.Context, a domain.Attraction) (domain.Attraction, error) {
	return s.attractions.Add(ctx, a)
}

// Update replaces the attraction matching updated.Name and returns the
// previous record, or domain.ErrNotFound when nothing matches.
func (s *AttractionService) Update(ctx context.Context, updated domain.Attraction) (domain.Attraction, error) {
	return s.attractions.UpdateByName(ctx, updated)
}

// Delete removes all attractions matching name and reports whether anything
// was removed. A false return is a no-op outcome, not an error.
func (s *AttractionService) Delete(ctx context.Context, name string) (bool, error) {
	return s.attractions.DeleteByName(ctx, name)
}
