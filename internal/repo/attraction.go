// Package repo implements data access for the Attractions API.
// The only backing store is an in-memory ordered collection seeded at
// startup; all reads and mutations go through AttractionRepo.
package repo

import (
	"context"
	"fmt"
	"sync"

	"github.com/visitdk/attractions-api/internal/domain"
)

// AttractionRepo defines the storage operations for attractions.
// Name matching is exact and case-sensitive throughout; find and update act
// on the first match, delete removes every match.
type AttractionRepo interface {
	// List returns a snapshot of the whole collection in insertion order.
	// Mutating the returned slice does not affect the store.
	List(ctx context.Context) ([]domain.Attraction, error)

	// FindByName returns the first attraction whose name equals name.
	// Returns domain.ErrNotFound when name is empty or nothing matches.
	FindByName(ctx context.Context, name string) (domain.Attraction, error)

	// Add appends the attraction to the end of the collection and returns it.
	// No duplicate-name check and no field validation is performed.
	Add(ctx context.Context, a domain.Attraction) (domain.Attraction, error)

	// UpdateByName replaces the first attraction whose name equals
	// updated.Name, preserving its position, and returns the replaced record.
	// Returns domain.ErrNotFound when updated.Name is empty or nothing
	// matches; the collection is left unchanged in that case.
	UpdateByName(ctx context.Context, updated domain.Attraction) (domain.Attraction, error)

	// UpdateByIndex replaces the attraction at position index and returns the
	// replaced record. Returns domain.ErrIndexRange when index does not
	// address an existing record. Not exposed through the service layer;
	// retained for callers with positional knowledge.
	UpdateByIndex(ctx context.Context, index int, updated domain.Attraction) (domain.Attraction, error)

	// DeleteByName removes every attraction whose name equals name and
	// reports whether anything was removed. A false return is a no-op
	// outcome, not an error.
	DeleteByName(ctx context.Context, name string) (bool, error)

	// DistinctTags returns every tag across all attractions, de-duplicated,
	// in first-seen order. Empty tag values and nil tag lists are skipped.
	DistinctTags(ctx context.Context) ([]string, error)

	// DistinctCities returns every city across all attractions,
	// de-duplicated, in first-seen order. Empty values are skipped.
	DistinctCities(ctx context.Context) ([]string, error)
}

// memAttractionRepo is the in-memory implementation of AttractionRepo.
// A RWMutex serialises mutations against snapshot reads; the hosting HTTP
// server invokes operations concurrently.
type memAttractionRepo struct {
	mu          sync.RWMutex
	attractions []domain.Attraction
}

// NewAttractionRepo constructs an AttractionRepo seeded with the given
// records. The seed slice is copied, so the caller keeps ownership of it.
func NewAttractionRepo(seed []domain.Attraction) AttractionRepo {
	return &memAttractionRepo{attractions: append([]domain.Attraction(nil), seed...)}
}

// List returns a copy of the collection. Handing out the live slice would
// let callers mutate store state by side channel.
func (r *memAttractionRepo) List(_ context.Context) ([]domain.Attraction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Attraction, len(r.attractions))
	copy(out, r.attractions)
	return out, nil
}

// FindByName scans for the first exact name match.
func (r *memAttractionRepo) FindByName(_ context.Context, name string) (domain.Attraction, error) {
	if name == "" {
		return domain.Attraction{}, fmt.Errorf("repo.AttractionRepo.FindByName: %w", domain.ErrNotFound)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, a := range r.attractions {
		if a.Name == name {
			return a, nil
		}
	}
	return domain.Attraction{}, fmt.Errorf("repo.AttractionRepo.FindByName: %w", domain.ErrNotFound)
}

// Add appends unconditionally. An in-memory append cannot fail, so the error
// return exists only to keep the interface uniform for future backends.
func (r *memAttractionRepo) Add(_ context.Context, a domain.Attraction) (domain.Attraction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.attractions = append(r.attractions, a)
	return a, nil
}

// UpdateByName replaces the first name match in place.
func (r *memAttractionRepo) UpdateByName(_ context.Context, updated domain.Attraction) (domain.Attraction, error) {
	if updated.Name == "" {
		return domain.Attraction{}, fmt.Errorf("repo.AttractionRepo.UpdateByName: %w", domain.ErrNotFound)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.attractions {
		if existing.Name == updated.Name {
			r.attractions[i] = updated
			return existing, nil
		}
	}
	return domain.Attraction{}, fmt.Errorf("repo.AttractionRepo.UpdateByName: %w", domain.ErrNotFound)
}

// UpdateByIndex replaces the record at index. Unlike the by-name operations
// there is no soft fallback: a bad index is a hard failure.
func (r *memAttractionRepo) UpdateByIndex(_ context.Context, index int, updated domain.Attraction) (domain.Attraction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if index < 0 || index >= len(r.attractions) {
		return domain.Attraction{}, fmt.Errorf("repo.AttractionRepo.UpdateByIndex: index %d, length %d: %w",
			index, len(r.attractions), domain.ErrIndexRange)
	}

	previous := r.attractions[index]
	r.attractions[index] = updated
	return previous, nil
}

// DeleteByName removes all matches, compacting in place.
func (r *memAttractionRepo) DeleteByName(_ context.Context, name string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.attractions[:0]
	for _, a := range r.attractions {
		if a.Name != name {
			kept = append(kept, a)
		}
	}
	removed := len(kept) < len(r.attractions)
	r.attractions = kept
	return removed, nil
}

// DistinctTags collects tags in first-seen order.
func (r *memAttractionRepo) DistinctTags(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]struct{})
	tags := []string{}
	for _, a := range r.attractions {
		for _, tag := range a.Tags {
			if tag == "" {
				continue
			}
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			tags = append(tags, tag)
		}
	}
	return tags, nil
}

// DistinctCities collects cities in first-seen order.
func (r *memAttractionRepo) DistinctCities(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]struct{})
	cities := []string{}
	for _, a := range r.attractions {
		if a.City == "" {
			continue
		}
		if _, ok := seen[a.City]; ok {
			continue
		}
		seen[a.City] = struct{}{}
		cities = append(cities, a.City)
	}
	return cities, nil
}
