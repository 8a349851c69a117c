// Package domain defines the core types shared by all layers of the
// Attractions API. It has no dependencies on other internal packages.
package domain

// Attraction represents one tourist attraction.
// Identity is determined by Name — lookups, updates, and deletes all match
// on it exactly (case-sensitive, no trimming). Uniqueness of Name is NOT
// enforced on insert; callers that add duplicates get duplicate records.
type Attraction struct {
	Name        string   `json:"name"`
	City        string   `json:"city"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}
