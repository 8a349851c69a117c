package domain

// ExportRow is a single row in the full-data export: a flat view of one
// attraction. Tags keeps the attraction's tag order.
// Callers that need a joined string (e.g. CSV) should join with "|".
type ExportRow struct {
	Name        string   `json:"name"`
	City        string   `json:"city"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}
