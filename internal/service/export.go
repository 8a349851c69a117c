package service

import (
	"context"
	"fmt"

	"github.com/visitdk/attractions-api/internal/domain"
	"github.com/visitdk/attractions-api/internal/repo"
)

// ExportService assembles a flat export of the whole attraction collection.
type ExportService struct {
	attractions repo.AttractionRepo
}

// NewExportService constructs an ExportService backed by the provided repo.
func NewExportService(attractions repo.AttractionRepo) *ExportService {
	return &ExportService{attractions: attractions}
}

// Export returns one ExportRow per attraction, in collection order.
func (s *ExportService) Export(ctx context.Context) ([]domain.ExportRow, error) {
	attractions, err := s.attractions.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Export: %w", err)
	}

	rows := make([]domain.ExportRow, 0, len(attractions))
	for _, a := range attractions {
		rows = append(rows, domain.ExportRow{
			Name:        a.Name,
			City:        a.City,
			Description: a.Description,
			Tags:        append([]string(nil), a.Tags...),
		})
	}
	return rows, nil
}
