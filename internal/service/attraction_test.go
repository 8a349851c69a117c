package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/visitdk/attractions-api/internal/domain"
	"github.com/visitdk/attractions-api/internal/repo"
	"github.com/visitdk/attractions-api/internal/service"
)

// ---- mock AttractionRepo ---------------------------------------------------

// mockAttractionRepo is a test double for repo.AttractionRepo.
// Set only the method fields your test needs.
type mockAttractionRepo struct {
	list           func(ctx context.Context) ([]domain.Attraction, error)
	findByName     func(ctx context.Context, name string) (domain.Attraction, error)
	add            func(ctx context.Context, a domain.Attraction) (domain.Attraction, error)
	updateByName   func(ctx context.Context, updated domain.Attraction) (domain.Attraction, error)
	updateByIndex  func(ctx context.Context, index int, updated domain.Attraction) (domain.Attraction, error)
	deleteByName   func(ctx context.Context, name string) (bool, error)
	distinctTags   func(ctx context.Context) ([]string, error)
	distinctCities func(ctx context.Context) ([]string, error)
}

func (m *mockAttractionRepo) List(ctx context.Context) ([]domain.Attraction, error) {
	return m.list(ctx)
}
func (m *mockAttractionRepo) FindByName(ctx context.Context, name string) (domain.Attraction, error) {
	return m.findByName(ctx, name)
}
func (m *mockAttractionRepo) Add(ctx context.Context, a domain.Attraction) (domain.Attraction, error) {
	return m.add(ctx, a)
}
func (m *mockAttractionRepo) UpdateByName(ctx context.Context, updated domain.Attraction) (domain.Attraction, error) {
	return m.updateByName(ctx, updated)
}
func (m *mockAttractionRepo) UpdateByIndex(ctx context.Context, index int, updated domain.Attraction) (domain.Attraction, error) {
	return m.updateByIndex(ctx, index, updated)
}
func (m *mockAttractionRepo) DeleteByName(ctx context.Context, name string) (bool, error) {
	return m.deleteByName(ctx, name)
}
func (m *mockAttractionRepo) DistinctTags(ctx context.Context) ([]string, error) {
	return m.distinctTags(ctx)
}
func (m *mockAttractionRepo) DistinctCities(ctx context.Context) ([]string, error) {
	return m.distinctCities(ctx)
}

// compile-time check
var _ repo.AttractionRepo = (*mockAttractionRepo)(nil)

func fixture() domain.Attraction {
	return domain.Attraction{
		Name:        "Tivoli",
		City:        "København",
		Description: "Forlystelsespark i hjertet af København.",
		Tags:        []string{"forlystelser", "familie", "kultur"},
	}
}

// ---- pass-through behaviour ------------------------------------------------

func TestAttractionService_List_Forwards(t *testing.T) {
	want := []domain.Attraction{fixture()}
	svc := service.NewAttractionService(&mockAttractionRepo{
		list: func(_ context.Context) ([]domain.Attraction, error) { return want, nil },
	})

	got, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestAttractionService_GetByName_Forwards(t *testing.T) {
	var capturedName string
	svc := service.NewAttractionService(&mockAttractionRepo{
		findByName: func(_ context.Context, name string) (domain.Attraction, error) {
			capturedName = name
			return fixture(), nil
		},
	})

	got, err := svc.GetByName(context.Background(), "Tivoli")

	require.NoError(t, err)
	assert.Equal(t, "Tivoli", capturedName)
	assert.Equal(t, fixture(), got)
}

// Not-found from the store must propagate unchanged — the facade adds no
// translation of its own.
func TestAttractionService_GetByName_NotFoundPropagates(t *testing.T) {
	svc := service.NewAttractionService(&mockAttractionRepo{
		findByName: func(_ context.Context, _ string) (domain.Attraction, error) {
			return domain.Attraction{}, domain.ErrNotFound
		},
	})

	_, err := svc.GetByName(context.Background(), "Atlantis")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAttractionService_Tags_Forwards(t *testing.T) {
	svc := service.NewAttractionService(&mockAttractionRepo{
		distinctTags: func(_ context.Context) ([]string, error) { return []string{"havn", "slot"}, nil },
	})

	got, err := svc.Tags(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"havn", "slot"}, got)
}

func TestAttractionService_Cities_Forwards(t *testing.T) {
	svc := service.NewAttractionService(&mockAttractionRepo{
		distinctCities: func(_ context.Context) ([]string, error) { return []string{"Odense"}, nil },
	})

	got, err := svc.Cities(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"Odense"}, got)
}

func TestAttractionService_Add_ForwardsUnmodified(t *testing.T) {
	var captured domain.Attraction
	svc := service.NewAttractionService(&mockAttractionRepo{
		add: func(_ context.Context, a domain.Attraction) (domain.Attraction, error) {
			captured = a
			return a, nil
		},
	})

	in := domain.Attraction{Name: "Test", City: "X", Description: "d", Tags: []string{"a"}}
	got, err := svc.Add(context.Background(), in)

	require.NoError(t, err)
	assert.Equal(t, in, captured)
	assert.Equal(t, in, got)
}

func TestAttractionService_Update_ReturnsPrevious(t *testing.T) {
	previous := fixture()
	svc := service.NewAttractionService(&mockAttractionRepo{
		updateByName: func(_ context.Context, _ domain.Attraction) (domain.Attraction, error) {
			return previous, nil
		},
	})

	got, err := svc.Update(context.Background(), domain.Attraction{Name: "Tivoli", Description: "Updated"})

	require.NoError(t, err)
	assert.Equal(t, previous, got)
}

func TestAttractionService_Delete_ForwardsBoolean(t *testing.T) {
	svc := service.NewAttractionService(&mockAttractionRepo{
		deleteByName: func(_ context.Context, name string) (bool, error) {
			return name == "Tivoli", nil
		},
	})

	removed, err := svc.Delete(context.Background(), "Tivoli")
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = svc.Delete(context.Background(), "Atlantis")
	require.NoError(t, err)
	assert.False(t, removed)
}
