package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/dossier-cli/internal/model"
)

func newTestSQLite(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, s.Migrate(context.Background()))
	t.Cleanup(func() { s.Close() })
	return s
}

func testInvestigation() *model.Investigation {
	return &model.Investigation{
		Query: "+14155550100",
		Results: []model.RawResult{
			{Success: true, Source: "whatsapp", Data: map[string]any{"exists": true}},
		},
		Dossier: &model.Dossier{
			Profile: &model.UnifiedProfile{
				Meta:        model.Meta{InvestigationID: "inv-1", DataSourcesCount: 1},
				PrimaryName: "Jane Roe",
			},
		},
	}
}

func TestSQLiteStore_SaveAndGet(t *testing.T) {
	t.Parallel()
	s := newTestSQLite(t)
	ctx := context.Background()

	inv := testInvestigation()
	require.NoError(t, s.SaveInvestigation(ctx, inv))
	assert.NotEmpty(t, inv.ID)
	assert.False(t, inv.CreatedAt.IsZero())

	got, err := s.GetInvestigation(ctx, inv.ID)
	require.NoError(t, err)
	assert.Equal(t, inv.Query, got.Query)
	require.Len(t, got.Results, 1)
	assert.Equal(t, "whatsapp", got.Results[0].Source)
	require.NotNil(t, got.Dossier)
	assert.Equal(t, "Jane Roe", got.Dossier.Profile.PrimaryName)
}

func TestSQLiteStore_GetMissing(t *testing.T) {
	t.Parallel()
	s := newTestSQLite(t)

	_, err := s.GetInvestigation(context.Background(), "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestSQLiteStore_List(t *testing.T) {
	t.Parallel()
	s := newTestSQLite(t)
	ctx := context.Background()

	first := testInvestigation()
	require.NoError(t, s.SaveInvestigation(ctx, first))

	second := testInvestigation()
	second.Query = "+15551230000"
	require.NoError(t, s.SaveInvestigation(ctx, second))

	all, err := s.ListInvestigations(ctx, Filter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
	// Summaries only: payloads stay unloaded.
	assert.Nil(t, all[0].Results)
	assert.Nil(t, all[0].Dossier)

	byQuery, err := s.ListInvestigations(ctx, Filter{Query: "+15551230000"})
	require.NoError(t, err)
	require.Len(t, byQuery, 1)
	assert.Equal(t, second.ID, byQuery[0].ID)

	limited, err := s.ListInvestigations(ctx, Filter{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}
