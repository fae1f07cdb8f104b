package report

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"

	"github.com/sells-group/dossier-cli/internal/model"
)

func sampleDossier() *model.Dossier {
	return &model.Dossier{
		Profile: &model.UnifiedProfile{
			Meta: model.Meta{
				InvestigationID:  "inv-1",
				Query:            "+14155550100",
				DataSourcesCount: 3,
				ConfidenceScore:  0.8,
			},
			PrimaryName: "Jane Roe",
			Names:       []string{"Jane Roe"},
			Phones: []model.Fact[model.Phone]{
				{Key: "14155550100", Payload: model.Phone{Number: "14155550100", Carrier: "Verizon"}, Confidence: 0.9, Sources: []string{"telco_db"}},
			},
			Leaks: []model.Fact[model.LeakSource]{
				{Key: "MegaBreach", Payload: model.LeakSource{Source: "MegaBreach", Count: 2, Emails: []string{"jane@example.com"}}},
			},
		},
		Platforms: model.PlatformBuckets{
			Found: []*model.Platform{
				{PlatformName: "Twitter", Source: "social_media_scanner", Status: model.StatusFound},
			},
			Errors: []*model.Platform{
				{Module: "records_api", Source: "records_api", Status: model.StatusError, Error: "timeout"},
			},
		},
	}
}

func TestWriteXLSX(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "dossier.xlsx")
	require.NoError(t, WriteXLSX(sampleDossier(), path))

	f, err := xlsx.OpenFile(path)
	require.NoError(t, err)

	profile, ok := f.Sheet["Profile"]
	require.True(t, ok)
	assert.Equal(t, "Investigation", profile.Rows[0].Cells[0].String())
	assert.Equal(t, "inv-1", profile.Rows[0].Cells[1].String())

	phones, ok := f.Sheet["Phones"]
	require.True(t, ok)
	require.Len(t, phones.Rows, 2)
	assert.Equal(t, "14155550100", phones.Rows[1].Cells[0].String())

	// Empty categories get no sheet.
	_, ok = f.Sheet["Addresses"]
	assert.False(t, ok)

	platforms, ok := f.Sheet["Platforms"]
	require.True(t, ok)
	require.Len(t, platforms.Rows, 3)
	assert.Equal(t, "Twitter", platforms.Rows[1].Cells[0].String())
	assert.Equal(t, "timeout", platforms.Rows[2].Cells[3].String())
}

func TestWriteXLSX_NilDossier(t *testing.T) {
	t.Parallel()

	err := WriteXLSX(nil, filepath.Join(t.TempDir(), "out.xlsx"))
	assert.Error(t, err)
}
