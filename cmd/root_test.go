package main

import (
	"bytes"
	"context"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/dossier-cli/internal/config"
	"github.com/sells-group/dossier-cli/internal/dossier"
	"github.com/sells-group/dossier-cli/internal/model"
	"github.com/sells-group/dossier-cli/internal/platform"
)

func TestInitRules_Default(t *testing.T) {
	cfg = &config.Config{}

	rules, err := initRules()
	require.NoError(t, err)
	assert.Equal(t, platform.DefaultRules().Categories, rules.Categories)
}

func TestInitRules_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte("categories:\n  microsoft:\n    - contoso\n"), 0644))

	cfg = &config.Config{}
	cfg.Rules.Path = path

	rules, err := initRules()
	require.NoError(t, err)
	assert.Equal(t, []string{"contoso"}, rules.Categories[platform.CategoryMicrosoft])
	// Unset sections keep defaults.
	assert.NotEmpty(t, rules.TelegramNegativeMessages)
}

func TestInitStore_SQLite(t *testing.T) {
	cfg = &config.Config{}
	cfg.Store.Driver = "sqlite"
	cfg.Store.SQLitePath = filepath.Join(t.TempDir(), "test.db")

	st, err := initStore(context.Background())
	require.NoError(t, err)
	defer st.Close()
	require.NoError(t, st.Migrate(context.Background()))
}

func TestInitStore_UnknownDriver(t *testing.T) {
	cfg = &config.Config{}
	cfg.Store.Driver = "oracle"

	_, err := initStore(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported store driver")
}

func TestHandleReconcile(t *testing.T) {
	assembler := dossier.New(nil)
	results := []model.RawResult{
		{Success: true, Source: "data_breach", Data: []any{
			map[string]any{"database_name": "MegaBreach"},
		}},
	}

	rec := httptest.NewRecorder()
	handleReconcile(rec, assembler, results)

	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), "MegaBreach")
	assert.Contains(t, rec.Body.String(), "investigation_id")
}

func TestFormatInvestigationsList(t *testing.T) {
	var buf bytes.Buffer
	formatInvestigationsList(&buf, []model.Investigation{
		{ID: "inv-1", Query: "+14155550100", CreatedAt: time.Date(2026, 2, 3, 10, 30, 0, 0, time.UTC)},
	})

	out := buf.String()
	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "inv-1")
	assert.Contains(t, out, "2026-02-03 10:30")
}
