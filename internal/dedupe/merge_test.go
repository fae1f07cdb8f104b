package dedupe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/dossier-cli/internal/model"
)

func TestMerge_CombinesByKey(t *testing.T) {
	t.Parallel()

	entries := []model.Phone{
		{Number: "+1 415-555-0100", Confidence: 0.6, Sources: []string{"A"}},
		{Number: "14155550100", Confidence: 0.9, Sources: []string{"B"}},
	}

	facts := Phones(entries)
	require.Len(t, facts, 1)
	assert.Equal(t, "14155550100", facts[0].Key)
	assert.InDelta(t, 0.9, facts[0].Confidence, 1e-9)
	assert.Equal(t, []string{"A", "B"}, facts[0].Sources)
	// Payload comes from the higher-confidence contributor.
	assert.Equal(t, "14155550100", facts[0].Payload.Number)
}

func TestMerge_ConfidenceIsMaxOfContributors(t *testing.T) {
	t.Parallel()

	entries := []model.Phone{
		{Number: "15550001111", Confidence: 0.8, Sources: []string{"A"}},
		{Number: "15550001111", Confidence: 0.3, Sources: []string{"B"}},
		{Number: "15550001111", Confidence: 0.5, Sources: []string{"C"}},
	}

	facts := Phones(entries)
	require.Len(t, facts, 1)
	assert.InDelta(t, 0.8, facts[0].Confidence, 1e-9)
	assert.Equal(t, []string{"A", "B", "C"}, facts[0].Sources)
}

func TestMerge_DropsEmptyKeys(t *testing.T) {
	t.Parallel()

	entries := []model.Phone{
		{Number: "no digits here", Confidence: 0.9},
		{Number: "15550001111", Confidence: 0.5},
	}
	facts := Phones(entries)
	require.Len(t, facts, 1)
	assert.Equal(t, "15550001111", facts[0].Key)
}

func TestMerge_SortsDescendingStably(t *testing.T) {
	t.Parallel()

	entries := []model.Email{
		{Address: "low@example.com", Confidence: 0.2},
		{Address: "first@example.com", Confidence: 0.5},
		{Address: "second@example.com", Confidence: 0.5},
		{Address: "high@example.com", Confidence: 0.9},
	}

	facts := Emails(entries)
	require.Len(t, facts, 4)
	assert.Equal(t, "high@example.com", facts[0].Key)
	// Equal confidence keeps first-seen order.
	assert.Equal(t, "first@example.com", facts[1].Key)
	assert.Equal(t, "second@example.com", facts[2].Key)
	assert.Equal(t, "low@example.com", facts[3].Key)
}

func TestMerge_TiePayloadKeepsFirstSeen(t *testing.T) {
	t.Parallel()

	entries := []model.Email{
		{Address: "Jane@Example.com", Type: "personal", Confidence: 0.7, Sources: []string{"A"}},
		{Address: "jane@example.com", Type: "work", Confidence: 0.7, Sources: []string{"B"}},
	}

	facts := Emails(entries)
	require.Len(t, facts, 1)
	assert.Equal(t, "personal", facts[0].Payload.Type)
	assert.Equal(t, []string{"A", "B"}, facts[0].Sources)
}

func TestMerge_NoDuplicateKeys(t *testing.T) {
	t.Parallel()

	entries := []model.Address{
		{Street: "123 Main Street", City: "Springfield", PostalCode: "62704", Confidence: 0.4, Sources: []string{"A"}},
		{Street: "123 Main St", City: "SPRINGFIELD", PostalCode: "62704", Confidence: 0.6, Sources: []string{"B"}},
		{Street: "9 Elm Court", City: "Springfield", PostalCode: "62704", Confidence: 0.5, Sources: []string{"A"}},
	}

	facts := Addresses(entries)
	require.Len(t, facts, 2)
	seen := map[string]bool{}
	for _, f := range facts {
		assert.False(t, seen[f.Key], "duplicate key %q", f.Key)
		seen[f.Key] = true
	}
}

func TestStrings(t *testing.T) {
	t.Parallel()

	in := []string{" Jane Doe ", "jane doe", "", "John", "JOHN", "Jo"}
	assert.Equal(t, []string{"Jane Doe", "John", "Jo"}, Strings(in))
	assert.Nil(t, Strings(nil))
}
