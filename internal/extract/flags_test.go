package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sells-group/dossier-cli/internal/model"
)

func TestHasTrueFlag(t *testing.T) {
	t.Parallel()

	p := &model.Platform{
		Fields: map[string]any{"exists": "yes"},
		Data:   map[string]any{"registered": false},
	}
	assert.True(t, HasTrueFlag(p, "exists"))
	assert.False(t, HasTrueFlag(p, "registered"))
	assert.False(t, HasTrueFlag(p, "missing"))
}

func TestHasFalseFlag(t *testing.T) {
	t.Parallel()

	p := &model.Platform{
		Data: map[string]any{"account_exists": "not_found"},
	}
	assert.True(t, HasFalseFlag(p, "account_exists"))
	assert.False(t, HasFalseFlag(p, "exists"))
}

func TestFlags_SkipUnknownValues(t *testing.T) {
	t.Parallel()

	// "pending" is in neither token set: it must count for neither polarity.
	p := &model.Platform{Data: map[string]any{"exists": "pending"}}
	assert.False(t, HasTrueFlag(p, "exists"))
	assert.False(t, HasFalseFlag(p, "exists"))
}

func TestFlags_SpecFormatCandidates(t *testing.T) {
	t.Parallel()

	p := &model.Platform{
		SpecFormat: []map[string]any{
			{"irrelevant": "x"},
			{"live": float64(1)},
		},
	}
	assert.True(t, HasTrueFlag(p, "live"))
}

func TestHasEvidenceOfAccount(t *testing.T) {
	t.Parallel()

	assert.True(t, HasEvidenceOfAccount(&model.Platform{
		Data: map[string]any{"profile_url": "https://example.com/u/jdoe"},
	}))
	assert.True(t, HasEvidenceOfAccount(&model.Platform{
		Data: map[string]any{"email": "j@example.com"},
	}, "email"))
	assert.False(t, HasEvidenceOfAccount(&model.Platform{
		Data: map[string]any{"email": "j@example.com"},
	}))
	assert.False(t, HasEvidenceOfAccount(&model.Platform{
		Data: map[string]any{"username": "   "},
	}))
	assert.False(t, HasEvidenceOfAccount(&model.Platform{
		Data: map[string]any{"id": float64(12345)},
	}))
}

func TestMessageIncludes(t *testing.T) {
	t.Parallel()

	p := &model.Platform{
		Data: map[string]any{"message": "No associated Telegram account was found"},
	}
	assert.True(t, MessageIncludes(p, "no associated telegram account"))
	assert.True(t, MessageIncludes(p, "nothing", "telegram account"))
	assert.False(t, MessageIncludes(p, "quota exceeded"))

	errP := &model.Platform{Fields: map[string]any{"error": "Quota Exceeded"}}
	assert.True(t, MessageIncludes(errP, "quota exceeded"))
}
