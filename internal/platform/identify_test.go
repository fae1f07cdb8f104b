package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sells-group/dossier-cli/internal/model"
)

func TestID(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "truecaller", ID(&model.Platform{PlatformName: "TrueCaller"}))
	assert.Equal(t, "telegram", ID(&model.Platform{Module: "Telegram", Source: "x"}))
	assert.Equal(t, "data_breach", ID(&model.Platform{Source: "data_breach"}))
	assert.Empty(t, ID(&model.Platform{}))
	assert.Empty(t, ID(nil))
}

func TestIs(t *testing.T) {
	t.Parallel()

	rules := DefaultRules()

	cases := []struct {
		id   string
		cat  Category
		want bool
	}{
		{"whatsapp", CategoryWhatsApp, true},
		{"whats app", CategoryWhatsApp, true},
		{"telegram_complete", CategoryTelegram, true},
		{"truecaller", CategoryStrictName, true},
		{"phone_lookup_3008", CategoryStrictName, true},
		{"microsoft_phone", CategoryMicrosoft, true},
		{"ipqualityscore", CategoryIPReputation, true},
		{"twitter", CategorySocialMedia, true},
		{"haveibeenpwned", CategoryBreach, true},
		{"github", CategorySocialMedia, false},
		{"twitter", CategoryBreach, false},
	}
	for _, tc := range cases {
		p := &model.Platform{PlatformName: tc.id}
		assert.Equal(t, tc.want, rules.Is(p, tc.cat), "Is(%q, %s)", tc.id, tc.cat)
	}
}

func TestIsPhoneLookup(t *testing.T) {
	t.Parallel()

	rules := DefaultRules()
	assert.True(t, rules.IsPhoneLookup(&model.Platform{Source: "phone_lookup"}))
	assert.True(t, rules.IsPhoneLookup(&model.Platform{Module: "melissa_extended"}))
	assert.False(t, rules.IsPhoneLookup(&model.Platform{Source: "twitter"}))
}
