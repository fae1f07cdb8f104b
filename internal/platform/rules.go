// Package platform classifies provider result cards and decides whether each
// one carries enough signal to be shown to the analyst.
package platform

import (
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// Category tags a platform for downstream display policy.
type Category string

const (
	CategoryWhatsApp     Category = "whatsapp"
	CategoryTelegram     Category = "telegram"
	CategoryStrictName   Category = "strict_name"
	CategoryMicrosoft    Category = "microsoft"
	CategoryIPReputation Category = "ip_reputation"
	CategorySocialMedia  Category = "social_media"
	CategoryBreach       Category = "breach"
)

// Rules holds the pattern lists driving categorization and the message
// substrings treated as negative lookup results. Deployments can override
// them from a YAML file; unset sections keep the defaults.
type Rules struct {
	Categories               map[Category][]string `yaml:"categories"`
	TelegramNegativeMessages []string              `yaml:"telegram_negative_messages"`
}

// DefaultRules returns the built-in pattern lists.
func DefaultRules() *Rules {
	return &Rules{
		Categories: map[Category][]string{
			CategoryWhatsApp:     {"whatsapp", "whats app"},
			CategoryTelegram:     {"telegram", "telegram_complete", "t.me"},
			CategoryStrictName:   {"truecaller", "callapp", "melissa", "phone_lookup", "phone_lookup_3008", "mei"},
			CategoryMicrosoft:    {"microsoft", "microsoft_phone"},
			CategoryIPReputation: {"ipqualityscore"},
			CategorySocialMedia:  {"facebook", "instagram", "twitter", "linkedin", "tiktok"},
			CategoryBreach:       {"data_breach", "hibp", "haveibeenpwned"},
		},
		TelegramNegativeMessages: []string{
			"未找到关联的 telegram 账户",
			"未找到关联的telegram账户",
			"未找到 telegram 账户",
			"no associated telegram account",
			"no telegram account",
			"not found",
			"no account",
		},
	}
}

// LoadRules reads rule overrides from a YAML file and merges them over the
// defaults. Sections absent from the file keep their default values.
func LoadRules(path string) (*Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "platform: read rules %s", path)
	}

	var overrides Rules
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, eris.Wrap(err, "platform: parse rules")
	}

	rules := DefaultRules()
	for cat, patterns := range overrides.Categories {
		if len(patterns) > 0 {
			rules.Categories[cat] = patterns
		}
	}
	if len(overrides.TelegramNegativeMessages) > 0 {
		rules.TelegramNegativeMessages = overrides.TelegramNegativeMessages
	}
	return rules, nil
}
