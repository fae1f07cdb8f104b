package adapter

import (
	"sort"
	"strings"

	"github.com/sells-group/dossier-cli/internal/model"
	"github.com/sells-group/dossier-cli/internal/normalize"
)

// adaptSocialScanner expands the aggregated social-presence payload, a map of
// platform name to {live, note}. Only entries positively marked live become
// cards; the rest are dropped silently rather than shown as not_found, since
// the scanner's negative results are too noisy to display. WhatsApp entries
// are skipped here because the messaging-probe adapter owns that platform.
func adaptSocialScanner(result model.RawResult) []*model.Platform {
	data, ok := normalize.Object(result.Data)
	if !ok {
		return nil
	}

	names := make([]string, 0, len(data))
	for name := range data {
		names = append(names, name)
	}
	sort.Strings(names)

	var platforms []*model.Platform
	for _, name := range names {
		lowered := strings.ToLower(name)
		if lowered == "whatsapp" || lowered == "whats app" {
			continue
		}

		info, ok := data[name].(map[string]any)
		if !ok {
			continue
		}
		if live, _ := info["live"].(bool); !live {
			continue
		}

		note, _ := info["note"].(string)
		platforms = append(platforms, &model.Platform{
			Module:       name,
			PlatformName: name,
			Source:       "social_media_scanner",
			Status:       model.StatusFound,
			Fields: map[string]any{
				"live":           true,
				"note":           note,
				"platform_type":  "social_media",
				"account_exists": true,
			},
		})
	}
	return platforms
}
