package adapter

import (
	"github.com/sells-group/dossier-cli/internal/model"
	"github.com/sells-group/dossier-cli/internal/normalize"
)

// adaptBreachDatabase flattens a breach-database payload: the provider
// returns one array entry per breached database, and each hit becomes its own
// found card named after the database.
func adaptBreachDatabase(result model.RawResult) []*model.Platform {
	arr, ok := normalize.Value(result.Data).([]any)
	if !ok {
		return nil
	}

	var platforms []*model.Platform
	for _, item := range arr {
		hit, ok := item.(map[string]any)
		if !ok {
			continue
		}

		name := firstString(hit, "database_name", "platform_name", "module")
		if name == "" {
			name = "Unknown Database"
		}

		p := newPlatform(hit, "data_breach")
		p.Module = name
		p.PlatformName = name
		p.Status = model.StatusFound
		platforms = append(platforms, p)
	}
	return platforms
}

func firstString(obj map[string]any, keys ...string) string {
	for _, k := range keys {
		if s, ok := obj[k].(string); ok && s != "" {
			return s
		}
	}
	return ""
}
