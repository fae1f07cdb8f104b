package adapter

import (
	"sort"

	"github.com/sells-group/dossier-cli/internal/model"
	"github.com/sells-group/dossier-cli/internal/normalize"
)

// adaptOsintAggregate expands the per-platform map the aggregator returns.
// Array values hold one record per hit on that platform; object values are a
// single record. A record without an explicit status is judged by how much it
// carries, since the aggregator omits status on thin hits.
func adaptOsintAggregate(result model.RawResult) []*model.Platform {
	data, ok := normalize.Object(result.Data)
	if !ok {
		return adaptGeneric(result)
	}

	names := make([]string, 0, len(data))
	for name := range data {
		names = append(names, name)
	}
	sort.Strings(names)

	var platforms []*model.Platform
	for _, name := range names {
		switch value := data[name].(type) {
		case []any:
			for _, item := range value {
				record, ok := item.(map[string]any)
				if !ok {
					continue
				}
				platforms = append(platforms, osintPlatform(name, record))
			}
		case map[string]any:
			platforms = append(platforms, osintPlatform(name, value))
		}
	}
	return platforms
}

func osintPlatform(name string, record map[string]any) *model.Platform {
	fallback := model.StatusNotFound
	if len(record) > 2 {
		fallback = model.StatusFound
	}

	p := newPlatform(record, "osint_industries")
	p.Status = statusOr(record["status"], fallback)
	if p.Module == "" {
		p.Module = name
	}
	if p.PlatformName == "" {
		p.PlatformName = name
	}
	return p
}
