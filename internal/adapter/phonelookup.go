package adapter

import (
	"sort"

	"github.com/sells-group/dossier-cli/internal/model"
	"github.com/sells-group/dossier-cli/internal/normalize"
)

// phoneLookupMetaKeys are payload keys of the phone-lookup provider that
// describe the batch, not a sub-platform.
var phoneLookupMetaKeys = map[string]bool{
	"platform_names": true,
	"platform_count": true,
	"summary":        true,
}

// adaptPhoneLookup splits the multi-sub-platform phone-lookup payload into
// one card per sub-platform. The provider either lists sub-platform names
// explicitly under platform_names or implies them through object-valued keys;
// a sub-platform with an empty record is reported as not_found rather than
// dropped, so the analyst sees which lookups came back empty.
func adaptPhoneLookup(result model.RawResult) []*model.Platform {
	data, ok := normalize.Object(result.Data)
	if !ok {
		return adaptGeneric(result)
	}

	names := subPlatformNames(data)
	if len(names) == 0 {
		return adaptGeneric(result)
	}

	var platforms []*model.Platform
	for _, name := range names {
		info := subPlatformInfo(data, name)
		status := model.StatusFound
		if len(info) == 0 {
			status = model.StatusNotFound
			info = map[string]any{"platform": name}
		}
		platforms = append(platforms, &model.Platform{
			Module:       name,
			PlatformName: name,
			Source:       result.Source,
			Status:       status,
			Data:         info,
		})
	}
	return platforms
}

func subPlatformNames(data map[string]any) []string {
	if arr, ok := data["platform_names"].([]any); ok {
		var names []string
		for _, v := range arr {
			if s, ok := v.(string); ok && s != "" {
				names = append(names, s)
			}
		}
		return names
	}

	var names []string
	for k, v := range data {
		if phoneLookupMetaKeys[k] {
			continue
		}
		if _, ok := v.(map[string]any); ok {
			names = append(names, k)
		}
	}
	sort.Strings(names)
	return names
}

func subPlatformInfo(data map[string]any, name string) map[string]any {
	if platforms, ok := data["platforms"].(map[string]any); ok {
		if info, ok := platforms[name].(map[string]any); ok {
			return info
		}
	}
	if info, ok := data[name].(map[string]any); ok {
		return info
	}
	if nested, ok := data["data"].(map[string]any); ok {
		if info, ok := nested[name].(map[string]any); ok {
			return info
		}
	}
	return nil
}
