// Package adapter translates raw per-provider payloads into uniform Platform
// records. Each provider has its own ad-hoc JSON shape; the adapters are the
// only code that knows those shapes, so everything downstream works on the
// fixed Platform struct.
package adapter

import (
	"go.uber.org/zap"

	"github.com/sells-group/dossier-cli/internal/model"
	"github.com/sells-group/dossier-cli/internal/normalize"
)

// SourceConsolidated is the distinguished provider whose payload feeds the
// unified profile instead of the platform card list; see the dossier package.
const SourceConsolidated = "external_lookup"

// Platforms runs every raw result through its source adapter and collects the
// resulting platform records. The consolidated provider is skipped here.
func Platforms(results []model.RawResult) []*model.Platform {
	var platforms []*model.Platform
	for _, result := range results {
		if result.Source == SourceConsolidated {
			continue
		}
		platforms = append(platforms, Adapt(result)...)
	}
	return platforms
}

// Adapt routes one raw result to its source adapter, yielding zero or more
// platform records. Unknown sources fall back to the generic adapter.
func Adapt(result model.RawResult) []*model.Platform {
	if !result.Success || result.Data == nil {
		return adaptFailed(result)
	}

	switch result.Source {
	case "whatsapp":
		return adaptWhatsApp(result)
	case "social_media_scanner":
		return adaptSocialScanner(result)
	case "osint_industries":
		return adaptOsintAggregate(result)
	case "data_breach":
		return adaptBreachDatabase(result)
	case "phone_lookup", "phone_lookup_3008":
		return adaptPhoneLookup(result)
	default:
		return adaptGeneric(result)
	}
}

// adaptFailed handles results the orchestrator marked unsuccessful. A failed
// call that nonetheless returned usable keys is reclassified to found rather
// than error: the data is real even if the provider's own status reporting
// was not.
func adaptFailed(result model.RawResult) []*model.Platform {
	if data, ok := normalize.Object(result.Data); ok && len(data) > 0 {
		zap.L().Debug("adapter: failed result carries data, reclassifying",
			zap.String("source", result.Source))
		p := newPlatform(data, result.Source)
		p.Status = model.StatusFound
		if p.Module == "" {
			p.Module = result.Source
		}
		return []*model.Platform{p}
	}

	errMsg := result.Error
	if errMsg == "" {
		errMsg = "lookup failed"
	}
	return []*model.Platform{{
		Module: result.Source,
		Source: result.Source,
		Status: model.StatusError,
		Error:  errMsg,
	}}
}

// adaptGeneric turns any non-empty object payload into a single found card.
func adaptGeneric(result model.RawResult) []*model.Platform {
	data, ok := normalize.Object(result.Data)
	if !ok || len(data) == 0 {
		return nil
	}
	p := newPlatform(data, result.Source)
	p.Status = model.StatusFound
	if p.Module == "" {
		p.Module = result.Source
	}
	return []*model.Platform{p}
}

// newPlatform builds a Platform from a normalized root object, lifting the
// bookkeeping keys into struct fields and leaving the rest in Fields.
func newPlatform(root map[string]any, source string) *model.Platform {
	p := &model.Platform{Source: source}
	fields := make(map[string]any, len(root))

	for k, v := range root {
		switch k {
		case "module":
			p.Module, _ = v.(string)
		case "platform_name":
			p.PlatformName, _ = v.(string)
		case "source":
			if s, ok := v.(string); ok && s != "" {
				p.Source = s
			}
		case "status":
			if s, ok := v.(string); ok {
				p.Status = model.Status(s)
			}
		case "error":
			p.Error, _ = v.(string)
		case "data":
			if m, ok := v.(map[string]any); ok {
				p.Data = m
			} else {
				fields[k] = v
			}
		case "spec_format":
			if arr, ok := v.([]any); ok {
				for _, item := range arr {
					if m, ok := item.(map[string]any); ok {
						p.SpecFormat = append(p.SpecFormat, m)
					}
				}
			}
		default:
			fields[k] = v
		}
	}

	if len(fields) > 0 {
		p.Fields = fields
	}
	return p
}

func statusOr(v any, fallback model.Status) model.Status {
	if s, ok := v.(string); ok && s != "" {
		return model.Status(s)
	}
	return fallback
}
