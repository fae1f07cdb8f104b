package platform

import (
	"github.com/sells-group/dossier-cli/internal/extract"
	"github.com/sells-group/dossier-cli/internal/model"
)

// metaKeys are record bookkeeping fields, not data: an object whose only
// populated keys are these is considered empty.
var metaKeys = map[string]bool{
	"module":        true,
	"source":        true,
	"status":        true,
	"platform_name": true,
	"platform_type": true,
	"error":         true,
}

// ShouldDisplay decides whether a platform card is shown in the generic list.
// The rule order is load-bearing:
//
//  1. WhatsApp cards are rendered by a dedicated view, never here.
//  2. Error-ish and not-found cards stay visible so the analyst sees the
//     coverage gap, unless a category hide rule says otherwise.
//  3. Strict-name platforms with a found status but no detectable name are
//     noise and are dropped.
//  4. Category hide rules apply to found cards too.
//  5. What remains must carry non-trivial data.
func (r *Rules) ShouldDisplay(p *model.Platform) bool {
	if r.Is(p, CategoryWhatsApp) {
		return false
	}

	switch p.Status {
	case model.StatusError, model.StatusQuotaExceeded, model.StatusNoData, model.StatusNotFound:
		return !r.hiddenByCategory(p)
	}

	if p.Status == model.StatusFound && r.Is(p, CategoryStrictName) && !extract.HasDetectedName(p) {
		return false
	}

	if r.hiddenByCategory(p) {
		return false
	}

	return r.HasValidData(p)
}

// hiddenByCategory applies the per-category hide rules. Positive signals
// always win over negative ones within a category.
func (r *Rules) hiddenByCategory(p *model.Platform) bool {
	if r.Is(p, CategoryMicrosoft) {
		if extract.HasTrueFlag(p, "exists", "account_exists") {
			return false
		}
		if extract.HasEvidenceOfAccount(p, "email") {
			return false
		}
		if extract.HasFalseFlag(p, "exists", "account_exists") {
			return true
		}
	}

	if r.Is(p, CategoryIPReputation) {
		if extract.HasFalseFlag(p, "validity", "valid", "is_valid") {
			return true
		}
	}

	if r.Is(p, CategoryTelegram) {
		if extract.HasTrueFlag(p, "telegram_found", "exists", "account_exists", "live") {
			return false
		}
		if extract.HasEvidenceOfAccount(p, "telegram_url") {
			return false
		}
		if p.Status == model.StatusNotFound {
			return true
		}
		if extract.MessageIncludes(p, r.TelegramNegativeMessages...) {
			return true
		}
		if extract.HasFalseFlag(p, "telegram_found", "exists", "account_exists") {
			return true
		}
	}

	return false
}

// HasValidData reports whether a found platform carries anything beyond
// bookkeeping fields in its spec_format, data, or loose root fields.
func (r *Rules) HasValidData(p *model.Platform) bool {
	if p.Status != model.StatusFound {
		return false
	}

	if len(p.SpecFormat) > 0 && hasNonEmptyData(p.SpecFormat[0]) {
		return true
	}
	if hasNonEmptyData(p.Data) {
		return true
	}
	return hasNonEmptyData(p.Fields)
}

func hasNonEmptyData(obj map[string]any) bool {
	for k, v := range obj {
		if metaKeys[k] {
			continue
		}
		switch val := v.(type) {
		case nil:
			continue
		case string:
			if val != "" {
				return true
			}
		case map[string]any:
			// A still-wrapped tagged node counts only if its value does.
			if inner, ok := val["value"]; ok {
				if s, isStr := inner.(string); isStr {
					if s != "" {
						return true
					}
					continue
				}
				if inner != nil {
					return true
				}
				continue
			}
			return true
		default:
			return true
		}
	}
	return false
}

// Partition splits platforms into the displayable buckets for card-grid
// rendering. Platforms failing ShouldDisplay appear in no bucket.
func (r *Rules) Partition(platforms []*model.Platform) model.PlatformBuckets {
	buckets := model.PlatformBuckets{
		Found:    []*model.Platform{},
		Errors:   []*model.Platform{},
		NotFound: []*model.Platform{},
	}
	for _, p := range platforms {
		if !r.ShouldDisplay(p) {
			continue
		}
		switch p.Status {
		case model.StatusFound:
			if r.HasValidData(p) {
				buckets.Found = append(buckets.Found, p)
			}
		case model.StatusError, model.StatusQuotaExceeded, model.StatusNoData:
			buckets.Errors = append(buckets.Errors, p)
		case model.StatusNotFound:
			buckets.NotFound = append(buckets.NotFound, p)
		}
	}
	return buckets
}
