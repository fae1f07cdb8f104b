package platform

import (
	"strings"

	"github.com/sells-group/dossier-cli/internal/model"
)

// ID derives the canonical lower-cased identifier for a platform from, in
// order, its platform name, its module, or its source.
func ID(p *model.Platform) string {
	if p == nil {
		return ""
	}
	for _, s := range []string{p.PlatformName, p.Module, p.Source} {
		if s != "" {
			return strings.ToLower(s)
		}
	}
	return ""
}

// Is reports whether the platform belongs to the category: its ID either
// equals or contains one of the category's patterns.
func (r *Rules) Is(p *model.Platform, cat Category) bool {
	id := ID(p)
	if id == "" {
		return false
	}
	for _, pattern := range r.Categories[cat] {
		if id == pattern || strings.Contains(id, pattern) {
			return true
		}
	}
	return false
}

// IsPhoneLookup reports whether the platform is the multi-sub-platform phone
// lookup provider, whose coordinates take precedence for the primary map pin.
func (r *Rules) IsPhoneLookup(p *model.Platform) bool {
	id := ID(p)
	return strings.Contains(id, "melissa") || id == "phone_lookup" || id == "phone_lookup_3008"
}
