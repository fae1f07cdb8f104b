package model

// Status classifies a provider's answer for one platform.
type Status string

const (
	StatusFound         Status = "found"
	StatusNotFound      Status = "not_found"
	StatusError         Status = "error"
	StatusQuotaExceeded Status = "quota_exceeded"
	StatusNoData        Status = "no_data"
)

// RawResult is one provider's answer as delivered by the query orchestrator.
// Data is arbitrary provider-shaped JSON; adapters turn it into Platform records.
type RawResult struct {
	Success bool   `json:"success"`
	Source  string `json:"source"`
	Query   string `json:"query,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Platform is one provider-reported entity, normalized into a fixed shape so
// downstream code never duck-types. Fields carries any provider root keys that
// do not map to the struct itself (flags, notes, profile URLs and the like).
type Platform struct {
	Module       string           `json:"module"`
	PlatformName string           `json:"platform_name,omitempty"`
	Source       string           `json:"source"`
	Status       Status           `json:"status"`
	Error        string           `json:"error,omitempty"`
	Data         map[string]any   `json:"data,omitempty"`
	SpecFormat   []map[string]any `json:"spec_format,omitempty"`
	Fields       map[string]any   `json:"fields,omitempty"`
}

// Candidates returns the objects a flag or name lookup should inspect: the
// platform's own loose fields, its data object, and every spec_format entry.
func (p *Platform) Candidates() []map[string]any {
	if p == nil {
		return nil
	}
	var out []map[string]any
	if len(p.Fields) > 0 {
		out = append(out, p.Fields)
	}
	if len(p.Data) > 0 {
		out = append(out, p.Data)
	}
	for _, item := range p.SpecFormat {
		if len(item) > 0 {
			out = append(out, item)
		}
	}
	return out
}
