// Package dossier assembles one reconciliation run: raw provider results in,
// unified profile plus bucketed platform cards out.
package dossier

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sells-group/dossier-cli/internal/adapter"
	"github.com/sells-group/dossier-cli/internal/dedupe"
	"github.com/sells-group/dossier-cli/internal/extract"
	"github.com/sells-group/dossier-cli/internal/model"
	"github.com/sells-group/dossier-cli/internal/platform"
)

// Assembler runs the full reconciliation pipeline over one result batch.
type Assembler struct {
	rules *platform.Rules
}

// New returns an assembler using the given display rules; nil means defaults.
func New(rules *platform.Rules) *Assembler {
	if rules == nil {
		rules = platform.DefaultRules()
	}
	return &Assembler{rules: rules}
}

// Assemble reconciles a batch of raw provider results into a dossier. The
// resume-style providers feed the unified profile; every other result goes
// through its adapter and the visibility partition. Assemble is total over
// its input: malformed payloads degrade to absent facts, never to an error.
func (a *Assembler) Assemble(results []model.RawResult) *model.Dossier {
	start := time.Now()

	var harvested facts
	var query string
	cards := make([]model.RawResult, 0, len(results))
	for _, result := range results {
		if query == "" {
			query = result.Query
		}
		if result.Source == adapter.SourceConsolidated || result.Source == SourceInvestigate {
			harvested.harvest(result)
			continue
		}
		cards = append(cards, result)
	}

	platforms := adapter.Platforms(cards)

	profile := a.buildProfile(&harvested, platforms, results)
	profile.Meta.Query = query
	if profile.Meta.DurationSeconds == 0 {
		profile.Meta.DurationSeconds = time.Since(start).Seconds()
	}

	buckets := a.rules.Partition(platforms)

	zap.L().Debug("dossier: assembled",
		zap.String("investigation_id", profile.Meta.InvestigationID),
		zap.Int("platforms_found", len(buckets.Found)),
		zap.Int("platforms_errors", len(buckets.Errors)),
		zap.Int("platforms_not_found", len(buckets.NotFound)))

	return &model.Dossier{
		Profile:   profile,
		Platforms: buckets,
	}
}

func (a *Assembler) buildProfile(f *facts, platforms []*model.Platform, results []model.RawResult) *model.UnifiedProfile {
	names := dedupe.Strings(f.Names)
	primary := f.PrimaryName
	if primary == "" && len(names) > 0 {
		primary = names[0]
	}

	profile := &model.UnifiedProfile{
		PrimaryName: primary,
		Names:       names,
		Phones:      dedupe.Phones(f.Phones),
		Emails:      dedupe.Emails(f.Emails),
		Addresses:   dedupe.Addresses(f.Addresses),
		Employment:  dedupe.EmploymentHistory(f.Jobs),
		Relatives:   dedupe.Relatives(f.Relatives),
		Properties:  dedupe.Properties(f.Properties),
		Leaks:       dedupe.LeakSources(f.Credentials),
		Demographics: model.Demographics{
			Genders:    dedupe.Strings(f.Genders),
			BirthDates: dedupe.Strings(f.BirthDates),
			BirthYears: dedupe.Strings(f.BirthYears),
			Ages:       dedupe.Strings(f.Ages),
			Languages:  dedupe.Strings(f.Languages),
		},
		Carriers: dedupe.Strings(f.Carriers),
		Digital: model.Digital{
			IPs:  dedupe.Strings(f.IPs),
			URLs: dedupe.Strings(f.URLs),
		},
	}

	profile.Geo = a.buildGeo(f.Coordinates, platforms)
	profile.Completeness = completeness(profile)

	profile.Meta = model.Meta{
		InvestigationID:  f.InvestigationID,
		DurationSeconds:  f.DurationSeconds,
		DataSourcesCount: f.DataSourcesCount,
		ConfidenceScore:  f.ConfidenceScore,
	}
	if profile.Meta.InvestigationID == "" {
		profile.Meta.InvestigationID = uuid.NewString()
	}
	if profile.Meta.DataSourcesCount == 0 {
		profile.Meta.DataSourcesCount = countSources(results)
	}
	if profile.Meta.ConfidenceScore == 0 {
		profile.Meta.ConfidenceScore = derivedConfidence(profile)
	}

	return profile
}

// buildGeo aggregates coordinates from the resume providers and every
// platform card. The phone-lookup provider's pin wins the primary slot when
// present; otherwise the first coordinate found does.
func (a *Assembler) buildGeo(harvested []model.Coordinate, platforms []*model.Platform) model.GeoSummary {
	coords := append([]model.Coordinate{}, harvested...)
	coords = append(coords, extract.AllCoords(platforms)...)

	summary := extract.GeoSummary(coords)
	if len(coords) == 0 {
		return summary
	}

	for _, p := range platforms {
		if !a.rules.IsPhoneLookup(p) {
			continue
		}
		c, found := extract.Coords(p.Data)
		if !found {
			c, found = extract.Coords(p.Fields)
		}
		if found {
			c.Source = p.Source
			summary.Primary = &c
			break
		}
	}
	if summary.Primary == nil {
		summary.Primary = &coords[0]
	}
	return summary
}

// completeness scores the profile over ten fact categories.
func completeness(p *model.UnifiedProfile) model.Completeness {
	fields := map[string]bool{
		"name":         p.PrimaryName != "" || len(p.Names) > 0,
		"phones":       len(p.Phones) > 0,
		"emails":       len(p.Emails) > 0,
		"addresses":    len(p.Addresses) > 0,
		"employment":   len(p.Employment) > 0,
		"relatives":    len(p.Relatives) > 0,
		"properties":   len(p.Properties) > 0,
		"leaks":        len(p.Leaks) > 0,
		"demographics": len(p.Demographics.Genders) > 0 || len(p.Demographics.BirthDates) > 0 || len(p.Demographics.Ages) > 0,
		"digital":      len(p.Digital.IPs) > 0 || len(p.Digital.URLs) > 0,
	}

	filled := 0
	for _, ok := range fields {
		if ok {
			filled++
		}
	}
	total := len(fields)

	return model.Completeness{
		Percentage:  int(float64(filled)/float64(total)*100 + 0.5),
		Fields:      fields,
		FilledCount: filled,
		TotalCount:  total,
	}
}

// derivedConfidence averages the top confidence of each non-empty fact bucket
// when the provider reported no overall score.
func derivedConfidence(p *model.UnifiedProfile) float64 {
	var sum float64
	var n int
	add := func(c float64) {
		sum += c
		n++
	}

	if len(p.Phones) > 0 {
		add(p.Phones[0].Confidence)
	}
	if len(p.Emails) > 0 {
		add(p.Emails[0].Confidence)
	}
	if len(p.Addresses) > 0 {
		add(p.Addresses[0].Confidence)
	}
	if len(p.Employment) > 0 {
		add(p.Employment[0].Confidence)
	}
	if len(p.Relatives) > 0 {
		add(p.Relatives[0].Confidence)
	}

	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

func countSources(results []model.RawResult) int {
	seen := make(map[string]bool, len(results))
	for _, r := range results {
		if r.Source != "" {
			seen[r.Source] = true
		}
	}
	return len(seen)
}
