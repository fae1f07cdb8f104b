package dedupe

import (
	"sort"

	"github.com/sells-group/dossier-cli/internal/model"
)

// Phones merges raw phone entries keyed by digit string.
func Phones(entries []model.Phone) []model.Fact[model.Phone] {
	return Merge(entries,
		func(p model.Phone) string { return PhoneKey(p.Number) },
		func(p model.Phone) float64 { return p.Confidence },
		func(p model.Phone) []string { return p.Sources },
	)
}

// Emails merges raw email entries keyed by normalized address.
func Emails(entries []model.Email) []model.Fact[model.Email] {
	return Merge(entries,
		func(e model.Email) string { return EmailKey(e.Address, e.Normalized) },
		func(e model.Email) float64 { return e.Confidence },
		func(e model.Email) []string { return e.Sources },
	)
}

// Addresses merges raw address entries keyed by normalized
// street|city|state|postcode.
func Addresses(entries []model.Address) []model.Fact[model.Address] {
	return Merge(entries,
		func(a model.Address) string { return AddressKey(a.Street, a.City, a.State, a.PostalCode) },
		func(a model.Address) float64 { return a.Confidence },
		func(a model.Address) []string { return a.Sources },
	)
}

// Relatives merges raw relative entries keyed by trimmed name.
func Relatives(entries []model.Relative) []model.Fact[model.Relative] {
	return Merge(entries,
		func(r model.Relative) string { return RelativeKey(r.Name) },
		func(r model.Relative) float64 { return r.Confidence },
		func(r model.Relative) []string { return r.Sources },
	)
}

// Properties merges raw property entries keyed by address|city|postcode.
func Properties(entries []model.Property) []model.Fact[model.Property] {
	return Merge(entries,
		func(p model.Property) string { return PropertyKey(p.Address, p.City, p.PostalCode) },
		func(p model.Property) float64 { return p.Confidence },
		func(p model.Property) []string { return p.Sources },
	)
}

// EmploymentHistory consolidates raw job entries by company. Positions under
// one company are nested newest-first rather than deduplicated separately;
// the group's confidence is the max over its jobs.
func EmploymentHistory(jobs []model.Job) []model.Fact[model.Employment] {
	index := make(map[string]int)
	var facts []model.Fact[model.Employment]

	for _, job := range jobs {
		k := CompanyKey(job.Company)
		if k == "" {
			continue
		}

		pos := model.Position{
			Title:      job.Title,
			StartDate:  job.StartDate,
			EndDate:    job.EndDate,
			Location:   job.Location,
			Confidence: job.Confidence,
			Source:     job.Source,
		}

		i, seen := index[k]
		if !seen {
			index[k] = len(facts)
			facts = append(facts, model.Fact[model.Employment]{
				Key: k,
				Payload: model.Employment{
					Company:   job.Company,
					Positions: []model.Position{pos},
				},
				Confidence: job.Confidence,
				Sources:    unionSources(nil, []string{job.Source}),
			})
			continue
		}

		fact := &facts[i]
		fact.Payload.Positions = append(fact.Payload.Positions, pos)
		if job.Confidence > fact.Confidence {
			fact.Confidence = job.Confidence
		}
		fact.Sources = unionSources(fact.Sources, []string{job.Source})
	}

	for i := range facts {
		positions := facts[i].Payload.Positions
		sort.SliceStable(positions, func(a, b int) bool {
			return positions[a].StartDate > positions[b].StartDate
		})
		facts[i].Payload.LatestTitle = positions[0].Title
	}

	sort.SliceStable(facts, func(i, j int) bool {
		return facts[i].Confidence > facts[j].Confidence
	})
	return facts
}

// LeakSources rolls raw leaked credentials up by breach source. These are
// cumulative facts, not competing observations: counts sum, affected emails
// union, and the latest leak date wins. Buckets are ordered by count.
func LeakSources(creds []model.LeakedCredential) []model.Fact[model.LeakSource] {
	index := make(map[string]int)
	var facts []model.Fact[model.LeakSource]

	for _, cred := range creds {
		source := cred.LeakSource
		if source == "" {
			source = "Unknown"
		}

		i, seen := index[source]
		if !seen {
			index[source] = len(facts)
			facts = append(facts, model.Fact[model.LeakSource]{
				Key:     source,
				Payload: model.LeakSource{Source: source},
				Sources: []string{source},
			})
			i = len(facts) - 1
		}

		leak := &facts[i].Payload
		leak.Count++
		if cred.Email != "" {
			leak.Emails = unionSources(leak.Emails, []string{cred.Email})
		}
		if cred.LeakDate > leak.LatestLeak {
			leak.LatestLeak = cred.LeakDate
		}
		if cred.PlaintextAvailable {
			leak.HasPlaintext = true
		}
	}

	sort.SliceStable(facts, func(i, j int) bool {
		return facts[i].Payload.Count > facts[j].Payload.Count
	})
	return facts
}
