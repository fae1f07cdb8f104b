// Package dedupe merges raw provider entries into canonical facts. The merge
// is parametrized per fact type by a dedup-key derivation, so two providers
// reporting the same phone, address, or employer in different formats
// collapse into one record with merged provenance.
package dedupe

import (
	"sort"
	"strings"

	"github.com/sells-group/dossier-cli/internal/model"
)

// Merge groups raw entries by derived key and emits one canonical fact per
// group. Entries with an empty key are dropped. Within a group the payload is
// the highest-confidence entry (first seen wins ties), confidence is the max,
// and sources are unioned in first-seen order. The result is sorted
// descending by confidence with a stable sort, so equal-confidence facts keep
// their first-seen order.
func Merge[T any](
	entries []T,
	key func(T) string,
	confidence func(T) float64,
	sources func(T) []string,
) []model.Fact[T] {
	index := make(map[string]int)
	var facts []model.Fact[T]

	for _, entry := range entries {
		k := key(entry)
		if k == "" {
			continue
		}

		i, seen := index[k]
		if !seen {
			index[k] = len(facts)
			facts = append(facts, model.Fact[T]{
				Key:        k,
				Payload:    entry,
				Confidence: confidence(entry),
				Sources:    unionSources(nil, sources(entry)),
			})
			continue
		}

		fact := &facts[i]
		c := confidence(entry)
		if c > fact.Confidence {
			fact.Payload = entry
			fact.Confidence = c
		}
		fact.Sources = unionSources(fact.Sources, sources(entry))
	}

	sort.SliceStable(facts, func(i, j int) bool {
		return facts[i].Confidence > facts[j].Confidence
	})
	return facts
}

func unionSources(existing, extra []string) []string {
	seen := make(map[string]bool, len(existing))
	for _, s := range existing {
		seen[s] = true
	}
	for _, s := range extra {
		s = strings.TrimSpace(s)
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		existing = append(existing, s)
	}
	return existing
}

// Strings deduplicates a string list case-insensitively, trimming whitespace,
// dropping empties, and preserving the first-seen casing and order.
func Strings(values []string) []string {
	seen := make(map[string]bool, len(values))
	var out []string
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		k := strings.ToLower(v)
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, v)
	}
	return out
}
