// Package extract pulls canonical signals (names, boolean flags, account
// evidence, geo-coordinates) out of arbitrarily shaped provider records.
// Every lookup is best-effort: a miss returns a zero value, never an error.
package extract

import (
	"strings"

	"github.com/sells-group/dossier-cli/internal/model"
)

// nameStrategy is one attempt at finding a display name. Strategies are
// evaluated in order with first-match-wins; each must be side-effect free.
type nameStrategy func(map[string]any) string

var directNameFields = []string{
	"name", "full_name", "fullname", "display_name", "real_name",
	"profile_name", "account_name", "person_name", "owner_name",
	"username", "Name", "FullName", "DisplayName",
}

var nameArrayFields = []string{"names", "aliases", "aka", "people", "individuals"}

var nameContainerFields = []string{
	"user_info", "person", "owner", "individual", "user", "contact", "profile",
}

// nameStrategies is populated in init to break the initialization cycle
// between this slice and strategies that recurse through Name.
var nameStrategies []nameStrategy

func init() {
	nameStrategies = []nameStrategy{
		nameFromDirectField,
		nameFromParts,
		nameFromNameObject,
		nameFromArrayField,
		nameFromContainer,
	}
}

// Name extracts a person's display name from an arbitrarily shaped record.
// It returns the empty string when no strategy finds a valid name.
func Name(obj map[string]any) string {
	if len(obj) == 0 {
		return ""
	}
	for _, strategy := range nameStrategies {
		if got := strategy(obj); got != "" {
			return got
		}
	}
	return ""
}

// HasDetectedName reports whether a name can be extracted from the platform's
// loose root fields, its data object, or any spec_format entry.
func HasDetectedName(p *model.Platform) bool {
	if p == nil {
		return false
	}
	for _, candidate := range p.Candidates() {
		if Name(candidate) != "" {
			return true
		}
	}
	return false
}

func validString(v any) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	s = strings.TrimSpace(s)
	return s
}

func nameFromDirectField(obj map[string]any) string {
	for _, field := range directNameFields {
		if s := validString(obj[field]); s != "" {
			return s
		}
	}
	return ""
}

func combineName(first, middle, last any) string {
	var parts []string
	for _, part := range []any{first, middle, last} {
		if s := validString(part); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}

func firstPresent(obj map[string]any, keys ...string) any {
	for _, k := range keys {
		if v, ok := obj[k]; ok && v != nil {
			return v
		}
	}
	return nil
}

func nameFromParts(obj map[string]any) string {
	first := firstPresent(obj, "first_name", "FirstName", "first", "FName")
	last := firstPresent(obj, "last_name", "LastName", "last", "LName")
	middle := firstPresent(obj, "middle_name", "MiddleName", "mname", "MName")
	return combineName(first, middle, last)
}

func nameFromNameObject(obj map[string]any) string {
	nested, ok := obj["name"].(map[string]any)
	if !ok {
		return ""
	}
	if got := combineName(
		firstPresent(nested, "first", "first_name"),
		firstPresent(nested, "middle", "middle_name"),
		firstPresent(nested, "last", "last_name"),
	); got != "" {
		return got
	}
	if s := validString(nested["full"]); s != "" {
		return s
	}
	return validString(nested["value"])
}

func nameFromArrayField(obj map[string]any) string {
	for _, field := range nameArrayFields {
		arr, ok := obj[field].([]any)
		if !ok {
			continue
		}
		for _, item := range arr {
			if s := validString(item); s != "" {
				return s
			}
			if nested, ok := item.(map[string]any); ok {
				if got := Name(nested); got != "" {
					return got
				}
			}
		}
	}
	return ""
}

func nameFromContainer(obj map[string]any) string {
	for _, field := range nameContainerFields {
		if nested, ok := obj[field].(map[string]any); ok {
			if got := Name(nested); got != "" {
				return got
			}
		}
	}
	return ""
}
