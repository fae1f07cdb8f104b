package extract

import (
	"strings"

	"github.com/sells-group/dossier-cli/internal/model"
	"github.com/sells-group/dossier-cli/internal/normalize"
)

var accountEvidenceKeys = []string{
	"profile_url", "profile", "url", "homepage", "link",
	"username", "user_name", "handle", "account_id",
	"id", "user_id",
}

var messageKeys = []string{"message", "status_text", "note", "error"}

// hasFlag reports whether any candidate object carries one of the keys with a
// value that coerces to the expected polarity. Values without a recognizable
// boolean meaning are skipped rather than guessed.
func hasFlag(p *model.Platform, keys []string, want bool) bool {
	for _, obj := range p.Candidates() {
		for _, key := range keys {
			v, ok := obj[key]
			if !ok {
				continue
			}
			if got, known := normalize.Flag(v); known && got == want {
				return true
			}
		}
	}
	return false
}

// HasTrueFlag reports whether any of the keys is an explicit positive signal.
func HasTrueFlag(p *model.Platform, keys ...string) bool {
	return hasFlag(p, keys, true)
}

// HasFalseFlag reports whether any of the keys is an explicit negative signal.
func HasFalseFlag(p *model.Platform, keys ...string) bool {
	return hasFlag(p, keys, false)
}

// HasEvidenceOfAccount reports whether the platform carries any non-empty
// identifier string suggesting a real account: a profile URL, a handle, a
// user ID, or one of the caller-supplied extra keys.
func HasEvidenceOfAccount(p *model.Platform, extraKeys ...string) bool {
	keys := append(append([]string{}, accountEvidenceKeys...), extraKeys...)
	for _, obj := range p.Candidates() {
		for _, key := range keys {
			if s, ok := obj[key].(string); ok && strings.TrimSpace(s) != "" {
				return true
			}
		}
	}
	return false
}

// MessageIncludes reports whether any message-like field on the platform
// contains one of the substrings, case-insensitively.
func MessageIncludes(p *model.Platform, substrings ...string) bool {
	for _, obj := range p.Candidates() {
		for _, key := range messageKeys {
			s, ok := obj[key].(string)
			if !ok {
				continue
			}
			lowered := strings.ToLower(s)
			for _, sub := range substrings {
				if strings.Contains(lowered, strings.ToLower(sub)) {
					return true
				}
			}
		}
	}
	return false
}
