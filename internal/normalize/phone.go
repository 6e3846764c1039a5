package normalize

import (
	"regexp"
	"strings"
)

// PhoneResult is the outcome of normalizing one phone-like token. Exactly one
// of Phone/Note is set for any non-empty input: a token that cannot be
// confidently normalized is demoted to a note, never silently dropped.
type PhoneResult struct {
	Phone string // +90 followed by ten digits, empty if rejected
	Note  string // "Fax: …", "Dahili: …" or "Phone?: …"
}

var (
	reFaxToken  = regexp.MustCompile(`(?i)(^|[\s(])(fax|faks)([\s:.)]|$)`)
	reFaxPrefix = regexp.MustCompile(`(?i)^\s*(fax|faks)\s*[:.]?\s*`)
	reExtension = regexp.MustCompile(`(?i)\b(?:dahili|ext|x)\.?\s*[:.]?\s*(\d{1,6})\s*$`)
	reNonDigit  = regexp.MustCompile(`\D+`)
	reE164TR    = regexp.MustCompile(`^\+90\d{10}$`)
)

// Phone normalizes a single phone candidate to Turkish E.164 (+90 plus ten
// digits). Fax numbers and extension fragments are redirected into notes;
// anything else that does not reduce to a ten-digit local number is flagged
// "Phone?:" for manual review.
func Phone(raw string) PhoneResult {
	s := strings.TrimSpace(raw)
	if s == "" {
		return PhoneResult{}
	}
	if reFaxToken.MatchString(s) {
		return PhoneResult{Note: "Fax: " + strings.TrimSpace(reFaxPrefix.ReplaceAllString(s, ""))}
	}
	if m := reExtension.FindStringSubmatch(s); m != nil {
		return PhoneResult{Note: "Dahili: " + m[1]}
	}

	digits := reNonDigit.ReplaceAllString(s, "")
	if digits == "" {
		return PhoneResult{}
	}
	local := digits
	switch {
	case len(local) == 12 && strings.HasPrefix(local, "90"):
		local = local[2:]
	case len(local) == 13 && strings.HasPrefix(local, "090"):
		local = local[3:]
	case len(local) == 11 && strings.HasPrefix(local, "0"):
		local = local[1:]
	}
	if len(local) == 10 {
		e164 := "+90" + local
		if reE164TR.MatchString(e164) {
			return PhoneResult{Phone: e164}
		}
	}
	return PhoneResult{Note: "Phone?: " + s}
}

// Phones normalizes a list of phone candidates, returning the unique resolved
// numbers in first-seen order and appending demotion notes to the shared sink.
func Phones(values []string, notes *[]string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		r := Phone(v)
		if r.Note != "" {
			*notes = append(*notes, r.Note)
		}
		if r.Phone == "" {
			continue
		}
		if _, dup := seen[r.Phone]; dup {
			continue
		}
		seen[r.Phone] = struct{}{}
		out = append(out, r.Phone)
	}
	return out
}
