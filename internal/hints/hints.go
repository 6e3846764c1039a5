// Package hints scans raw OCR text for phone/email/website/address candidates.
// Hints are ephemeral and unvalidated: they only assist the external
// extraction step and are never trusted as output.
package hints

import (
	"regexp"
	"strings"

	"github.com/ekaraca/cardscan/internal/entity"
	"github.com/ekaraca/cardscan/internal/normalize"
)

// Each pattern is a named package-level constant so it can be exercised
// against literal corpora on its own.
var (
	// RePhoneCandidate tolerates an optional +90/0 prefix, parentheses and
	// mixed separators around the 3-3-2-2 digit grouping, and a trailing
	// extension written as /1234 or (1234).
	RePhoneCandidate = regexp.MustCompile(`\(?(?:\+?\s?90|0)?[\s.\-]*\(?\d{3}\)?[\s.\-]*\d{3}[\s.\-]*\d{2}[\s.\-]*\d{2}(?:\s*(?:/\s*\d{1,6}|\(\d{1,6}\)))?`)

	// ReEmailCandidate is a standard local@domain token scan.
	ReEmailCandidate = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)

	// ReWebsiteCandidate matches domain-like tokens ending in the TLD
	// allow-list, optionally with scheme, www. prefix and a path suffix.
	ReWebsiteCandidate = regexp.MustCompile(`(?i)\b(?:https?://)?(?:www\.)?[a-z0-9][a-z0-9\-]*(?:\.[a-z0-9\-]+)*\.(?:com\.tr|edu\.tr|gov\.tr|com|net|org|edu|gov|io|biz|info|me|tv|tr)\b(?:/\S*)?`)

	reBarePhoneLine = regexp.MustCompile(`^\(?(?:\+?\s?90|0)?[\s.\-]*\(?\d{3}\)?[\s.\-]*\d{3}[\s.\-]*\d{2}[\s.\-]*\d{2}(?:\s*(?:/\s*\d{1,6}|\(\d{1,6}\)))?$`)

	// reAddressNoun covers Turkish address grammar with its usual
	// abbreviation variants.
	reAddressNoun = regexp.MustCompile(`(?i)\b(mahallesi|mahalle|mah|mh|caddesi|cadde|cad|cd|sokak|sokağı|sok|sk|bulvarı|bulvar|bulv|blv|blok|kat|daire|apt|apartmanı|apartman|plaza|hanı|han|merkezi|merkez|sanayi|osb|bölgesi|bölge|posta|pk|no)\b\.?`)

	rePostalCode = regexp.MustCompile(`\b\d{5}\b`)

	// reLocationPair matches district/province pairs like "Şişli/İstanbul".
	reLocationPair = regexp.MustCompile(`\p{L}+\s*/\s*\p{L}+`)

	reScheme       = regexp.MustCompile(`(?i)https?://\S+`)
	reContactLabel = regexp.MustCompile(`(?i)\b(e-?posta|e-?mail|email|mail|tel|telefon|phone|gsm|mobil|mob|fax|faks|web|instagram|linkedin|facebook|twitter)\b\s*[:.]?`)
	reAtHandle     = regexp.MustCompile(`@\S+`)
)

// Build scans raw OCR text for candidate hints. Pure, no failure modes:
// empty input yields empty slices. When the caller has the OCR line
// segmentation it should pass it; otherwise rawText is split on newlines.
func Build(rawText string, lines []string) entity.CandidateHints {
	h := entity.CandidateHints{
		Phones:       []string{},
		Emails:       []string{},
		Websites:     []string{},
		AddressLines: []string{},
	}
	if strings.TrimSpace(rawText) == "" && len(lines) == 0 {
		return h
	}

	h.Phones = normalize.UniqueStrings(RePhoneCandidate.FindAllString(rawText, -1))
	h.Emails = normalize.UniqueStrings(ReEmailCandidate.FindAllString(rawText, -1))

	// Websites are scanned with emails removed so that the domain tail of an
	// email address is not reported as a site.
	withoutEmails := ReEmailCandidate.ReplaceAllString(rawText, " ")
	h.Websites = normalize.UniqueStrings(ReWebsiteCandidate.FindAllString(withoutEmails, -1))

	src := lines
	if len(src) == 0 {
		src = strings.Split(rawText, "\n")
	}
	addr := make([]string, 0, len(src))
	for _, line := range src {
		if cand, ok := addressCandidate(line); ok {
			addr = append(addr, cand)
		}
	}
	h.AddressLines = normalize.UniqueStrings(addr)
	return h
}

// addressCandidate applies the per-line address heuristic from Build.
func addressCandidate(line string) (string, bool) {
	l := normalize.Collapse(line)
	if l == "" {
		return "", false
	}
	switch normalize.LowerTurkish(l) {
	case "türkiye", "turkey", "tr":
		// bare country token, useless as an address
		return "", false
	}

	base := l
	if hasContactToken(l) {
		base = longestPlainSegment(stripContactFragments(l))
		if base == "" {
			return "", false
		}
	}
	// phone lines are never addresses
	if reBarePhoneLine.MatchString(base) {
		return "", false
	}
	if !addressLike(base) {
		return "", false
	}
	return base, true
}

func hasContactToken(s string) bool {
	low := normalize.LowerTurkish(s)
	if strings.Contains(low, "@") || strings.Contains(low, "www.") {
		return true
	}
	if reScheme.MatchString(s) {
		return true
	}
	return reContactLabel.MatchString(s)
}

// stripContactFragments removes emails, URLs, websites, phone numbers,
// contact labels and @handles, leaving only the plain-text remainder.
func stripContactFragments(s string) string {
	s = ReEmailCandidate.ReplaceAllString(s, " ")
	s = reScheme.ReplaceAllString(s, " ")
	s = ReWebsiteCandidate.ReplaceAllString(s, " ")
	s = RePhoneCandidate.ReplaceAllString(s, " ")
	s = reAtHandle.ReplaceAllString(s, " ")
	s = reContactLabel.ReplaceAllString(s, " ")
	return s
}

// longestPlainSegment splits on comma/slash/pipe and returns the longest
// trimmed segment.
func longestPlainSegment(s string) string {
	best := ""
	for _, seg := range strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == '/' || r == '|'
	}) {
		seg = normalize.Collapse(seg)
		if len(seg) > len(best) {
			best = seg
		}
	}
	return best
}

func addressLike(s string) bool {
	if reAddressNoun.MatchString(s) {
		return true
	}
	if rePostalCode.MatchString(s) {
		return true
	}
	if containsProvince(s) {
		return true
	}
	return reLocationPair.MatchString(s)
}
