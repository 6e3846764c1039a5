// Package normalize holds the per-field normalization policies for card
// extractions. Every function is pure, stateless and idempotent: feeding a
// function its own output returns the same value.
package normalize

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	reWhitespace = regexp.MustCompile(`\s+`)

	// Company suffix abbreviations. At least one dot is required so that the
	// bare word "as" is never rewritten.
	reCompanyAS  = regexp.MustCompile(`(?i)(^|[\s,])a\.\s*[şs]\.?([\s,]|$)`)
	reCompanyAS2 = regexp.MustCompile(`(?i)(^|[\s,])a\s*[şs]\.([\s,]|$)`)
	reCompanyLtd = regexp.MustCompile(`(?i)(^|[\s,])(?:ltd|limited)\.?\s*[şs]ti\.?([\s,]|$)`)
)

// addressAbbrev maps Turkish-lowercased address nouns to their canonical
// abbreviation. Tokens are matched whole, with trailing punctuation stripped.
var addressAbbrev = map[string]string{
	"mahallesi": "Mah.", "mahalle": "Mah.", "mah": "Mah.", "mh": "Mah.",
	"caddesi": "Cad.", "cadde": "Cad.", "cad": "Cad.", "cd": "Cad.",
	"sokağı": "Sk.", "sokagi": "Sk.", "sokak": "Sk.", "sok": "Sk.", "sk": "Sk.",
}

// LowerTurkish lowercases with Turkish casing rules (İ→i, I→ı), which plain
// strings.ToLower gets wrong for OCR'd Turkish text.
func LowerTurkish(s string) string {
	return cases.Lower(language.Turkish).String(s)
}

// Collapse trims and collapses all internal whitespace runs to single spaces.
func Collapse(s string) string {
	return strings.TrimSpace(reWhitespace.ReplaceAllString(s, " "))
}

// Nullable collapses whitespace and maps the empty result to nil.
func Nullable(s string) *string {
	c := Collapse(s)
	if c == "" {
		return nil
	}
	return &c
}

// CompanySuffix rewrites common Turkish company-suffix abbreviations to their
// canonical spellings (A.Ş., Ltd. Şti.). All other text is left untouched.
func CompanySuffix(s string) string {
	s = reCompanyAS.ReplaceAllString(s, "${1}A.Ş.${2}")
	s = reCompanyAS2.ReplaceAllString(s, "${1}A.Ş.${2}")
	s = reCompanyLtd.ReplaceAllString(s, "${1}Ltd. Şti.${2}")
	return Collapse(s)
}

// Address expands Turkish address-noun abbreviations (mahalle/mah./mh.→Mah.,
// caddesi/cad.→Cad., sokak/sk.→Sk.) and collapses whitespace.
func Address(s string) string {
	toks := strings.Fields(s)
	for i, tok := range toks {
		bare := strings.TrimRight(tok, ".,;")
		canon, ok := addressAbbrev[LowerTurkish(bare)]
		if !ok {
			continue
		}
		if strings.Contains(tok[len(bare):], ",") {
			canon += ","
		}
		toks[i] = canon
	}
	return strings.Join(toks, " ")
}

// UniqueStrings whitespace-normalizes every entry, drops empties and
// deduplicates case-insensitively, preserving first-seen order.
func UniqueStrings(list []string) []string {
	out := make([]string, 0, len(list))
	seen := make(map[string]struct{}, len(list))
	for _, v := range list {
		c := Collapse(v)
		if c == "" {
			continue
		}
		key := LowerTurkish(c)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, c)
	}
	return out
}

var reEmailExact = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Emails trims, keeps only local@domain.tld shaped tokens, lowercases and
// deduplicates preserving order. ASCII lowercasing on purpose: the mailbox
// syntax is ASCII and Turkish folding would corrupt a capital I.
func Emails(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		e := strings.ToLower(strings.TrimSpace(v))
		if !reEmailExact.MatchString(e) {
			continue
		}
		if _, dup := seen[e]; dup {
			continue
		}
		seen[e] = struct{}{}
		out = append(out, e)
	}
	return out
}

// Website strips all whitespace; empty becomes nil.
func Website(s string) *string {
	w := strings.Join(strings.Fields(s), "")
	if w == "" {
		return nil
	}
	return &w
}

// SocialHandle strips all whitespace; empty becomes nil.
func SocialHandle(s string) *string {
	return Website(s)
}
