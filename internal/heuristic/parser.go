// Package heuristic parses raw business-card OCR text directly into a scan
// result, without the external structured-extraction step. It is the fallback
// path and never fails: garbage in, empty result out.
package heuristic

import (
	"regexp"
	"strings"

	"github.com/ekaraca/cardscan/constants"
	"github.com/ekaraca/cardscan/internal/entity"
	"github.com/ekaraca/cardscan/internal/normalize"
)

var (
	reEmailScan = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	reEmailLike = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// The character class deliberately excludes newlines so two stacked
	// phone lines never merge into one match.
	rePhoneScan = regexp.MustCompile(`\+?\(?\d[\d() .\-]{7,}\d(?: */ *\d{1,6})?`)

	// Looser than the hint extractor's allow-list: any dotted domain with an
	// alphabetic final label of two or more letters.
	reWebsiteScan = regexp.MustCompile(`(?i)\b(?:https?://|www\.)?[a-z0-9][a-z0-9\-]+(?:\.[a-z0-9\-]+)*\.[a-z]{2,}\b(?:/\S*)?`)
	reURLScan     = regexp.MustCompile(`(?i)https?://\S+`)

	reNumericStart = regexp.MustCompile(`^\d+\b`)
	reDigitsOnly   = regexp.MustCompile(`\D+`)
)

// ParseCardText parses raw OCR text into the simplified scan result using
// heuristics only. The first qualifying line becomes the customer name and
// the remaining non-contact lines accumulate into the address.
func ParseCardText(rawText string) entity.ScanResult {
	var res entity.ScanResult
	if strings.TrimSpace(rawText) == "" {
		return res
	}

	emails := uniqueEmails(reEmailScan.FindAllString(rawText, -1))
	phoneMatches := rePhoneScan.FindAllString(rawText, -1)
	phones := uniquePhones(phoneMatches)

	withoutEmails := removeAll(rawText, emails)
	websites := normalize.UniqueStrings(reWebsiteScan.FindAllString(withoutEmails, -1))

	// every phone-shaped match is stripped, including spellings that
	// deduplicated away, so none of them resurface as address text
	cleaned := removeAll(withoutEmails, phoneMatches)
	cleaned = removeAll(cleaned, websites)
	cleaned = reURLScan.ReplaceAllString(cleaned, " ")

	var addrLines []string
	for _, line := range strings.Split(cleaned, "\n") {
		l := normalize.Collapse(line)
		n := len([]rune(l))
		if n < 2 || n > 199 {
			continue
		}
		if res.CustomerName == "" && n <= 250 && !reNumericStart.MatchString(l) {
			res.CustomerName = l
			continue
		}
		if res.CustomerName != "" {
			addrLines = append(addrLines, l)
		}
	}

	res.CustomerName = truncate(res.CustomerName, constants.MaxCustomerNameLen)
	if len(phones) > 0 {
		res.Phone1 = truncate(phones[0], constants.MaxPhoneLen)
	}
	if len(emails) > 0 {
		res.Email = truncate(emails[0], constants.MaxEmailLen)
	}
	if len(addrLines) > 0 {
		res.Address = truncate(strings.Join(addrLines, "\n"), constants.MaxAddressLen)
	}
	if len(websites) > 0 {
		res.Website = truncate(websites[0], constants.MaxWebsiteLen)
	}
	return res
}

func isEmailLike(s string) bool {
	return reEmailLike.MatchString(s)
}

// isPhoneLike requires at least ten digits once separators are stripped.
func isPhoneLike(s string) bool {
	return len(reDigitsOnly.ReplaceAllString(s, "")) >= 10
}

func uniqueEmails(matches []string) []string {
	out := make([]string, 0, len(matches))
	seen := make(map[string]struct{}, len(matches))
	for _, m := range matches {
		m = strings.TrimSpace(m)
		if !isEmailLike(m) {
			continue
		}
		key := strings.ToLower(m)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, m)
	}
	return out
}

// uniquePhones deduplicates by trailing-ten-digit equality so the same number
// with and without a country prefix counts once.
func uniquePhones(matches []string) []string {
	out := make([]string, 0, len(matches))
	seen := make(map[string]struct{}, len(matches))
	for _, m := range matches {
		m = strings.TrimSpace(m)
		if !isPhoneLike(m) {
			continue
		}
		digits := reDigitsOnly.ReplaceAllString(m, "")
		key := digits
		if len(digits) > 10 {
			key = digits[len(digits)-10:]
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, m)
	}
	return out
}

// removeAll deletes every literal occurrence of the given fragments.
func removeAll(text string, fragments []string) string {
	for _, f := range fragments {
		if f == "" {
			continue
		}
		text = strings.ReplaceAll(text, f, " ")
	}
	return text
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
