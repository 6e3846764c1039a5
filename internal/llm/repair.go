package llm

import (
	"encoding/json"
	"regexp"
	"strings"
)

var reTrailingComma = regexp.MustCompile(`,\s*([}\]])`)

// RepairJSONString locates the JSON object embedded in an arbitrary string
// and best-effort repairs it. The policy is two tries only: strip trailing
// commas and parse; on failure rewrite single-quoted literals to
// double-quoted, re-strip and parse once more. A false return means no
// structured extraction is available and the caller should fall back to the
// heuristic parser.
func RepairJSONString(input string) (string, bool) {
	start := strings.Index(input, "{")
	end := strings.LastIndex(input, "}")
	if start == -1 || end == -1 || end < start {
		return "", false
	}

	candidate := stripTrailingCommas(input[start : end+1])
	if json.Valid([]byte(candidate)) {
		return candidate, true
	}

	repaired := stripTrailingCommas(rewriteSingleQuotes(candidate))
	if json.Valid([]byte(repaired)) {
		return repaired, true
	}
	return "", false
}

func stripTrailingCommas(s string) string {
	return reTrailingComma.ReplaceAllString(s, "$1")
}

// rewriteSingleQuotes converts single-quoted string literals to double-quoted
// ones, honoring escaped quotes and leaving double-quoted literals intact.
func rewriteSingleQuotes(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inDouble, inSingle := false, false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '\\' && i+1 < len(s) && (inDouble || inSingle):
			next := s[i+1]
			if inSingle && next == '\'' {
				// \' has no meaning in JSON once the literal is double-quoted
				b.WriteByte('\'')
			} else {
				b.WriteByte(c)
				b.WriteByte(next)
			}
			i++
		case c == '"' && inSingle:
			b.WriteString(`\"`)
		case c == '"':
			inDouble = !inDouble
			b.WriteByte(c)
		case c == '\'' && !inDouble:
			inSingle = !inSingle
			b.WriteByte('"')
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
