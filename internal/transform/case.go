package transform

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/krakjn/filenamefmt/internal/classify"
)

var wsRun = regexp.MustCompile(`\s+`)

// isSep reports whether r is an existing word separator.
func isSep(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}

func styleSep(style classify.Style) rune {
	if style == classify.StyleKebab {
		return '-'
	}
	return '_'
}

// recase rewrites s into the given casing convention. Word boundaries are
// existing separators, lower-to-upper transitions, acronym ends (upper
// followed by upper-then-lower), and letter/digit transitions. Leading
// separator runs are kept verbatim so names like "_archive" survive;
// other punctuation passes through untouched. The function is idempotent:
// recasing its own output changes nothing.
func recase(s string, style classify.Style) string {
	if style == classify.StyleVerbatim {
		return s
	}
	sep := styleSep(style)
	runes := []rune(s)

	var b strings.Builder
	b.Grow(len(s) + 4)

	i := 0
	for i < len(runes) && isSep(runes[i]) {
		b.WriteRune(runes[i])
		i++
	}

	pending := false // a separator is owed before the next character
	var prev rune    // last non-separator rune written, 0 if none

	flush := func() {
		if pending {
			b.WriteRune(sep)
			pending = false
		}
	}

	for ; i < len(runes); i++ {
		r := runes[i]
		switch {
		case isSep(r):
			if prev != 0 {
				pending = true
			}
		case unicode.IsUpper(r):
			switch {
			case prev == 0:
			case unicode.IsLower(prev) || unicode.IsDigit(prev):
				pending = true
			case unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1]):
				pending = true
			}
			flush()
			b.WriteRune(unicode.ToLower(r))
			prev = r
		case unicode.IsDigit(r):
			if prev != 0 && unicode.IsLetter(prev) {
				pending = true
			}
			flush()
			b.WriteRune(r)
			prev = r
		case unicode.IsLetter(r):
			if prev != 0 && unicode.IsDigit(prev) {
				pending = true
			}
			flush()
			b.WriteRune(r)
			prev = r
		default:
			flush()
			b.WriteRune(r)
			prev = r
		}
	}
	return b.String()
}

// recaseSegments recases the text between whitespace runs while keeping
// the whitespace itself verbatim. Used when space replacement is disabled:
// spaces still delimit words for casing but must survive the rewrite.
func recaseSegments(s string, style classify.Style) string {
	locs := wsRun.FindAllStringIndex(s, -1)
	if len(locs) == 0 {
		return recase(s, style)
	}
	var b strings.Builder
	b.Grow(len(s))
	prev := 0
	for _, loc := range locs {
		b.WriteString(recase(s[prev:loc[0]], style))
		b.WriteString(s[loc[0]:loc[1]])
		prev = loc[1]
	}
	b.WriteString(recase(s[prev:], style))
	return b.String()
}
