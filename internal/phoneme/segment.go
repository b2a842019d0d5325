package phoneme

import "unicode/utf8"

// Segment splits word into units of u, always taking the longest unit that
// matches at the current position. It returns the units consumed and whether
// the whole word was covered. "kitte" splits as [ki tte]; "kix" stops after
// [ki] and reports false.
//
// The split is not always the one a word was generated from: "n" followed by
// a "ya" unit reads back as [nya], so the kana shown is にゃ rather than んや.
func Segment(word string, u *Units) ([]string, bool) {
	var out []string
	rest := word
	for rest != "" {
		unit := longestPrefix(rest, u)
		if unit == "" {
			return out, false
		}
		out = append(out, unit)
		rest = rest[len(unit):]
	}
	return out, true
}

func longestPrefix(s string, u *Units) string {
	n := utf8.RuneCountInString(s)
	if n > u.maxLen {
		n = u.maxLen
	}
	for ; n > 0; n-- {
		if cand := prefixRunes(s, n); u.known[cand] {
			return cand
		}
	}
	return ""
}

func prefixRunes(s string, n int) string {
	i := 0
	for ; n > 0 && i < len(s); n-- {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return s[:i]
}
