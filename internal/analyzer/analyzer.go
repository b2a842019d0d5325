// Package analyzer classifies generated words by predicates over adjacent
// character pairs.
package analyzer

import (
	"strings"

	"github.com/f3rmion/onamer/internal/onamer"
)

const (
	leftHand  = "qwertasdfgzxcvb"
	rightHand = "yuiophjklnm"
)

// SmoothnessSupported reports whether Smooth implements a real rule. It is
// false: the smoothness predicate rejects every pair until its phonetic
// rules are defined.
const SmoothnessSupported = false

// IsLeftHand reports whether r is typed with the left hand on QWERTY.
func IsLeftHand(r rune) bool { return strings.ContainsRune(leftHand, r) }

// IsRightHand reports whether r is typed with the right hand on QWERTY.
func IsRightHand(r rune) bool { return strings.ContainsRune(rightHand, r) }

// HandBalanced reports whether a and b are typed by different hands.
// Characters outside both hand sets never balance.
func HandBalanced(a, b rune) bool {
	return (IsLeftHand(a) && IsRightHand(b)) || (IsRightHand(a) && IsLeftHand(b))
}

// Smooth is the phonetic smoothness predicate. See SmoothnessSupported.
func Smooth(a, b rune) bool {
	return false
}

// pairOK applies the flag combination to one adjacent pair.
func pairOK(a, b rune, f onamer.Flags) bool {
	switch {
	case f.HandBalance && f.Smoothness:
		return HandBalanced(a, b) || Smooth(a, b)
	case f.HandBalance:
		return HandBalanced(a, b)
	case f.Smoothness:
		return Smooth(a, b)
	default:
		return true
	}
}

// Accepts reports whether every adjacent pair of word satisfies the flags.
// Words shorter than two characters have no pair and are accepted.
func Accepts(word string, f onamer.Flags) bool {
	if !f.Any() {
		return true
	}
	runes := []rune(word)
	for i := 1; i < len(runes); i++ {
		if !pairOK(runes[i-1], runes[i], f) {
			return false
		}
	}
	return true
}

// Analyze maps each word to its verdict. Duplicate words collapse into one
// entry; the input slice is not modified.
func Analyze(words []string, f onamer.Flags) map[string]bool {
	out := make(map[string]bool, len(words))
	for _, w := range words {
		if _, done := out[w]; done {
			continue
		}
		out[w] = Accepts(w, f)
	}
	return out
}

// Summary counts accepted and rejected entries of a verdict map.
func Summary(result map[string]bool) (accepted, rejected int) {
	for _, ok := range result {
		if ok {
			accepted++
		} else {
			rejected++
		}
	}
	return accepted, rejected
}

// Filter returns the words of the batch that Accepts, preserving order and
// duplicates.
func Filter(words []string, f onamer.Flags) []string {
	var out []string
	for _, w := range words {
		if Accepts(w, f) {
			out = append(out, w)
		}
	}
	return out
}
