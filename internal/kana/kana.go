// Package kana renders romanized mora units as hiragana or katakana.
package kana

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/f3rmion/onamer/internal/phoneme"
)

const smallTsu = "っ"

var hiragana = map[string]string{
	"a": "あ", "i": "い", "u": "う", "e": "え", "o": "お",
	"ka": "か", "ki": "き", "ku": "く", "ke": "け", "ko": "こ",
	"sa": "さ", "shi": "し", "su": "す", "se": "せ", "so": "そ",
	"ta": "た", "chi": "ち", "tsu": "つ", "te": "て", "to": "と",
	"na": "な", "ni": "に", "nu": "ぬ", "ne": "ね", "no": "の",
	"ha": "は", "hi": "ひ", "fu": "ふ", "he": "へ", "ho": "ほ",
	"ma": "ま", "mi": "み", "mu": "む", "me": "め", "mo": "も",
	"ya": "や", "yu": "ゆ", "yo": "よ",
	"ra": "ら", "ri": "り", "ru": "る", "re": "れ", "ro": "ろ",
	"wa": "わ", "wo": "を", "n": "ん",
	"ga": "が", "gi": "ぎ", "gu": "ぐ", "ge": "げ", "go": "ご",
	"za": "ざ", "ji": "じ", "zu": "ず", "ze": "ぜ", "zo": "ぞ",
	"da": "だ", "de": "で", "do": "ど",
	"ba": "ば", "bi": "び", "bu": "ぶ", "be": "べ", "bo": "ぼ",
	"pa": "ぱ", "pi": "ぴ", "pu": "ぷ", "pe": "ぺ", "po": "ぽ",
	"kya": "きゃ", "kyu": "きゅ", "kyo": "きょ",
	"sha": "しゃ", "shu": "しゅ", "sho": "しょ",
	"cha": "ちゃ", "chu": "ちゅ", "cho": "ちょ",
	"nya": "にゃ", "nyu": "にゅ", "nyo": "にょ",
	"hya": "ひゃ", "hyu": "ひゅ", "hyo": "ひょ",
	"mya": "みゃ", "myu": "みゅ", "myo": "みょ",
	"rya": "りゃ", "ryu": "りゅ", "ryo": "りょ",
	"gya": "ぎゃ", "gyu": "ぎゅ", "gyo": "ぎょ",
	"ja": "じゃ", "ju": "じゅ", "jo": "じょ",
	"bya": "びゃ", "byu": "びゅ", "byo": "びょ",
	"pya": "ぴゃ", "pyu": "ぴゅ", "pyo": "ぴょ",
}

// geminate bases that only occur after a doubled consonant
var geminateOnly = map[string]string{
	"ti": "ち",
	"tu": "つ",
}

// Hiragana renders units as hiragana. A unit starting with a doubled
// consonant ("kka", "tte") renders as small tsu followed by its base.
func Hiragana(units []string) (string, error) {
	var b strings.Builder
	for _, u := range units {
		k, err := unit(u)
		if err != nil {
			return "", err
		}
		b.WriteString(k)
	}
	return b.String(), nil
}

// Katakana renders units as katakana.
func Katakana(units []string) (string, error) {
	h, err := Hiragana(units)
	if err != nil {
		return "", err
	}
	return ToKatakana(h), nil
}

// ToKatakana shifts every hiragana rune in s to its katakana form.
func ToKatakana(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'ぁ' && r <= 'ゖ' {
			return r + ('ァ' - 'ぁ')
		}
		return r
	}, s)
}

// FromWord segments a generated word against inv and renders it as
// hiragana. Words that do not segment fully are an error.
func FromWord(word string, inv *phoneme.Units) (string, error) {
	units, ok := phoneme.Segment(word, inv)
	if !ok {
		return "", fmt.Errorf("segmenting %q: no unit matches after %q", word, strings.Join(units, ""))
	}
	return Hiragana(units)
}

func unit(u string) (string, error) {
	if k, ok := hiragana[u]; ok {
		return k, nil
	}
	if utf8.RuneCountInString(u) > 2 && u[0] == u[1] {
		base := u[1:]
		if k, ok := hiragana[base]; ok {
			return smallTsu + k, nil
		}
		if k, ok := geminateOnly[base]; ok {
			return smallTsu + k, nil
		}
	}
	return "", fmt.Errorf("no kana for unit %q", u)
}
