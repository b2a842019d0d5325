package phoneme

// Builtin inventory data. The constructors below cannot fail for these
// values; a failure would be a programming error and panics at first use.

const (
	englishVowels     = "aeiou"
	englishConsonants = "qwrtypsdfghjklzxcvbnm"

	genericVowels     = "aeiou"
	genericConsonants = "bcdfghjklmnprstvwz"
)

var genericClusters = []string{
	"bl", "br", "cl", "cr", "dr", "fl", "fr", "gl", "gr", "pl", "pr",
	"sc", "sk", "sl", "sm", "sn", "sp", "st", "sw", "tr", "tw",
}

// japaneseUnits is the mora catalog in gojuon order, followed by voiced,
// semi-voiced, contracted and geminate units.
var japaneseUnits = []string{
	"a", "i", "u", "e", "o",
	"ka", "ki", "ku", "ke", "ko",
	"sa", "shi", "su", "se", "so",
	"ta", "chi", "tsu", "te", "to",
	"na", "ni", "nu", "ne", "no",
	"ha", "hi", "fu", "he", "ho",
	"ma", "mi", "mu", "me", "mo",
	"ya", "yu", "yo",
	"ra", "ri", "ru", "re", "ro",
	"wa", "wo", "n",
	"ga", "gi", "gu", "ge", "go",
	"za", "ji", "zu", "ze", "zo",
	"da", "de", "do",
	"ba", "bi", "bu", "be", "bo",
	"pa", "pi", "pu", "pe", "po",
	"kya", "kyu", "kyo", "sha", "shu", "sho", "cha", "chu", "cho",
	"nya", "nyu", "nyo", "hya", "hyu", "hyo", "mya", "myu", "myo",
	"rya", "ryu", "ryo", "gya", "gyu", "gyo", "ja", "ju", "jo",
	"bya", "byu", "byo", "pya", "pyu", "pyo",
	"kka", "kki", "kku", "kke", "kko",
	"ssa", "sshi", "ssu", "sse", "sso",
	"tta", "tti", "ttu", "tte", "tto",
	"ppa", "ppi", "ppu", "ppe", "ppo",
}

// japaneseGeminates begin with a doubled consonant and cannot open a word.
var japaneseGeminates = []string{
	"kka", "kki", "kku", "kke", "kko",
	"ssa", "sshi", "ssu", "sse", "sso",
	"tta", "tti", "ttu", "tte", "tto",
	"ppa", "ppi", "ppu", "ppe", "ppo",
}

// English returns the English-like letter inventory.
func English() *Letters {
	return mustLetters(NewLetters(englishVowels, englishConsonants, nil))
}

// Generic returns the cluster-aware phonotactic inventory.
func Generic() *Letters {
	return mustLetters(NewLetters(genericVowels, genericConsonants, genericClusters))
}

// Japanese returns the mora inventory with geminates restricted from the start.
func Japanese() *Units {
	u, err := NewUnits(japaneseUnits, japaneseGeminates)
	if err != nil {
		panic(err)
	}
	return u
}

// JapaneseUnits returns the raw catalog so callers can derive their own models.
func JapaneseUnits() (units, restricted []string) {
	return append([]string(nil), japaneseUnits...), append([]string(nil), japaneseGeminates...)
}

// GenericClusters returns the cluster tokens of the generic model.
func GenericClusters() []string {
	return append([]string(nil), genericClusters...)
}

func mustLetters(l *Letters, err error) *Letters {
	if err != nil {
		panic(err)
	}
	return l
}
