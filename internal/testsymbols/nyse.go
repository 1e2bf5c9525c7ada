// Package testsymbols generates deterministic, NYSE-style stock ticker
// fixtures for exercising the cascade builder at realistic scale (spec.md
// §8 scenario E3: 65,536 distinct uppercase symbols of length 1-5).
//
// It is a Go port of original_source/test/generate_nyse_symbols.py's
// generation strategy — prefix/suffix combinations plus weighted random
// symbols drawn from industry letter patterns — using an explicitly
// seeded math/rand.Rand rather than mutating the package-level source, so
// concurrent callers with different seeds never interfere.
package testsymbols

import (
	"math/rand"
	"sort"
)

var (
	techPrefixes     = []string{"AAPL", "GOOGL", "MSFT", "META", "NFLX", "NVDA", "TSLA", "AMD", "INTC", "ORCL"}
	bankPrefixes     = []string{"JPM", "BAC", "WFC", "C", "GS", "MS", "USB", "PNC", "TFC", "COF"}
	utilityPrefixes  = []string{"NEE", "DUK", "SO", "AEP", "EXC", "XEL", "PEG", "ED", "ETR", "ES"}
	suffixes         = []string{"", "A", "B", "C", "D", "PR", "RT", "WS", "WT"}
	industryPatterns = [][]string{
		{"TECH", "SOFT", "DATA", "CYBER", "CLOUD", "AI", "ROBO"},
		{"FIN", "BANK", "CRED", "CAP", "FUND", "INVT", "LOAN"},
		{"BIO", "PHARM", "MED", "HLTH", "CARE", "DRUG", "THER"},
		{"OIL", "GAS", "ENR", "PWR", "FUEL", "COAL", "WIND"},
		{"MFG", "IND", "MACH", "AUTO", "STEEL", "CHEM", "MAT"},
		{"RTL", "SHOP", "FOOD", "CONS", "HOME", "FASH", "LUXE"},
	}
	lengthWeights = []int{5, 25, 35, 25, 10} // 1..5 char symbols
	consonants    = "BCDFGHJKLMNPQRSTVWXYZ"
	vowels        = "AEIOU"
	alphabet      = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

	maxAttemptsPerSymbol = 20
)

// Generate returns count unique NYSE-style symbols (max 5 characters),
// sorted, deterministic for a given seed. Random generation stops after
// count*maxAttemptsPerSymbol attempts, so fewer than count symbols are
// returned if that budget runs out first.
func Generate(count int, seed int64) []string {
	r := rand.New(rand.NewSource(seed))
	symbols := make(map[string]struct{}, count)

	var realPatterns []string
	realPatterns = append(realPatterns, techPrefixes...)
	realPatterns = append(realPatterns, bankPrefixes...)
	realPatterns = append(realPatterns, utilityPrefixes...)

	for _, pattern := range realPatterns {
		if len(symbols) >= count {
			break
		}
		for _, suffix := range suffixes {
			sym := pattern + suffix
			if sym != "" && len(sym) <= 5 {
				symbols[sym] = struct{}{}
				if len(symbols) >= count {
					break
				}
			}
		}
	}

	maxAttempts := count * maxAttemptsPerSymbol
	for attempts := 0; len(symbols) < count && attempts < maxAttempts; attempts++ {
		sym := generateOne(r)
		if sym != "" && len(sym) <= 5 {
			symbols[sym] = struct{}{}
		}
	}

	out := make([]string, 0, len(symbols))
	for s := range symbols {
		out = append(out, s)
	}
	sort.Strings(out)
	if len(out) > count {
		out = out[:count]
	}
	return out
}

func generateOne(r *rand.Rand) string {
	length := weightedLength(r)
	switch r.Intn(4) {
	case 0: // industry
		industry := industryPatterns[r.Intn(len(industryPatterns))]
		base := industry[r.Intn(len(industry))]
		return fitToLength(r, base, length)
	case 1: // company-style
		if length <= 2 {
			return randomLetters(r, length)
		}
		return consonantHeavy(r, length)
	case 2: // abbreviation
		patterns := []string{"ABC", "XYZ", "INC", "CRP", "GRP", "SYS", "TEC", "DEV"}
		if length >= 3 {
			base := patterns[r.Intn(len(patterns))]
			if len(base) > length-1 {
				base = base[:length-1]
			}
			return base + string(alphabet[r.Intn(len(alphabet))])
		}
		return randomLetters(r, length)
	default: // random
		return randomLetters(r, length)
	}
}

func weightedLength(r *rand.Rand) int {
	total := 0
	for _, w := range lengthWeights {
		total += w
	}
	pick := r.Intn(total)
	acc := 0
	for i, w := range lengthWeights {
		acc += w
		if pick < acc {
			return i + 1
		}
	}
	return len(lengthWeights)
}

func fitToLength(r *rand.Rand, base string, length int) string {
	switch {
	case len(base) > length:
		return base[:length]
	case len(base) == length:
		return base
	default:
		return base + randomLetters(r, length-len(base))
	}
}

func randomLetters(r *rand.Rand, n int) string {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = alphabet[r.Intn(len(alphabet))]
	}
	return string(buf)
}

func consonantHeavy(r *rand.Rand, n int) string {
	buf := make([]byte, n)
	for i := range buf {
		if i == 0 {
			buf[i] = consonants[r.Intn(len(consonants))]
			continue
		}
		if isVowel(buf[i-1]) {
			buf[i] = consonants[r.Intn(len(consonants))]
		} else {
			buf[i] = alphabet[r.Intn(len(alphabet))]
		}
	}
	return string(buf)
}

func isVowel(b byte) bool {
	for i := 0; i < len(vowels); i++ {
		if vowels[i] == b {
			return true
		}
	}
	return false
}
