package search

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

var rxNonAlnum = regexp.MustCompile(`[^\p{L}\p{N}]+`)

// normalize: lowercase, punctuation to spaces, collapse whitespace.
func normalize(s string) string {
	s = strings.ToLower(s)
	s = rxNonAlnum.ReplaceAllString(s, " ")
	return strings.Join(strings.Fields(s), " ")
}

// tokenSet: unique sorted tokens of the normalized string.
func tokenSet(s string) []string {
	seen := make(map[string]struct{})
	for _, t := range strings.Fields(normalize(s)) {
		seen[t] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for t := range seen {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// ratio: normalized Damerau-Levenshtein similarity scaled to 0..100.
func ratio(a, b string) int {
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 100
	}
	d := damerauLevenshtein(a, b)
	m := len([]rune(a))
	if mb := len([]rune(b)); mb > m {
		m = mb
	}
	return int(math.Round(100 * (1 - float64(d)/float64(m))))
}

// TokenSetRatio scores a against b on 0..100, tolerant of word order and
// partial overlap: when one side's tokens are a subset of the other's the
// score is 100, otherwise the best pairwise ratio of the common token set
// and the two set unions wins.
func TokenSetRatio(a, b string) int {
	ta := tokenSet(a)
	tb := tokenSet(b)
	if len(ta) == 0 || len(tb) == 0 {
		return 0
	}

	inB := make(map[string]struct{}, len(tb))
	for _, t := range tb {
		inB[t] = struct{}{}
	}
	inA := make(map[string]struct{}, len(ta))
	for _, t := range ta {
		inA[t] = struct{}{}
	}

	var common, diffA, diffB []string
	for _, t := range ta {
		if _, ok := inB[t]; ok {
			common = append(common, t)
		} else {
			diffA = append(diffA, t)
		}
	}
	for _, t := range tb {
		if _, ok := inA[t]; !ok {
			diffB = append(diffB, t)
		}
	}

	sect := strings.Join(common, " ")
	s1 := strings.TrimSpace(sect + " " + strings.Join(diffA, " "))
	s2 := strings.TrimSpace(sect + " " + strings.Join(diffB, " "))

	best := ratio(s1, s2)
	if sect != "" {
		// a subset match scores 100 here
		if sect == s1 || sect == s2 {
			return 100
		}
		if r := ratio(sect, s1); r > best {
			best = r
		}
		if r := ratio(sect, s2); r > best {
			best = r
		}
	}
	return best
}
