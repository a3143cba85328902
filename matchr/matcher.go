// Package matchr aligns scraped pass names with catalog entries using
// Jaro-Winkler similarity from github.com/antzucaro/matchr.
package matchr

import (
	"strings"

	"github.com/antzucaro/matchr"
	"github.com/fwojciec/alpenpass"
)

// DefaultThreshold is the minimum similarity for a match. It separates
// Glaubenbergpass from Glaubenbielenpass, the closest pair in the catalog.
const DefaultThreshold = 0.95

var _ alpenpass.NameMatcher = (*Matcher)(nil)

// Matcher compares names after folding case, umlauts and punctuation.
type Matcher struct {
	threshold float64
}

// NewMatcher returns a Matcher accepting names at or above threshold.
// A threshold outside (0, 1] falls back to DefaultThreshold.
func NewMatcher(threshold float64) *Matcher {
	if threshold <= 0 || threshold > 1 {
		threshold = DefaultThreshold
	}
	return &Matcher{threshold: threshold}
}

// MatchName reports whether name is similar enough to the entry's name.
func (m *Matcher) MatchName(entry alpenpass.CatalogEntry, name string) bool {
	return m.Similarity(entry.Name, name) >= m.threshold
}

// Similarity returns the Jaro-Winkler similarity of two normalized names.
func (m *Matcher) Similarity(a, b string) float64 {
	a, b = normalize(a), normalize(b)
	if a == "" || b == "" {
		return 0
	}
	return matchr.JaroWinkler(a, b, false)
}

var umlauts = strings.NewReplacer("ä", "ae", "ö", "oe", "ü", "ue", "ß", "ss", "è", "e", "é", "e")

// normalize lower-cases s, spells out umlauts and drops everything that
// is not a letter or digit.
func normalize(s string) string {
	s = umlauts.Replace(strings.ToLower(s))
	return strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return r
		}
		return -1
	}, s)
}
