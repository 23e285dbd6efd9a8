package preference

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// MaxTagLength is the exclusive upper bound on a tag's length in runes.
	MaxTagLength = 50
	// MaxTagsPerCategory caps each category's tag list after categorization.
	MaxTagsPerCategory = 6
)

// RawTag is a tag value as found in source data, with an optional category
// hint taken from the key it was listed under.
type RawTag struct {
	Value any
	Hint  string
}

// NormalizeStats reports what the normalizer discarded for one design.
type NormalizeStats struct {
	Kept       int `json:"kept"`
	Invalid    int `json:"invalid"`
	Duplicates int `json:"duplicates"`
	Capped     int `json:"capped"`
}

func (s *NormalizeStats) Add(o NormalizeStats) {
	s.Kept += o.Kept
	s.Invalid += o.Invalid
	s.Duplicates += o.Duplicates
	s.Capped += o.Capped
}

// Normalizer cleans raw tags and sorts them into categories.
type Normalizer struct {
	rules          *RuleSet
	maxPerCategory int
}

// NewNormalizer builds a normalizer over rules. A nil rule set selects the
// embedded default table.
func NewNormalizer(rules *RuleSet) *Normalizer {
	if rules == nil {
		rules = DefaultRuleSet()
	}
	return &Normalizer{rules: rules, maxPerCategory: MaxTagsPerCategory}
}

func (n *Normalizer) Rules() *RuleSet {
	return n.rules
}

// CleanTag trims a raw tag value. Non-string values, empty strings,
// delimiter-only strings and tags of MaxTagLength runes or more are rejected.
func CleanTag(raw any) (string, bool) {
	s, ok := raw.(string)
	if !ok {
		return "", false
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	if strings.IndexFunc(s, isTagRune) < 0 {
		return "", false
	}
	if utf8.RuneCountInString(s) >= MaxTagLength {
		return "", false
	}
	return s, true
}

// isTagRune reports whether r can carry meaning in a tag. Punctuation,
// symbols and spaces alone never do.
func isTagRune(r rune) bool {
	return !unicode.IsPunct(r) && !unicode.IsSymbol(r) && !unicode.IsSpace(r)
}

// Normalize cleans one tag and decides its category. A known category hint
// is kept as is; otherwise the rule table decides.
func (n *Normalizer) Normalize(raw any, hint string) (string, Category, bool) {
	tag, ok := CleanTag(raw)
	if !ok {
		return "", "", false
	}
	if cat, ok := ParseCategory(hint); ok {
		return tag, cat, true
	}
	return tag, n.rules.Categorize(tag), true
}

// NormalizeTags normalizes the full tag list of one design. Exact duplicates
// are removed before categorization and each category keeps at most
// MaxTagsPerCategory tags in their original order.
func (n *Normalizer) NormalizeTags(raw []RawTag) (map[Category][]string, NormalizeStats) {
	var stats NormalizeStats
	out := make(map[Category][]string)
	seen := make(map[string]struct{}, len(raw))

	for _, rt := range raw {
		tag, ok := CleanTag(rt.Value)
		if !ok {
			stats.Invalid++
			continue
		}
		if _, dup := seen[tag]; dup {
			stats.Duplicates++
			continue
		}
		seen[tag] = struct{}{}

		_, cat, _ := n.Normalize(tag, rt.Hint)
		if len(out[cat]) >= n.maxPerCategory {
			stats.Capped++
			continue
		}
		out[cat] = append(out[cat], tag)
		stats.Kept++
	}
	return out, stats
}
