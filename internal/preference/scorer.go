package preference

import (
	"fmt"
	"sort"
)

const (
	DefaultStrongThreshold    = 50.0
	DefaultModerateThreshold  = 30.0
	DefaultMaxRecommendations = 5
)

// Policy holds the tunable parameters of the scorer and summary generator.
// Thresholds are percentages of total selections carried by a category's
// top tag.
type Policy struct {
	StrongThreshold    float64
	ModerateThreshold  float64
	MaxRecommendations int
}

func DefaultPolicy() Policy {
	return Policy{
		StrongThreshold:    DefaultStrongThreshold,
		ModerateThreshold:  DefaultModerateThreshold,
		MaxRecommendations: DefaultMaxRecommendations,
	}
}

// Validate checks that thresholds are ordered and inside (0, 100].
func (p Policy) Validate() error {
	if p.StrongThreshold <= 0 || p.StrongThreshold > 100 {
		return fmt.Errorf("strong threshold %.1f out of range (0, 100]", p.StrongThreshold)
	}
	if p.ModerateThreshold <= 0 || p.ModerateThreshold > 100 {
		return fmt.Errorf("moderate threshold %.1f out of range (0, 100]", p.ModerateThreshold)
	}
	if p.ModerateThreshold >= p.StrongThreshold {
		return fmt.Errorf("moderate threshold %.1f must be below strong threshold %.1f",
			p.ModerateThreshold, p.StrongThreshold)
	}
	if p.MaxRecommendations < 0 {
		return fmt.Errorf("max recommendations must not be negative")
	}
	return nil
}

// Percentage returns round(count/total*100) with half-up rounding, clamped
// to [0, 100]. A zero total yields 0.
func Percentage(count, total int) float64 {
	if total <= 0 || count <= 0 {
		return 0
	}
	// integer half-up: floor((200*count + total) / (2*total))
	pct := (200*count + total) / (2 * total)
	if pct > 100 {
		pct = 100
	}
	return float64(pct)
}

// Rank orders a category tally by descending count. Ties keep first-seen
// order.
func Rank(ct *CategoryTally, totalSelections int) CategoryPreference {
	pref := CategoryPreference{Top: []TagCount{}}
	if ct == nil {
		return pref
	}
	top := make([]TagCount, 0, len(ct.Tags))
	for _, tag := range ct.Tags {
		count := ct.Counts[tag]
		top = append(top, TagCount{
			Tag:        tag,
			Count:      count,
			Percentage: Percentage(count, totalSelections),
		})
	}
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Count > top[j].Count
	})
	pref.Top = top
	pref.TotalTagOccurrences = ct.Total
	return pref
}

// Label maps the top tag percentage of a category to a strength label.
func (p Policy) Label(topPercentage float64) StrengthLabel {
	switch {
	case topPercentage >= p.StrongThreshold:
		return StrengthStrong
	case topPercentage >= p.ModerateThreshold:
		return StrengthModerate
	default:
		return StrengthWeak
	}
}

// Strength scores one category preference.
func (p Policy) Strength(c Category, pref CategoryPreference) StrengthScore {
	if len(pref.Top) == 0 {
		return StrengthScore{
			Category:    c,
			Label:       StrengthWeak,
			Description: fmt.Sprintf("No clear preference in %s yet", c.DisplayName()),
		}
	}
	top := pref.Top[0]
	label := p.Label(top.Percentage)
	return StrengthScore{
		Category:    c,
		Label:       label,
		Description: describeStrength(c, label, top.Tag),
	}
}

func describeStrength(c Category, label StrengthLabel, tag string) string {
	switch label {
	case StrengthStrong:
		return fmt.Sprintf("You show a strong preference for %s in %s", tag, c.DisplayName())
	case StrengthModerate:
		return fmt.Sprintf("You show a moderate preference for %s in %s", tag, c.DisplayName())
	default:
		return fmt.Sprintf("You show a weak preference for %s in %s, your picks vary", tag, c.DisplayName())
	}
}

// Score converts a tally into ranked preferences and strength scores for
// every category.
func (p Policy) Score(t TallyResult) (map[Category]CategoryPreference, map[Category]StrengthScore) {
	prefs := make(map[Category]CategoryPreference, len(Categories))
	strengths := make(map[Category]StrengthScore, len(Categories))
	for _, c := range Categories {
		var pref CategoryPreference
		if t.Selections == 0 {
			pref = CategoryPreference{Top: []TagCount{}}
		} else {
			pref = Rank(t.Categories[c], t.Selections)
		}
		prefs[c] = pref
		strengths[c] = p.Strength(c, pref)
	}
	return prefs, strengths
}
