package preference

import (
	"fmt"
	"sort"
	"strings"
)

const emptySummary = "Not enough picks yet to build a preference profile."

var recommendationTemplates = map[Category]string{
	CategoryStyle:      "Favor %s aesthetics",
	CategoryIndustry:   "Draw inspiration from %s sites",
	CategoryTypography: "Use %s typography",
	CategoryType:       "Consider a %s layout",
	CategoryCategory:   "Explore %s designs",
	CategoryPlatform:   "Consider building with %s",
	CategoryColors:     "Work with a %s color palette",
}

type rankedCategory struct {
	category Category
	strength StrengthScore
	top      TagCount
}

// Summarize builds the natural-language summary and the recommendation list
// for a scored profile. Output depends only on its arguments.
func (p Policy) Summarize(prefs map[Category]CategoryPreference, strengths map[Category]StrengthScore) (string, []string) {
	var ranked []rankedCategory
	recommendations := []string{}

	for _, c := range Categories {
		pref := prefs[c]
		if len(pref.Top) == 0 {
			continue
		}
		ranked = append(ranked, rankedCategory{category: c, strength: strengths[c], top: pref.Top[0]})
		if len(recommendations) < p.MaxRecommendations {
			recommendations = append(recommendations, fmt.Sprintf(recommendationTemplates[c], pref.Top[0].Tag))
		}
	}

	if len(ranked) == 0 {
		return emptySummary, recommendations
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		li, lj := ranked[i].strength.Label.rank(), ranked[j].strength.Label.rank()
		if li != lj {
			return li > lj
		}
		if ranked[i].top.Percentage != ranked[j].top.Percentage {
			return ranked[i].top.Percentage > ranked[j].top.Percentage
		}
		return ranked[i].category.priority() < ranked[j].category.priority()
	})

	lead := ranked[0]
	sentences := []string{
		fmt.Sprintf("Your strongest preference is %s in %s (%.0f%% of your picks).",
			lead.top.Tag, lead.category.DisplayName(), lead.top.Percentage),
	}
	if len(ranked) > 1 {
		second := ranked[1]
		sentences = append(sentences, fmt.Sprintf("You also lean toward %s in %s (%s).",
			second.top.Tag, second.category.DisplayName(), second.strength.Label))
	}
	sentences = append(sentences, overallTaste(lead.strength.Label))

	return strings.Join(sentences, " "), recommendations
}

func overallTaste(label StrengthLabel) string {
	switch label {
	case StrengthStrong:
		return "Your taste is clearly defined."
	case StrengthModerate:
		return "Your taste has a clear direction with room to explore."
	default:
		return "Your taste is eclectic and spans many directions."
	}
}
