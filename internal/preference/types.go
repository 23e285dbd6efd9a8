package preference

import "time"

// Design is a catalogued website screenshot with categorized tags.
type Design struct {
	ID       string                `json:"id"`
	Name     string                `json:"name,omitempty"`
	Image    string                `json:"image,omitempty"`
	Category string                `json:"category,omitempty"`
	Tags     map[Category][]string `json:"tags"`
	Colors   []string              `json:"colors,omitempty"`
}

// Selection is one binary choice made during a quiz session.
// RejectedID is informational only; it does not affect scoring.
type Selection struct {
	SelectedID            string    `json:"selectedId"`
	RejectedID            string    `json:"rejectedId,omitempty"`
	Timestamp             time.Time `json:"timestamp"`
	RoundNumber           int       `json:"roundNumber"`
	TimeToDecisionSeconds float64   `json:"timeToDecisionSeconds"`
}

// DesignLookup resolves design ids. Implementations must be safe for
// concurrent reads.
type DesignLookup interface {
	Design(id string) (Design, bool)
}

// DesignIndex is a map backed DesignLookup.
type DesignIndex map[string]Design

func (idx DesignIndex) Design(id string) (Design, bool) {
	d, ok := idx[id]
	return d, ok
}

// NewDesignIndex indexes designs by id. The first design wins on duplicate ids.
func NewDesignIndex(designs []Design) DesignIndex {
	idx := make(DesignIndex, len(designs))
	for _, d := range designs {
		if _, exists := idx[d.ID]; exists {
			continue
		}
		idx[d.ID] = d
	}
	return idx
}

type TagCount struct {
	Tag        string  `json:"tag"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type CategoryPreference struct {
	Top                 []TagCount `json:"top"`
	TotalTagOccurrences int        `json:"totalTagOccurrences"`
}

// StrengthLabel qualifies how dominant the top tag of a category is.
type StrengthLabel string

const (
	StrengthWeak     StrengthLabel = "weak"
	StrengthModerate StrengthLabel = "moderate"
	StrengthStrong   StrengthLabel = "strong"
)

func (l StrengthLabel) rank() int {
	switch l {
	case StrengthStrong:
		return 2
	case StrengthModerate:
		return 1
	default:
		return 0
	}
}

type StrengthScore struct {
	Category    Category      `json:"category"`
	Label       StrengthLabel `json:"label"`
	Description string        `json:"description"`
}

type ProfileMetadata struct {
	TotalSelections   int       `json:"totalSelections"`
	SkippedSelections int       `json:"skippedSelections"`
	CompletedAt       time.Time `json:"completedAt"`
}

// ResultsProfile is the derived preference summary handed to presentation
// layers. A fresh value is built on every analysis.
type ResultsProfile struct {
	Preferences        map[Category]CategoryPreference `json:"preferences"`
	StrengthScores     map[Category]StrengthScore      `json:"strengthScores"`
	Summary            string                          `json:"summary"`
	TopRecommendations []string                        `json:"topRecommendations"`
	Metadata           ProfileMetadata                 `json:"metadata"`
}
