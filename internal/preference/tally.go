package preference

import "go.uber.org/zap"

// CategoryTally holds raw tag counts for one category. Tags keeps the order
// in which each tag was first counted.
type CategoryTally struct {
	Tags   []string
	Counts map[string]int
	Total  int
}

func newCategoryTally() *CategoryTally {
	return &CategoryTally{Counts: make(map[string]int)}
}

func (t *CategoryTally) add(tag string) {
	if _, ok := t.Counts[tag]; !ok {
		t.Tags = append(t.Tags, tag)
	}
	t.Counts[tag]++
	t.Total++
}

// TallyResult is the output of a tally pass over a selection history.
type TallyResult struct {
	Categories map[Category]*CategoryTally
	Selections int
	Skipped    int
}

// Tally counts, per category, the tags of every selected design. Selections
// whose design cannot be resolved are skipped and logged; rejected designs
// are not scored.
func Tally(selections []Selection, designs DesignLookup, logger *zap.Logger) TallyResult {
	if logger == nil {
		logger = zap.NewNop()
	}

	res := TallyResult{
		Categories: make(map[Category]*CategoryTally, len(Categories)),
		Selections: len(selections),
	}
	for _, c := range Categories {
		res.Categories[c] = newCategoryTally()
	}

	for _, sel := range selections {
		design, ok := designs.Design(sel.SelectedID)
		if !ok {
			res.Skipped++
			logger.Warn("selection references unknown design",
				zap.String("selected_id", sel.SelectedID),
				zap.Int("round", sel.RoundNumber))
			continue
		}
		for _, c := range Categories {
			ct := res.Categories[c]
			for _, tag := range design.Tags[c] {
				ct.add(tag)
			}
		}
	}
	return res
}
