package preference

import "strings"

// Category is one of the fixed preference dimensions a design is tagged along.
type Category string

const (
	CategoryStyle      Category = "style"
	CategoryIndustry   Category = "industry"
	CategoryTypography Category = "typography"
	CategoryType       Category = "type"
	CategoryCategory   Category = "category"
	CategoryPlatform   Category = "platform"
	CategoryColors     Category = "colors"
)

// Categories lists every category in priority order. Recommendations and
// summaries walk categories in this order.
var Categories = []Category{
	CategoryStyle,
	CategoryIndustry,
	CategoryTypography,
	CategoryType,
	CategoryCategory,
	CategoryPlatform,
	CategoryColors,
}

var displayNames = map[Category]string{
	CategoryStyle:      "Visual Style",
	CategoryIndustry:   "Industry",
	CategoryTypography: "Typography",
	CategoryType:       "Site Type",
	CategoryCategory:   "Category",
	CategoryPlatform:   "Platform",
	CategoryColors:     "Color Palette",
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	_, ok := displayNames[c]
	return ok
}

// DisplayName returns the human readable label used in descriptions.
func (c Category) DisplayName() string {
	if name, ok := displayNames[c]; ok {
		return name
	}
	return string(c)
}

func (c Category) priority() int {
	for i, cat := range Categories {
		if cat == c {
			return i
		}
	}
	return len(Categories)
}

// ParseCategory maps a raw key (any case, surrounding spaces) to a Category.
func ParseCategory(raw string) (Category, bool) {
	c := Category(strings.ToLower(strings.TrimSpace(raw)))
	if !c.Valid() {
		return "", false
	}
	return c, true
}
