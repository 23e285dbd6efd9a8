package preference

import (
	_ "embed"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

//go:embed rules.yaml
var defaultRulesYAML []byte

// Rule maps tags matching Pattern to Category.
type Rule struct {
	Name     string
	Category Category
	Pattern  *regexp.Regexp
}

// RuleSet is an ordered, versioned list of categorization rules.
// Evaluation stops at the first matching rule.
type RuleSet struct {
	Version string
	Rules   []Rule
}

type ruleFile struct {
	Version string `yaml:"version"`
	Rules   []struct {
		Name     string `yaml:"name"`
		Category string `yaml:"category"`
		Pattern  string `yaml:"pattern"`
	} `yaml:"rules"`
}

// ParseRuleSet decodes a YAML rule table. Unknown categories and invalid
// patterns are rejected.
func ParseRuleSet(data []byte) (*RuleSet, error) {
	var rf ruleFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("decode tag rules: %w", err)
	}
	if len(rf.Rules) == 0 {
		return nil, fmt.Errorf("tag rules: no rules defined")
	}

	rs := &RuleSet{Version: rf.Version, Rules: make([]Rule, 0, len(rf.Rules))}
	for i, r := range rf.Rules {
		cat, ok := ParseCategory(r.Category)
		if !ok {
			return nil, fmt.Errorf("tag rule %d (%s): unknown category %q", i, r.Name, r.Category)
		}
		re, err := regexp.Compile(r.Pattern)
		if err != nil {
			return nil, fmt.Errorf("tag rule %d (%s): %w", i, r.Name, err)
		}
		rs.Rules = append(rs.Rules, Rule{Name: r.Name, Category: cat, Pattern: re})
	}
	return rs, nil
}

// LoadRuleSet reads a rule table from path, or returns the embedded default
// table when path is empty.
func LoadRuleSet(path string) (*RuleSet, error) {
	if path == "" {
		return DefaultRuleSet(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tag rules %s: %w", path, err)
	}
	return ParseRuleSet(data)
}

var defaultRuleSet = mustParseDefault()

func mustParseDefault() *RuleSet {
	rs, err := ParseRuleSet(defaultRulesYAML)
	if err != nil {
		panic(err)
	}
	return rs
}

// DefaultRuleSet returns the embedded rule table.
func DefaultRuleSet() *RuleSet {
	return defaultRuleSet
}

// Match returns the rule deciding tag's category, if any.
func (rs *RuleSet) Match(tag string) (Rule, bool) {
	for _, r := range rs.Rules {
		if r.Pattern.MatchString(tag) {
			return r, true
		}
	}
	return Rule{}, false
}

// Categorize returns the category of the first matching rule, falling back
// to style when nothing matches.
func (rs *RuleSet) Categorize(tag string) Category {
	if r, ok := rs.Match(tag); ok {
		return r.Category
	}
	return CategoryStyle
}
