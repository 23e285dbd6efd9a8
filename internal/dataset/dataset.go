// Package dataset reads and writes the design dataset document
// ({"metadata": {...}, "designs": [...]}) and normalizes its records into
// preference.Design values.
package dataset

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"thisorthat/internal/preference"
)

var (
	ErrMalformedDocument = errors.New("dataset: malformed document")
	ErrNoDesigns         = errors.New("dataset: no valid designs")
)

// Document is the raw on-disk dataset. Designs are kept raw so one broken
// record does not prevent the rest from loading.
type Document struct {
	Metadata map[string]any    `json:"metadata,omitempty"`
	Designs  []json.RawMessage `json:"designs"`
}

type rawDesign struct {
	ID       string          `json:"id" validate:"required,max=128"`
	Name     string          `json:"name" validate:"max=200"`
	Image    string          `json:"image" validate:"max=2048"`
	Category string          `json:"category" validate:"max=100"`
	Tags     json.RawMessage `json:"tags"`
	Colors   []any           `json:"colors"`
}

// Issue describes one record that was skipped.
type Issue struct {
	Index  int    `json:"index"`
	ID     string `json:"id,omitempty"`
	Reason string `json:"reason"`
}

// Report summarizes a normalization pass.
type Report struct {
	Total         int                       `json:"total"`
	Designs       int                       `json:"designs"`
	Skipped       int                       `json:"skipped"`
	Duplicates    int                       `json:"duplicates"`
	DroppedColors int                       `json:"droppedColors"`
	Tags          preference.NormalizeStats `json:"tags"`
	RulesVersion  string                    `json:"rulesVersion"`
	Issues        []Issue                   `json:"issues,omitempty"`
}

type Result struct {
	Metadata map[string]any
	Designs  []preference.Design
	Report   Report
}

type Loader struct {
	normalizer *preference.Normalizer
	validate   *validator.Validate
	logger     *zap.Logger
}

func NewLoader(normalizer *preference.Normalizer, logger *zap.Logger) *Loader {
	if normalizer == nil {
		normalizer = preference.NewNormalizer(nil)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{
		normalizer: normalizer,
		validate:   validator.New(validator.WithRequiredStructEnabled()),
		logger:     logger,
	}
}

// Decode parses a dataset document.
func Decode(r io.Reader) (*Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	if doc.Designs == nil {
		return nil, fmt.Errorf("%w: missing designs array", ErrMalformedDocument)
	}
	return &doc, nil
}

// LoadFile decodes and normalizes the dataset at path.
func (l *Loader) LoadFile(path string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	return l.Load(f)
}

func (l *Loader) Load(r io.Reader) (*Result, error) {
	doc, err := Decode(r)
	if err != nil {
		return nil, err
	}
	return l.Normalize(doc)
}

// Normalize validates every record and normalizes its tags and colors.
// Invalid records are skipped and reported. ErrNoDesigns is returned when
// nothing survives.
func (l *Loader) Normalize(doc *Document) (*Result, error) {
	res := &Result{
		Metadata: doc.Metadata,
		Designs:  make([]preference.Design, 0, len(doc.Designs)),
	}
	report := &res.Report
	report.Total = len(doc.Designs)
	report.RulesVersion = l.normalizer.Rules().Version

	seen := make(map[string]struct{}, len(doc.Designs))
	for i, raw := range doc.Designs {
		design, stats, droppedColors, err := l.normalizeRecord(raw)
		if err != nil {
			report.Skipped++
			report.Issues = append(report.Issues, Issue{Index: i, ID: design.ID, Reason: err.Error()})
			l.logger.Warn("skipping dataset record", zap.Int("index", i), zap.String("id", design.ID), zap.Error(err))
			continue
		}
		if _, dup := seen[design.ID]; dup {
			report.Duplicates++
			report.Issues = append(report.Issues, Issue{Index: i, ID: design.ID, Reason: "duplicate id"})
			continue
		}
		seen[design.ID] = struct{}{}

		report.Tags.Add(stats)
		report.DroppedColors += droppedColors
		res.Designs = append(res.Designs, design)
	}
	report.Designs = len(res.Designs)

	l.logger.Info("dataset normalized",
		zap.Int("total", report.Total),
		zap.Int("designs", report.Designs),
		zap.Int("skipped", report.Skipped),
		zap.Int("duplicates", report.Duplicates),
		zap.Int("tags_invalid", report.Tags.Invalid),
		zap.Int("tags_capped", report.Tags.Capped))

	if len(res.Designs) == 0 {
		return res, ErrNoDesigns
	}
	return res, nil
}

func (l *Loader) normalizeRecord(raw json.RawMessage) (preference.Design, preference.NormalizeStats, int, error) {
	var rd rawDesign
	if err := json.Unmarshal(raw, &rd); err != nil {
		return preference.Design{}, preference.NormalizeStats{}, 0, fmt.Errorf("decode record: %w", err)
	}
	rd.ID = strings.TrimSpace(rd.ID)
	design := preference.Design{
		ID:       rd.ID,
		Name:     strings.TrimSpace(rd.Name),
		Image:    strings.TrimSpace(rd.Image),
		Category: strings.TrimSpace(rd.Category),
	}
	if err := l.validate.Struct(rd); err != nil {
		return design, preference.NormalizeStats{}, 0, fmt.Errorf("invalid record: %w", err)
	}

	rawTags, err := flattenTags(rd.Tags)
	if err != nil {
		return design, preference.NormalizeStats{}, 0, err
	}
	tags, stats := l.normalizer.NormalizeTags(rawTags)
	design.Tags = tags

	colors, dropped := l.normalizeColors(rd.Colors)
	design.Colors = colors

	return design, stats, dropped, nil
}

// flattenTags accepts either an object keyed by category or a flat array.
// Object keys act as category hints; keys are visited in category priority
// order, then unknown keys in sorted order, so output is deterministic.
func flattenTags(raw json.RawMessage) ([]preference.RawTag, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("decode tags: %w", err)
	}

	switch tags := v.(type) {
	case []any:
		out := make([]preference.RawTag, 0, len(tags))
		for _, t := range tags {
			out = append(out, preference.RawTag{Value: t})
		}
		return out, nil
	case map[string]any:
		var out []preference.RawTag
		for _, key := range orderedKeys(tags) {
			switch vals := tags[key].(type) {
			case []any:
				for _, t := range vals {
					out = append(out, preference.RawTag{Value: t, Hint: key})
				}
			case string:
				out = append(out, preference.RawTag{Value: vals, Hint: key})
			}
		}
		return out, nil
	default:
		return nil, fmt.Errorf("tags must be an object or an array")
	}
}

func orderedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for _, c := range preference.Categories {
		if _, ok := m[string(c)]; ok {
			keys = append(keys, string(c))
		}
	}
	var rest []string
	for k := range m {
		if c, ok := preference.ParseCategory(k); ok && string(c) == k {
			continue
		}
		rest = append(rest, k)
	}
	sort.Strings(rest)
	return append(keys, rest...)
}

func (l *Loader) normalizeColors(raw []any) ([]string, int) {
	var (
		out     []string
		dropped int
		seen    = make(map[string]struct{}, len(raw))
	)
	for _, v := range raw {
		s, ok := v.(string)
		if !ok {
			dropped++
			continue
		}
		c := strings.ToLower(strings.TrimSpace(s))
		if c != "" && !strings.HasPrefix(c, "#") {
			c = "#" + c
		}
		if err := l.validate.Var(c, "required,hexcolor"); err != nil {
			dropped++
			continue
		}
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out, dropped
}

type encodedDocument struct {
	Metadata map[string]any      `json:"metadata"`
	Designs  []preference.Design `json:"designs"`
}

// Encode writes normalized designs as a dataset document. Normalization
// details are merged into a copy of metadata.
func Encode(w io.Writer, designs []preference.Design, metadata map[string]any, report Report) error {
	meta := make(map[string]any, len(metadata)+3)
	for k, v := range metadata {
		meta[k] = v
	}
	meta["totalDesigns"] = len(designs)
	meta["tagRulesVersion"] = report.RulesVersion
	meta["normalizedAt"] = time.Now().UTC().Format(time.RFC3339)

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(encodedDocument{Metadata: meta, Designs: designs})
}
