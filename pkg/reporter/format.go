package reporter

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/yaklabco/treelint/pkg/analysis"
)

// Format names an output format.
type Format string

// Output formats supported by the reporter.
const (
	FormatText    Format = "text"
	FormatTable   Format = "table"
	FormatJSON    Format = "json"
	FormatSARIF   Format = "sarif"
	FormatSummary Format = "summary"
)

// Renderer writes a prepared report. Renderers hold no state between calls.
type Renderer interface {
	Render(ctx context.Context, report *analysis.Report) error
}

//nolint:gochecknoglobals // read-only lookup table
var renderers = map[Format]func(Options) Renderer{
	FormatText:    func(o Options) Renderer { return NewTextRenderer(o) },
	FormatTable:   func(o Options) Renderer { return NewTableRenderer(o) },
	FormatJSON:    func(o Options) Renderer { return NewJSONRenderer(o) },
	FormatSARIF:   func(o Options) Renderer { return NewSARIFRenderer(o) },
	FormatSummary: func(o Options) Renderer { return NewSummaryRenderer(o) },
}

// Formats returns every supported format name, sorted.
func Formats() []string {
	names := make([]string, 0, len(renderers))
	for f := range renderers {
		names = append(names, string(f))
	}
	slices.Sort(names)
	return names
}

// ParseFormat parses a format name. The empty string selects text.
func ParseFormat(name string) (Format, error) {
	if name == "" {
		return FormatText, nil
	}
	format := Format(name)
	if !format.IsValid() {
		return "", fmt.Errorf("%w %q; valid formats: %s", ErrUnknownFormat, name, strings.Join(Formats(), ", "))
	}
	return format, nil
}

// IsValid reports whether a renderer exists for f.
func (f Format) IsValid() bool {
	_, ok := renderers[f]
	return ok
}
