package statement

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spendwise-dev/spendwise/internal/model"
)

// Parser converts a raw statement export into a normalized Statement.
type Parser interface {
	Parse(r io.Reader) (*model.Statement, error)
	Format() string
}

// FormatError reports an unusable input: an unsupported file type, a
// missing required column, or a table that cannot be read at all.
// Individual bad rows are not FormatErrors; they are dropped.
type FormatError struct {
	Reason string
}

func (e *FormatError) Error() string {
	return e.Reason
}

func formatErrorf(format string, args ...any) *FormatError {
	return &FormatError{Reason: fmt.Sprintf(format, args...)}
}

// reservedCategories are bookkeeping labels, not spending; rows carrying
// them are excluded during normalization.
var reservedCategories = map[string]bool{
	"Savings": true,
	"Income":  true,
}

// Reserved reports whether category is excluded from the spending view.
func Reserved(category string) bool {
	return reservedCategories[category]
}

// Registry holds parsers keyed by format name.
type Registry struct {
	parsers map[string]Parser
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[string]Parser)}
}

// Register adds a parser. Panics on duplicate format.
func (r *Registry) Register(p Parser) {
	key := strings.ToLower(p.Format())
	if _, ok := r.parsers[key]; ok {
		panic("duplicate parser format: " + key)
	}
	r.parsers[key] = p
}

// Get returns the parser for format, or nil.
func (r *Registry) Get(format string) Parser {
	return r.parsers[strings.ToLower(format)]
}

// DefaultRegistry returns a registry with all built-in parsers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&DelimitedParser{format: "csv", comma: ','})
	r.Register(&DelimitedParser{format: "tsv", comma: '\t'})
	return r
}

// FormatForFile derives the declared format from a file name, e.g.
// "export.csv" -> "csv". Empty when the name has no extension.
func FormatForFile(name string) string {
	ext := strings.TrimPrefix(filepath.Ext(name), ".")
	return strings.ToLower(ext)
}

// ParseFile normalizes the statement export at path, choosing the parser
// by file extension. An unknown extension is a FormatError.
func (r *Registry) ParseFile(path string) (*model.Statement, error) {
	format := FormatForFile(path)
	p := r.Get(format)
	if p == nil {
		return nil, formatErrorf("unsupported statement format %q: expected a delimited table (.csv or .tsv)", format)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening statement: %w", err)
	}
	defer f.Close()

	return p.Parse(f)
}
