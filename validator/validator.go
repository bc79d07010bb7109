// Package validator checks the groups data file against its JSON Schema and
// against the directory's domain rules.
//
// Validation never stops at the first problem: every structural mismatch and
// every domain violation becomes a Finding carrying a JSON Pointer into the
// document, the schema location that produced it (when applicable), and a
// best-effort source line/column. An optional fail-fast mode reduces the
// result to the single most specific finding.
package validator

import (
	"sort"
	"time"

	"github.com/rignaneseleo/groups-for-nomads/internal/findings"
	"github.com/rignaneseleo/groups-for-nomads/parser"
	"github.com/rignaneseleo/groups-for-nomads/schema"
)

// Finding represents a single validation failure.
type Finding = findings.Finding

// defaultFindingCapacity is the initial capacity for finding slices
const defaultFindingCapacity = 10

// Result contains the results of validating a groups data file.
type Result struct {
	// Valid is true if no findings were produced
	Valid bool
	// Findings contains every validation failure, in deterministic order
	// (ascending path depth, then message). In fail-fast mode it holds at
	// most one element: the deepest-path finding.
	Findings []Finding
	// FindingCount is the total number of findings
	FindingCount int
	// GroupCount is the number of entries in the document (0 when the
	// document does not follow the directory shape)
	GroupCount int
	// SourcePath is the original source path from the parsed document
	SourcePath string
	// SourceSize is the size of the source data in bytes
	SourceSize int64
	// LoadTime is the time taken to load the source data
	LoadTime time.Duration
}

// Validator handles groups data file validation.
type Validator struct {
	// FailFast reduces the findings to the single deepest-path one
	FailFast bool
	// SourceMap provides source location lookup for findings.
	// When set, findings include Line, Column, and File fields.
	SourceMap *parser.SourceMap
	// Logger receives diagnostic output; defaults to parser.NopLogger
	Logger parser.Logger
}

// New creates a new Validator instance with default settings.
func New() *Validator {
	return &Validator{}
}

// log returns the configured logger or a NopLogger.
func (v *Validator) log() parser.Logger {
	if v.Logger != nil {
		return v.Logger
	}
	return parser.NopLogger{}
}

// ValidateWithOptions validates a groups data file using functional options.
//
// Example:
//
//	result, err := validator.ValidateWithOptions(
//	    validator.WithDataFile("groups.yaml"),
//	    validator.WithFailFast(true),
//	)
//
// When no schema is supplied, the schema search order applies (explicit path,
// $GROUPS_SCHEMA, sibling of the data file, sibling of the executable, then
// the working directory).
func ValidateWithOptions(opts ...Option) (*Result, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, err
	}

	v := &Validator{
		FailFast: cfg.failFast,
		Logger:   cfg.logger,
	}

	// Parse when a file path was given; parsed input is used as-is.
	pr := cfg.parsed
	dataPath := ""
	if cfg.dataFile != nil {
		dataPath = *cfg.dataFile
		p := parser.New()
		p.Logger = cfg.logger
		parsed, err := p.Parse(dataPath)
		if err != nil {
			return nil, err
		}
		pr = parsed
	}

	sch := cfg.schema
	if sch == nil {
		sch, err = schema.LoadWithSearch(cfg.schemaPath, dataPath)
		if err != nil {
			return nil, err
		}
	}

	return v.ValidateParsed(*pr, sch)
}

// Validate parses and validates a groups data file, resolving the schema via
// the standard search order.
func (v *Validator) Validate(dataPath string) (*Result, error) {
	p := parser.New()
	p.Logger = v.Logger

	pr, err := p.Parse(dataPath)
	if err != nil {
		return nil, err
	}

	sch, err := schema.LoadWithSearch("", dataPath)
	if err != nil {
		return nil, err
	}

	return v.ValidateParsed(*pr, sch)
}

// ValidateParsed validates an already parsed data file against a compiled
// schema. Structural findings and domain findings are merged into one list;
// neither layer short-circuits the other.
func (v *Validator) ValidateParsed(pr parser.ParseResult, sch *schema.Schema) (*Result, error) {
	result := &Result{
		Findings:   make([]Finding, 0, defaultFindingCapacity),
		SourcePath: pr.SourcePath,
		SourceSize: pr.SourceSize,
		LoadTime:   pr.LoadTime,
	}

	// An explicitly injected SourceMap wins; otherwise each document
	// resolves against its own.
	sourceMap := v.SourceMap
	if sourceMap == nil {
		sourceMap = pr.SourceMap
	}

	result.Findings = append(result.Findings, v.structuralFindings(pr.Data, sch)...)

	// Domain rules only apply when the document follows the directory
	// shape; shape problems are already reported structurally.
	if dir, ok := pr.Directory(); ok {
		result.GroupCount = len(dir.Groups)
		result.Findings = append(result.Findings, v.domainFindings(dir)...)
	}

	for i := range result.Findings {
		populateFindingLocation(&result.Findings[i], sourceMap)
	}

	sortFindings(result.Findings)

	if v.FailFast && len(result.Findings) > 1 {
		result.Findings = []Finding{deepestFinding(result.Findings)}
	}

	result.FindingCount = len(result.Findings)
	result.Valid = result.FindingCount == 0

	v.log().Debug("validation complete",
		"source", result.SourcePath,
		"groups", result.GroupCount,
		"findings", result.FindingCount)

	return result, nil
}

// populateFindingLocation looks up the source location for a finding's path
// and fills in the Line, Column, and File fields when resolvable. Value
// locations are preferred, falling back to the mapping-key location.
func populateFindingLocation(f *Finding, sm *parser.SourceMap) {
	if sm == nil {
		return
	}
	loc := sm.Resolve(f.Path)
	if loc.IsKnown() {
		f.Line = loc.Line
		f.Column = loc.Column
		f.File = loc.File
	}
}

// sortFindings orders findings by ascending path depth, then message, then
// path. The ordering is total, so repeated runs over the same input yield
// byte-identical reports.
func sortFindings(fs []Finding) {
	sort.SliceStable(fs, func(i, j int) bool {
		di, dj := fs[i].Depth(), fs[j].Depth()
		if di != dj {
			return di < dj
		}
		if fs[i].Message != fs[j].Message {
			return fs[i].Message < fs[j].Message
		}
		return fs[i].Path < fs[j].Path
	})
}

// deepestFinding returns the most specific finding: the one with the deepest
// document path, ties broken by sorted order (first wins).
func deepestFinding(fs []Finding) Finding {
	best := fs[0]
	for _, f := range fs[1:] {
		if f.Depth() > best.Depth() {
			best = f
		}
	}
	return best
}
