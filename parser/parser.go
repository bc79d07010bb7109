// Package parser loads the groups data file into a position-annotated
// document tree.
//
// Parsing always records per-node source positions in a SourceMap keyed by
// JSON Pointer, so downstream validation findings can point at exact lines.
// The parsed result carries both the generic decoded data (for schema
// validation) and, when the document matches the directory shape, a typed
// Directory (for domain validation and rendering).
package parser

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"regexp"
	"strconv"
	"time"

	"go.yaml.in/yaml/v4"

	"github.com/rignaneseleo/groups-for-nomads/groupserrors"
)

// defaultMaxFileSize caps data-file reads at 10 MiB. Realistic directories
// are a few hundred KiB; anything larger is a mistake, not data.
const defaultMaxFileSize = 10 * 1024 * 1024

// Parser handles loading and parsing of the groups data file.
type Parser struct {
	// MaxFileSize is the maximum input size in bytes (0 uses the default)
	MaxFileSize int64
	// Logger receives diagnostic output; defaults to NopLogger
	Logger Logger
}

// New creates a new Parser instance with default settings.
func New() *Parser {
	return &Parser{}
}

// log returns the configured logger or a NopLogger.
func (p *Parser) log() Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return NopLogger{}
}

// ParseResult contains the results of parsing a data file.
type ParseResult struct {
	// SourcePath is the path the document was read from ("<reader>" or
	// "<bytes>" for in-memory input)
	SourcePath string
	// Data is the generic decoded document (mappings as map[string]any)
	Data any
	// Root is the underlying yaml document node, retained for callers that
	// need a comment-preserving round trip
	Root *yaml.Node
	// SourceMap maps JSON Pointers to source locations
	SourceMap *SourceMap
	// SourceSize is the size of the source data in bytes
	SourceSize int64
	// LoadTime is the time taken to read and parse the source
	LoadTime time.Duration

	// directory is the typed decode, nil when the document does not follow
	// the directory shape
	directory *Directory
}

// Directory returns the typed directory decode of the document. The second
// return is false when the document does not follow the directory shape; the
// structural validator reports the shape problems in that case.
func (pr *ParseResult) Directory() (*Directory, bool) {
	if pr.directory == nil {
		return nil, false
	}
	return pr.directory, true
}

// Parse reads and parses a data file from disk.
//
// Errors are classified for the caller: a missing file yields a
// groupserrors.NotFoundError, an unreadable file a groupserrors.IOError, and
// malformed YAML a groupserrors.ParseError carrying best-effort line/column
// information.
func (p *Parser) Parse(dataPath string) (*ParseResult, error) {
	loadStart := time.Now()
	data, err := os.ReadFile(dataPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &groupserrors.NotFoundError{Path: dataPath}
		}
		return nil, &groupserrors.IOError{Path: dataPath, Cause: err}
	}

	result, err := p.parseBytes(data, dataPath)
	if err != nil {
		return nil, err
	}

	result.SourcePath = dataPath
	result.LoadTime = time.Since(loadStart)
	updateSourceMapFilePath(result.SourceMap, dataPath)

	p.log().Debug("parsed data file", "path", dataPath, "bytes", result.SourceSize)
	return result, nil
}

// ParseReader parses a data file from an io.Reader.
// The result's SourcePath is set to "<reader>".
func (p *Parser) ParseReader(r io.Reader) (*ParseResult, error) {
	loadStart := time.Now()
	data, err := io.ReadAll(io.LimitReader(r, p.maxFileSize()+1))
	if err != nil {
		return nil, &groupserrors.IOError{Path: "<reader>", Cause: err}
	}

	result, err := p.parseBytes(data, "<reader>")
	if err != nil {
		return nil, err
	}
	result.SourcePath = "<reader>"
	result.LoadTime = time.Since(loadStart)
	return result, nil
}

// ParseBytes parses a data file from a byte slice.
// The result's SourcePath is set to "<bytes>".
func (p *Parser) ParseBytes(data []byte) (*ParseResult, error) {
	loadStart := time.Now()
	result, err := p.parseBytes(data, "<bytes>")
	if err != nil {
		return nil, err
	}
	result.SourcePath = "<bytes>"
	result.LoadTime = time.Since(loadStart)
	return result, nil
}

func (p *Parser) maxFileSize() int64 {
	if p.MaxFileSize > 0 {
		return p.MaxFileSize
	}
	return defaultMaxFileSize
}

// parseBytes performs the shared parse work: YAML node tree, source map,
// generic decode, and the optional typed directory decode.
func (p *Parser) parseBytes(data []byte, sourcePath string) (*ParseResult, error) {
	if int64(len(data)) > p.maxFileSize() {
		return nil, &groupserrors.IOError{
			Path:  sourcePath,
			Cause: fmt.Errorf("input size %d exceeds limit %d", len(data), p.maxFileSize()),
		}
	}

	result := &ParseResult{
		SourceSize: int64(len(data)),
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, newParseError(sourcePath, err)
	}
	result.Root = &root
	result.SourceMap = buildSourceMap(&root, "")

	// An empty document has a zero node; treat it as null data.
	if root.Kind == 0 {
		return result, nil
	}

	var generic any
	if err := root.Decode(&generic); err != nil {
		return nil, newParseError(sourcePath, err)
	}
	result.Data = generic

	// The typed decode is best-effort: a document of the wrong shape just
	// means the domain validator has nothing to check.
	var dir Directory
	if err := root.Decode(&dir); err == nil {
		result.directory = &dir
	} else {
		p.log().Debug("document does not follow the directory shape", "path", sourcePath, "cause", err)
	}

	return result, nil
}

// The yaml library does not expose error positions structurally, so line and
// column are scraped from the diagnostic text, best-effort.
var (
	yamlLinePattern   = regexp.MustCompile(`(?i)line (\d+)`)
	yamlColumnPattern = regexp.MustCompile(`(?i)column (\d+)`)
)

// newParseError wraps a yaml error in a groupserrors.ParseError with
// best-effort line/column extracted from the diagnostic text.
func newParseError(sourcePath string, err error) error {
	line, column := 0, 0
	if m := yamlLinePattern.FindStringSubmatch(err.Error()); m != nil {
		line, _ = strconv.Atoi(m[1])
	}
	if m := yamlColumnPattern.FindStringSubmatch(err.Error()); m != nil {
		column, _ = strconv.Atoi(m[1])
	}
	return &groupserrors.ParseError{
		Path:   sourcePath,
		Line:   line,
		Column: column,
		Cause:  err,
	}
}
