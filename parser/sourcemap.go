package parser

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"go.yaml.in/yaml/v4"
)

// SourceLocation represents a position in a source document.
// Line and Column are 1-based (matching editor conventions).
// A zero Line value indicates the location is unknown.
type SourceLocation struct {
	// Line is the 1-based line number (0 if unknown)
	Line int
	// Column is the 1-based column number (0 if unknown)
	Column int
	// File is the source file path (empty for in-memory documents)
	File string
}

// IsKnown returns true if this location has valid line information.
func (s SourceLocation) IsKnown() bool {
	return s.Line > 0
}

// String returns a human-readable location string.
// Format: "file:line:column" or "line:column" if no file, or "<unknown>" if not known.
func (s SourceLocation) String() string {
	if !s.IsKnown() {
		if s.File != "" {
			return s.File
		}
		return "<unknown>"
	}
	if s.File != "" {
		return fmt.Sprintf("%s:%d:%d", s.File, s.Line, s.Column)
	}
	return fmt.Sprintf("%d:%d", s.Line, s.Column)
}

// SourceMap maps JSON Pointers to source locations. It enables looking up the
// original line and column for any element of the parsed data file, which the
// validator uses to anchor findings.
//
// Keys use JSON Pointer notation ("" for the root, "/groups/0/url" for nested
// elements), matching the pointers the validator emits.
type SourceMap struct {
	// locations maps JSON Pointers to value positions
	locations map[string]SourceLocation
	// keyLocations maps JSON Pointers to the position of the mapping key.
	// Useful for "additional property" findings that should point at the key.
	keyLocations map[string]SourceLocation
}

// NewSourceMap creates an empty SourceMap.
func NewSourceMap() *SourceMap {
	return &SourceMap{
		locations:    make(map[string]SourceLocation),
		keyLocations: make(map[string]SourceLocation),
	}
}

// Get returns the value location for a JSON Pointer.
// Returns a zero SourceLocation if the pointer is not found.
func (sm *SourceMap) Get(ptr string) SourceLocation {
	if sm == nil {
		return SourceLocation{}
	}
	return sm.locations[ptr]
}

// GetKey returns the location of the mapping key at the given pointer.
// Returns a zero SourceLocation if the pointer is not found.
func (sm *SourceMap) GetKey(ptr string) SourceLocation {
	if sm == nil {
		return SourceLocation{}
	}
	return sm.keyLocations[ptr]
}

// Resolve returns the best-effort location for a JSON Pointer: the value
// location when tracked, falling back to the key location. A zero
// SourceLocation means the pointer could not be resolved; position is a
// reporting aid, never required for correctness.
func (sm *SourceMap) Resolve(ptr string) SourceLocation {
	if sm == nil {
		return SourceLocation{}
	}
	if loc, ok := sm.locations[ptr]; ok {
		return loc
	}
	return sm.keyLocations[ptr]
}

// Has returns true if the pointer exists in the source map.
func (sm *SourceMap) Has(ptr string) bool {
	if sm == nil {
		return false
	}
	_, ok := sm.locations[ptr]
	return ok
}

// Len returns the number of pointers in the source map.
func (sm *SourceMap) Len() int {
	if sm == nil {
		return 0
	}
	return len(sm.locations)
}

// Pointers returns all JSON Pointers in the source map, sorted alphabetically.
// Returns nil if the receiver is nil.
func (sm *SourceMap) Pointers() []string {
	if sm == nil {
		return nil
	}
	ptrs := make([]string, 0, len(sm.locations))
	for ptr := range sm.locations {
		ptrs = append(ptrs, ptr)
	}
	sort.Strings(ptrs)
	return ptrs
}

// Copy creates a deep copy of the SourceMap.
// Returns nil if the receiver is nil.
func (sm *SourceMap) Copy() *SourceMap {
	if sm == nil {
		return nil
	}
	result := NewSourceMap()
	for ptr, loc := range sm.locations {
		result.locations[ptr] = loc
	}
	for ptr, loc := range sm.keyLocations {
		result.keyLocations[ptr] = loc
	}
	return result
}

// set adds a value location to the source map.
func (sm *SourceMap) set(ptr string, loc SourceLocation) {
	if sm == nil {
		return
	}
	if sm.locations == nil {
		sm.locations = make(map[string]SourceLocation)
	}
	sm.locations[ptr] = loc
}

// setKey adds a key location to the source map.
func (sm *SourceMap) setKey(ptr string, loc SourceLocation) {
	if sm == nil {
		return
	}
	if sm.keyLocations == nil {
		sm.keyLocations = make(map[string]SourceLocation)
	}
	sm.keyLocations[ptr] = loc
}

// buildSourceMap walks a yaml.Node tree and builds a SourceMap correlating
// JSON Pointers to source locations.
func buildSourceMap(root *yaml.Node, sourcePath string) *SourceMap {
	sm := NewSourceMap()
	if root == nil {
		return sm
	}
	walkNode(root, "", sm, sourcePath)
	return sm
}

// walkNode recursively walks a yaml.Node tree, recording source locations.
func walkNode(node *yaml.Node, ptr string, sm *SourceMap, file string) {
	if node == nil {
		return
	}

	sm.set(ptr, SourceLocation{
		Line:   node.Line,
		Column: node.Column,
		File:   file,
	})

	switch node.Kind {
	case yaml.DocumentNode:
		// Document node wraps the root content
		if len(node.Content) > 0 {
			walkNode(node.Content[0], ptr, sm, file)
		}

	case yaml.MappingNode:
		// Content alternates: key, value, key, value...
		for i := 0; i+1 < len(node.Content); i += 2 {
			keyNode := node.Content[i]
			valNode := node.Content[i+1]

			childPtr := ptr + "/" + escapePointerSegment(keyNode.Value)

			sm.setKey(childPtr, SourceLocation{
				Line:   keyNode.Line,
				Column: keyNode.Column,
				File:   file,
			})

			walkNode(valNode, childPtr, sm, file)
		}

	case yaml.SequenceNode:
		for i, child := range node.Content {
			walkNode(child, ptr+"/"+strconv.Itoa(i), sm, file)
		}

	case yaml.ScalarNode, yaml.AliasNode:
		// Already recorded above, nothing more to do
	}
}

// escapePointerSegment escapes a mapping key per RFC 6901:
// "~" becomes "~0" and "/" becomes "~1".
func escapePointerSegment(key string) string {
	key = strings.ReplaceAll(key, "~", "~0")
	return strings.ReplaceAll(key, "/", "~1")
}

// updateSourceMapFilePath updates all file paths in a SourceMap to use the
// given path. Used when parsing from readers or bytes where the source path
// is known only after parsing.
func updateSourceMapFilePath(sm *SourceMap, newPath string) {
	if sm == nil {
		return
	}

	for ptr, loc := range sm.locations {
		loc.File = newPath
		sm.locations[ptr] = loc
	}

	for ptr, loc := range sm.keyLocations {
		loc.File = newPath
		sm.keyLocations[ptr] = loc
	}
}
