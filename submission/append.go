package submission

import (
	"bytes"
	"errors"
	"io/fs"
	"os"

	"go.yaml.in/yaml/v4"

	"github.com/rignaneseleo/groups-for-nomads/groupserrors"
	"github.com/rignaneseleo/groups-for-nomads/parser"
)

// AppendGroup appends a group entry to the YAML document in data and returns
// the updated document. The edit works on the node tree, so comments, key
// order, and anchors elsewhere in the file survive the round trip.
//
// An empty document produces a fresh one holding only the groups list; a
// document without a groups key gets one appended.
func AppendGroup(data []byte, g parser.Group) ([]byte, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, &groupserrors.ParseError{Message: "malformed data file", Cause: err}
	}

	doc := documentMapping(&root)
	if doc == nil {
		return nil, &groupserrors.ParseError{Message: "data file root is not a mapping"}
	}

	seq, err := groupsSequence(doc)
	if err != nil {
		return nil, err
	}

	var entry yaml.Node
	if err := entry.Encode(g); err != nil {
		return nil, &groupserrors.ParseError{Message: "cannot encode group entry", Cause: err}
	}
	seq.Content = append(seq.Content, &entry)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&root); err != nil {
		return nil, &groupserrors.ParseError{Message: "cannot encode data file", Cause: err}
	}
	if err := enc.Close(); err != nil {
		return nil, &groupserrors.ParseError{Message: "cannot encode data file", Cause: err}
	}
	return buf.Bytes(), nil
}

// AppendGroupToFile reads path, appends the group, and writes the file back
// with its original permissions.
func AppendGroupToFile(path string, g parser.Group) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &groupserrors.NotFoundError{Path: path}
		}
		return &groupserrors.IOError{Path: path, Cause: err}
	}

	updated, err := AppendGroup(data, g)
	if err != nil {
		if pe := new(groupserrors.ParseError); errors.As(err, &pe) {
			pe.Path = path
		}
		return err
	}

	mode := fs.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode()
	}
	if err := os.WriteFile(path, updated, mode); err != nil {
		return &groupserrors.IOError{Path: path, Cause: err}
	}
	return nil
}

// documentMapping returns the root mapping node, building one for empty
// documents. Returns nil when the root is some other kind.
func documentMapping(root *yaml.Node) *yaml.Node {
	if root.Kind == 0 {
		// Empty input: build a document around a fresh mapping.
		mapping := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		root.Kind = yaml.DocumentNode
		root.Content = []*yaml.Node{mapping}
		return mapping
	}

	node := root
	if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		node = node.Content[0]
	}
	if node.Kind == yaml.MappingNode {
		return node
	}
	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		// "---" or comment-only file parses to a null scalar.
		node.Kind = yaml.MappingNode
		node.Tag = "!!map"
		node.Value = ""
		return node
	}
	return nil
}

// groupsSequence returns the sequence node under the "groups" key, appending
// the key with an empty sequence when missing. A groups value of some other
// kind is an error, never an append target.
func groupsSequence(doc *yaml.Node) (*yaml.Node, error) {
	for i := 0; i+1 < len(doc.Content); i += 2 {
		if doc.Content[i].Value == "groups" {
			value := doc.Content[i+1]
			if value.Kind == yaml.ScalarNode && value.Tag == "!!null" {
				// "groups:" with no entries yet.
				value.Kind = yaml.SequenceNode
				value.Tag = "!!seq"
				value.Value = ""
			}
			if value.Kind != yaml.SequenceNode {
				return nil, &groupserrors.ParseError{
					Line:    value.Line,
					Column:  value.Column,
					Message: "groups is not a list",
				}
			}
			return value, nil
		}
	}

	key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: "groups"}
	seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	doc.Content = append(doc.Content, key, seq)
	return seq, nil
}
