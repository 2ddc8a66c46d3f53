package model

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnsupportedVersion is returned when decoding a roster whose version
// field does not match RosterVersion.
var ErrUnsupportedVersion = errors.New("unsupported employees file version")

// EncodeRoster serializes the employees, in order, as a versioned YAML document.
// Strings are always tagged !!str so values like "123" or "null" survive a
// round trip. Invalid UTF-8 is replaced with U+FFFD.
func EncodeRoster(employees []Employee) ([]byte, error) {
	node := buildRosterNode(employees)

	data, err := yaml.Marshal(node)
	if err != nil {
		return nil, fmt.Errorf("failed to encode employees: %w", err)
	}
	return data, nil
}

// DecodeRoster parses a document produced by EncodeRoster.
// The returned slice is never nil.
func DecodeRoster(data []byte) ([]Employee, error) {
	var r Roster
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("failed to parse employees: %w", err)
	}
	if r.Version != RosterVersion {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrUnsupportedVersion, r.Version, RosterVersion)
	}
	if r.Employees == nil {
		return []Employee{}, nil
	}
	return r.Employees, nil
}

// EncodeEmployee renders a single employee as a YAML mapping.
// Used for editing one record in $EDITOR.
func EncodeEmployee(e Employee) ([]byte, error) {
	data, err := yaml.Marshal(buildEmployeeNode(e))
	if err != nil {
		return nil, fmt.Errorf("failed to encode employee: %w", err)
	}
	return data, nil
}

// DecodeEmployee parses a single employee mapping.
func DecodeEmployee(data []byte) (Employee, error) {
	var e Employee
	if err := yaml.Unmarshal(data, &e); err != nil {
		return Employee{}, fmt.Errorf("failed to parse employee: %w", err)
	}
	return e, nil
}

func buildRosterNode(employees []Employee) *yaml.Node {
	doc := &yaml.Node{Kind: yaml.MappingNode}
	addIntField(doc, "version", RosterVersion)

	seq := &yaml.Node{Kind: yaml.SequenceNode}
	for _, e := range employees {
		seq.Content = append(seq.Content, buildEmployeeNode(e))
	}
	doc.Content = append(doc.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Value: "employees"},
		seq,
	)
	return doc
}

func buildEmployeeNode(e Employee) *yaml.Node {
	node := &yaml.Node{Kind: yaml.MappingNode}
	addIntField(node, "id", e.ID)
	addStringField(node, "name", e.Name)
	addFloatField(node, "salary", e.Salary)
	addStringField(node, "position", e.Position)
	return node
}

// Helper functions for building yaml.Node

// lineBreaks are the characters that make a block or plain scalar unsafe.
// Values containing any of them are written double-quoted with escapes.
const lineBreaks = "\n\r\t\u0085\u2028\u2029"

func addStringField(node *yaml.Node, key, value string) {
	value = CleanText(value)
	style := yaml.Style(0)
	if strings.ContainsAny(value, lineBreaks) {
		style = yaml.DoubleQuotedStyle
	}
	node.Content = append(node.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Value: key},
		&yaml.Node{Kind: yaml.ScalarNode, Value: value, Tag: "!!str", Style: style},
	)
}

func addIntField(node *yaml.Node, key string, value int) {
	node.Content = append(node.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Value: key},
		&yaml.Node{Kind: yaml.ScalarNode, Value: strconv.Itoa(value), Tag: "!!int"},
	)
}

func addFloatField(node *yaml.Node, key string, value float64) {
	node.Content = append(node.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Value: key},
		&yaml.Node{Kind: yaml.ScalarNode, Value: formatFloat(value), Tag: "!!float"},
	)
}

// formatFloat returns a YAML float literal that parses back to exactly v.
// Whole numbers get a ".0" suffix so they resolve as floats, not ints.
func formatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return ".nan"
	case math.IsInf(v, 1):
		return ".inf"
	case math.IsInf(v, -1):
		return "-.inf"
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
