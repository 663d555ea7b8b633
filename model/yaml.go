// SPDX-License-Identifier: MIT

package model

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// MarshalYAML encodes a Relation as its symbol.
func (r Relation) MarshalYAML() (interface{}, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("Relation.MarshalYAML: %v: %w", r, ErrUnsupportedRelation)
	}

	return r.String(), nil
}

// UnmarshalYAML decodes "<=", ">=", "==" (or "=").
func (r *Relation) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	v, err := ParseRelation(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*r = v

	return nil
}

// MarshalYAML encodes a Target as "max"/"min".
func (t Target) MarshalYAML() (interface{}, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("Target.MarshalYAML: %v: %w", t, ErrUnsupportedTarget)
	}

	return t.String(), nil
}

// UnmarshalYAML decodes "max"/"min".
func (t *Target) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	v, err := ParseTarget(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*t = v

	return nil
}

// DecodeYAML reads one Problem document and validates it.
//
//	target: max
//	c: [1, 1]
//	a:
//	  - [1, 1]
//	r: ["<="]
//	b: [4]
func DecodeYAML(r io.Reader) (*Problem, error) {
	var p Problem
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("DecodeYAML: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return &p, nil
}

// EncodeYAML writes p as one YAML document.
func EncodeYAML(w io.Writer, p *Problem) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("EncodeYAML: %w", err)
	}

	return enc.Close()
}
