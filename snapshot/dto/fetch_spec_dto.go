// Package dto carries caller-facing specifications into the domain.
package dto

import (
	"fmt"

	"github.com/sourcepin/sourcepin/snapshot/ports"
	"github.com/sourcepin/sourcepin/snapshot/values"
)

// FetchSpecDTO is the configuration surface for one snapshot fetch: where to
// fetch from, which version to select, where to put it, and how to digest and
// verify it. Exactly one of Tag and Constraint drives version selection; both
// empty means the remote's default branch.
type FetchSpecDTO struct {
	Remote      string   `yaml:"remote" json:"remote"`
	Tag         string   `yaml:"tag,omitempty" json:"tag,omitempty"`
	Constraint  string   `yaml:"constraint,omitempty" json:"constraint,omitempty"`
	Destination string   `yaml:"destination" json:"destination"`
	Algorithm   string   `yaml:"algorithm,omitempty" json:"algorithm,omitempty"`
	Excludes    []string `yaml:"excludes,omitempty" json:"excludes,omitempty"`
	Verify      bool     `yaml:"verify,omitempty" json:"verify,omitempty"`
	Stream      bool     `yaml:"stream,omitempty" json:"stream,omitempty"`
}

// Validate checks the spec for internal consistency.
func (s *FetchSpecDTO) Validate() error {
	if s.Remote == "" {
		return fmt.Errorf("fetch spec: remote is required")
	}
	if s.Destination == "" {
		return fmt.Errorf("fetch spec: destination is required")
	}
	if s.Tag != "" && s.Constraint != "" {
		return fmt.Errorf("fetch spec: tag and constraint are mutually exclusive")
	}
	if _, err := s.ToAlgorithm(); err != nil {
		return fmt.Errorf("fetch spec: %w", err)
	}
	return nil
}

// ToAlgorithm resolves the digest algorithm, defaulting to sha256.
func (s *FetchSpecDTO) ToAlgorithm() (values.Algorithm, error) {
	if s.Algorithm == "" {
		return values.SHA256, nil
	}
	return values.ParseAlgorithm(s.Algorithm)
}

// IOMode maps the stream flag onto the subprocess stream-handling mode.
func (s *FetchSpecDTO) IOMode() ports.IOMode {
	if s.Stream {
		return ports.IOStreamed
	}
	return ports.IOSilent
}

// Requested returns the caller's version request as recorded in pinfiles:
// the exact tag when given, the constraint otherwise.
func (s *FetchSpecDTO) Requested() string {
	if s.Tag != "" {
		return s.Tag
	}
	return s.Constraint
}
