// Package filesystem provides file-based repositories for the infrastructure layer.
package filesystem

import (
	"time"

	"github.com/sourcepin/sourcepin/snapshot/entities"
	"github.com/sourcepin/sourcepin/snapshot/values"
)

// Pinfile represents the YAML structure of a pin record.
type Pinfile struct {
	Remote     string    `yaml:"remote"`
	Requested  string    `yaml:"requested"`
	Resolved   string    `yaml:"resolved,omitempty"`
	Commit     string    `yaml:"commit"`
	TreeHash   string    `yaml:"tree_hash"`
	Excludes   []string  `yaml:"excludes,omitempty"`
	Fetched    time.Time `yaml:"fetched"`
	PinVersion int       `yaml:"pin_version"`
}

// ToEntity converts the pinfile to a domain entity.
func (p *Pinfile) ToEntity() (*entities.Pinfile, error) {
	treeHash, err := values.ParseDigest(p.TreeHash)
	if err != nil {
		return nil, err
	}

	return &entities.Pinfile{
		Remote:     p.Remote,
		Requested:  p.Requested,
		Resolved:   p.Resolved,
		Commit:     p.Commit,
		TreeHash:   treeHash,
		Excludes:   p.Excludes,
		Fetched:    p.Fetched,
		PinVersion: p.PinVersion,
	}, nil
}

// FromEntity converts a domain pinfile to its YAML representation.
func FromEntity(entity *entities.Pinfile) *Pinfile {
	if entity == nil {
		return nil
	}

	return &Pinfile{
		Remote:     entity.Remote,
		Requested:  entity.Requested,
		Resolved:   entity.Resolved,
		Commit:     entity.Commit,
		TreeHash:   entity.TreeHash.String(),
		Excludes:   entity.Excludes,
		Fetched:    entity.Fetched,
		PinVersion: entity.PinVersion,
	}
}
