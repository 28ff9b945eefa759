// Package parser provides functionality for parsing fetch specifications.
package parser

import "github.com/sourcepin/sourcepin/snapshot/dto"

// FetchSpecParser parses raw fetch-spec bytes into a FetchSpecDTO.
type FetchSpecParser interface {
	// Parse unmarshals fetch-spec bytes into a FetchSpecDTO.
	Parse(data []byte) (*dto.FetchSpecDTO, error)
}
