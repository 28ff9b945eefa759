package parser

import (
	"encoding/json"

	"github.com/sourcepin/sourcepin/snapshot/dto"
)

// JSONFetchSpecParser implements FetchSpecParser for JSON.
type JSONFetchSpecParser struct{}

// NewJSONFetchSpecParser creates a new JSONFetchSpecParser.
func NewJSONFetchSpecParser() FetchSpecParser {
	return &JSONFetchSpecParser{}
}

// Parse unmarshals JSON bytes into a FetchSpecDTO.
func (p *JSONFetchSpecParser) Parse(data []byte) (*dto.FetchSpecDTO, error) {
	var spec dto.FetchSpecDTO
	if err := json.Unmarshal(data, &spec); err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}
