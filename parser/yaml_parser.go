package parser

import (
	"gopkg.in/yaml.v3"

	"github.com/sourcepin/sourcepin/snapshot/dto"
)

// YamlFetchSpecParser implements FetchSpecParser for YAML.
type YamlFetchSpecParser struct{}

// NewYamlFetchSpecParser creates a new YamlFetchSpecParser.
func NewYamlFetchSpecParser() FetchSpecParser {
	return &YamlFetchSpecParser{}
}

// Parse unmarshals YAML bytes into a FetchSpecDTO.
func (p *YamlFetchSpecParser) Parse(data []byte) (*dto.FetchSpecDTO, error) {
	var spec dto.FetchSpecDTO
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}
