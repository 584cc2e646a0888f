package directory

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

type yamlFile struct {
	Funds []Entry `yaml:"funds"`
}

// LoadYAML reads a file of the form
//
//	funds:
//	  - name: Example Flexi Cap Fund
//	    url: https://example.com/fund
func LoadYAML(path string) (*Directory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", path, err)
	}
	var f yamlFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse directory %s: %w", path, err)
	}
	return New(f.Funds), nil
}
