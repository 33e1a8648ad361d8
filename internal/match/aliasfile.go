package match

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// aliasFile is the on-disk shape of an operator-curated alias file:
//
//	aliases:
//	  Thika Town: Kiambu
//	  Keiyo-Marakwet: Elgeyo-Marakwet
type aliasFile struct {
	Aliases map[string]string `yaml:"aliases"`
}

// LoadAliasFile reads alias overrides from a YAML file. Pairs may be written
// with raw names; normalization happens when the result is merged into an
// Aliases table.
func LoadAliasFile(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read alias file: %w", err)
	}

	var file aliasFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse alias file %s: %w", path, err)
	}

	return file.Aliases, nil
}
