package app

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tacogips/crumb/internal/config"
)

// LoadValuesFile reads a YAML values file: a list of mappings from argument
// name to value, one mapping per directory branch to create.
func LoadValuesFile(path string) ([]map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewValuesFileError(fmt.Sprintf("cannot read values file %s", path), err)
	}

	var valuesMaps []map[string]string
	if err := yaml.Unmarshal(data, &valuesMaps); err != nil {
		return nil, NewValuesFileError(fmt.Sprintf("invalid YAML in values file %s", path), err)
	}
	return valuesMaps, nil
}

// Mktree creates the directory tree described by a crumb path. With a values
// file each mapping fills the open arguments of one branch; without one only
// the fixed prefix is created. Returns the created paths.
func Mktree(spec CrumbSpec, cfg *config.Config, valuesFile string) ([]string, error) {
	c, err := NewCrumb(spec, cfg)
	if err != nil {
		return nil, err
	}

	var valuesMaps []map[string]string
	if valuesFile != "" {
		valuesMaps, err = LoadValuesFile(valuesFile)
		if err != nil {
			return nil, err
		}
	}

	paths, err := c.Mktree(valuesMaps)
	if err != nil {
		return nil, NewMktreeError(fmt.Sprintf("cannot create tree for %s", spec.Path), err)
	}
	return paths, nil
}
