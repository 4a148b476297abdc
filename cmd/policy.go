package cmd

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// HyperParamsBundle holds optimizer/regularization hyperparameters,
// loadable from a YAML file as an alternative to individual flags.
// Grounded on the teacher's PolicyBundle (bundle.go): strict parsing so a
// typo'd key is rejected rather than silently ignored. Flags passed on the
// command line override values present here.
type HyperParamsBundle struct {
	Method       string  `yaml:"method"`
	E0           float64 `yaml:"e0"`
	E1           float64 `yaml:"e1"`
	Rp           float64 `yaml:"rp"`
	MaxIteration int     `yaml:"max_iteration"`
	MaxLength    int     `yaml:"max_length"`
}

// LoadHyperParamsBundle reads and parses a YAML hyperparameter file.
func LoadHyperParamsBundle(path string) (*HyperParamsBundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading policy config: %w", err)
	}
	var bundle HyperParamsBundle
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&bundle); err != nil {
		return nil, fmt.Errorf("parsing policy config: %w", err)
	}
	return &bundle, nil
}
