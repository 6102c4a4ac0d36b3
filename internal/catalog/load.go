package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rcliao/corpusgen/internal/model"
)

//go:embed builtin.yaml
var builtinYAML []byte

// file is the on-disk catalog layout.
type file struct {
	Models []model.CorpusModel `yaml:"models"`
}

// Parse decodes YAML catalog data into models without validating them.
func Parse(data []byte) ([]model.CorpusModel, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return f.Models, nil
}

// Load reads and validates a YAML catalog file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	models, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return New(models)
}

// Marshal encodes models in the same layout Parse reads.
func Marshal(models []model.CorpusModel) ([]byte, error) {
	return yaml.Marshal(file{Models: models})
}

// Builtin returns the catalog shipped with the binary.
func Builtin() *Catalog {
	models, err := Parse(builtinYAML)
	if err != nil {
		panic(err)
	}
	c, err := New(models)
	if err != nil {
		panic(err)
	}
	return c
}
