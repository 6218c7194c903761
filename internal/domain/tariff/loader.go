package tariff

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a fiscal-year tariff from a YAML file and validates it.
// The final bracket of each table marks its unbounded upper limit with
// YAML's `.inf`.
func LoadFile(path string) (Tariff, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Tariff{}, fmt.Errorf("read tariff file: %w", err)
	}
	var t Tariff
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tariff{}, fmt.Errorf("parse tariff file %s: %w", path, err)
	}
	if err := t.Validate(); err != nil {
		return Tariff{}, fmt.Errorf("tariff file %s: %w", path, err)
	}
	return t, nil
}
