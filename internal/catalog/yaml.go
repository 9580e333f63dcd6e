package catalog

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads a catalog override from a YAML file and validates it. The file
// uses the same shape as the compiled-in default; see the struct tags.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: reading %s: %w", path, err)
	}

	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("catalog: parsing %s: %w", path, err)
	}

	for i := range c.Subsections {
		for j, kw := range c.Subsections[i].Keywords {
			c.Subsections[i].Keywords[j] = strings.ToLower(kw)
		}
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("catalog: %s: %w", path, err)
	}
	return &c, nil
}
