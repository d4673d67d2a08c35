package capability

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// CatalogFile is the on-disk shape of a capability catalog plus agent matrix.
// Either section may be omitted; the built-in defaults fill the gap.
type CatalogFile struct {
	// Capabilities replaces the built-in catalog when present.
	Capabilities []Definition `yaml:"capabilities,omitempty" json:"capabilities,omitempty"`

	// Agents replaces the built-in matrix when present. Order is preserved
	// and drives best-agent tie-breaking.
	Agents []RoleProfiles `yaml:"agents,omitempty" json:"agents,omitempty"`
}

// LoadCatalogFile reads a catalog file and parses it. Format is detected
// from the file extension (.yaml, .yml, .json).
func LoadCatalogFile(path string) (*CatalogFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	format := detectFormat(path)
	if format == "" {
		return nil, fmt.Errorf("unsupported file extension: %s", filepath.Ext(path))
	}

	return ParseCatalog(data, format)
}

// ParseCatalog parses raw catalog bytes in the given format ("yaml" or
// "json").
func ParseCatalog(data []byte, format string) (*CatalogFile, error) {
	var cf CatalogFile

	switch strings.ToLower(format) {
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &cf); err != nil {
			return nil, fmt.Errorf("parse YAML: %w", err)
		}
	case "json":
		if err := json.Unmarshal(data, &cf); err != nil {
			return nil, fmt.Errorf("parse JSON: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format %q, use \"yaml\" or \"json\"", format)
	}

	return &cf, nil
}

// Catalog returns the file's capability list, or the built-in catalog when
// the file omits one.
func (cf *CatalogFile) Catalog() []Definition {
	if len(cf.Capabilities) == 0 {
		return DefaultCatalog()
	}
	return cf.Capabilities
}

// Matrix returns the file's agent matrix, or the built-in matrix when the
// file omits one.
func (cf *CatalogFile) Matrix() []RoleProfiles {
	if len(cf.Agents) == 0 {
		return DefaultMatrix()
	}
	return cf.Agents
}

// detectFormat returns "yaml" or "json" based on file extension, or "" if
// unknown.
func detectFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	case ".json":
		return "json"
	default:
		return ""
	}
}
