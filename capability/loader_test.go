package capability

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoadCatalogFile_YAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")

	data := `
capabilities:
  - capability: pitch_booking
    level: basic
    category: match_management
    description: Book pitches for home fixtures.
    keywords: [pitch, book]
agents:
  - role: venue_agent
    profiles:
      - capability: pitch_booking
        proficiency: 0.9
        primary: true
        confidence: 0.8
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	cf, err := LoadCatalogFile(path)
	require.NoError(t, err)

	require.Len(t, cf.Capabilities, 1)
	assert.Equal(t, Type("pitch_booking"), cf.Capabilities[0].Capability)
	assert.Equal(t, LevelBasic, cf.Capabilities[0].Level)

	require.Len(t, cf.Agents, 1)
	assert.Equal(t, AgentRole("venue_agent"), cf.Agents[0].Role)
	assert.InDelta(t, 0.9, cf.Agents[0].Profiles[0].Proficiency, 1e-9)

	// The parsed file builds a valid manager.
	m, err := NewManager(cf.Catalog(), cf.Matrix(), zap.NewNop())
	require.NoError(t, err)
	role, ok := m.BestAgentFor("pitch_booking")
	require.True(t, ok)
	assert.Equal(t, AgentRole("venue_agent"), role)
}

func TestLoadCatalogFile_JSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.json")

	data := `{"capabilities":[{"capability":"pitch_booking","level":"basic","category":"match_management","description":"x"}]}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	cf, err := LoadCatalogFile(path)
	require.NoError(t, err)
	require.Len(t, cf.Capabilities, 1)
}

func TestLoadCatalogFile_UnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.toml")
	require.NoError(t, os.WriteFile(path, []byte("x = 1"), 0o600))

	_, err := LoadCatalogFile(path)
	assert.Error(t, err)
}

func TestCatalogFile_DefaultsFillOmittedSections(t *testing.T) {
	cf, err := ParseCatalog([]byte("{}"), "json")
	require.NoError(t, err)

	assert.Len(t, cf.Catalog(), len(DefaultCatalog()))
	assert.Len(t, cf.Matrix(), len(DefaultMatrix()))
}

func TestParseCatalog_BadYAML(t *testing.T) {
	_, err := ParseCatalog([]byte(":\n  - ["), "yaml")
	assert.Error(t, err)
}
