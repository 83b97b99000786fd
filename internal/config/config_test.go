package config

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/nalgeon/be"
)

func chdir(t *testing.T, dir string) {
	t.Helper()

	wd, err := os.Getwd()
	be.Err(t, err, nil)
	be.Err(t, os.Chdir(dir), nil)
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestDefault(t *testing.T) {
	cfg := Default()
	be.Equal(t, cfg.Output, OutputText)
	be.True(t, cfg.Color)
	be.True(t, cfg.Snippets)
	be.Equal(t, cfg.LogLevel, "warn")
	be.Err(t, cfg.Validate(), nil)
}

func TestLoadTOML(t *testing.T) {
	content := `
output = "sexpr"
color = false
log_level = "debug"
`
	cfg, err := LoadFromBytes([]byte(content), FormatTOML)
	be.Err(t, err, nil)
	be.Equal(t, cfg.Output, OutputSExpr)
	be.True(t, !cfg.Color)
	be.Equal(t, cfg.LogLevel, "debug")

	// Unset keys keep their defaults.
	be.True(t, cfg.Snippets)
}

func TestLoadYAML(t *testing.T) {
	content := `
output: litter
snippets: false
`
	cfg, err := LoadFromBytes([]byte(content), FormatYAML)
	be.Err(t, err, nil)
	be.Equal(t, cfg.Output, OutputLitter)
	be.True(t, !cfg.Snippets)
	be.True(t, cfg.Color)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	_, err := LoadFromBytes([]byte(`output = "xml"`), FormatTOML)
	be.Err(t, err, `invalid output format "xml"`)

	_, err = LoadFromBytes([]byte("log_level: loud\n"), FormatYAML)
	be.Err(t, err, `invalid log level "loud"`)

	_, err = LoadFromBytes([]byte(`output = `), FormatTOML)
	be.Err(t, err, "TOML parse error")

	_, err = LoadFromBytes([]byte("output: [\n"), FormatYAML)
	be.Err(t, err, "YAML parse error")

	_, err = LoadFromBytes([]byte(""), Format("ini"))
	be.Err(t, err, "unsupported format: ini")
}

func TestLoadFileDetectsFormat(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "settings.yml")
	be.Err(t, os.WriteFile(yamlPath, []byte("output: json\n"), 0o644), nil)

	cfg, err := LoadFile(yamlPath)
	be.Err(t, err, nil)
	be.Equal(t, cfg.Output, OutputJSON)

	tomlPath := filepath.Join(dir, "settings.conf")
	be.Err(t, os.WriteFile(tomlPath, []byte(`output = "source"`), 0o644), nil)

	cfg, err = LoadFile(tomlPath)
	be.Err(t, err, nil)
	be.Equal(t, cfg.Output, OutputSource)
}

func TestLoadExplicitMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	be.Err(t, err, fs.ErrNotExist)
}

func TestLoadSearchesDefaultFiles(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	cfg, err := Load("")
	be.Err(t, err, nil)
	be.Equal(t, cfg.Output, OutputText)

	be.Err(t, os.WriteFile(filepath.Join(dir, "elgol.yaml"), []byte("output: sexpr\n"), 0o644), nil)
	cfg, err = Load("")
	be.Err(t, err, nil)
	be.Equal(t, cfg.Output, OutputSExpr)

	// elgol.toml comes first.
	be.Err(t, os.WriteFile(filepath.Join(dir, "elgol.toml"), []byte(`output = "litter"`), 0o644), nil)
	cfg, err = Load("")
	be.Err(t, err, nil)
	be.Equal(t, cfg.Output, OutputLitter)
}
