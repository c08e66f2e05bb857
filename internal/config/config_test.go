package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kevmo314/go-uvcprops/pkg/property"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "uvcprops.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoad_ValidConfig(t *testing.T) {
	path := writeConfig(t, `
device:
  path: /dev/bus/usb/001/004
logging:
  level: debug
  format: json
presets:
  - property: exposure
    value: 500
  - property: LEDs
    value: 1
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/dev/bus/usb/001/004", cfg.Device.Path)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "stderr", cfg.Logging.Output, "unset fields keep their default")
	assert.Equal(t, []Preset{{Property: "exposure", Value: 500}, {Property: "LEDs", Value: 1}}, cfg.Presets)

	id, err := property.ParseID(cfg.Presets[1].Property)
	require.NoError(t, err)
	assert.Equal(t, property.LEDs, id)
}

func TestLoad_NoFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Empty(t, cfg.Presets)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/path/uvcprops.yaml")
	assert.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "device: [unterminated"))
	assert.Error(t, err)
}

func TestLoad_UnknownPreset(t *testing.T) {
	_, err := Load(writeConfig(t, `
presets:
  - property: focus
    value: 1
`))
	assert.ErrorIs(t, err, property.ErrUnknownProperty)
}

func TestLoad_InvalidLogging(t *testing.T) {
	_, err := Load(writeConfig(t, "logging:\n  level: loud\n"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "logging:\n  format: xml\n"))
	assert.Error(t, err)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("UVCPROPS_DEVICE_PATH", "/dev/bus/usb/002/007")
	t.Setenv("UVCPROPS_LOG_LEVEL", "warn")
	t.Setenv("UVCPROPS_LOG_FORMAT", "json")

	cfg, err := Load(writeConfig(t, "device:\n  path: /dev/bus/usb/001/004\n"))
	require.NoError(t, err)
	assert.Equal(t, "/dev/bus/usb/002/007", cfg.Device.Path)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}
