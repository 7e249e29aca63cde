package profile

import (
	"os"
	"testing"

	"github.com/MKhiriev/infomilo/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvailable_SkipsActiveAndOtherFiles(t *testing.T) {
	paths := newTestPaths(t, map[string]string{
		"active.json":  homeJSON,
		"default.json": defaultJSON,
		"home.json":    homeJSON,
		"office.json":  officeJSON,
		"notes.txt":    "hello",
		".tmp.json":    "{}",
	})

	names, err := Available(paths)

	require.NoError(t, err)
	assert.Equal(t, []string{"default", "home", "office"}, names)
}

func TestAvailable_MissingDirectory(t *testing.T) {
	paths := newTestPaths(t, nil)
	paths.DefaultFile = "nowhere/default.json"

	_, err := Available(paths)
	assert.Error(t, err)
}

func TestSwitch_ThenLoad(t *testing.T) {
	paths := newTestPaths(t, map[string]string{
		"default.json": defaultJSON,
		"home.json":    homeJSON,
		"office.json":  officeJSON,
	})

	p, err := Switch(paths, "office")
	require.NoError(t, err)
	assert.Equal(t, "office", p.Environment)

	loaded, err := NewDefaultLoader(paths, logger.Nop()).Load()
	require.NoError(t, err)
	assert.Equal(t, "office", loaded.Environment)
	assert.True(t, loaded.Network.Proxy)

	data, err := os.ReadFile(paths.ActivePath())
	require.NoError(t, err)
	assert.Equal(t, officeJSON, string(data))

	info, err := os.Stat(paths.ActivePath())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
}

func TestSwitch_Errors(t *testing.T) {
	tests := []struct {
		name    string
		profile string
		wantErr error
	}{
		{"unknown profile", "beach", ErrUnknownProfile},
		{"empty name", "", ErrUnknownProfile},
		{"path traversal", "../default", ErrUnknownProfile},
		{"broken profile", "broken", ErrDecodingProfile},
		{"incomplete profile", "partial", ErrMissingField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			paths := newTestPaths(t, map[string]string{
				"active.json":  homeJSON,
				"default.json": defaultJSON,
				"broken.json":  "{",
				"partial.json": `{"environment": "partial"}`,
			})

			_, err := Switch(paths, tt.profile)
			assert.ErrorIs(t, err, tt.wantErr)

			// the previous active profile is left untouched
			data, readErr := os.ReadFile(paths.ActivePath())
			require.NoError(t, readErr)
			assert.Equal(t, homeJSON, string(data))
		})
	}
}
