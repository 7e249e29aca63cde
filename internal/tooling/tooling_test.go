package tooling

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/infomilo/internal/config"
	"github.com/MKhiriev/infomilo/internal/logger"
	"github.com/MKhiriev/infomilo/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTree(t *testing.T, files map[string]string) config.Paths {
	t.Helper()

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "config"), 0o755))
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(root, "config", name), []byte(content), 0o644))
	}

	paths := config.Defaults().Paths
	paths.RootDir = root
	return paths
}

func completeTree(t *testing.T) config.Paths {
	return newTestTree(t, map[string]string{
		"default.json": `{"environment":"default","development":{"port":3000,"host":"localhost"},"network":{"proxy":false}}`,
		"home.json":    `{"environment":"home","development":{"port":3000,"host":"localhost"},"network":{"proxy":false}}`,
		"office.json":  `{"environment":"office","development":{"port":8080,"host":"0.0.0.0"},"network":{"proxy":true}}`,
	})
}

// ── Build ───────────────────────────────────────────────────────────────────

func TestBuild_CopiesProfilesAndWritesManifest(t *testing.T) {
	paths := completeTree(t)
	require.NoError(t, os.WriteFile(filepath.Join(paths.ConfigDir(), "lab.json"), []byte(`{}`), 0o644))
	require.NoError(t, os.WriteFile(paths.ActivePath(), []byte(`{}`), 0o644))

	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	info := models.NewAppBuildInfo("1.2.0", "", "abc123")

	manifest, err := Build(paths, info, now, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, "1.2.0", manifest.Version)
	assert.Equal(t, "abc123", manifest.Commit)
	assert.Equal(t, "2026-10-18T12:00:00Z", manifest.BuildDate)
	assert.NotEmpty(t, manifest.GoVersion)
	assert.Contains(t, manifest.Platform, "/")
	assert.Equal(t, []string{"config/default.json", "config/home.json", "config/lab.json", "config/office.json"}, manifest.Files)
	assert.Empty(t, manifest.Missing)

	for _, f := range manifest.Files {
		assert.FileExists(t, filepath.Join(paths.DistPath(), f))
	}
	assert.NoFileExists(t, filepath.Join(paths.DistPath(), "config", "active.json"))

	data, err := os.ReadFile(filepath.Join(paths.DistPath(), BuildInfoFile))
	require.NoError(t, err)

	var written models.BuildManifest
	require.NoError(t, json.Unmarshal(data, &written))
	assert.Equal(t, manifest, written)
	assert.Contains(t, string(data), "\n  \"version\": \"1.2.0\"")
}

func TestBuild_MissingProfilesAreReported(t *testing.T) {
	paths := newTestTree(t, map[string]string{
		"default.json": `{}`,
	})

	manifest, err := Build(paths, models.NewAppBuildInfo("", "", ""), time.Now(), logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, []string{"config/default.json"}, manifest.Files)
	assert.Equal(t, []string{"config/home.json", "config/office.json"}, manifest.Missing)
	assert.Equal(t, "N/A", manifest.Version)
}

func TestBuild_NoConfigDir(t *testing.T) {
	paths := config.Defaults().Paths
	paths.RootDir = t.TempDir()

	manifest, err := Build(paths, models.NewAppBuildInfo("", "", ""), time.Now(), logger.Nop())
	require.NoError(t, err)

	assert.Empty(t, manifest.Files)
	assert.Len(t, manifest.Missing, 3)
	assert.FileExists(t, filepath.Join(paths.DistPath(), BuildInfoFile))
}

func TestBuild_DistIsAFile(t *testing.T) {
	paths := completeTree(t)
	require.NoError(t, os.WriteFile(paths.DistPath(), []byte("x"), 0o644))

	_, err := Build(paths, models.NewAppBuildInfo("", "", ""), time.Now(), logger.Nop())

	assert.ErrorIs(t, err, ErrCreatingDist)
}

// ── Check ───────────────────────────────────────────────────────────────────

func TestDefaultChecks_CompleteTree(t *testing.T) {
	results := RunChecks(DefaultChecks(completeTree(t)))

	require.Len(t, results, 4)
	for _, r := range results {
		assert.True(t, r.Passed(), "%s: %v", r.Name, r.Err)
	}
}

func TestDefaultChecks_Failures(t *testing.T) {
	tests := []struct {
		name       string
		files      map[string]string
		wantFailed []string
	}{
		{
			name: "office missing",
			files: map[string]string{
				"default.json": `{"environment":"default","development":{"port":1,"host":"h"}}`,
				"home.json":    `{}`,
			},
			wantFailed: []string{"Configuración de oficina"},
		},
		{
			name: "default does not parse",
			files: map[string]string{
				"default.json": `{"environment":`,
				"home.json":    `{}`,
				"office.json":  `{}`,
			},
			wantFailed: []string{"Configuración por defecto válida"},
		},
		{
			name:  "empty tree",
			files: map[string]string{},
			wantFailed: []string{
				"Configuración por defecto",
				"Configuración de casa",
				"Configuración de oficina",
				"Configuración por defecto válida",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := RunChecks(DefaultChecks(newTestTree(t, tt.files)))

			var failed []string
			for _, r := range results {
				if !r.Passed() {
					failed = append(failed, r.Name)
				}
			}
			assert.Equal(t, tt.wantFailed, failed)
		})
	}
}

func TestRunChecks_PanicCountsAsFailure(t *testing.T) {
	results := RunChecks([]Check{
		{Name: "boom", Run: func() error { panic("boom") }},
		{Name: "fine", Run: func() error { return nil }},
	})

	require.Len(t, results, 2)
	assert.False(t, results[0].Passed())
	assert.Contains(t, results[0].Err.Error(), "boom")
	assert.True(t, results[1].Passed())
}

func TestPrintReport(t *testing.T) {
	var buf bytes.Buffer

	failed := PrintReport(&buf, []CheckResult{
		{Name: "Configuración por defecto"},
		{Name: "Configuración de oficina", Err: ErrFileMissing},
	})

	assert.Equal(t, 1, failed)
	out := buf.String()
	assert.Contains(t, out, "Configuración por defecto")
	assert.Contains(t, out, "FALLO")
	assert.Contains(t, out, ErrFileMissing.Error())
	assert.Contains(t, out, "Pasados: 1")
	assert.Contains(t, out, "Fallidos: 1")
	assert.Contains(t, out, "Total: 2")
	assert.Contains(t, out, "Algunos tests fallaron")
}

func TestPrintReport_AllPassed(t *testing.T) {
	var buf bytes.Buffer

	failed := PrintReport(&buf, []CheckResult{{Name: "a"}, {Name: "b"}})

	assert.Zero(t, failed)
	assert.Contains(t, buf.String(), "¡Todos los tests pasaron!")
}
