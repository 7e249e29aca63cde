package tooling

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"time"

	"github.com/MKhiriev/infomilo/internal/config"
	"github.com/MKhiriev/infomilo/internal/logger"
	"github.com/MKhiriev/infomilo/internal/profile"
	"github.com/MKhiriev/infomilo/models"
)

// BuildInfoFile is the manifest written at the root of the dist directory.
const BuildInfoFile = "build-info.json"

// RequiredProfiles are shipped in every distribution. A missing one is
// reported in the manifest but does not fail the build.
var RequiredProfiles = []string{
	models.EnvironmentDefault,
	models.EnvironmentHome,
	models.EnvironmentOffice,
}

// Build copies the profiles into the dist directory and writes the build
// manifest there. Files are listed relative to the dist directory.
func Build(paths config.Paths, info models.AppBuildInfo, now time.Time, logger *logger.Logger) (models.BuildManifest, error) {
	logger.Info().Msg("Iniciando build de InfoMilo...")

	dist := paths.DistPath()
	if err := os.MkdirAll(dist, 0o755); err != nil {
		return models.BuildManifest{}, fmt.Errorf("%w: %w", ErrCreatingDist, err)
	}

	manifest := models.BuildManifest{
		Version:   info.BuildVersion(),
		Commit:    info.BuildCommit(),
		BuildDate: now.UTC().Format(time.RFC3339),
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
		Files:     []string{},
	}

	configDir := filepath.Base(paths.ConfigDir())
	for _, name := range profilesToShip(paths) {
		file := name + ".json"
		rel := filepath.ToSlash(filepath.Join(configDir, file))

		err := copyFile(profile.PathOf(paths, name), filepath.Join(dist, configDir, file))
		switch {
		case errors.Is(err, fs.ErrNotExist):
			logger.Warn().Str("file", rel).Msg("Archivo no encontrado")
			manifest.Missing = append(manifest.Missing, rel)
		case err != nil:
			return manifest, fmt.Errorf("%w %s: %w", ErrCopyingFile, rel, err)
		default:
			logger.Info().Str("file", rel).Msg("Copiado")
			manifest.Files = append(manifest.Files, rel)
		}
	}

	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return manifest, fmt.Errorf("%w: %w", ErrWritingBuildInfo, err)
	}
	if err = os.WriteFile(filepath.Join(dist, BuildInfoFile), data, 0o644); err != nil {
		return manifest, fmt.Errorf("%w: %w", ErrWritingBuildInfo, err)
	}

	logger.Info().
		Str("version", manifest.Version).
		Str("date", manifest.BuildDate).
		Str("dist", dist).
		Msg("Build completado exitosamente!")

	return manifest, nil
}

// profilesToShip is the union of the required profiles and those present
// in the config directory, sorted.
func profilesToShip(paths config.Paths) []string {
	seen := make(map[string]struct{}, len(RequiredProfiles))
	for _, name := range RequiredProfiles {
		seen[name] = struct{}{}
	}

	// An unreadable config directory leaves only the required profiles,
	// which are then reported missing one by one.
	if available, err := profile.Available(paths); err == nil {
		for _, name := range available {
			seen[name] = struct{}{}
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	if err = os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}

	if _, err = io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
