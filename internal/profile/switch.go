package profile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/MKhiriev/infomilo/internal/config"
	"github.com/MKhiriev/infomilo/models"
)

const profileExt = ".json"

// Available lists the profile names found in the config directory, sorted.
// The active profile file is not a selectable profile and is skipped.
func Available(paths config.Paths) ([]string, error) {
	entries, err := os.ReadDir(paths.ConfigDir())
	if err != nil {
		return nil, fmt.Errorf("error listing profiles: %w", err)
	}

	active := filepath.Base(paths.ActivePath())
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") || filepath.Ext(e.Name()) != profileExt || e.Name() == active {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), profileExt))
	}

	sort.Strings(names)
	return names, nil
}

// PathOf returns the file of the named profile.
func PathOf(paths config.Paths, name string) string {
	return filepath.Join(paths.ConfigDir(), name+profileExt)
}

// Switch makes the named profile the active one by copying its file over
// the active profile. The profile must parse before anything is written,
// so a broken profile never replaces a working active one.
func Switch(paths config.Paths, name string) (*models.Profile, error) {
	if name == "" || strings.ContainsAny(name, `/\`) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProfile, name)
	}

	src := PathOf(paths, name)
	data, err := os.ReadFile(src)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownProfile, name)
		}
		return nil, fmt.Errorf("%w: %w", ErrReadingProfile, err)
	}

	p, err := Parse(data)
	if err != nil {
		return nil, err
	}

	if err = writeFileAtomic(paths.ActivePath(), data); err != nil {
		return nil, fmt.Errorf("error writing active profile: %w", err)
	}

	return p, nil
}

func writeFileAtomic(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".active-*.json")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if err = tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return err
	}
	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}
