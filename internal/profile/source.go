package profile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/MKhiriev/infomilo/models"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// FileSource loads a profile from a JSON file.
type FileSource struct {
	name string
	path string
}

// NewFileSource returns a source named name reading path.
func NewFileSource(name, path string) *FileSource {
	return &FileSource{name: name, path: path}
}

// Name implements [Source].
func (s *FileSource) Name() string {
	return s.name
}

// Path returns the file the source reads.
func (s *FileSource) Path() string {
	return s.path
}

// Load implements [Source].
func (s *FileSource) Load() (*models.Profile, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadingProfile, err)
	}

	return Parse(data)
}

// Parse decodes and validates a profile document.
func Parse(data []byte) (*models.Profile, error) {
	var p models.Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodingProfile, err)
	}

	if err := validateProfile(&p); err != nil {
		return nil, err
	}

	return &p, nil
}

// validateProfile checks presence of environment, development.port and
// development.host. Values are not checked beyond that.
func validateProfile(p *models.Profile) error {
	err := validate.Struct(p)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingField, fieldErrs[0].Namespace())
	}

	return fmt.Errorf("%w: %w", ErrMissingField, err)
}
