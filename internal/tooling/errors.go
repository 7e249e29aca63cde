package tooling

import "errors"

var (
	ErrFileMissing      = errors.New("file not found")
	ErrCreatingDist     = errors.New("error creating dist directory")
	ErrCopyingFile      = errors.New("error copying file")
	ErrWritingBuildInfo = errors.New("error writing build info")
)
