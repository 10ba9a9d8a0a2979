package loader

import (
	"fmt"

	"tabload/tabular"
)

// NotFoundError reports that the target file does not exist or could not
// be opened at the given path.
type NotFoundError struct {
	Path   string
	Format tabular.Format
	Err    error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s file %s not found: %v", e.Format, e.Path, e.Err)
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

// ParseError reports that the file exists but is empty or cannot be
// interpreted as tabular data of the requested format.
type ParseError struct {
	Path   string
	Format tabular.Format
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s file %s could not be parsed: %v", e.Format, e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// InvalidFormatError reports an unrecognized file-type tag. It is raised
// before any file access occurs.
type InvalidFormatError struct {
	FileType string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid file type specified: %s", e.FileType)
}
