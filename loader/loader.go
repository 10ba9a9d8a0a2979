// Package loader reads a tabular file (CSV, Excel, or JSON) from disk
// into an in-memory dataset. It performs ingestion only: no cleaning,
// no type coercion, no schema validation.
package loader

import (
	"go.uber.org/zap"

	"tabload/tabular"
)

// Loader dispatches a load request to the format-specific reader. It is
// stateless apart from the logger and safe for concurrent use.
type Loader struct {
	log *zap.Logger
}

// New returns a Loader that logs successful loads through the given
// logger. A nil logger falls back to zap's production logger.
func New(log *zap.Logger) *Loader {
	if log == nil {
		log, _ = zap.NewProduction()
	}
	return &Loader{log: log}
}

// Load reads the file at path as the given file type ("csv", "excel", or
// "json", matched case-insensitively; empty defaults to "csv") and
// returns its contents exactly as stored. Failures are reported as
// *InvalidFormatError, *NotFoundError, or *ParseError; only success is
// logged, with the row count and source path.
func (l *Loader) Load(path, fileType string) (*tabular.Dataset, error) {
	format, err := tabular.ParseFormat(fileType)
	if err != nil {
		return nil, &InvalidFormatError{FileType: fileType}
	}

	dataset, err := readerForFormat(format).Read(path)
	if err != nil {
		return nil, err
	}

	l.log.Info("rows loaded",
		zap.Int("rows", dataset.NumRows()),
		zap.String("path", path),
		zap.String("format", string(format)),
	)

	return dataset, nil
}
