package providers

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingHeader reports a table without a header row.
	ErrMissingHeader = errors.New("missing header")
	// ErrMissingColumn reports a required column absent from the header.
	ErrMissingColumn = errors.New("missing required column")
	// ErrUnsupportedFormat reports a file extension no codec handles.
	ErrUnsupportedFormat = errors.New("unsupported format")
)

// DataLoadError reports a table that could not be loaded from its source.
type DataLoadError struct {
	Source string
	Kind   string
	Path   string
	Err    error
}

func (e *DataLoadError) Error() string {
	msg := fmt.Sprintf("load %s from %s", e.Kind, e.Source)
	if e.Path != "" {
		msg += fmt.Sprintf(" (%s)", e.Path)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *DataLoadError) Unwrap() error {
	return e.Err
}

// AsDataLoadError attempts to unwrap an error into a DataLoadError.
func AsDataLoadError(err error) (*DataLoadError, bool) {
	var loadErr *DataLoadError
	if errors.As(err, &loadErr) {
		return loadErr, true
	}
	return nil, false
}

// wrapLoadError attaches source and kind to err unless it already carries them.
func wrapLoadError(source, kind string, err error) error {
	if err == nil {
		return nil
	}
	if _, ok := AsDataLoadError(err); ok {
		return err
	}
	return &DataLoadError{Source: source, Kind: kind, Err: err}
}
