// Package media stages user-chosen video and photo evidence before
// submission: type/size/count validation, ordered staging, and locally
// renderable previews.
package media

import (
	"errors"
	"fmt"
	"strings"
)

const (
	MaxVideoSize = 100 * 1024 * 1024 // 100 MiB
	MaxPhotoSize = 10 * 1024 * 1024  // 10 MiB per photo
	MaxPhotos    = 5
)

// File is an in-memory user-chosen file, the way the form hands it over.
type File struct {
	Name        string
	ContentType string
	Size        int64
	Data        []byte
}

// ErrorKind classifies why a file was rejected.
type ErrorKind string

const (
	ErrType  ErrorKind = "type"
	ErrSize  ErrorKind = "size"
	ErrCount ErrorKind = "count"
)

// Error is a rejected file. Always recoverable: the user picks another file.
type Error struct {
	Kind ErrorKind
	File string
	Msg  string
}

func (e *Error) Error() string {
	if e.File == "" {
		return e.Msg
	}
	return fmt.Sprintf("%s: %s", e.File, e.Msg)
}

// BatchError collects the per-file rejections of one photo selection.
// Valid siblings of a rejected file are still staged.
type BatchError struct {
	Errors []*Error
}

func (e *BatchError) Error() string {
	msgs := make([]string, len(e.Errors))
	for i, err := range e.Errors {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

// AsError unwraps a single-file rejection from err, batch or not.
func AsError(err error) (*Error, bool) {
	var single *Error
	if errors.As(err, &single) {
		return single, true
	}
	var batch *BatchError
	if errors.As(err, &batch) && len(batch.Errors) > 0 {
		return batch.Errors[0], true
	}
	return nil, false
}

func videoError(f File) *Error {
	if !strings.HasPrefix(f.ContentType, "video/") {
		return &Error{Kind: ErrType, File: f.Name, Msg: "please select a valid video file"}
	}
	if f.Size > MaxVideoSize {
		return &Error{Kind: ErrSize, File: f.Name, Msg: "video must be smaller than 100MB"}
	}
	return nil
}

func photoError(f File) *Error {
	if !strings.HasPrefix(f.ContentType, "image/") {
		return &Error{Kind: ErrType, File: f.Name, Msg: "all files must be images"}
	}
	if f.Size > MaxPhotoSize {
		return &Error{Kind: ErrSize, File: f.Name, Msg: "each photo must be smaller than 10MB"}
	}
	return nil
}
