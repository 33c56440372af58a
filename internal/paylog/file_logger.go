package paylog

import (
	"fmt"
	"os"

	"github.com/Sn4iZer/Payroll-System/internal/shared/apperror"
)

// File appends one line per call, acquiring and releasing the handle per
// write so every line is flushed even if the run dies mid-way. The file is
// created on first write.
type File struct {
	path string
}

func NewFile(path string) *File {
	return &File{path: path}
}

func (f *File) Log(message string) error {
	fh, err := os.OpenFile(f.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return apperror.Wrap(err, apperror.CodeLogWriteFailed, "open payment trail file")
	}

	if _, err := fmt.Fprintln(fh, stamp(message)); err != nil {
		fh.Close()
		return apperror.Wrap(err, apperror.CodeLogWriteFailed, "write payment trail line")
	}

	if err := fh.Close(); err != nil {
		return apperror.Wrap(err, apperror.CodeLogWriteFailed, "close payment trail file")
	}
	return nil
}
