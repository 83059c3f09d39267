package level

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// WriteFile writes data to path, truncating any existing file.
// If the write fails the partial file is removed so no ambiguous level is
// left behind. Errors wrap the underlying *os.PathError.
func WriteFile(path string, data []byte) error {
	return writeFile(path, data, writeAll)
}

// writeFile owns the file lifecycle; write does the actual transfer.
func writeFile(path string, data []byte, write func(io.Writer, []byte) error) (err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("level: cannot create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("level: cannot close %s: %w", path, cerr)
		}
		if err != nil {
			os.Remove(path)
		}
	}()

	if err := write(f, data); err != nil {
		return fmt.Errorf("level: cannot write %s: %w", path, err)
	}
	return nil
}

// writeAll writes data in a single call and treats a short count as failure.
func writeAll(w io.Writer, data []byte) error {
	n, err := w.Write(data)
	if err == nil && n < len(data) {
		err = io.ErrShortWrite
	}
	return err
}

// Save encodes r and writes it to path.
func Save(path string, r Record) error {
	return WriteFile(path, Encode(r))
}

// IsIOError reports whether err came from the filesystem rather than from
// record validation or board configuration.
func IsIOError(err error) bool {
	var pathErr *os.PathError
	return errors.As(err, &pathErr) || errors.Is(err, io.ErrShortWrite)
}
