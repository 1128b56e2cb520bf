// SPDX-License-Identifier: MIT

package matrixio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/katalvlaran/intmat/matrix"
	"gopkg.in/yaml.v3"
)

// ErrDecode reports input that is not a well-formed matrix document.
var ErrDecode = errors.New("matrixio: malformed matrix document")

// ErrEncode reports a matrix that could not be serialized.
var ErrEncode = errors.New("matrixio: cannot encode matrix")

// filePerm is the mode of files created by WriteFile.
const filePerm = 0o644

// document is the on-disk shape. Rows are emitted in flow style so that
// every row sits on one line.
type document struct {
	Rows [][]int64 `yaml:"rows,flow"`
}

// Decode reads one YAML document from r and builds a *matrix.Dense from it.
// Unknown keys are rejected.
func Decode(r io.Reader) (*matrix.Dense, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrDecode)
		}
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	return matrix.NewDense(doc.Rows)
}

// Encode writes m to w as a single YAML document.
func Encode(w io.Writer, m matrix.Matrix) error {
	d, err := matrix.Clone(m)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncode, err)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err = enc.Encode(document{Rows: d.ToRows()}); err != nil {
		return fmt.Errorf("%w: %w", ErrEncode, err)
	}

	return enc.Close()
}

// ReadFile decodes the matrix stored at path.
func ReadFile(path string) (*matrix.Dense, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open matrix file: %w", err)
	}
	defer f.Close()

	m, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}

// WriteFile encodes m into path, creating parent directories as needed and
// truncating an existing file.
func WriteFile(path string, m matrix.Matrix) (err error) {
	cleanPath := filepath.Clean(path)
	if err = os.MkdirAll(filepath.Dir(cleanPath), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	f, err := os.OpenFile(cleanPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, filePerm)
	if err != nil {
		return fmt.Errorf("failed to create matrix file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close matrix file: %w", cerr)
		}
	}()

	return Encode(f, m)
}
