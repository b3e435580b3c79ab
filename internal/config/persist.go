package config

import (
	"bytes"
	"io"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/grindlemire/viewfmt/internal/errors"
	"github.com/grindlemire/viewfmt/pkg/formatter"
)

const header = "# viewfmt configuration. Environment variables VIEWFMT_<KEY> and\n# command line flags override these values.\n\n"

// Encode renders settings as a viewfmt.toml document.
func Encode(s formatter.Settings) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(header)

	enc := toml.NewEncoder(&buf)
	if err := enc.Encode(s); err != nil {
		return nil, errors.Wrap(err, "encoding settings")
	}
	return buf.Bytes(), nil
}

// Show writes the effective settings as TOML.
func Show(w io.Writer, s formatter.Settings) error {
	data, err := Encode(s)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return errors.Wrap(err, "writing settings")
}

// Init writes a configuration file holding the default settings. If path
// is a directory the file is created inside it as FileName. An existing
// file is never overwritten.
func Init(path string) (string, error) {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		path = filepath.Join(path, FileName)
	}

	if _, err := os.Stat(path); err == nil {
		return "", errors.WithHint(
			errors.Newf("%s already exists", path),
			"edit the existing file or remove it first")
	}

	data, err := Encode(formatter.DefaultSettings())
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", errors.Wrapf(err, "writing %s", path)
	}
	return path, nil
}
