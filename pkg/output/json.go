// Package output formats everything randpass shows the user: passwords and
// reports on stdout, labelled messages on stderr.
package output

import (
	"encoding/json"
	"io"

	cerr "github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Format names accepted by --output.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// JSONTo writes any data structure as formatted JSON to the specified writer.
func JSONTo(w io.Writer, data interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// YAMLTo writes any data structure as YAML to the specified writer.
func YAMLTo(w io.Writer, data interface{}) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(data); err != nil {
		return err
	}
	return encoder.Close()
}

// Render writes data in format, using text for the text format.
func Render(w io.Writer, format string, data interface{}, text func(io.Writer) error) error {
	switch format {
	case FormatJSON:
		return JSONTo(w, data)
	case FormatYAML:
		return YAMLTo(w, data)
	case FormatText, "":
		return text(w)
	default:
		return cerr.Newf("unknown output format %q", format)
	}
}
