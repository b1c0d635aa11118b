package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ValidOutputs lists the accepted values of --output.
var ValidOutputs = []string{"text", "json", "yaml"}

// result is anything a command prints. JSON and YAML use the exported
// fields; text uses text().
type result interface {
	text() string
}

type printer struct {
	format string
	w      io.Writer
}

func (p printer) print(r result) error {
	switch p.format {
	case "json":
		enc := json.NewEncoder(p.w)
		enc.SetIndent("", "  ")

		return enc.Encode(r)
	case "yaml":
		enc := yaml.NewEncoder(p.w)
		enc.SetIndent(2)

		if err := enc.Encode(r); err != nil {
			return err
		}

		return enc.Close()
	case "text":
		_, err := fmt.Fprintln(p.w, r.text())
		return err
	default:
		return fmt.Errorf("unknown output format %q", p.format)
	}
}
