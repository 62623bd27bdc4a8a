package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/eugenenazirov/breakout/internal/api"
	"github.com/eugenenazirov/breakout/internal/tuning"
)

const (
	formatYAML = "yaml"
	formatJSON = "json"
	formatTOML = "toml"
)

type dumpOutput struct {
	Source  string        `json:"source" yaml:"source" toml:"source"`
	Status  string        `json:"status" yaml:"status" toml:"status"`
	Applied int           `json:"applied" yaml:"applied" toml:"applied"`
	Reason  string        `json:"reason,omitempty" yaml:"reason,omitempty" toml:"reason,omitempty"`
	Values  tuning.Values `json:"values" yaml:"values" toml:"values"`
}

func dump(w io.Writer, t api.Tuning, format string) error {
	out := dumpOutput{
		Source:  t.Source,
		Status:  t.Result.Status.String(),
		Applied: t.Result.Applied,
		Values:  t.Record.Values(),
	}
	if t.Result.Err != nil {
		out.Reason = t.Result.Err.Error()
	}

	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	case formatTOML:
		return toml.NewEncoder(w).Encode(out)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(out); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}
