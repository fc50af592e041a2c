package result

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned for an unsupported output format.
var ErrUnknownFormat = errors.New("result: unknown output format")

// Format selects an encoder.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatText Format = "text"
)

// ParseFormat accepts json, yaml (or yml) and text, case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json", "":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "text", "txt":
		return FormatText, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// wireRecord is the field layout shared by the JSON and YAML encoders.
type wireRecord struct {
	Source       string   `json:"source,omitempty" yaml:"source,omitempty"`
	Start        [2]int   `json:"theseus_start" yaml:"theseus_start,flow"`
	LeftSteps    int      `json:"left_steps" yaml:"left_steps"`
	Directions   []string `json:"directions" yaml:"directions,flow"`
	OptimalSteps int      `json:"optimal_steps" yaml:"optimal_steps"`
	WalkOutcome  Outcome  `json:"walk_outcome" yaml:"walk_outcome"`
}

func (r Record) wire() wireRecord {
	return wireRecord{
		Source:       r.Source,
		Start:        [2]int{r.Start.Row, r.Start.Col},
		LeftSteps:    r.LeftSteps,
		Directions:   r.Labels(),
		OptimalSteps: r.OptimalSteps,
		WalkOutcome:  r.Outcome,
	}
}

// MarshalJSON implements json.Marshaler.
func (r Record) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.wire())
}

// MarshalYAML implements yaml.Marshaler.
func (r Record) MarshalYAML() (interface{}, error) {
	return r.wire(), nil
}

// Options controls encoding.
type Options struct {
	// Indent pretty-prints JSON.
	Indent bool
}

// Encode writes one record in format f.
func Encode(w io.Writer, f Format, rec Record, opts Options) error {
	switch f {
	case FormatJSON:
		return EncodeJSON(w, rec, opts.Indent)
	case FormatYAML:
		return EncodeYAML(w, rec)
	case FormatText:
		return EncodeText(w, rec)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

// EncodeAll writes several records: a JSON array, a YAML sequence, or text
// blocks separated by blank lines. A single record is written as by Encode.
func EncodeAll(w io.Writer, f Format, recs []Record, opts Options) error {
	if len(recs) == 1 {
		return Encode(w, f, recs[0], opts)
	}
	switch f {
	case FormatJSON:
		if recs == nil {
			recs = []Record{}
		}
		return EncodeJSON(w, recs, opts.Indent)
	case FormatYAML:
		return EncodeYAML(w, recs)
	case FormatText:
		for i, rec := range recs {
			if i > 0 {
				if _, err := io.WriteString(w, "\n"); err != nil {
					return err
				}
			}
			if err := EncodeText(w, rec); err != nil {
				return err
			}
		}
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

// EncodeJSON writes v as one JSON document, optionally indented.
func EncodeJSON(w io.Writer, v any, indent bool) error {
	enc := json.NewEncoder(w)
	if indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}

// EncodeYAML writes v as one YAML document.
func EncodeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// EncodeText writes a short human-readable summary of rec.
func EncodeText(w io.Writer, rec Record) error {
	var b strings.Builder
	if rec.Source != "" {
		fmt.Fprintf(&b, "source:        %s\n", rec.Source)
	}
	fmt.Fprintf(&b, "start:         %d, %d\n", rec.Start.Row, rec.Start.Col)
	fmt.Fprintf(&b, "left steps:    %d\n", rec.LeftSteps)
	fmt.Fprintf(&b, "directions:    %s\n", strings.Join(rec.Labels(), ", "))
	if rec.Reachable() {
		fmt.Fprintf(&b, "optimal steps: %d\n", rec.OptimalSteps)
	} else {
		b.WriteString("optimal steps: unreachable\n")
	}
	fmt.Fprintf(&b, "walk outcome:  %s\n", rec.Outcome)
	_, err := io.WriteString(w, b.String())
	return err
}
