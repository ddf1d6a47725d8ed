package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/bnema/officehours/internal/domain"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatText Format = "text"
)

func ParseFormat(raw string) (Format, error) {
	switch format := Format(strings.ToLower(strings.TrimSpace(raw))); format {
	case "", FormatJSON:
		return FormatJSON, nil
	case "yml", FormatYAML:
		return FormatYAML, nil
	case FormatTOML, FormatText:
		return format, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (want json, yaml, toml or text)", raw)
	}
}

// Encode writes report to w. Structured formats write an empty mapping for
// an empty report.
func Encode(w io.Writer, format Format, report domain.Report) error {
	switch format {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(report)
	case FormatYAML:
		if report.IsEmpty() {
			_, err := io.WriteString(w, "{}\n")
			return err
		}
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(report); err != nil {
			return err
		}
		return encoder.Close()
	case FormatTOML:
		return toml.NewEncoder(w).Encode(report)
	case FormatText:
		_, err := io.WriteString(w, text(report))
		return err
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

func text(report domain.Report) string {
	if report.IsEmpty() {
		return "No events logged.\n"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Day started at %s\n", report.Start)
	fmt.Fprintf(&b, "Day ended at %s\n", report.End)
	fmt.Fprintf(&b, "Total accounts: %s\n", report.Total)
	fmt.Fprintf(&b, "    working: %s\n", report.Working)
	fmt.Fprintf(&b, "    resting: %s\n", report.Resting)

	return b.String()
}
