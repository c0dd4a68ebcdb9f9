package presentation

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/zjrosen/areacalc/internal/users"
)

// Output formats accepted by the list commands.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ValidFormat reports whether f is a supported output format.
func ValidFormat(f string) bool {
	switch f {
	case FormatText, FormatJSON, FormatYAML:
		return true
	default:
		return false
	}
}

// Formatter handles output formatting
type Formatter struct {
	writer io.Writer
}

// NewFormatter creates a new formatter
func NewFormatter(writer io.Writer) *Formatter {
	return &Formatter{
		writer: writer,
	}
}

// FormatShapes writes the catalog. Text output matches the calculator menu.
func (f *Formatter) FormatShapes(shapes []ShapeDTO, format string) error {
	switch format {
	case FormatJSON:
		return f.encodeJSON(shapes)
	case FormatYAML:
		return f.encodeYAML(shapes)
	case FormatText:
		for _, s := range shapes {
			if _, err := fmt.Fprintf(f.writer, "%d - %s\n", s.Index, s.Name); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

// FormatUsers writes the access-level demo. Text output is the demo
// transcript, followed by the trailer for poly.
func (f *Formatter) FormatUsers(list []UserDTO, poly users.User, format string) error {
	switch format {
	case FormatJSON:
		return f.encodeJSON(list)
	case FormatYAML:
		return f.encodeYAML(list)
	case FormatText:
		var b strings.Builder
		b.WriteString("=== User Info & Actions Demo ===\n\n")
		for _, u := range list {
			b.WriteString(u.Info + "\n")
			b.WriteString(u.Login + "\n")
			if u.HasAccess {
				b.WriteString("Access Details: " + u.Access + "\n")
			}
			b.WriteString(u.Logout + "\n")
			b.WriteString("-------------------------------\n")
		}
		b.WriteString("\n=== Polymorphism Demonstration ===\n")
		b.WriteString(poly.Info() + "\n")
		b.WriteString(poly.Login() + "\n")
		_, err := io.WriteString(f.writer, b.String())
		return err
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

func (f *Formatter) encodeJSON(v any) error {
	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func (f *Formatter) encodeYAML(v any) error {
	encoder := yaml.NewEncoder(f.writer)
	encoder.SetIndent(2)
	if err := encoder.Encode(v); err != nil {
		return err
	}
	return encoder.Close()
}
