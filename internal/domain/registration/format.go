package registration

import (
	"strings"
	"unicode"

	"vetdesk/internal/domain/lookup"
	"vetdesk/internal/wizard"
)

// Row es una línea del resumen de solo lectura del paso verify.
type Row struct {
	Field string `json:"field"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// summaryRows formatea todos los campos del schema en orden de declaración.
// Vacíos => "not specified"; listas unidas con ", "; flags "Yes"/"No".
func summaryRows(schema *wizard.Schema, d wizard.Draft) []Row {
	fields := schema.Fields()
	out := make([]Row, 0, len(fields))
	for _, f := range fields {
		out = append(out, Row{
			Field: f.Name,
			Label: labelFor(f.Name),
			Value: formatValue(f, d),
		})
	}
	return out
}

func formatValue(f wizard.Field, d wizard.Draft) string {
	switch f.Kind {
	case wizard.List:
		items := make([]string, 0)
		for _, it := range d.List(f.Name) {
			if s := strings.TrimSpace(it); s != "" {
				items = append(items, s)
			}
		}
		if len(items) == 0 {
			return lookup.PlaceholderNotSpecified
		}
		return strings.Join(items, ", ")
	case wizard.Flag:
		if d.Flag(f.Name) {
			return "Yes"
		}
		return "No"
	default:
		if s := strings.TrimSpace(d.Text(f.Name)); s != "" {
			return s
		}
		return lookup.PlaceholderNotSpecified
	}
}

// labelFor: "firstName" -> "First name", "ownerId" -> "Owner id".
func labelFor(name string) string {
	var b strings.Builder
	for i, r := range name {
		switch {
		case i == 0:
			b.WriteRune(unicode.ToUpper(r))
		case unicode.IsUpper(r):
			b.WriteRune(' ')
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func fullName(first, last string) string {
	name := strings.TrimSpace(strings.TrimSpace(first) + " " + strings.TrimSpace(last))
	if name == "" {
		return lookup.PlaceholderNotSpecified
	}
	return name
}
