package wizard

import "strings"

// Param es un valor del set de parámetros: texto, lista de textos o booleano.
type Param struct {
	Kind  FieldKind
	Text  string
	Items []string
	Flag  bool
}

func TextParam(v string) Param { return Param{Kind: Scalar, Text: v} }

func ListParam(items ...string) Param {
	cp := make([]string, len(items))
	copy(cp, items)
	return Param{Kind: List, Items: cp}
}

func FlagParam(v bool) Param { return Param{Kind: Flag, Flag: v} }

// Params es el set de parámetros plano que viaja entre pasos del wizard.
type Params map[string]Param

// DefaultReason explica por qué Decode usó el default de un campo.
type DefaultReason string

const (
	ReasonAbsent  DefaultReason = "absent"
	ReasonCoerced DefaultReason = "coerced"
)

// Defaulted registra un campo decodificado con su valor por defecto.
// No es un error: solo se loguea.
type Defaulted struct {
	Field  string
	Reason DefaultReason
}

// Encode es total: todos los campos del schema quedan con entrada,
// los ausentes con su default.
func (s *Schema) Encode(d Draft) Params {
	out := make(Params, len(s.fields))
	for _, f := range s.fields {
		switch f.Kind {
		case List:
			out[f.Name] = ListParam(d.List(f.Name)...)
		case Flag:
			out[f.Name] = FlagParam(d.Flag(f.Name))
		default:
			out[f.Name] = TextParam(d.Text(f.Name))
		}
	}
	return out
}

// Decode es la inversa de Encode. Claves desconocidas se ignoran.
func (s *Schema) Decode(p Params) Draft {
	d, _ := s.DecodeReport(p)
	return d
}

// DecodeReport decodifica y además informa qué campos cayeron en default.
//   - lista que recibe algo que no es lista => lista vacía
//   - texto que recibe algo que no es texto => ""
//   - flag acepta un booleano o un texto "true"/"1"/"on"; cualquier otra cosa => false
func (s *Schema) DecodeReport(p Params) (Draft, []Defaulted) {
	values := make(map[string]any, len(s.fields))
	report := make([]Defaulted, 0)

	for _, f := range s.fields {
		v, ok := p[f.Name]
		if !ok {
			values[f.Name] = f.zero()
			report = append(report, Defaulted{Field: f.Name, Reason: ReasonAbsent})
			continue
		}

		switch f.Kind {
		case List:
			if v.Kind != List {
				values[f.Name] = f.zero()
				report = append(report, Defaulted{Field: f.Name, Reason: ReasonCoerced})
				continue
			}
			items := make([]string, len(v.Items))
			copy(items, v.Items)
			values[f.Name] = items

		case Flag:
			switch v.Kind {
			case Flag:
				values[f.Name] = v.Flag
			case Scalar:
				b, known := parseFlag(v.Text)
				values[f.Name] = b
				if !known {
					report = append(report, Defaulted{Field: f.Name, Reason: ReasonCoerced})
				}
			default:
				values[f.Name] = false
				report = append(report, Defaulted{Field: f.Name, Reason: ReasonCoerced})
			}

		default:
			if v.Kind != Scalar {
				values[f.Name] = f.zero()
				report = append(report, Defaulted{Field: f.Name, Reason: ReasonCoerced})
				continue
			}
			values[f.Name] = v.Text
		}
	}

	return Draft{kind: s.kind, values: values}, report
}

// Normalize completa los campos ausentes con su default.
// Cumple Decode(Encode(d)) == Normalize(d).
func (s *Schema) Normalize(d Draft) Draft {
	values := make(map[string]any, len(s.fields))
	for _, f := range s.fields {
		if !d.Has(f.Name) {
			values[f.Name] = f.zero()
			continue
		}
		switch f.Kind {
		case List:
			values[f.Name] = d.List(f.Name)
		case Flag:
			values[f.Name] = d.Flag(f.Name)
		default:
			values[f.Name] = d.Text(f.Name)
		}
	}
	return Draft{kind: s.kind, values: values}
}

// parseFlag devuelve (valor, reconocido). "" cuenta como false reconocido.
func parseFlag(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "on", "yes":
		return true, true
	case "false", "0", "off", "no", "":
		return false, true
	default:
		return false, false
	}
}
