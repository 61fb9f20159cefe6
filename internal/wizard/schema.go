package wizard

import "fmt"

// Kind identifica la entidad que se registra con el wizard (pet, owner).
type Kind string

// FieldKind es la forma del valor de un campo del borrador.
type FieldKind int

const (
	Scalar FieldKind = iota
	List
	Flag
)

func (k FieldKind) String() string {
	switch k {
	case Scalar:
		return "scalar"
	case List:
		return "list"
	case Flag:
		return "flag"
	default:
		return "unknown"
	}
}

// Field es una fila de la tabla declarativa de campos:
// nombre, forma (que define default y coerción) y si el paso de edición exige presencia.
type Field struct {
	Name     string
	Kind     FieldKind
	Required bool
}

// zero devuelve el valor por defecto del campo: "", []string{} o false.
func (f Field) zero() any {
	switch f.Kind {
	case List:
		return []string{}
	case Flag:
		return false
	default:
		return ""
	}
}

// Schema es la tabla de campos de un tipo de borrador.
// Es inmutable una vez creada y se comparte entre requests.
type Schema struct {
	kind   Kind
	fields []Field
	byName map[string]int
}

// NewSchema arma el schema. Los schemas se declaran como variables de paquete,
// así que un nombre vacío o duplicado es un bug de programación y hace panic.
func NewSchema(kind Kind, fields ...Field) *Schema {
	s := &Schema{
		kind:   kind,
		fields: make([]Field, 0, len(fields)),
		byName: make(map[string]int, len(fields)),
	}
	for _, f := range fields {
		if f.Name == "" {
			panic(fmt.Sprintf("wizard: %s schema has a field without name", kind))
		}
		if _, dup := s.byName[f.Name]; dup {
			panic(fmt.Sprintf("wizard: %s schema declares %q twice", kind, f.Name))
		}
		s.byName[f.Name] = len(s.fields)
		s.fields = append(s.fields, f)
	}
	return s
}

func (s *Schema) Kind() Kind { return s.kind }

// Fields devuelve una copia de la tabla, en orden de declaración.
func (s *Schema) Fields() []Field {
	out := make([]Field, len(s.fields))
	copy(out, s.fields)
	return out
}

func (s *Schema) Field(name string) (Field, bool) {
	i, ok := s.byName[name]
	if !ok {
		return Field{}, false
	}
	return s.fields[i], true
}

// Required devuelve los nombres del subconjunto obligatorio.
func (s *Schema) Required() []string {
	out := make([]string, 0)
	for _, f := range s.fields {
		if f.Required {
			out = append(out, f.Name)
		}
	}
	return out
}
