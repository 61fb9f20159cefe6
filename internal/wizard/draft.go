package wizard

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownField    = errors.New("unknown field")
	ErrFieldType       = errors.New("field type mismatch")
	ErrIndexOutOfRange = errors.New("list index out of range")
	ErrKindMismatch    = errors.New("draft kind mismatch")
)

// Draft es el borrador en curso de una entidad (pet u owner).
// Es un valor inmutable: cada cambio pasa por Schema.Apply y devuelve otro Draft.
// Un campo ausente no está en values (distinto de "" o lista vacía hasta que se normaliza).
type Draft struct {
	kind   Kind
	values map[string]any // string | []string | bool
}

// NewDraft crea un borrador vacío del tipo del schema.
func (s *Schema) NewDraft() Draft {
	return Draft{kind: s.kind, values: map[string]any{}}
}

func (d Draft) Kind() Kind { return d.kind }

// Has indica si el campo fue seteado (aunque sea con "").
func (d Draft) Has(name string) bool {
	_, ok := d.values[name]
	return ok
}

func (d Draft) Text(name string) string {
	v, _ := d.values[name].(string)
	return v
}

// List devuelve una copia; nunca nil.
func (d Draft) List(name string) []string {
	v, _ := d.values[name].([]string)
	out := make([]string, len(v))
	copy(out, v)
	return out
}

func (d Draft) Flag(name string) bool {
	v, _ := d.values[name].(bool)
	return v
}

// Fields devuelve una copia de los campos presentes (útil para JSON y tests).
func (d Draft) Fields() map[string]any {
	out := make(map[string]any, len(d.values))
	for k, v := range d.values {
		if l, ok := v.([]string); ok {
			cp := make([]string, len(l))
			copy(cp, l)
			out[k] = cp
			continue
		}
		out[k] = v
	}
	return out
}

// Equal compara tipo y campos presentes. Lo usa también go-cmp.
func (d Draft) Equal(o Draft) bool {
	if d.kind != o.kind || len(d.values) != len(o.values) {
		return false
	}
	for k, v := range d.values {
		ov, ok := o.values[k]
		if !ok {
			return false
		}
		switch x := v.(type) {
		case []string:
			y, ok := ov.([]string)
			if !ok || len(x) != len(y) {
				return false
			}
			for i := range x {
				if x[i] != y[i] {
					return false
				}
			}
		default:
			if v != ov {
				return false
			}
		}
	}
	return true
}

// with copia el mapa; el Draft original no se toca.
func (d Draft) with(name string, v any) Draft {
	next := make(map[string]any, len(d.values)+1)
	for k, old := range d.values {
		next[k] = old
	}
	next[name] = v
	return Draft{kind: d.kind, values: next}
}

func (d Draft) without(name string) Draft {
	next := make(map[string]any, len(d.values))
	for k, old := range d.values {
		if k == name {
			continue
		}
		next[k] = old
	}
	return Draft{kind: d.kind, values: next}
}

// Action es un cambio del paso de edición sobre un campo.
type Action interface {
	field() string
	apply(f Field, d Draft) (Draft, error)
}

type SetText struct {
	Field string
	Value string
}

type SetList struct {
	Field  string
	Values []string
}

type AppendItem struct {
	Field string
	Value string
}

type RemoveItem struct {
	Field string
	Index int
}

type SetFlag struct {
	Field string
	Value bool
}

// Clear vuelve el campo a "ausente".
type Clear struct {
	Field string
}

func (a SetText) field() string    { return a.Field }
func (a SetList) field() string    { return a.Field }
func (a AppendItem) field() string { return a.Field }
func (a RemoveItem) field() string { return a.Field }
func (a SetFlag) field() string    { return a.Field }
func (a Clear) field() string      { return a.Field }

func (a SetText) apply(f Field, d Draft) (Draft, error) {
	if f.Kind != Scalar {
		return d, fieldTypeError(f, Scalar)
	}
	return d.with(f.Name, a.Value), nil
}

func (a SetList) apply(f Field, d Draft) (Draft, error) {
	if f.Kind != List {
		return d, fieldTypeError(f, List)
	}
	items := make([]string, len(a.Values))
	copy(items, a.Values)
	return d.with(f.Name, items), nil
}

func (a AppendItem) apply(f Field, d Draft) (Draft, error) {
	if f.Kind != List {
		return d, fieldTypeError(f, List)
	}
	return d.with(f.Name, append(d.List(f.Name), a.Value)), nil
}

func (a RemoveItem) apply(f Field, d Draft) (Draft, error) {
	if f.Kind != List {
		return d, fieldTypeError(f, List)
	}
	items := d.List(f.Name)
	if a.Index < 0 || a.Index >= len(items) {
		return d, fmt.Errorf("%w: %s[%d]", ErrIndexOutOfRange, f.Name, a.Index)
	}
	items = append(items[:a.Index], items[a.Index+1:]...)
	return d.with(f.Name, items), nil
}

func (a SetFlag) apply(f Field, d Draft) (Draft, error) {
	if f.Kind != Flag {
		return d, fieldTypeError(f, Flag)
	}
	return d.with(f.Name, a.Value), nil
}

func (a Clear) apply(f Field, d Draft) (Draft, error) {
	return d.without(f.Name), nil
}

func fieldTypeError(f Field, got FieldKind) error {
	return fmt.Errorf("%w: %s is %s, not %s", ErrFieldType, f.Name, f.Kind, got)
}

// Apply es el reducer del paso de edición: (draft, acción) -> draft nuevo.
// Si hay error devuelve el draft recibido sin cambios.
func (s *Schema) Apply(d Draft, a Action) (Draft, error) {
	if d.values == nil {
		d = Draft{kind: d.kind, values: map[string]any{}}
	}
	if d.kind == "" {
		d.kind = s.kind
	}
	if d.kind != s.kind {
		return d, fmt.Errorf("%w: %s draft on %s schema", ErrKindMismatch, d.kind, s.kind)
	}
	f, ok := s.Field(a.field())
	if !ok {
		return d, fmt.Errorf("%w: %s", ErrUnknownField, a.field())
	}
	return a.apply(f, d)
}

// Build aplica las acciones en orden sobre un borrador vacío.
func (s *Schema) Build(actions ...Action) (Draft, error) {
	return s.ApplyAll(s.NewDraft(), actions...)
}

// ApplyAll corta en la primera acción inválida.
func (s *Schema) ApplyAll(d Draft, actions ...Action) (Draft, error) {
	for _, a := range actions {
		next, err := s.Apply(d, a)
		if err != nil {
			return d, err
		}
		d = next
	}
	return d, nil
}

// Missing devuelve los campos obligatorios sin valor (ausentes, "" o lista vacía).
// Es el único chequeo de presencia que hace el paso de edición.
func (s *Schema) Missing(d Draft) []string {
	out := make([]string, 0)
	for _, f := range s.fields {
		if !f.Required {
			continue
		}
		switch f.Kind {
		case List:
			if len(d.List(f.Name)) == 0 {
				out = append(out, f.Name)
			}
		case Flag:
			if !d.Has(f.Name) {
				out = append(out, f.Name)
			}
		default:
			if strings.TrimSpace(d.Text(f.Name)) == "" {
				out = append(out, f.Name)
			}
		}
	}
	return out
}
