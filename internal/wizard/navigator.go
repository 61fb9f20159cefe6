package wizard

import (
	"net/url"
	"strings"
)

// Step es el estado del wizard.
type Step string

const (
	StepEditing   Step = "editing"
	StepVerifying Step = "verifying"
	StepConfirmed Step = "confirmed" // terminal: sigue en la vista de detalle
)

// Routes son las direcciones de cada paso de un wizard.
// Detail lleva el placeholder {id} (mismo patrón que usa chi).
type Routes struct {
	Edit   string
	Verify string
	Detail string
}

// RoutesFor arma las rutas convencionales: /pets/new, /pets/new/verify, /pets/{id}.
func RoutesFor(base string) Routes {
	base = "/" + strings.Trim(base, "/")
	return Routes{
		Edit:   base + "/new",
		Verify: base + "/new/verify",
		Detail: base + "/{id}",
	}
}

func (r Routes) EditAction() string    { return r.Verify + "/edit" }
func (r Routes) ConfirmAction() string { return r.Verify + "/confirm" }

func (r Routes) DetailPath(id string) string {
	return strings.Replace(r.Detail, "{id}", url.PathEscape(id), 1)
}

// Transition describe un cambio de paso: a dónde ir y con qué parámetros.
// El adapter HTTP la convierte en un redirect; aquí no hay efectos.
type Transition struct {
	From   Step
	To     Step
	Path   string
	Params Params
	ID     string // solo en la confirmación
}

// Location es path + query, lista para el header Location.
func (t Transition) Location() string {
	q := t.Params.Encode()
	if q == "" {
		return t.Path
	}
	return t.Path + "?" + q
}

// Navigator orquesta edit -> verify -> confirm. Ninguna transición falla:
// no hay validación (la presencia la chequea el paso de edición) ni backend.
type Navigator struct {
	schema *Schema
	routes Routes
	minter *Minter
}

func NewNavigator(schema *Schema, routes Routes, minter *Minter) *Navigator {
	if minter == nil {
		minter = NewMinter(string(schema.Kind()))
	}
	return &Navigator{schema: schema, routes: routes, minter: minter}
}

func (n *Navigator) Schema() *Schema { return n.schema }
func (n *Navigator) Routes() Routes  { return n.routes }

// Submit: Editing -> Verifying.
func (n *Navigator) Submit(d Draft) Transition {
	return Transition{
		From:   StepEditing,
		To:     StepVerifying,
		Path:   n.routes.Verify,
		Params: n.schema.Encode(d),
	}
}

// Edit: Verifying -> Editing. Re-encoda todo el draft, incluidos campos
// que el formulario de edición no muestra.
func (n *Navigator) Edit(d Draft) Transition {
	return Transition{
		From:   StepVerifying,
		To:     StepEditing,
		Path:   n.routes.Edit,
		Params: n.schema.Encode(d),
	}
}

// Confirm: Verifying -> Confirmed. El id va en el path, nunca en los campos del draft.
// No hay persistencia detrás: es solo un resultado de navegación.
func (n *Navigator) Confirm(d Draft) Transition {
	id := n.minter.Mint()
	return Transition{
		From:   StepVerifying,
		To:     StepConfirmed,
		Path:   n.routes.DetailPath(id),
		Params: n.schema.Encode(d),
		ID:     id,
	}
}
