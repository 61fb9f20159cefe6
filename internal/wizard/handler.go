package wizard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"sort"
	"strings"

	"vetdesk/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

// Viewer arma la vista de solo lectura de un draft (con referencias resueltas).
type Viewer func(ctx context.Context, d Draft) any

// Flow es todo lo que el adapter HTTP necesita para exponer un wizard.
type Flow struct {
	Navigator *Navigator
	View      Viewer

	// Fallback atiende el detalle cuando la URL no trae draft (p.ej. /pets/3 del dataset).
	Fallback http.HandlerFunc

	Log logger.Logger
}

// RegisterRoutes expone los pasos como rutas: los handlers solo decodifican,
// llaman al Navigator y redirigen a Transition.Location().
func RegisterRoutes(r chi.Router, f Flow) {
	if f.Log == nil {
		f.Log = logger.NewNop()
	}
	f.Log = f.Log.With(map[string]any{"kind": string(f.Navigator.Schema().Kind())})

	routes := f.Navigator.Routes()

	r.Get(routes.Edit, editHandler(f))
	r.Post(routes.Edit, submitHandler(f))
	r.Get(routes.Verify, verifyHandler(f))
	r.Post(routes.EditAction(), backToEditHandler(f))
	r.Post(routes.ConfirmAction(), confirmHandler(f))
	r.Get(routes.Detail, detailHandler(f))
}

type fieldResponse struct {
	Name     string `json:"name"`
	Kind     string `json:"kind"`
	Required bool   `json:"required"`
}

type editResponse struct {
	Kind   Kind            `json:"kind"`
	Step   Step            `json:"step"`
	Fields []fieldResponse `json:"fields"`
	Draft  map[string]any  `json:"draft"`
	Submit string          `json:"submit"`
}

type verifyResponse struct {
	Kind    Kind           `json:"kind"`
	Step    Step           `json:"step"`
	Draft   map[string]any `json:"draft"`
	View    any            `json:"view,omitempty"`
	Edit    string         `json:"edit"`
	Confirm string         `json:"confirm"`
}

type detailResponse struct {
	ID        string         `json:"id"`
	Kind      Kind           `json:"kind"`
	Step      Step           `json:"step"`
	Draft     map[string]any `json:"draft"`
	View      any            `json:"view,omitempty"`
	Persisted bool           `json:"persisted"`
}

type missingResponse struct {
	Error   string   `json:"error"`
	Missing []string `json:"missing"`
}

func editHandler(f Flow) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d := decodeRequest(f, r, StepEditing)
		schema := f.Navigator.Schema()

		fields := make([]fieldResponse, 0)
		for _, fd := range schema.Fields() {
			fields = append(fields, fieldResponse{Name: fd.Name, Kind: fd.Kind.String(), Required: fd.Required})
		}

		writeJSON(w, http.StatusOK, editResponse{
			Kind:   schema.Kind(),
			Step:   StepEditing,
			Fields: fields,
			Draft:  d.Fields(),
			Submit: withQuery(f.Navigator.Routes().Edit, r.URL.RawQuery),
		})
	}
}

// submitHandler es el único punto que muta el draft: rehidrata desde la query,
// aplica los cambios del body y hace el commit hacia verify.
func submitHandler(f Flow) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		schema := f.Navigator.Schema()
		d := decodeRequest(f, r, StepEditing)

		actions, err := actionsFromBody(schema, r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		d, err = schema.ApplyAll(d, actions...)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		if missing := schema.Missing(d); len(missing) > 0 {
			writeJSON(w, http.StatusUnprocessableEntity, missingResponse{
				Error:   "required fields missing",
				Missing: missing,
			})
			return
		}

		redirect(w, r, f, f.Navigator.Submit(d))
	}
}

func verifyHandler(f Flow) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d := decodeRequest(f, r, StepVerifying)
		routes := f.Navigator.Routes()

		writeJSON(w, http.StatusOK, verifyResponse{
			Kind:    d.Kind(),
			Step:    StepVerifying,
			Draft:   d.Fields(),
			View:    view(r.Context(), f, d),
			Edit:    withQuery(routes.EditAction(), r.URL.RawQuery),
			Confirm: withQuery(routes.ConfirmAction(), r.URL.RawQuery),
		})
	}
}

func backToEditHandler(f Flow) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d := decodeRequest(f, r, StepVerifying)
		redirect(w, r, f, f.Navigator.Edit(d))
	}
}

func confirmHandler(f Flow) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d := decodeRequest(f, r, StepVerifying)
		t := f.Navigator.Confirm(d)

		// No hay backend: el draft confirmado no se agrega a ninguna colección.
		f.Log.Info("draft confirmed", map[string]any{
			"id":        t.ID,
			"persisted": false,
		})

		redirect(w, r, f, t)
	}
}

func detailHandler(f Flow) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		if !carriesDraft(f.Navigator.Schema(), r.URL.Query()) {
			if f.Fallback != nil {
				f.Fallback(w, r)
				return
			}
			http.Error(w, "not found", http.StatusNotFound)
			return
		}

		d := decodeRequest(f, r, StepConfirmed)
		writeJSON(w, http.StatusOK, detailResponse{
			ID:        id,
			Kind:      d.Kind(),
			Step:      StepConfirmed,
			Draft:     d.Fields(),
			View:      view(r.Context(), f, d),
			Persisted: false,
		})
	}
}

// carriesDraft: la URL trae al menos un campo del schema.
func carriesDraft(schema *Schema, q url.Values) bool {
	for _, fd := range schema.Fields() {
		if _, ok := q[fd.Name]; ok {
			return true
		}
		if _, ok := q[fd.Name+listSuffix]; ok {
			return true
		}
	}
	return false
}

func decodeRequest(f Flow, r *http.Request, step Step) Draft {
	d, report := f.Navigator.Schema().DecodeReport(ParseQuery(r.URL.Query()))

	coerced := make([]string, 0)
	for _, def := range report {
		if def.Reason == ReasonCoerced {
			coerced = append(coerced, def.Field)
		}
	}
	if len(coerced) > 0 {
		f.Log.Debug("draft fields defaulted", map[string]any{
			"step":    string(step),
			"coerced": coerced,
		})
	}
	return d
}

func view(ctx context.Context, f Flow, d Draft) any {
	if f.View == nil {
		return nil
	}
	return f.View(ctx, d)
}

func redirect(w http.ResponseWriter, r *http.Request, f Flow, t Transition) {
	loc := t.Location()
	f.Log.Debug("wizard transition", map[string]any{
		"from":     string(t.From),
		"to":       string(t.To),
		"location": loc,
	})
	http.Redirect(w, r, loc, http.StatusSeeOther)
}

func withQuery(path, rawQuery string) string {
	if rawQuery == "" {
		return path
	}
	return path + "?" + rawQuery
}

// actionsFromBody traduce el body del formulario a acciones del reducer.
// Acepta JSON {"campo": "texto" | ["a","b"] | true | null} o un form urlencoded
// con el mismo formato de la query (lista = campo[]).
func actionsFromBody(schema *Schema, r *http.Request) ([]Action, error) {
	ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if ct == "application/x-www-form-urlencoded" {
		if err := r.ParseForm(); err != nil {
			return nil, errors.New("invalid form")
		}
		return actionsFromParams(schema, ParseQuery(r.PostForm)), nil
	}

	var raw map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, errors.New("invalid json")
	}
	return actionsFromJSON(raw)
}

func actionsFromJSON(raw map[string]json.RawMessage) ([]Action, error) {
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]Action, 0, len(keys))
	for _, k := range keys {
		v := raw[k]
		if strings.TrimSpace(string(v)) == "null" {
			out = append(out, Clear{Field: k})
			continue
		}

		var s string
		if err := json.Unmarshal(v, &s); err == nil {
			out = append(out, SetText{Field: k, Value: s})
			continue
		}
		var l []string
		if err := json.Unmarshal(v, &l); err == nil {
			out = append(out, SetList{Field: k, Values: l})
			continue
		}
		var b bool
		if err := json.Unmarshal(v, &b); err == nil {
			out = append(out, SetFlag{Field: k, Value: b})
			continue
		}
		return nil, fmt.Errorf("%s must be a string, a list of strings, a boolean or null", k)
	}
	return out, nil
}

// actionsFromParams: el form es el estado completo de flags y listas
// (un checkbox sin marcar o una lista vacía no viajan, se leen como false / []).
// Los campos de texto solo se tocan si vinieron.
func actionsFromParams(schema *Schema, p Params) []Action {
	decoded := schema.Decode(p)
	out := make([]Action, 0, len(schema.Fields()))
	for _, fd := range schema.Fields() {
		_, sent := p[fd.Name]
		switch fd.Kind {
		case List:
			out = append(out, SetList{Field: fd.Name, Values: decoded.List(fd.Name)})
		case Flag:
			out = append(out, SetFlag{Field: fd.Name, Value: decoded.Flag(fd.Name)})
		default:
			if sent {
				out = append(out, SetText{Field: fd.Name, Value: decoded.Text(fd.Name)})
			}
		}
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
