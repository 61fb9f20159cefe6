package owners

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"vetdesk/internal/adapters/export/xlsx"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registra el listado y su export.
// El detalle /owners/{id} lo registra el wizard (usa GetHandler como fallback).
func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/owners", listOwnersHandler(svc))
	r.Get("/owners/export.xlsx", exportOwnersHandler(svc))
}

type ownerResponse struct {
	ID               int       `json:"id"`
	Type             OwnerType `json:"type"`
	FirstName        string    `json:"first_name"`
	LastName         string    `json:"last_name"`
	FullName         string    `json:"full_name"`
	Email            string    `json:"email"`
	Phones           []string  `json:"phones"`
	Address          string    `json:"address"`
	City             string    `json:"city"`
	Organization     string    `json:"organization"`
	PreferredContact string    `json:"preferred_contact"`
	CreatedAt        time.Time `json:"created_at"`
}

// listOwnersHandler godoc
// @Summary Listar dueños
// @Description Filtra el dataset estático por texto libre (nombre, email, teléfono) y organización.
// @Tags owners
// @Produce json
// @Param q query string false "Texto de búsqueda"
// @Param organization query string false "Slug de organización"
// @Success 200 {array} ownerResponse
// @Failure 500 {string} string "internal error"
// @Router /owners [get]
func listOwnersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context(), parseListFilter(r))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]ownerResponse, 0, len(items))
		for _, o := range items {
			out = append(out, toOwnerResponse(o))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// exportOwnersHandler godoc
// @Summary Exportar dueños a Excel
// @Tags owners
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param q query string false "Texto de búsqueda"
// @Param organization query string false "Slug de organización"
// @Success 200 {file} file
// @Router /owners/export.xlsx [get]
func exportOwnersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context(), parseListFilter(r))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		t := xlsx.Table{
			Sheet:  "Owners",
			Header: []string{"ID", "Type", "Name", "Email", "Phones", "City", "Organization"},
			Rows:   make([][]any, 0, len(items)),
		}
		for _, o := range items {
			t.Rows = append(t.Rows, []any{
				o.ID, string(o.Type), o.FullName(), o.Email,
				strings.Join(o.Phones, ", "), o.City, o.Organization,
			})
		}

		if err := xlsx.Serve(w, "owners.xlsx", t); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
		}
	}
}

// GetHandler godoc
// @Summary Obtener dueño
// @Description Sin parámetros de draft devuelve el dueño del dataset. Con parámetros, es la vista de detalle de un alta confirmada.
// @Tags owners
// @Produce json
// @Param id path string true "ID numérico o id emitido al confirmar"
// @Success 200 {object} ownerResponse
// @Failure 404 {string} string "owner not found"
// @Router /owners/{id} [get]
func GetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(strings.TrimSpace(chi.URLParam(r, "id")))
		if err != nil {
			http.Error(w, "owner not found", http.StatusNotFound)
			return
		}

		o, err := svc.GetByID(r.Context(), id)
		if err != nil {
			http.Error(w, "owner not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toOwnerResponse(o))
	}
}

func parseListFilter(r *http.Request) ListFilter {
	q := r.URL.Query()
	return ListFilter{
		Query:        q.Get("q"),
		Organization: q.Get("organization"),
	}
}

func toOwnerResponse(o Owner) ownerResponse {
	phones := o.Phones
	if phones == nil {
		phones = []string{}
	}
	return ownerResponse{
		ID:               o.ID,
		Type:             o.Type,
		FirstName:        o.FirstName,
		LastName:         o.LastName,
		FullName:         o.FullName(),
		Email:            o.Email,
		Phones:           phones,
		Address:          o.Address,
		City:             o.City,
		Organization:     o.Organization,
		PreferredContact: o.PreferredContact,
		CreatedAt:        o.CreatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
