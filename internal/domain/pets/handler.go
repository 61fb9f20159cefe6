package pets

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"vetdesk/internal/adapters/export/xlsx"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registra listados y export.
// El detalle /pets/{id} lo registra el wizard (usa GetHandler como fallback).
func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/pets", listPetsHandler(svc))
	r.Get("/pets/export.xlsx", exportPetsHandler(svc))

	// Mascotas de un dueño del dataset
	r.Get("/owners/{id}/pets", listOwnerPetsHandler(svc))
}

type petResponse struct {
	ID           int        `json:"id"`
	Name         string     `json:"name"`
	Type         Species    `json:"type"`
	Breed        string     `json:"breed"`
	Sex          Sex        `json:"sex"`
	BirthDate    *time.Time `json:"birth_date,omitempty"`
	Color        string     `json:"color"`
	Microchip    string     `json:"microchip"`
	WeightKg     float64    `json:"weight_kg"`
	OwnerID      int        `json:"owner_id"`
	Organization string     `json:"organization"`
	Allergies    []string   `json:"allergies"`
	Neutered     bool       `json:"neutered"`
	CreatedAt    time.Time  `json:"created_at"`
}

// listPetsHandler godoc
// @Summary Listar mascotas
// @Description Filtra el dataset estático. Todos los filtros son opcionales.
// @Tags pets
// @Produce json
// @Param q query string false "Texto de búsqueda (nombre, raza, microchip)"
// @Param organization query string false "Slug de organización"
// @Param type query string false "Especie" Enums(dog, cat, bird, rabbit, other)
// @Param ownerId query int false "ID del dueño"
// @Success 200 {array} petResponse
// @Failure 400 {string} string "ownerId must be a number"
// @Failure 500 {string} string "internal error"
// @Router /pets [get]
func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, err := parseListFilter(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		items, err := svc.List(r.Context(), filter)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toPetResponses(items))
	}
}

// exportPetsHandler godoc
// @Summary Exportar mascotas a Excel
// @Tags pets
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file
// @Failure 400 {string} string "ownerId must be a number"
// @Router /pets/export.xlsx [get]
func exportPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, err := parseListFilter(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		items, err := svc.List(r.Context(), filter)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		t := xlsx.Table{
			Sheet:  "Pets",
			Header: []string{"ID", "Name", "Type", "Breed", "Sex", "Owner ID", "Organization", "Neutered"},
			Rows:   make([][]any, 0, len(items)),
		}
		for _, p := range items {
			t.Rows = append(t.Rows, []any{
				p.ID, p.Name, string(p.Type), p.Breed, string(p.Sex),
				p.OwnerID, p.Organization, p.Neutered,
			})
		}

		if err := xlsx.Serve(w, "pets.xlsx", t); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
		}
	}
}

// listOwnerPetsHandler godoc
// @Summary Listar mascotas de un dueño
// @Tags pets
// @Produce json
// @Param id path int true "ID del dueño"
// @Success 200 {array} petResponse
// @Failure 404 {string} string "owner not found"
// @Router /owners/{id}/pets [get]
func listOwnerPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil || ownerID <= 0 {
			http.Error(w, "owner not found", http.StatusNotFound)
			return
		}

		items, err := svc.ListByOwner(r.Context(), ownerID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toPetResponses(items))
	}
}

// GetHandler godoc
// @Summary Obtener mascota
// @Description Sin parámetros de draft devuelve la mascota del dataset. Con parámetros, es la vista de detalle de un alta confirmada.
// @Tags pets
// @Produce json
// @Param id path string true "ID numérico o id emitido al confirmar"
// @Success 200 {object} petResponse
// @Failure 404 {string} string "pet not found"
// @Router /pets/{id} [get]
func GetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(strings.TrimSpace(chi.URLParam(r, "id")))
		if err != nil {
			http.Error(w, "pet not found", http.StatusNotFound)
			return
		}

		p, err := svc.GetByID(r.Context(), id)
		if err != nil {
			http.Error(w, "pet not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toPetResponse(p))
	}
}

func parseListFilter(r *http.Request) (ListFilter, error) {
	q := r.URL.Query()
	filter := ListFilter{
		Query:        q.Get("q"),
		Organization: q.Get("organization"),
		Type:         Species(q.Get("type")),
	}

	if v := strings.TrimSpace(q.Get("ownerId")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return ListFilter{}, errors.New("ownerId must be a number")
		}
		filter.OwnerID = n
	}
	return filter, nil
}

func toPetResponses(items []Pet) []petResponse {
	out := make([]petResponse, 0, len(items))
	for _, p := range items {
		out = append(out, toPetResponse(p))
	}
	return out
}

func toPetResponse(p Pet) petResponse {
	allergies := p.Allergies
	if allergies == nil {
		allergies = []string{}
	}
	return petResponse{
		ID:           p.ID,
		Name:         p.Name,
		Type:         p.Type,
		Breed:        p.Breed,
		Sex:          p.Sex,
		BirthDate:    p.BirthDate,
		Color:        p.Color,
		Microchip:    p.Microchip,
		WeightKg:     p.WeightKg,
		OwnerID:      p.OwnerID,
		Organization: p.Organization,
		Allergies:    allergies,
		Neutered:     p.Neutered,
		CreatedAt:    p.CreatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
