package organizations

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/organizations", listOrganizationsHandler(svc))
	r.Get("/organizations/{slug}", getOrganizationHandler(svc))
}

type organizationResponse struct {
	Slug  string `json:"slug"`
	Name  string `json:"name"`
	City  string `json:"city"`
	Phone string `json:"phone"`
	Badge Badge  `json:"badge"`
}

// listOrganizationsHandler godoc
// @Summary Listar organizaciones
// @Tags organizations
// @Produce json
// @Success 200 {array} organizationResponse
// @Failure 500 {string} string "internal error"
// @Router /organizations [get]
func listOrganizationsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]organizationResponse, 0, len(items))
		for _, o := range items {
			out = append(out, toOrganizationResponse(o))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getOrganizationHandler godoc
// @Summary Obtener organización por slug
// @Tags organizations
// @Produce json
// @Param slug path string true "Slug de la organización"
// @Success 200 {object} organizationResponse
// @Failure 404 {string} string "organization not found"
// @Router /organizations/{slug} [get]
func getOrganizationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		o, err := svc.GetBySlug(r.Context(), chi.URLParam(r, "slug"))
		if err != nil {
			http.Error(w, "organization not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toOrganizationResponse(o))
	}
}

func toOrganizationResponse(o Organization) organizationResponse {
	return organizationResponse{
		Slug:  o.Slug,
		Name:  o.Name,
		City:  o.City,
		Phone: o.Phone,
		Badge: BadgeFor(o.Slug),
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
