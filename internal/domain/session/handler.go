// Package session es el login simulado: no valida credenciales,
// espera un delay fijo y redirige al listado.
package session

import (
	"net/http"
	"time"

	"vetdesk/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

const landingPath = "/pets"

func RegisterRoutes(r chi.Router, delay time.Duration, log logger.Logger) {
	if log == nil {
		log = logger.NewNop()
	}
	r.Post("/login", loginHandler(delay, log))
}

// loginHandler godoc
// @Summary Login simulado
// @Description No hay autenticación: espera el delay configurado (LOGIN_DELAY) y redirige a /pets.
// @Tags session
// @Success 303 {string} string "redirect a /pets"
// @Router /login [post]
func loginHandler(delay time.Duration, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if delay > 0 {
			t := time.NewTimer(delay)
			defer t.Stop()

			select {
			case <-t.C:
			case <-r.Context().Done():
				// el cliente se fue; no hay a quién redirigir
				return
			}
		}

		log.Debug("login stub completed", map[string]any{"delay": delay.String()})
		http.Redirect(w, r, landingPath, http.StatusSeeOther)
	}
}
