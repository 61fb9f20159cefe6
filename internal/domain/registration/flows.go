// Package registration arma los wizards de alta (pets, owners): schema + rutas +
// vista de verify con las referencias resueltas.
package registration

import (
	"context"
	"strings"

	"vetdesk/internal/domain/lookup"
	"vetdesk/internal/domain/owners"
	"vetdesk/internal/domain/pets"
	"vetdesk/internal/platform/logger"
	"vetdesk/internal/wizard"

	"github.com/go-chi/chi/v5"
)

type Deps struct {
	Pets     *pets.Service
	Owners   *owners.Service
	Resolver *lookup.Resolver
	Log      logger.Logger

	// Opcionales (tests): si son nil se usa un Minter con el prefijo del tipo.
	PetMinter   *wizard.Minter
	OwnerMinter *wizard.Minter
}

// RegisterRoutes registra /pets/new..., /owners/new... y los detalles /pets/{id}, /owners/{id}.
func RegisterRoutes(r chi.Router, deps Deps) {
	wizard.RegisterRoutes(r, wizard.Flow{
		Navigator: PetNavigator(deps.PetMinter),
		View:      PetView(deps.Resolver),
		Fallback:  pets.GetHandler(deps.Pets),
		Log:       deps.Log,
	})
	wizard.RegisterRoutes(r, wizard.Flow{
		Navigator: OwnerNavigator(deps.OwnerMinter),
		View:      OwnerView(deps.Resolver),
		Fallback:  owners.GetHandler(deps.Owners),
		Log:       deps.Log,
	})
}

func PetNavigator(m *wizard.Minter) *wizard.Navigator {
	return wizard.NewNavigator(pets.DraftSchema, wizard.RoutesFor("/pets"), m)
}

func OwnerNavigator(m *wizard.Minter) *wizard.Navigator {
	return wizard.NewNavigator(owners.DraftSchema, wizard.RoutesFor("/owners"), m)
}

// PetSummary es la vista de verify/detalle de una mascota en alta.
type PetSummary struct {
	Title        string                  `json:"title"`
	Owner        lookup.OwnerView        `json:"owner"`
	Organization lookup.OrganizationView `json:"organization"`
	Rows         []Row                   `json:"rows"`
}

func PetView(res *lookup.Resolver) wizard.Viewer {
	return func(ctx context.Context, d wizard.Draft) any {
		title := strings.TrimSpace(d.Text("name"))
		if title == "" {
			title = "Unnamed pet"
		}
		return PetSummary{
			Title:        title,
			Owner:        res.Owner(ctx, d.Text("ownerId")),
			Organization: res.Organization(ctx, d.Text("organization")),
			Rows:         summaryRows(pets.DraftSchema, d),
		}
	}
}

// OwnerSummary es la vista de verify/detalle de un dueño en alta.
type OwnerSummary struct {
	FullName     string                  `json:"full_name"`
	Contact      string                  `json:"contact"`
	Organization lookup.OrganizationView `json:"organization"`
	Rows         []Row                   `json:"rows"`
}

func OwnerView(res *lookup.Resolver) wizard.Viewer {
	return func(ctx context.Context, d wizard.Draft) any {
		return OwnerSummary{
			FullName:     fullName(d.Text("firstName"), d.Text("lastName")),
			Contact:      preferredContact(d),
			Organization: res.Organization(ctx, d.Text("organization")),
			Rows:         summaryRows(owners.DraftSchema, d),
		}
	}
}

// preferredContact elige el dato según el canal preferido; si falta, el primero disponible.
func preferredContact(d wizard.Draft) string {
	phones := d.List("phones")
	email := strings.TrimSpace(d.Text("email"))

	firstPhone := ""
	for _, p := range phones {
		if s := strings.TrimSpace(p); s != "" {
			firstPhone = s
			break
		}
	}

	switch strings.ToLower(strings.TrimSpace(d.Text("preferredContact"))) {
	case "email":
		if email != "" {
			return email
		}
	case "phone", "sms":
		if firstPhone != "" {
			return firstPhone
		}
	}

	if firstPhone != "" {
		return firstPhone
	}
	if email != "" {
		return email
	}
	return lookup.PlaceholderNotSpecified
}
