package postgres

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"

	"vetdesk/internal/domain/organizations"
	"vetdesk/internal/domain/owners"
	"vetdesk/internal/domain/pets"

	"github.com/jmoiron/sqlx"
)

//go:embed schema.sql
var schemaSQL string

// EnsureSchema crea las tablas si no existen. Es idempotente.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("postgres: ensure schema: %w", err)
	}
	return nil
}

// Dataset es lo que Seed carga: mismas colecciones que los datasets en memoria.
type Dataset struct {
	Organizations []organizations.Organization
	Owners        []owners.Owner
	Pets          []pets.Pet
}

// Seed inserta el dataset en una transacción. Filas ya existentes (por clave) se saltean.
func Seed(ctx context.Context, db *sqlx.DB, ds Dataset) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, o := range ds.Organizations {
		if _, err := tx.NamedExecContext(ctx, `
			INSERT INTO organizations (slug, name, city, phone)
			VALUES (:slug, :name, :city, :phone)
			ON CONFLICT (slug) DO NOTHING
		`, organizationRow{Slug: o.Slug, Name: o.Name, City: o.City, Phone: o.Phone}); err != nil {
			return fmt.Errorf("postgres: seed organization %s: %w", o.Slug, err)
		}
	}

	for _, o := range ds.Owners {
		if _, err := tx.NamedExecContext(ctx, `
			INSERT INTO owners (`+ownerColumns+`)
			VALUES (
				:id, :type, :first_name, :last_name,
				:email, :phones, :address, :city,
				:organization, :preferred_contact, :created_at
			)
			ON CONFLICT (id) DO NOTHING
		`, ownerRowFrom(o)); err != nil {
			return fmt.Errorf("postgres: seed owner %d: %w", o.ID, err)
		}
	}

	for _, p := range ds.Pets {
		if _, err := tx.NamedExecContext(ctx, `
			INSERT INTO pets (
				id, name, species, breed, sex,
				birth_date, color, microchip, weight_kg,
				owner_id, organization, allergies, neutered, created_at
			)
			VALUES (
				:id, :name, :species, :breed, :sex,
				:birth_date, :color, :microchip, :weight_kg,
				:owner_id, :organization, :allergies, :neutered, :created_at
			)
			ON CONFLICT (id) DO NOTHING
		`, petRowFrom(p)); err != nil {
			return fmt.Errorf("postgres: seed pet %d: %w", p.ID, err)
		}
	}

	// ids explícitos: las secuencias SERIAL quedan atrás
	for _, table := range []string{"owners", "pets"} {
		if _, err := tx.ExecContext(ctx, fmt.Sprintf(
			`SELECT setval(pg_get_serial_sequence('%[1]s', 'id'), COALESCE(MAX(id), 1)) FROM %[1]s`, table,
		)); err != nil {
			return fmt.Errorf("postgres: reset %s sequence: %w", table, err)
		}
	}

	return tx.Commit()
}

func ownerRowFrom(o owners.Owner) ownerRow {
	return ownerRow{
		ID:               o.ID,
		Type:             string(o.Type),
		FirstName:        o.FirstName,
		LastName:         o.LastName,
		Email:            o.Email,
		Phones:           stringList(o.Phones),
		Address:          o.Address,
		City:             o.City,
		Organization:     o.Organization,
		PreferredContact: o.PreferredContact,
		CreatedAt:        o.CreatedAt,
	}
}

func petRowFrom(p pets.Pet) petRow {
	row := petRow{
		ID:           p.ID,
		Name:         p.Name,
		Species:      string(p.Type),
		Breed:        p.Breed,
		Sex:          string(p.Sex),
		Color:        p.Color,
		Microchip:    p.Microchip,
		WeightKg:     p.WeightKg,
		Organization: p.Organization,
		Allergies:    stringList(p.Allergies),
		Neutered:     p.Neutered,
		CreatedAt:    p.CreatedAt,
	}
	if p.BirthDate != nil {
		row.BirthDate = sql.NullTime{Time: *p.BirthDate, Valid: true}
	}
	// 0 = sin dueño
	if p.OwnerID > 0 {
		row.OwnerID = sql.NullInt64{Int64: int64(p.OwnerID), Valid: true}
	}
	return row
}
