package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"vetdesk/internal/domain/pets"

	"github.com/jmoiron/sqlx"
)

type PetsRepo struct {
	db *sqlx.DB
}

func NewPetsRepo(db *sqlx.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

type petRow struct {
	ID           int           `db:"id"`
	Name         string        `db:"name"`
	Species      string        `db:"species"`
	Breed        string        `db:"breed"`
	Sex          string        `db:"sex"`
	BirthDate    sql.NullTime  `db:"birth_date"`
	Color        string        `db:"color"`
	Microchip    string        `db:"microchip"`
	WeightKg     float64       `db:"weight_kg"`
	OwnerID      sql.NullInt64 `db:"owner_id"`
	Organization string        `db:"organization"`
	Allergies    stringList    `db:"allergies"`
	Neutered     bool          `db:"neutered"`
	CreatedAt    time.Time     `db:"created_at"`
}

func (r petRow) toDomain() pets.Pet {
	p := pets.Pet{
		ID:           r.ID,
		Name:         r.Name,
		Type:         pets.Species(r.Species),
		Breed:        r.Breed,
		Sex:          pets.Sex(r.Sex),
		Color:        r.Color,
		Microchip:    r.Microchip,
		WeightKg:     r.WeightKg,
		Organization: r.Organization,
		Allergies:    []string(r.Allergies),
		Neutered:     r.Neutered,
		CreatedAt:    r.CreatedAt,
	}
	if p.Allergies == nil {
		p.Allergies = []string{}
	}
	// ojo: birth_date es date, pgx lo mapea a time.Time midnight UTC
	if r.BirthDate.Valid {
		t := r.BirthDate.Time
		p.BirthDate = &t
	}
	if r.OwnerID.Valid {
		p.OwnerID = int(r.OwnerID.Int64)
	}
	return p
}

const petColumns = `
	id, name, species, breed, sex,
	birth_date, color, microchip, weight_kg::float8 AS weight_kg,
	owner_id, organization, allergies, neutered, created_at
`

func (r *PetsRepo) List(ctx context.Context, filter pets.ListFilter) ([]pets.Pet, error) {
	var rows []petRow
	if err := r.db.SelectContext(ctx, &rows, `
		SELECT `+petColumns+`
		FROM pets
		WHERE ($1::text = '' OR organization = $1)
		  AND ($2::text = '' OR species = $2)
		  AND ($3::int = 0 OR owner_id = $3)
		  AND (
			$4::text = ''
			OR name ILIKE '%' || $4 || '%'
			OR breed ILIKE '%' || $4 || '%'
			OR microchip ILIKE '%' || $4 || '%'
		  )
		ORDER BY id ASC
	`, filter.Organization, string(filter.Type), filter.OwnerID, filter.Query); err != nil {
		return nil, err
	}

	out := make([]pets.Pet, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *PetsRepo) GetByID(ctx context.Context, id int) (pets.Pet, error) {
	var row petRow
	err := r.db.GetContext(ctx, &row, `
		SELECT `+petColumns+`
		FROM pets
		WHERE id = $1
	`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return pets.Pet{}, ErrNotFound
		}
		return pets.Pet{}, err
	}
	return row.toDomain(), nil
}
