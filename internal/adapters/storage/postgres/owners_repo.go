package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"vetdesk/internal/domain/owners"

	"github.com/jmoiron/sqlx"
)

type OwnersRepo struct {
	db *sqlx.DB
}

func NewOwnersRepo(db *sqlx.DB) *OwnersRepo {
	return &OwnersRepo{db: db}
}

type ownerRow struct {
	ID               int        `db:"id"`
	Type             string     `db:"type"`
	FirstName        string     `db:"first_name"`
	LastName         string     `db:"last_name"`
	Email            string     `db:"email"`
	Phones           stringList `db:"phones"`
	Address          string     `db:"address"`
	City             string     `db:"city"`
	Organization     string     `db:"organization"`
	PreferredContact string     `db:"preferred_contact"`
	CreatedAt        time.Time  `db:"created_at"`
}

func (r ownerRow) toDomain() owners.Owner {
	phones := []string(r.Phones)
	if phones == nil {
		phones = []string{}
	}
	return owners.Owner{
		ID:               r.ID,
		Type:             owners.OwnerType(r.Type),
		FirstName:        r.FirstName,
		LastName:         r.LastName,
		Email:            r.Email,
		Phones:           phones,
		Address:          r.Address,
		City:             r.City,
		Organization:     r.Organization,
		PreferredContact: r.PreferredContact,
		CreatedAt:        r.CreatedAt,
	}
}

const ownerColumns = `
	id, type, first_name, last_name,
	email, phones, address, city,
	organization, preferred_contact, created_at
`

func (r *OwnersRepo) List(ctx context.Context, filter owners.ListFilter) ([]owners.Owner, error) {
	var rows []ownerRow
	if err := r.db.SelectContext(ctx, &rows, `
		SELECT `+ownerColumns+`
		FROM owners
		WHERE ($1::text = '' OR organization = $1)
		  AND (
			$2::text = ''
			OR (first_name || ' ' || last_name) ILIKE '%' || $2 || '%'
			OR email ILIKE '%' || $2 || '%'
			OR phones::text ILIKE '%' || $2 || '%'
		  )
		ORDER BY id ASC
	`, filter.Organization, filter.Query); err != nil {
		return nil, err
	}

	out := make([]owners.Owner, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *OwnersRepo) GetByID(ctx context.Context, id int) (owners.Owner, error) {
	var row ownerRow
	err := r.db.GetContext(ctx, &row, `
		SELECT `+ownerColumns+`
		FROM owners
		WHERE id = $1
	`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return owners.Owner{}, ErrNotFound
		}
		return owners.Owner{}, err
	}
	return row.toDomain(), nil
}
