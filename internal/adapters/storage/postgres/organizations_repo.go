package postgres

import (
	"context"
	"database/sql"
	"errors"

	"vetdesk/internal/domain/organizations"

	"github.com/jmoiron/sqlx"
)

type OrganizationsRepo struct {
	db *sqlx.DB
}

func NewOrganizationsRepo(db *sqlx.DB) *OrganizationsRepo {
	return &OrganizationsRepo{db: db}
}

type organizationRow struct {
	Slug  string `db:"slug"`
	Name  string `db:"name"`
	City  string `db:"city"`
	Phone string `db:"phone"`
}

func (r organizationRow) toDomain() organizations.Organization {
	return organizations.Organization{Slug: r.Slug, Name: r.Name, City: r.City, Phone: r.Phone}
}

func (r *OrganizationsRepo) List(ctx context.Context) ([]organizations.Organization, error) {
	var rows []organizationRow
	if err := r.db.SelectContext(ctx, &rows, `
		SELECT slug, name, city, phone
		FROM organizations
		ORDER BY slug ASC
	`); err != nil {
		return nil, err
	}

	out := make([]organizations.Organization, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *OrganizationsRepo) GetBySlug(ctx context.Context, slug string) (organizations.Organization, error) {
	var row organizationRow
	err := r.db.GetContext(ctx, &row, `
		SELECT slug, name, city, phone
		FROM organizations
		WHERE slug = $1
	`, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return organizations.Organization{}, ErrNotFound
		}
		return organizations.Organization{}, err
	}
	return row.toDomain(), nil
}
