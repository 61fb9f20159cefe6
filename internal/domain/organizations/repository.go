package organizations

import "context"

// Repository es de solo lectura: las colecciones son estáticas.
type Repository interface {
	List(ctx context.Context) ([]Organization, error)
	GetBySlug(ctx context.Context, slug string) (Organization, error)
}
