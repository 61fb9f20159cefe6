package owners

import "context"

type Repository interface {
	List(ctx context.Context, filter ListFilter) ([]Owner, error)
	GetByID(ctx context.Context, id int) (Owner, error)
}

// ListFilter: vacío = sin filtro. Query busca en nombre, email y teléfonos.
type ListFilter struct {
	Query        string
	Organization string
}
