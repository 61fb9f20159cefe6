package pets

import "context"

type Repository interface {
	List(ctx context.Context, filter ListFilter) ([]Pet, error)
	GetByID(ctx context.Context, id int) (Pet, error)
}

// ListFilter: campos vacíos / cero no filtran.
type ListFilter struct {
	Query        string // nombre, raza, microchip
	Organization string
	Type         Species
	OwnerID      int
}
