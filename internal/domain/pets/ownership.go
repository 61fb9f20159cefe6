package pets

import "context"

// ListByOwner devuelve las mascotas de un dueño del dataset.
// Vive acá (y no en owners) para evitar ciclos de imports entre módulos.
func (s *Service) ListByOwner(ctx context.Context, ownerID int) ([]Pet, error) {
	if ownerID <= 0 {
		return []Pet{}, nil
	}
	return s.List(ctx, ListFilter{OwnerID: ownerID})
}
