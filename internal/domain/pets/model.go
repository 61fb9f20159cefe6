package pets

import (
	"time"

	"vetdesk/internal/wizard"
)

// Species define las especies soportadas.
// @Enum dog, cat, bird, rabbit, other
type Species string

const (
	SpeciesDog    Species = "dog"
	SpeciesCat    Species = "cat"
	SpeciesBird   Species = "bird"
	SpeciesRabbit Species = "rabbit"
	SpeciesOther  Species = "other"
)

// Sex define el sexo de la mascota.
// @Enum male, female, unknown
type Sex string

const (
	SexMale    Sex = "male"
	SexFemale  Sex = "female"
	SexUnknown Sex = "unknown"
)

// Pet representa una mascota del dataset de la clínica.
type Pet struct {
	ID int

	Name  string
	Type  Species
	Breed string
	Sex   Sex

	BirthDate *time.Time
	Color     string
	Microchip string
	WeightKg  float64

	OwnerID      int    // 0 = sin dueño asignado
	Organization string // slug

	Allergies []string
	Neutered  bool

	CreatedAt time.Time
}

// DraftSchema es la tabla de campos del wizard de alta de mascotas.
// ownerId viaja como texto: el resolver lo parsea al mostrarlo.
var DraftSchema = wizard.NewSchema("pet",
	wizard.Field{Name: "type", Kind: wizard.Scalar, Required: true},
	wizard.Field{Name: "organization", Kind: wizard.Scalar, Required: true},
	wizard.Field{Name: "name", Kind: wizard.Scalar},
	wizard.Field{Name: "breed", Kind: wizard.Scalar},
	wizard.Field{Name: "sex", Kind: wizard.Scalar},
	wizard.Field{Name: "birthDate", Kind: wizard.Scalar},
	wizard.Field{Name: "color", Kind: wizard.Scalar},
	wizard.Field{Name: "microchip", Kind: wizard.Scalar},
	wizard.Field{Name: "weight", Kind: wizard.Scalar},
	wizard.Field{Name: "ownerId", Kind: wizard.Scalar},
	wizard.Field{Name: "allergies", Kind: wizard.List},
	wizard.Field{Name: "vaccinations", Kind: wizard.List},
	wizard.Field{Name: "neutered", Kind: wizard.Flag},
	wizard.Field{Name: "notes", Kind: wizard.Scalar},
)
