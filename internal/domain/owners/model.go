package owners

import (
	"strings"
	"time"

	"vetdesk/internal/wizard"
)

// OwnerType distingue personas de empresas (criaderos, refugios).
type OwnerType string

const (
	OwnerTypeIndividual OwnerType = "individual"
	OwnerTypeBusiness   OwnerType = "business"
)

// Owner es un dueño del dataset. ID numérico: así lo referencian las mascotas.
type Owner struct {
	ID int

	Type      OwnerType
	FirstName string
	LastName  string

	Email  string
	Phones []string

	Address string
	City    string

	Organization     string // slug
	PreferredContact string // phone, email, sms

	CreatedAt time.Time
}

func (o Owner) FullName() string {
	return strings.TrimSpace(o.FirstName + " " + o.LastName)
}

// DraftSchema es la tabla de campos del wizard de alta de owners.
// type y organization son el subconjunto obligatorio.
var DraftSchema = wizard.NewSchema("owner",
	wizard.Field{Name: "type", Kind: wizard.Scalar, Required: true},
	wizard.Field{Name: "organization", Kind: wizard.Scalar, Required: true},
	wizard.Field{Name: "firstName", Kind: wizard.Scalar},
	wizard.Field{Name: "lastName", Kind: wizard.Scalar},
	wizard.Field{Name: "email", Kind: wizard.Scalar},
	wizard.Field{Name: "phones", Kind: wizard.List},
	wizard.Field{Name: "address", Kind: wizard.Scalar},
	wizard.Field{Name: "city", Kind: wizard.Scalar},
	wizard.Field{Name: "preferredContact", Kind: wizard.Scalar},
	wizard.Field{Name: "petNames", Kind: wizard.List},
	wizard.Field{Name: "marketingOptIn", Kind: wizard.Flag},
	wizard.Field{Name: "notes", Kind: wizard.Scalar},
)
