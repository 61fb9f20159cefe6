package wizard

import (
	"time"
)

// ownerSchema replica la forma del schema de owners sin importar el paquete de dominio.
var ownerSchema = NewSchema("owner",
	Field{Name: "type", Kind: Scalar, Required: true},
	Field{Name: "organization", Kind: Scalar, Required: true},
	Field{Name: "firstName", Kind: Scalar},
	Field{Name: "lastName", Kind: Scalar},
	Field{Name: "email", Kind: Scalar},
	Field{Name: "phones", Kind: List},
	Field{Name: "petNames", Kind: List},
	Field{Name: "marketingOptIn", Kind: Flag},
	Field{Name: "notes", Kind: Scalar},
)

func fixedMinter(prefix string, ms int64, suffix string) *Minter {
	m := NewMinter(prefix)
	m.now = func() time.Time { return time.UnixMilli(ms) }
	m.suffix = func() string { return suffix }
	return m
}

func annLee() Draft {
	d, err := ownerSchema.Build(
		SetText{Field: "firstName", Value: "Ann"},
		SetText{Field: "lastName", Value: "Lee"},
		SetList{Field: "phones", Values: []string{"555-0001", "555-0002"}},
		SetText{Field: "organization", Value: "mr-pet"},
	)
	if err != nil {
		panic(err)
	}
	return d
}
