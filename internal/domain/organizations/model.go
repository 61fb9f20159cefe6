package organizations

// Organization es una clínica/organización veterinaria del dataset.
// Slug es la clave que referencian pets y owners.
type Organization struct {
	Slug  string
	Name  string
	City  string
	Phone string
}
