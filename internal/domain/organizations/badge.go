package organizations

import "unicode"

// NeutralColor es el color de cualquier organización fuera de la tabla conocida.
const NeutralColor = "#9E9E9E"

// Badge es la metadata de display de una organización.
type Badge struct {
	Initials string `json:"initials"`
	Color    string `json:"color"`
}

var knownBadges = map[string]Badge{
	"mr-pet":          {Initials: "MP", Color: "#1E88E5"},
	"vet-care":        {Initials: "VC", Color: "#43A047"},
	"happy-paws":      {Initials: "HP", Color: "#FB8C00"},
	"animal-hospital": {Initials: "AH", Color: "#8E24AA"},
}

// BadgeFor es determinística: slug conocido => su badge;
// cualquier otro => primeros dos caracteres en mayúscula + NeutralColor.
func BadgeFor(slug string) Badge {
	if b, ok := knownBadges[slug]; ok {
		return b
	}

	runes := []rune(slug)
	if len(runes) > 2 {
		runes = runes[:2]
	}
	for i, r := range runes {
		runes[i] = unicode.ToUpper(r)
	}
	return Badge{Initials: string(runes), Color: NeutralColor}
}
