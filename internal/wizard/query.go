package wizard

import (
	"net/url"
	"strconv"
	"strings"
)

// listSuffix marca las claves de lista en la query: phones[]=a&phones[]=b.
// Una clave sin sufijo siempre es texto, así "phones=a" no se confunde con una lista.
const listSuffix = "[]"

// Query serializa los parámetros al formato de la URL entre pasos.
// Las listas vacías no generan claves (al decodificar vuelven como lista vacía).
func (p Params) Query() url.Values {
	q := url.Values{}
	for name, v := range p {
		switch v.Kind {
		case List:
			if len(v.Items) == 0 {
				continue
			}
			q[name+listSuffix] = append([]string(nil), v.Items...)
		case Flag:
			q.Set(name, strconv.FormatBool(v.Flag))
		default:
			q.Set(name, v.Text)
		}
	}
	return q
}

// Encode devuelve la query string con claves ordenadas (estable para Location y tests).
func (p Params) Encode() string {
	return p.Query().Encode()
}

// ParseQuery es la inversa de Query. Si llegan "x" y "x[]" gana la lista.
func ParseQuery(q url.Values) Params {
	out := make(Params, len(q))
	for key, vs := range q {
		if name, ok := strings.CutSuffix(key, listSuffix); ok {
			if name == "" {
				continue
			}
			out[name] = ListParam(vs...)
		}
	}
	for key, vs := range q {
		if strings.HasSuffix(key, listSuffix) || len(vs) == 0 {
			continue
		}
		if _, isList := out[key]; isList {
			continue
		}
		out[key] = TextParam(vs[0])
	}
	return out
}
