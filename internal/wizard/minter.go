package wizard

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const suffixLen = 8

// Minter genera los ids de confirmación: <prefix>-<unix millis>-<8 alfanuméricos>.
// Son claves de ruteo, no se validan contra ningún store.
type Minter struct {
	prefix string
	now    func() time.Time
	suffix func() string
}

func NewMinter(prefix string) *Minter {
	return &Minter{
		prefix: strings.TrimSpace(prefix),
		now:    time.Now,
		suffix: randomSuffix,
	}
}

func (m *Minter) Mint() string {
	return fmt.Sprintf("%s-%d-%s", m.prefix, m.now().UnixMilli(), m.suffix())
}

// randomSuffix toma los primeros hex de un uuid v4 (minúsculas, sin guiones).
func randomSuffix() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:suffixLen]
}
