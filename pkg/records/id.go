package records

import (
	"strings"

	"github.com/google/uuid"
)

// idOrFresh returns the stored identity value, or a freshly generated one
// when the stored value is empty. Identity must survive even a mangled
// record; failing the whole entity over a missing id would lose user data.
func idOrFresh(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return uuid.NewString()
	}
	return v
}
