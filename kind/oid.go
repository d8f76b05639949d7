package kind

import (
	"github.com/jackc/pgx/pgtype"
)

// catalog is only read after initialization.
var catalog = pgtype.NewConnInfo()

// OID returns the catalog type OID of k, 0 when the type registry has no
// entry for it (enums, text search types).
func (k Kind) OID() uint32 {
	info, ok := infos[k]
	if !ok || info.PgName == "" {
		return 0
	}
	dt, ok := catalog.DataTypeForName(info.PgName)
	if !ok {
		return 0
	}
	return uint32(dt.OID)
}
