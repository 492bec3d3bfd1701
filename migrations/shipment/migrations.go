// Package shipment holds the shipment context's schema migrations.
// The shipments table has a foreign key to users, so the account set must
// run before this one (cmd/migrate enforces the order).
package shipment

import (
	"embed"

	"github.com/ghuser/shipstream/pkg/migrator"
)

//go:embed *.sql
var MigrationsFS embed.FS

// VersionTable is the goose bookkeeping table for this migration set. It is
// distinct per context so sets sharing one database never collide on
// version numbers.
const VersionTable = "goose_db_version_shipment"

// Run applies all pending shipment migrations.
func Run(dbURL string) error {
	return migrator.RunMigrations(dbURL, MigrationsFS, VersionTable)
}
