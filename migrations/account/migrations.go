// Package account holds the account context's schema migrations.
package account

import (
	"embed"

	"github.com/ghuser/shipstream/pkg/migrator"
)

//go:embed *.sql
var MigrationsFS embed.FS

// VersionTable is the goose bookkeeping table for this migration set. It is
// distinct per context so sets sharing one database never collide on
// version numbers.
const VersionTable = "goose_db_version_account"

// Run applies all pending account migrations.
func Run(dbURL string) error {
	return migrator.RunMigrations(dbURL, MigrationsFS, VersionTable)
}
