package main

import (
	"fmt"

	"github.com/ghuser/shipstream/migrations/account"
	"github.com/ghuser/shipstream/migrations/shipment"
	"github.com/ghuser/shipstream/pkg/config"
)

// migrationSets lists every context's migration set in dependency order:
// shipments has a foreign key to users, so account runs first.
var migrationSets = []struct {
	name string
	run  func(dbURL string) error
}{
	{"account", account.Run},
	{"shipment", shipment.Run},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	for _, set := range migrationSets {
		if err := set.run(cfg.DatabaseURL); err != nil {
			panic(fmt.Errorf("migrate %s: %w", set.name, err))
		}
	}
}
