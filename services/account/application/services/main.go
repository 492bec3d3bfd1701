package services

import (
	"github.com/ghuser/shipstream/pkg/app"
	"github.com/ghuser/shipstream/services/account/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Account *AccountService
}

// New wires all account application services with infrastructure from the Application container.
func New(a *app.Application) *Services {
	repo := postgres.NewUserRepository(a.Db)
	return &Services{
		Account: NewAccountService(repo),
	}
}
