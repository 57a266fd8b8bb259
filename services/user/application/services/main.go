package services

import (
	"github.com/ghuser/gamestore/pkg/app"
	"github.com/ghuser/gamestore/pkg/auth"
	"github.com/ghuser/gamestore/services/user/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Account *AccountService
}

// New wires all user application services with infrastructure from the Application container.
func New(a *app.Application) *Services {
	repo := postgres.NewUserRepository(a.Db, a.EventBus)
	return &Services{
		Account: NewAccountService(repo, &auth.BcryptHasher{}, a.Tokens),
	}
}
