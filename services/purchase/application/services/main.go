package services

import (
	"github.com/ghuser/gamestore/pkg/app"
	catalogpg "github.com/ghuser/gamestore/services/catalog/infrastructure/persistence/postgres"
	userpg "github.com/ghuser/gamestore/services/user/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
// The purchase coordinator reads from both the user and catalog contexts but
// only ever writes through the user aggregate.
type Services struct {
	Purchase *PurchaseService
}

// New wires the purchase coordinator with infrastructure from the Application container.
func New(a *app.Application) *Services {
	users := userpg.NewUserRepository(a.Db, a.EventBus)
	games := catalogpg.NewGameRepository(a.Db, a.EventBus)
	promos := catalogpg.NewPromotionRepository(a.Db)
	return &Services{
		Purchase: NewPurchaseService(users, games, promos, a.EventBus, a.TemporalClient, a.Logger),
	}
}
