package services

import (
	"github.com/ghuser/gamestore/pkg/app"
	"github.com/ghuser/gamestore/pkg/cache"
	"github.com/ghuser/gamestore/services/catalog/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Game      *GameService
	Promotion *PromotionService
}

// New wires all catalog application services with infrastructure from the Application container.
func New(a *app.Application) *Services {
	gameRepo := postgres.NewGameRepository(a.Db, a.EventBus)
	promoRepo := postgres.NewPromotionRepository(a.Db)
	gameCache := cache.NewGameCache(a.Redis)
	return &Services{
		Game:      NewGameService(gameRepo, gameCache),
		Promotion: NewPromotionService(promoRepo),
	}
}
