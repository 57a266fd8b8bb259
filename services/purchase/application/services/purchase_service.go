package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"go.temporal.io/sdk/client"
	"golang.org/x/sync/errgroup"

	"github.com/ghuser/gamestore/pkg/events"
	"github.com/ghuser/gamestore/pkg/logger"
	pkgworkflows "github.com/ghuser/gamestore/pkg/workflows"
	catalogmodels "github.com/ghuser/gamestore/services/catalog/domain/models"
	catalogrepos "github.com/ghuser/gamestore/services/catalog/domain/repositories"
	domainevents "github.com/ghuser/gamestore/services/purchase/domain/events"
	"github.com/ghuser/gamestore/services/purchase/domain/pricing"
	"github.com/ghuser/gamestore/services/purchase/workflows"
	userdomain "github.com/ghuser/gamestore/services/user/domain"
	usermodels "github.com/ghuser/gamestore/services/user/domain/models"
	userrepos "github.com/ghuser/gamestore/services/user/domain/repositories"
)

// Result is the outcome of a purchase attempt. Business rejections (unknown
// buyer, unknown games, games already owned) come back as a failed Result
// with a human-readable Message; only infrastructure problems surface as
// errors.
type Result struct {
	Success bool               `json:"success"`
	Message string             `json:"message"`
	UserID  uuid.UUID          `json:"user_id"`
	GameIDs []uuid.UUID        `json:"game_ids"`
	Items   []pricing.LineItem `json:"items,omitempty"`
	Total   float64            `json:"total"`
}

// PurchaseService coordinates a purchase across the user and catalog
// contexts: it loads state, prices the cart, mutates the buyer's library,
// and persists only the delta.
type PurchaseService struct {
	users      userrepos.UserRepository
	games      catalogrepos.GameRepository
	promotions catalogrepos.PromotionRepository
	bus        *events.EventBus
	temporal   *pkgworkflows.TemporalClient
	log        logger.Logger
}

// NewPurchaseService wires a PurchaseService. bus and temporal may be nil;
// the corresponding post-commit steps are then skipped.
func NewPurchaseService(
	users userrepos.UserRepository,
	games catalogrepos.GameRepository,
	promotions catalogrepos.PromotionRepository,
	bus *events.EventBus,
	temporal *pkgworkflows.TemporalClient,
	log logger.Logger,
) *PurchaseService {
	return &PurchaseService{
		users:      users,
		games:      games,
		promotions: promotions,
		bus:        bus,
		temporal:   temporal,
		log:        log,
	}
}

// Purchase attempts to buy the given games for buyerID. The first failed
// check wins and nothing is written before SaveLibraryDelta, so a rejected
// purchase leaves no trace.
func (s *PurchaseService) Purchase(ctx context.Context, buyerID uuid.UUID, gameIDs []uuid.UUID) (*Result, error) {
	result := &Result{UserID: buyerID, GameIDs: gameIDs}

	var (
		buyer  *usermodels.User
		games  []*catalogmodels.Game
		promos []*catalogmodels.Promotion
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		u, err := s.users.GetByID(gctx, buyerID)
		buyer = u
		return err
	})
	g.Go(func() error {
		gs, err := s.games.GetByIDs(gctx, gameIDs)
		games = gs
		return err
	})
	g.Go(func() error {
		ps, err := s.promotions.Active(gctx, time.Now().UTC())
		promos = ps
		return err
	})
	if err := g.Wait(); err != nil {
		if errors.Is(err, userdomain.ErrUserNotFound) {
			result.Message = "user not found"
			return result, nil
		}
		return nil, fmt.Errorf("load purchase state: %w", err)
	}

	if len(gameIDs) == 0 || len(games) != len(gameIDs) {
		result.Message = "some games not found"
		return result, nil
	}

	if owned := ownedTitles(buyer, games); len(owned) > 0 {
		result.Message = fmt.Sprintf("user already owns: %s", strings.Join(owned, ", "))
		return result, nil
	}

	items := pricing.Quote(games, promos)
	total := pricing.Total(items)

	for _, game := range games {
		if err := buyer.AddToLibrary(game); err != nil {
			return nil, fmt.Errorf("add %s to library: %w", game.ID, err)
		}
	}

	if err := s.users.SaveLibraryDelta(ctx, buyer); err != nil {
		if errors.Is(err, userdomain.ErrGameAlreadyOwned) {
			result.Message = "user already owns one of the games"
			return result, nil
		}
		return nil, fmt.Errorf("save library delta: %w", err)
	}

	result.Success = true
	result.Message = "purchase completed"
	result.Items = items
	result.Total = total

	s.publishCompleted(ctx, buyer, gameIDs, items, total)
	s.startReceipt(ctx, buyer, items, total)

	return result, nil
}

// ownedTitles returns the titles in the cart the buyer already owns, sorted
// so the rejection message is stable.
func ownedTitles(buyer *usermodels.User, games []*catalogmodels.Game) []string {
	var titles []string
	for _, game := range games {
		if buyer.Owns(game.ID) {
			titles = append(titles, game.Title)
		}
	}
	sort.Strings(titles)
	return titles
}

func (s *PurchaseService) publishCompleted(ctx context.Context, buyer *usermodels.User, gameIDs []uuid.UUID, items []pricing.LineItem, total float64) {
	if s.bus == nil {
		return
	}
	event := domainevents.PurchaseCompletedEvent{
		EventID:    uuid.New(),
		Version:    1,
		UserID:     buyer.ID,
		GameIDs:    gameIDs,
		Items:      items,
		Total:      total,
		OccurredAt: time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		s.log.ErrorContext(ctx, "marshal purchase.completed", "error", err)
		return
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_id", event.EventID.String())
	msg.Metadata.Set("event_version", "1")
	if err := s.bus.Publish(ctx, domainevents.TopicPurchaseCompleted, msg); err != nil {
		// The purchase is committed; a lost event only delays downstream
		// consumers until the next reconciliation.
		s.log.ErrorContext(ctx, "publish purchase.completed", "user_id", buyer.ID, "error", err)
	}
}

func (s *PurchaseService) startReceipt(ctx context.Context, buyer *usermodels.User, items []pricing.LineItem, total float64) {
	if s.temporal == nil {
		return
	}
	input := workflows.ReceiptInput{
		UserID:      buyer.ID,
		Email:       buyer.Email,
		Items:       items,
		Total:       total,
		PurchasedAt: time.Now().UTC(),
	}
	opts := client.StartWorkflowOptions{
		ID:        fmt.Sprintf("purchase-receipt-%s-%s", buyer.ID, watermill.NewShortUUID()),
		TaskQueue: workflows.TaskQueue,
	}
	if _, err := s.temporal.Client.ExecuteWorkflow(ctx, opts, workflows.PurchaseReceipt, input); err != nil {
		s.log.ErrorContext(ctx, "start purchase receipt workflow", "user_id", buyer.ID, "error", err)
	}
}
