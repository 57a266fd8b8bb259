// Package pricing computes the effective price of games under a set of
// promotions. It is pure: the coordinator loads state, this package only
// decides numbers.
package pricing

import (
	"bytes"

	"github.com/google/uuid"

	catalogmodels "github.com/ghuser/gamestore/services/catalog/domain/models"
)

// LineItem is the priced outcome for a single game.
type LineItem struct {
	GameID          uuid.UUID  `json:"game_id"`
	Title           string     `json:"title"`
	BasePrice       float64    `json:"base_price"`
	DiscountPercent float64    `json:"discount_percent"`
	PromotionID     *uuid.UUID `json:"promotion_id,omitempty"`
	FinalPrice      float64    `json:"final_price"`
}

// Quote prices each game against the given promotions. Only promotions
// matching the game's genre are considered; when none match, promotions for
// GenreOther act as a catch-all. Among candidates the highest discount wins,
// ties resolved by lowest promotion ID so repeated quotes are stable.
//
// Callers pass promotions already filtered to the active window; Quote does
// not check dates.
func Quote(games []*catalogmodels.Game, promotions []*catalogmodels.Promotion) []LineItem {
	items := make([]LineItem, 0, len(games))
	for _, game := range games {
		items = append(items, quoteOne(game, promotions))
	}
	return items
}

func quoteOne(game *catalogmodels.Game, promotions []*catalogmodels.Promotion) LineItem {
	item := LineItem{
		GameID:     game.ID,
		Title:      game.Title,
		BasePrice:  game.Price,
		FinalPrice: game.Price,
	}

	best := pick(game.Genre, promotions)
	if best == nil {
		best = pick(catalogmodels.GenreOther, promotions)
	}
	if best == nil {
		return item
	}

	promoID := best.ID
	item.PromotionID = &promoID
	item.DiscountPercent = best.DiscountPercent
	item.FinalPrice = discounted(game.Price, best.DiscountPercent)
	return item
}

// Total sums the final prices of all items.
func Total(items []LineItem) float64 {
	var total float64
	for _, item := range items {
		total += item.FinalPrice
	}
	return total
}

func pick(genre catalogmodels.Genre, promotions []*catalogmodels.Promotion) *catalogmodels.Promotion {
	var best *catalogmodels.Promotion
	for _, p := range promotions {
		if p.Genre != genre {
			continue
		}
		if best == nil || betterThan(p, best) {
			best = p
		}
	}
	return best
}

func betterThan(a, b *catalogmodels.Promotion) bool {
	if a.DiscountPercent != b.DiscountPercent {
		return a.DiscountPercent > b.DiscountPercent
	}
	return bytes.Compare(a.ID[:], b.ID[:]) < 0
}

func discounted(base, percent float64) float64 {
	final := base - base*percent/100
	if final < 0 {
		return 0
	}
	return final
}
