package pricing

import (
	"math"
	"testing"
	"time"

	"github.com/google/uuid"

	catalogmodels "github.com/ghuser/gamestore/services/catalog/domain/models"
)

func testGame(t *testing.T, genre catalogmodels.Genre, price float64) *catalogmodels.Game {
	t.Helper()
	g, err := catalogmodels.NewGame("Test Game", "a game", genre, price)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	return g
}

func testPromotion(t *testing.T, genre catalogmodels.Genre, discount float64) *catalogmodels.Promotion {
	t.Helper()
	now := time.Now().UTC()
	p, err := catalogmodels.NewPromotion("Sale", "a sale", discount, now.Add(-time.Hour), now.Add(time.Hour), genre)
	if err != nil {
		t.Fatalf("NewPromotion: %v", err)
	}
	return p
}

func TestQuote(t *testing.T) {
	t.Run("no promotions keeps base price", func(t *testing.T) {
		game := testGame(t, catalogmodels.GenreAction, 59.99)
		items := Quote([]*catalogmodels.Game{game}, nil)
		if len(items) != 1 {
			t.Fatalf("expected 1 item, got %d", len(items))
		}
		if items[0].FinalPrice != 59.99 {
			t.Errorf("expected base price 59.99, got %v", items[0].FinalPrice)
		}
		if items[0].PromotionID != nil {
			t.Error("expected no promotion applied")
		}
	})

	t.Run("genre match applies discount", func(t *testing.T) {
		game := testGame(t, catalogmodels.GenreRPG, 100)
		promo := testPromotion(t, catalogmodels.GenreRPG, 25)
		items := Quote([]*catalogmodels.Game{game}, []*catalogmodels.Promotion{promo})
		if items[0].FinalPrice != 75 {
			t.Errorf("expected 75, got %v", items[0].FinalPrice)
		}
		if items[0].PromotionID == nil || *items[0].PromotionID != promo.ID {
			t.Error("expected the RPG promotion to be selected")
		}
		if items[0].BasePrice != 100 {
			t.Errorf("expected base price 100, got %v", items[0].BasePrice)
		}
	})

	t.Run("highest discount wins among genre matches", func(t *testing.T) {
		game := testGame(t, catalogmodels.GenreSports, 80)
		small := testPromotion(t, catalogmodels.GenreSports, 10)
		big := testPromotion(t, catalogmodels.GenreSports, 50)
		items := Quote([]*catalogmodels.Game{game}, []*catalogmodels.Promotion{small, big})
		if items[0].PromotionID == nil || *items[0].PromotionID != big.ID {
			t.Error("expected the 50% promotion to win")
		}
		if items[0].FinalPrice != 40 {
			t.Errorf("expected 40, got %v", items[0].FinalPrice)
		}
	})

	t.Run("ties break on lowest promotion id", func(t *testing.T) {
		game := testGame(t, catalogmodels.GenreStrategy, 50)
		a := testPromotion(t, catalogmodels.GenreStrategy, 30)
		b := testPromotion(t, catalogmodels.GenreStrategy, 30)
		a.ID = uuid.MustParse("00000000-0000-0000-0000-000000000001")
		b.ID = uuid.MustParse("00000000-0000-0000-0000-000000000002")

		for _, promos := range [][]*catalogmodels.Promotion{{a, b}, {b, a}} {
			items := Quote([]*catalogmodels.Game{game}, promos)
			if items[0].PromotionID == nil || *items[0].PromotionID != a.ID {
				t.Error("expected the lower id to win regardless of order")
			}
		}
	})

	t.Run("catch-all genre applies when no direct match", func(t *testing.T) {
		game := testGame(t, catalogmodels.GenreSimulation, 30)
		other := testPromotion(t, catalogmodels.GenreOther, 10)
		action := testPromotion(t, catalogmodels.GenreAction, 90)
		items := Quote([]*catalogmodels.Game{game}, []*catalogmodels.Promotion{other, action})
		if items[0].PromotionID == nil || *items[0].PromotionID != other.ID {
			t.Error("expected the catch-all promotion to be selected")
		}
		if items[0].FinalPrice != 27 {
			t.Errorf("expected 27, got %v", items[0].FinalPrice)
		}
	})

	t.Run("direct match beats catch-all even at lower discount", func(t *testing.T) {
		game := testGame(t, catalogmodels.GenreAdventure, 100)
		direct := testPromotion(t, catalogmodels.GenreAdventure, 5)
		other := testPromotion(t, catalogmodels.GenreOther, 80)
		items := Quote([]*catalogmodels.Game{game}, []*catalogmodels.Promotion{direct, other})
		if items[0].PromotionID == nil || *items[0].PromotionID != direct.ID {
			t.Error("expected the genre match to take precedence")
		}
		if items[0].FinalPrice != 95 {
			t.Errorf("expected 95, got %v", items[0].FinalPrice)
		}
	})

	t.Run("full discount clamps to zero", func(t *testing.T) {
		game := testGame(t, catalogmodels.GenreAction, 19.99)
		promo := testPromotion(t, catalogmodels.GenreAction, 100)
		items := Quote([]*catalogmodels.Game{game}, []*catalogmodels.Promotion{promo})
		if items[0].FinalPrice != 0 {
			t.Errorf("expected 0, got %v", items[0].FinalPrice)
		}
	})

	t.Run("free game stays free", func(t *testing.T) {
		game := testGame(t, catalogmodels.GenreAction, 0)
		promo := testPromotion(t, catalogmodels.GenreAction, 50)
		items := Quote([]*catalogmodels.Game{game}, []*catalogmodels.Promotion{promo})
		if items[0].FinalPrice != 0 {
			t.Errorf("expected 0, got %v", items[0].FinalPrice)
		}
	})
}

func TestTotal(t *testing.T) {
	games := []*catalogmodels.Game{
		testGame(t, catalogmodels.GenreAction, 10),
		testGame(t, catalogmodels.GenreRPG, 20.50),
	}
	items := Quote(games, nil)
	if got := Total(items); math.Abs(got-30.50) > 1e-9 {
		t.Errorf("expected 30.50, got %v", got)
	}

	if got := Total(nil); got != 0 {
		t.Errorf("expected 0 for empty items, got %v", got)
	}
}
