package customer

import (
	"math"
	"math/rand/v2"
)

// CardType identifies a fidelity card variant.
type CardType string

const (
	// CardTypeBasic is the default card: the final price equals the full price.
	CardTypeBasic CardType = "BASIC"
	// CardTypePoints earns points per order and redeems them for a discount.
	CardTypePoints CardType = "POINTS"
	// CardTypeLottery gives a small chance of a free order.
	CardTypeLottery CardType = "LOTTERY"
)

// Points card parameters: one point per ten spent, one hundred points buy a
// ten percent discount. Points are earned on the full price before any
// redemption in the same purchase.
const (
	pointsEarnDivisor     = 10
	pointsRedeemThreshold = 100
	pointsDiscountFactor  = 0.90
)

// lotteryWinProbability is the chance of a free order per purchase.
const lotteryWinProbability = 0.05

// lotteryWinMessage is recorded on the customer when the lottery pays out.
const lotteryWinMessage = "Congratulations! Your order is free."

// FidelityCard is the discount strategy attached to a customer.
// A card computes the final price from the full price of an order and may
// touch only the holding customer's state (points, notifications).
//
// Implementations: BasicCard, PointsCard, LotteryCard. The apply method is
// unexported so all variants live in this package, next to the state they
// are allowed to mutate.
type FidelityCard interface {
	// Type identifies the card variant.
	Type() CardType

	apply(holder *Customer, fullPrice float64) float64
}

// BasicCard is the default fidelity card: no discount, no state changes.
type BasicCard struct{}

// NewBasicCard creates the default fidelity card.
func NewBasicCard() BasicCard {
	return BasicCard{}
}

// Type identifies the card variant.
func (BasicCard) Type() CardType {
	return CardTypeBasic
}

func (BasicCard) apply(_ *Customer, fullPrice float64) float64 {
	return fullPrice
}

// PointsCard earns one point per ten currency units spent and redeems one
// hundred points for a ten percent discount on the current purchase.
// Earning happens before redemption, so a large order can earn the points it
// immediately spends.
type PointsCard struct{}

// NewPointsCard creates a points fidelity card.
func NewPointsCard() PointsCard {
	return PointsCard{}
}

// Type identifies the card variant.
func (PointsCard) Type() CardType {
	return CardTypePoints
}

func (PointsCard) apply(holder *Customer, fullPrice float64) float64 {
	holder.points += int(math.Floor(fullPrice / pointsEarnDivisor))

	if holder.points >= pointsRedeemThreshold {
		holder.points -= pointsRedeemThreshold
		return fullPrice * pointsDiscountFactor
	}

	return fullPrice
}

// LotteryCard makes the order free with a five percent probability.
// A win records a congratulation message on the customer. The randomness
// source is injectable so the win path can be tested deterministically.
type LotteryCard struct {
	draw func() float64
}

// NewLotteryCard creates a lottery fidelity card drawing from the shared
// math/rand/v2 source.
func NewLotteryCard() LotteryCard {
	return LotteryCard{draw: rand.Float64}
}

// NewLotteryCardWithDraw creates a lottery fidelity card with a custom
// uniform [0, 1) draw.
func NewLotteryCardWithDraw(draw func() float64) LotteryCard {
	if draw == nil {
		draw = rand.Float64
	}
	return LotteryCard{draw: draw}
}

// Type identifies the card variant.
func (LotteryCard) Type() CardType {
	return CardTypeLottery
}

func (l LotteryCard) apply(holder *Customer, fullPrice float64) float64 {
	if l.draw() < lotteryWinProbability {
		holder.Notify(lotteryWinMessage)
		return 0
	}

	return fullPrice
}

// CardFromType creates a fidelity card of the named variant.
// It is used when reconstructing customers from persistence and when
// switching cards through the API.
func CardFromType(cardType CardType) (FidelityCard, bool) {
	switch cardType {
	case CardTypeBasic:
		return NewBasicCard(), true
	case CardTypePoints:
		return NewPointsCard(), true
	case CardTypeLottery:
		return NewLotteryCard(), true
	default:
		return nil, false
	}
}
