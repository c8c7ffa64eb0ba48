package services

import (
	"sort"

	"foodmarket/internal/core/domain/model/menu"
	"foodmarket/internal/core/domain/model/order"
	"foodmarket/internal/pkg/errs"
)

// AnalyticsPolicyName identifies an order-analytics policy variant.
type AnalyticsPolicyName string

const (
	// AnalyticsMostOrderedItem ranks à la carte items by descending popularity.
	AnalyticsMostOrderedItem AnalyticsPolicyName = "MOST_ORDERED_ITEM"
	// AnalyticsLeastOrderedItem ranks à la carte items by ascending popularity.
	AnalyticsLeastOrderedItem AnalyticsPolicyName = "LEAST_ORDERED_ITEM"
	// AnalyticsMostOrderedHalfMeal ranks half meals by descending popularity.
	AnalyticsMostOrderedHalfMeal AnalyticsPolicyName = "MOST_ORDERED_HALF_MEAL"
	// AnalyticsLeastOrderedHalfMeal ranks half meals by ascending popularity.
	AnalyticsLeastOrderedHalfMeal AnalyticsPolicyName = "LEAST_ORDERED_HALF_MEAL"
)

// AnalyticsEntry is one row of a popularity ranking: a name and how many
// times it was ordered.
type AnalyticsEntry struct {
	Name  string
	Count int
}

// OrderAnalyticsPolicy ranks menu offerings by popularity across a set of orders.
//
// All variants share the same contract:
//   - a nil order list is an input error
//   - an empty order list yields an empty ranking
//   - entries with equal counts keep the order in which their names first
//     appeared while scanning the orders front to back
//
// Implementations are created via AnalyticsPolicyFromName.
type OrderAnalyticsPolicy interface {
	// Name identifies the policy variant.
	Name() AnalyticsPolicyName

	// Rank builds the popularity ranking over the given orders.
	Rank(orders []*order.Order) ([]AnalyticsEntry, error)
}

// AnalyticsPolicyFromName creates the named analytics policy variant.
func AnalyticsPolicyFromName(name AnalyticsPolicyName) (OrderAnalyticsPolicy, bool) {
	switch name {
	case AnalyticsMostOrderedItem:
		return itemRanking{name: name, ascending: false}, true
	case AnalyticsLeastOrderedItem:
		return itemRanking{name: name, ascending: true}, true
	case AnalyticsMostOrderedHalfMeal:
		return halfMealRanking{name: name, ascending: false}, true
	case AnalyticsLeastOrderedHalfMeal:
		return halfMealRanking{name: name, ascending: true}, true
	default:
		return nil, false
	}
}

// NewMostOrderedItem ranks à la carte items, most popular first.
func NewMostOrderedItem() OrderAnalyticsPolicy {
	return itemRanking{name: AnalyticsMostOrderedItem, ascending: false}
}

// NewLeastOrderedItem ranks à la carte items, least popular first.
func NewLeastOrderedItem() OrderAnalyticsPolicy {
	return itemRanking{name: AnalyticsLeastOrderedItem, ascending: true}
}

// NewMostOrderedHalfMeal ranks half meals, most popular first.
func NewMostOrderedHalfMeal() OrderAnalyticsPolicy {
	return halfMealRanking{name: AnalyticsMostOrderedHalfMeal, ascending: false}
}

// NewLeastOrderedHalfMeal ranks half meals, least popular first.
func NewLeastOrderedHalfMeal() OrderAnalyticsPolicy {
	return halfMealRanking{name: AnalyticsLeastOrderedHalfMeal, ascending: true}
}

type itemRanking struct {
	name      AnalyticsPolicyName
	ascending bool
}

func (r itemRanking) Name() AnalyticsPolicyName {
	return r.name
}

func (r itemRanking) Rank(orders []*order.Order) ([]AnalyticsEntry, error) {
	return rank(orders, r.ascending, func(o *order.Order, count func(string)) {
		for _, item := range o.Items() {
			count(item.Name())
		}
	})
}

type halfMealRanking struct {
	name      AnalyticsPolicyName
	ascending bool
}

func (r halfMealRanking) Name() AnalyticsPolicyName {
	return r.name
}

func (r halfMealRanking) Rank(orders []*order.Order) ([]AnalyticsEntry, error) {
	return rank(orders, r.ascending, func(o *order.Order, count func(string)) {
		for _, meal := range o.Meals() {
			if meal.Type() == menu.MealTypeHalf {
				count(meal.Name())
			}
		}
	})
}

// rank tallies names emitted by collect over the orders and sorts the tally.
// The stable sort on counts alone preserves first-seen order among ties.
func rank(
	orders []*order.Order,
	ascending bool,
	collect func(o *order.Order, count func(string)),
) ([]AnalyticsEntry, error) {
	if orders == nil {
		return nil, errs.NewValueIsRequiredError("orders")
	}

	counts := make(map[string]int)
	firstSeen := make([]string, 0)

	tally := func(name string) {
		if _, ok := counts[name]; !ok {
			firstSeen = append(firstSeen, name)
		}
		counts[name]++
	}

	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return nil, err
		}
		collect(o, tally)
	}

	entries := make([]AnalyticsEntry, 0, len(firstSeen))
	for _, name := range firstSeen {
		entries = append(entries, AnalyticsEntry{Name: name, Count: counts[name]})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if ascending {
			return entries[i].Count < entries[j].Count
		}
		return entries[i].Count > entries[j].Count
	})

	return entries, nil
}
