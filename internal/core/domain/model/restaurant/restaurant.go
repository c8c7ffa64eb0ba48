package restaurant

import (
	"errors"
	"sort"

	"foodmarket/internal/core/domain/model/kernel"
	"foodmarket/internal/core/domain/model/menu"
	"foodmarket/internal/pkg/errs"
	"foodmarket/internal/pkg/guard"
)

// Default discount factors a new restaurant applies to its meal bundles.
// The special factor prices the meal of the week.
const (
	defaultGenericDiscount = 0.05
	defaultSpecialDiscount = 0.10

	discountFactorMin = 0.0
	discountFactorMax = 0.5
)

// Domain errors for restaurant operations.
var (
	// ErrNameIsRequired is returned when attempting to create a restaurant without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrRestaurantIsNotConstructed is returned when using an improperly initialized Restaurant.
	ErrRestaurantIsNotConstructed = errors.New("Restaurant must be created via NewRestaurant constructor")
	// ErrMenuItemNotFound is returned when composing a meal from an item the restaurant does not serve.
	ErrMenuItemNotFound = errors.New("menu item not found")
	// ErrMealNotFound is returned when looking up a meal the restaurant does not offer.
	ErrMealNotFound = errors.New("meal not found")
)

// Restaurant represents a food seller in the marketplace.
// It is an aggregate root that manages the restaurant's identity, position,
// menu, meal bundles and discount factors.
//
// Business rules:
//   - Restaurant must have a valid UUID and a non-empty name
//   - Meals are composed only from the restaurant's own menu
//   - Discount factors are bounded to [0, 0.5]
//   - The special factor applies to meals flagged as the meal of the week
type Restaurant struct {
	id       kernel.UUID
	name     string
	location kernel.Coordinate

	items map[string]menu.MenuItem
	meals map[string]menu.Meal

	genericDiscount float64
	specialDiscount float64

	guard guard.ConstructorGuard
}

// NewRestaurant creates a new Restaurant at the given position.
// The restaurant starts with an empty menu and the default discount factors.
func NewRestaurant(id kernel.UUID, name string, location kernel.Coordinate) (*Restaurant, error) {
	restaurant := &Restaurant{
		items:           make(map[string]menu.MenuItem),
		meals:           make(map[string]menu.Meal),
		genericDiscount: defaultGenericDiscount,
		specialDiscount: defaultSpecialDiscount,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		restaurant.setID(id),
		restaurant.setName(name),
		restaurant.setLocation(location),
	); err != nil {
		return nil, err
	}

	return restaurant, nil
}

// IsEqual compares two restaurants for equality based on their unique identifiers.
func (r *Restaurant) IsEqual(other *Restaurant) bool {
	if other == nil {
		return false
	}
	return r.id.IsEqual(other.id)
}

// Validate checks if the Restaurant was properly constructed via the constructor.
func (r *Restaurant) Validate() error {
	if r == nil {
		return ErrRestaurantIsNotConstructed
	}
	return r.guard.Validate(ErrRestaurantIsNotConstructed)
}

// ID returns the unique identifier of the restaurant.
func (r *Restaurant) ID() kernel.UUID {
	return r.id
}

// Name returns the human-readable name of the restaurant.
func (r *Restaurant) Name() string {
	return r.name
}

// Location returns the restaurant's position.
func (r *Restaurant) Location() kernel.Coordinate {
	return r.location
}

// GenericDiscount returns the factor applied to regular meal bundles.
func (r *Restaurant) GenericDiscount() float64 {
	return r.genericDiscount
}

// SpecialDiscount returns the factor applied to the meal of the week.
func (r *Restaurant) SpecialDiscount() float64 {
	return r.specialDiscount
}

// SetGenericDiscount updates the factor applied to regular meal bundles.
// The factor must lie in [0, 0.5]. Existing meals keep their price.
func (r *Restaurant) SetGenericDiscount(factor float64) error {
	if factor < discountFactorMin || factor > discountFactorMax {
		return errs.NewValueIsOutOfRangeError("genericDiscount", factor, discountFactorMin, discountFactorMax)
	}

	r.genericDiscount = factor
	return nil
}

// SetSpecialDiscount updates the factor applied to the meal of the week.
// The factor must lie in [0, 0.5]. Existing meals keep their price.
func (r *Restaurant) SetSpecialDiscount(factor float64) error {
	if factor < discountFactorMin || factor > discountFactorMax {
		return errs.NewValueIsOutOfRangeError("specialDiscount", factor, discountFactorMin, discountFactorMax)
	}

	r.specialDiscount = factor
	return nil
}

// AddMenuItem puts an item on the restaurant's menu.
// An item with the same name replaces the previous one.
func (r *Restaurant) AddMenuItem(item menu.MenuItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	r.items[item.Name()] = item
	return nil
}

// RemoveMenuItem takes an item off the menu.
func (r *Restaurant) RemoveMenuItem(name string) error {
	if _, ok := r.items[name]; !ok {
		return ErrMenuItemNotFound
	}

	delete(r.items, name)
	return nil
}

// MenuItemByName looks up a menu item by its name.
func (r *Restaurant) MenuItemByName(name string) (menu.MenuItem, error) {
	item, ok := r.items[name]
	if !ok {
		return menu.MenuItem{}, ErrMenuItemNotFound
	}
	return item, nil
}

// Menu returns the restaurant's items sorted by name.
func (r *Restaurant) Menu() []menu.MenuItem {
	items := make([]menu.MenuItem, 0, len(r.items))
	for _, item := range r.items {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name() < items[j].Name() })
	return items
}

// CreateHalfMeal composes a two-course meal from the restaurant's own menu
// and adds it to the offering, declared under the given dietary profile.
// The bundle uses the special discount factor when the meal is the meal of
// the week, the generic factor otherwise.
func (r *Restaurant) CreateHalfMeal(
	name string,
	firstItem string,
	secondItem string,
	diet menu.MealDiet,
	mealOfTheWeek bool,
) (menu.Meal, error) {
	first, err := r.MenuItemByName(firstItem)
	if err != nil {
		return menu.Meal{}, err
	}
	second, err := r.MenuItemByName(secondItem)
	if err != nil {
		return menu.Meal{}, err
	}

	meal, err := menu.NewHalfMeal(name, first, second, diet, r.discountFor(mealOfTheWeek), mealOfTheWeek)
	if err != nil {
		return menu.Meal{}, err
	}

	r.meals[meal.Name()] = meal
	return meal, nil
}

// CreateFullMeal composes a three-course meal from the restaurant's own menu
// and adds it to the offering, declared under the given dietary profile.
// The bundle uses the special discount factor when the meal is the meal of
// the week, the generic factor otherwise.
func (r *Restaurant) CreateFullMeal(
	name string,
	firstItem string,
	secondItem string,
	thirdItem string,
	diet menu.MealDiet,
	mealOfTheWeek bool,
) (menu.Meal, error) {
	first, err := r.MenuItemByName(firstItem)
	if err != nil {
		return menu.Meal{}, err
	}
	second, err := r.MenuItemByName(secondItem)
	if err != nil {
		return menu.Meal{}, err
	}
	third, err := r.MenuItemByName(thirdItem)
	if err != nil {
		return menu.Meal{}, err
	}

	meal, err := menu.NewFullMeal(name, first, second, third, diet, r.discountFor(mealOfTheWeek), mealOfTheWeek)
	if err != nil {
		return menu.Meal{}, err
	}

	r.meals[meal.Name()] = meal
	return meal, nil
}

// RemoveMeal takes a meal off the offering.
func (r *Restaurant) RemoveMeal(name string) error {
	if _, ok := r.meals[name]; !ok {
		return ErrMealNotFound
	}

	delete(r.meals, name)
	return nil
}

// MealByName looks up a meal by its name.
func (r *Restaurant) MealByName(name string) (menu.Meal, error) {
	meal, ok := r.meals[name]
	if !ok {
		return menu.Meal{}, ErrMealNotFound
	}
	return meal, nil
}

// Meals returns the restaurant's meal bundles sorted by name.
func (r *Restaurant) Meals() []menu.Meal {
	meals := make([]menu.Meal, 0, len(r.meals))
	for _, meal := range r.meals {
		meals = append(meals, meal)
	}
	sort.Slice(meals, func(i, j int) bool { return meals[i].Name() < meals[j].Name() })
	return meals
}

func (r *Restaurant) discountFor(mealOfTheWeek bool) float64 {
	if mealOfTheWeek {
		return r.specialDiscount
	}
	return r.genericDiscount
}

// setID sets the restaurant's unique identifier with validation.
// This is an internal setter used during restaurant construction.
func (r *Restaurant) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	r.id = id
	return nil
}

// setName sets the restaurant's name with validation.
// This is an internal setter used during restaurant construction.
func (r *Restaurant) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	r.name = name
	return nil
}

// setLocation sets the restaurant's position with validation.
// This is an internal setter used during restaurant construction.
func (r *Restaurant) setLocation(location kernel.Coordinate) error {
	if err := location.Validate(); err != nil {
		return err
	}

	r.location = location
	return nil
}
