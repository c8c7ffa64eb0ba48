package menu

import (
	"errors"

	"foodmarket/internal/pkg/errs"
	"foodmarket/internal/pkg/guard"
)

// MealType distinguishes the two meal bundle sizes a restaurant may offer.
type MealType string

const (
	// MealTypeHalf is a two-course bundle: starter+main or main+dessert.
	MealTypeHalf MealType = "HALF"
	// MealTypeFull is a three-course bundle: starter+main+dessert.
	MealTypeFull MealType = "FULL"
)

// MealDiet is the dietary profile a meal is declared and sold under.
type MealDiet string

const (
	// MealDietStandard places no dietary constraint on the meal's items.
	MealDietStandard MealDiet = "STANDARD"
	// MealDietVegetarian requires every item in the meal to be vegetarian.
	MealDietVegetarian MealDiet = "VEGETARIAN"
	// MealDietGlutenFree requires every item in the meal to be gluten free.
	MealDietGlutenFree MealDiet = "GLUTEN_FREE"
)

// ErrMealIsNotConstructed is returned when validating a zero-value Meal.
var ErrMealIsNotConstructed = errs.NewValueIsRequiredError(
	"meal must be created via the NewHalfMeal or NewFullMeal constructors")

// ErrMealDietMismatch indicates a declared dietary profile the meal's items
// do not satisfy.
var ErrMealDietMismatch = errs.NewValueIsInvalidError(
	"every item must satisfy the meal's declared dietary profile")

// ErrHalfMealComposition indicates a half meal that is not starter+main or main+dessert.
var ErrHalfMealComposition = errs.NewValueIsInvalidError(
	"half meal must combine a starter with a main or a main with a dessert")

// ErrFullMealComposition indicates a full meal that is not starter+main+dessert.
var ErrFullMealComposition = errs.NewValueIsInvalidError(
	"full meal must combine a starter, a main and a dessert")

// Meal is an immutable value object bundling menu items at a discount.
// A half meal has exactly two courses (starter+main or main+dessert), a full
// meal exactly three (starter+main+dessert). The declared dietary profile is
// checked against the items at construction. The bundle price is the item
// price sum reduced by the discount factor.
type Meal struct { //nolint:recvcheck //using for validation
	name          string
	mealType      MealType
	diet          MealDiet
	items         []MenuItem
	discount      float64
	mealOfTheWeek bool
	guard         guard.ConstructorGuard
}

// NewHalfMeal creates a two-course meal from the given items.
// The pair must be a starter with a main, or a main with a dessert, in either
// argument order. A vegetarian or gluten-free declaration must hold for every
// item. The discount factor must lie in [0, 1).
func NewHalfMeal(
	name string,
	first MenuItem,
	second MenuItem,
	diet MealDiet,
	discount float64,
	mealOfTheWeek bool,
) (Meal, error) {
	meal := Meal{
		mealType:      MealTypeHalf,
		mealOfTheWeek: mealOfTheWeek,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		meal.setName(name),
		meal.setItems(first, second),
		meal.setDiscount(discount),
	); err != nil {
		return Meal{}, err
	}

	if !isHalfComposition(first, second) {
		return Meal{}, ErrHalfMealComposition
	}

	if err := meal.setDiet(diet); err != nil {
		return Meal{}, err
	}

	return meal, nil
}

// NewFullMeal creates a three-course meal from the given items.
// The items must be a starter, a main and a dessert, in either argument order.
// A vegetarian or gluten-free declaration must hold for every item. The
// discount factor must lie in [0, 1).
func NewFullMeal(
	name string,
	first MenuItem,
	second MenuItem,
	third MenuItem,
	diet MealDiet,
	discount float64,
	mealOfTheWeek bool,
) (Meal, error) {
	meal := Meal{
		mealType:      MealTypeFull,
		mealOfTheWeek: mealOfTheWeek,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		meal.setName(name),
		meal.setItems(first, second, third),
		meal.setDiscount(discount),
	); err != nil {
		return Meal{}, err
	}

	if !isFullComposition(first, second, third) {
		return Meal{}, ErrFullMealComposition
	}

	if err := meal.setDiet(diet); err != nil {
		return Meal{}, err
	}

	return meal, nil
}

// Validate checks if the Meal was properly constructed.
func (m Meal) Validate() error {
	return m.guard.Validate(ErrMealIsNotConstructed)
}

// Name returns the meal name.
func (m Meal) Name() string {
	return m.name
}

// Type returns the meal bundle size.
func (m Meal) Type() MealType {
	return m.mealType
}

// Diet returns the meal's declared dietary profile.
func (m Meal) Diet() MealDiet {
	return m.diet
}

// IsMealOfTheWeek reports whether the meal was promoted as the meal of the week.
func (m Meal) IsMealOfTheWeek() bool {
	return m.mealOfTheWeek
}

// Items returns a copy of the meal's items.
func (m Meal) Items() []MenuItem {
	items := make([]MenuItem, len(m.items))
	copy(items, m.items)
	return items
}

// Discount returns the discount factor applied to the bundle.
func (m Meal) Discount() float64 {
	return m.discount
}

// Price returns the bundle price: the sum of item prices times (1 - discount).
func (m Meal) Price() float64 {
	sum := 0.0
	for _, item := range m.items {
		sum += item.Price()
	}
	return sum * (1 - m.discount)
}

// IsVegetarian reports whether every item in the meal is vegetarian.
func (m Meal) IsVegetarian() bool {
	for _, item := range m.items {
		if item.Diet() != DietVegetarian {
			return false
		}
	}
	return true
}

// IsGlutenFree reports whether every item in the meal is gluten free.
func (m Meal) IsGlutenFree() bool {
	for _, item := range m.items {
		if !item.IsGlutenFree() {
			return false
		}
	}
	return true
}

func (m *Meal) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	m.name = name
	return nil
}

func (m *Meal) setItems(items ...MenuItem) error {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	m.items = make([]MenuItem, len(items))
	copy(m.items, items)
	return nil
}

func (m *Meal) setDiet(diet MealDiet) error {
	switch diet {
	case MealDietStandard:
	case MealDietVegetarian:
		if !m.IsVegetarian() {
			return ErrMealDietMismatch
		}
	case MealDietGlutenFree:
		if !m.IsGlutenFree() {
			return ErrMealDietMismatch
		}
	default:
		return errs.NewValueIsInvalidError("meal diet")
	}

	m.diet = diet
	return nil
}

func (m *Meal) setDiscount(discount float64) error {
	if discount < 0 || discount >= 1 {
		return errs.NewValueIsOutOfRangeError("discount", discount, 0.0, 1.0)
	}

	m.discount = discount
	return nil
}

func isHalfComposition(first MenuItem, second MenuItem) bool {
	has := categorySet(first, second)
	if !has[CategoryMain] {
		return false
	}
	return has[CategoryStarter] != has[CategoryDessert]
}

func isFullComposition(first MenuItem, second MenuItem, third MenuItem) bool {
	has := categorySet(first, second, third)
	return has[CategoryStarter] && has[CategoryMain] && has[CategoryDessert]
}

func categorySet(items ...MenuItem) map[Category]bool {
	has := make(map[Category]bool, len(items))
	for _, item := range items {
		has[item.Category()] = true
	}
	return has
}
