package menu

import (
	"errors"

	"foodmarket/internal/pkg/errs"
	"foodmarket/internal/pkg/guard"
)

// Category classifies a menu item within a meal composition.
type Category string

const (
	// CategoryStarter is the opening course of a meal.
	CategoryStarter Category = "STARTER"
	// CategoryMain is the main course of a meal.
	CategoryMain Category = "MAIN"
	// CategoryDessert is the closing course of a meal.
	CategoryDessert Category = "DESSERT"
)

// DietType describes the dietary profile of a menu item.
type DietType string

const (
	// DietStandard is the default dietary profile.
	DietStandard DietType = "STANDARD"
	// DietVegetarian marks an item suitable for vegetarians.
	DietVegetarian DietType = "VEGETARIAN"
)

// ErrMenuItemIsNotConstructed is returned when validating a zero-value MenuItem.
var ErrMenuItemIsNotConstructed = errs.NewValueIsRequiredError(
	"menu item must be created via the NewMenuItem constructor")

// MenuItem is an immutable value object representing a single dish on a
// restaurant's menu. An item has a name, a course category, a non-negative
// price and a dietary profile.
type MenuItem struct { //nolint:recvcheck //using for validation
	name       string
	category   Category
	price      float64
	diet       DietType
	glutenFree bool
	guard      guard.ConstructorGuard
}

// NewMenuItem creates a MenuItem with the given attributes.
// The name must be non-empty, the category and diet must be known values and
// the price must be non-negative.
func NewMenuItem(name string, category Category, price float64, diet DietType, glutenFree bool) (MenuItem, error) {
	item := MenuItem{
		glutenFree: glutenFree,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setName(name),
		item.setCategory(category),
		item.setPrice(price),
		item.setDiet(diet),
	); err != nil {
		return MenuItem{}, err
	}

	return item, nil
}

// Validate checks if the MenuItem was properly constructed.
func (i MenuItem) Validate() error {
	return i.guard.Validate(ErrMenuItemIsNotConstructed)
}

// Name returns the item name.
func (i MenuItem) Name() string {
	return i.name
}

// Category returns the item's course category.
func (i MenuItem) Category() Category {
	return i.category
}

// Price returns the item price.
func (i MenuItem) Price() float64 {
	return i.price
}

// Diet returns the item's dietary profile.
func (i MenuItem) Diet() DietType {
	return i.diet
}

// IsGlutenFree reports whether the item contains no gluten.
func (i MenuItem) IsGlutenFree() bool {
	return i.glutenFree
}

func (i *MenuItem) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	i.name = name
	return nil
}

func (i *MenuItem) setCategory(category Category) error {
	switch category {
	case CategoryStarter, CategoryMain, CategoryDessert:
		i.category = category
		return nil
	default:
		return errs.NewValueIsInvalidError("category")
	}
}

func (i *MenuItem) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidError("price")
	}

	i.price = price
	return nil
}

func (i *MenuItem) setDiet(diet DietType) error {
	switch diet {
	case DietStandard, DietVegetarian:
		i.diet = diet
		return nil
	default:
		return errs.NewValueIsInvalidError("diet")
	}
}
