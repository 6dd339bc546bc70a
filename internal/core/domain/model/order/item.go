package order

import (
	"errors"
	"fmt"

	"aftersales/internal/core/domain/model/kernel"
	"aftersales/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem factory method.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a value object describing one order line: the purchased product,
// its unit price at purchase time, and the quantity.
//
// Items are immutable; replacement orders clone them from the parent order.
type Item struct {
	id       kernel.UUID
	name     string
	price    float64
	quantity int

	isConstructed bool
}

// NewItem creates a validated order line.
//
// Validation rules:
//   - id must be a valid UUID
//   - name cannot be empty
//   - price cannot be negative (zero is allowed for replacement lines)
//   - quantity must be positive
func NewItem(id kernel.UUID, name string, price float64, quantity int) (Item, error) {
	item := Item{isConstructed: true}

	if err := errors.Join(
		item.setID(id),
		item.setName(name),
		item.setPrice(price),
		item.setQuantity(quantity),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate ensures the Item was created via NewItem.
func (i Item) Validate() error {
	if !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the product identifier of the line.
func (i Item) ID() kernel.UUID {
	return i.id
}

// Name returns the product name captured at purchase time.
func (i Item) Name() string {
	return i.name
}

// Price returns the unit price captured at purchase time.
func (i Item) Price() float64 {
	return i.price
}

// Quantity returns the purchased quantity.
func (i Item) Quantity() int {
	return i.quantity
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	i.name = name
	return nil
}

func (i *Item) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("item price is invalid",
			fmt.Errorf("%f is negative", price))
	}
	i.price = price
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("item quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}
