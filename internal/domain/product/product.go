package product

import (
	"errors"
	"fmt"
	"sort"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidProduct   = errors.New("invalid product")
	ErrDuplicateProduct = errors.New("duplicate product")
	ErrInvalidDiscount  = errors.New("discount must be between 0 and 100")
)

var hundred = decimal.NewFromInt(100)

type Product struct {
	ID       string
	Name     string
	Price    decimal.Decimal
	Currency string
}

func (p Product) Validate() error {
	err := validation.ValidateStruct(&p,
		validation.Field(&p.ID, validation.Required),
		validation.Field(&p.Name, validation.Required),
		validation.Field(&p.Currency, validation.Required, validation.Length(3, 3)),
		validation.Field(&p.Price, validation.By(func(any) error {
			if !p.Price.IsPositive() {
				return errors.New("must be positive")
			}
			return nil
		})),
	)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidProduct, p.ID, err)
	}
	return nil
}

// DiscountedPrice applies a whole-percent discount, rounded to cents.
func (p Product) DiscountedPrice(percent int) (decimal.Decimal, error) {
	if percent < 0 || percent > 100 {
		return decimal.Zero, ErrInvalidDiscount
	}
	factor := hundred.Sub(decimal.NewFromInt(int64(percent))).Div(hundred)
	return p.Price.Mul(factor).Round(2), nil
}

// MinorUnits converts an amount to the smallest currency unit.
func MinorUnits(amount decimal.Decimal) int64 {
	return amount.Shift(2).Round(0).IntPart()
}

type Catalog struct {
	byID map[string]Product
	ids  []string
}

func NewCatalog(products ...Product) (*Catalog, error) {
	c := &Catalog{byID: make(map[string]Product, len(products))}
	for _, p := range products {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if _, exists := c.byID[p.ID]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateProduct, p.ID)
		}
		c.byID[p.ID] = p
		c.ids = append(c.ids, p.ID)
	}
	sort.Strings(c.ids)
	return c, nil
}

func (c *Catalog) Lookup(id string) (Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

func (c *Catalog) Products() []Product {
	out := make([]Product, 0, len(c.ids))
	for _, id := range c.ids {
		out = append(out, c.byID[id])
	}
	return out
}
