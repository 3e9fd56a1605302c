package cart

import (
	"fmt"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/pricelab/sales-tax-service/internal/apperrors"
	"github.com/pricelab/sales-tax-service/internal/models"
	"github.com/pricelab/sales-tax-service/internal/tax"
)

// Item is one distinct product line in a cart: the product, how many units
// of it, and the tax currently owed on the line. Tax is derived state; the
// cart recomputes it after every mutation and callers must never set it.
type Item struct {
	Product  models.Product
	Quantity int
	Tax      decimal.Decimal
}

// SubTotal is quantity times unit price, before tax.
func (it Item) SubTotal() decimal.Decimal {
	return it.Product.Price.Mul(decimal.NewFromInt(int64(it.Quantity)))
}

// NetTotal is the line subtotal plus the line tax.
func (it Item) NetTotal() decimal.Decimal {
	return it.SubTotal().Add(it.Tax)
}

// Cart accumulates order lines and applies the registered tax definitions
// to them. Items keep first-add order, definitions keep registration order.
// A cart is owned by a single caller for one receipt session; it is not
// safe for concurrent mutation.
type Cart struct {
	items  []Item
	defs   []tax.Definition
	policy tax.RoundingPolicy
}

// New creates an empty cart with the standard rounding policy.
func New() *Cart {
	return NewWithPolicy(tax.StandardRoundingPolicy{})
}

// NewWithPolicy creates an empty cart with an explicit rounding policy.
// A nil policy is a wiring defect and panics.
func NewWithPolicy(policy tax.RoundingPolicy) *Cart {
	if policy == nil {
		panic("cart: nil rounding policy")
	}
	return &Cart{policy: policy}
}

// AddTaxDefinition registers a rule and recomputes every line's tax.
// A nil definition is a wiring defect and panics.
func (c *Cart) AddTaxDefinition(def tax.Definition) error {
	if def == nil {
		panic("cart: nil tax definition")
	}
	return c.mutate(func() error {
		c.defs = append(c.defs, def)
		return nil
	})
}

// AddItem adds quantity units of the product to the cart. Repeated adds of
// a structurally equal product increment the existing line rather than
// creating a second one. Quantity must be positive and the product well
// formed; on any failure the cart is left exactly as it was.
func (c *Cart) AddItem(p models.Product, quantity int) error {
	return c.mutate(func() error {
		if quantity <= 0 {
			return apperrors.NewValidationError("quantity", "quantity must be positive")
		}
		if err := p.Validate(); err != nil {
			return err
		}
		idx := c.indexOf(p)
		if idx < 0 {
			c.items = append(c.items, Item{Product: p})
			idx = len(c.items) - 1
		}
		c.items[idx].Quantity += quantity
		return nil
	})
}

// Items returns a snapshot copy of the cart lines in first-add order.
func (c *Cart) Items() []Item {
	return slices.Clone(c.items)
}

// SubTotal is the sum of all line subtotals.
func (c *Cart) SubTotal() decimal.Decimal {
	total := decimal.Zero
	for _, it := range c.items {
		total = total.Add(it.SubTotal())
	}
	return total
}

// Taxes is the sum of all line taxes.
func (c *Cart) Taxes() decimal.Decimal {
	total := decimal.Zero
	for _, it := range c.items {
		total = total.Add(it.Tax)
	}
	return total
}

// NetTotal is the subtotal plus all taxes.
func (c *Cart) NetTotal() decimal.Decimal {
	return c.SubTotal().Add(c.Taxes())
}

// mutate runs op under the cart's transactional contract: snapshot the
// lines and rules, attempt the mutation plus a full recomputation, and on
// any error restore the snapshot and re-signal. Panics are programming
// errors and pass through.
func (c *Cart) mutate(op func() error) error {
	prevItems := slices.Clone(c.items)
	prevDefs := slices.Clone(c.defs)

	err := op()
	if err == nil {
		err = c.recalculate()
	}
	if err != nil {
		c.items = prevItems
		c.defs = prevDefs
		return err
	}
	return nil
}

// recalculate derives every line's tax from scratch. Rounding happens per
// (line, rule) pair before summation; rounding only the grand total would
// produce smaller, wrong totals. The pass is idempotent.
func (c *Cart) recalculate() error {
	for i := range c.items {
		total := decimal.Zero
		qty := decimal.NewFromInt(int64(c.items[i].Quantity))
		for _, def := range c.defs {
			perUnit, err := def.Apply(c.items[i].Product)
			if err != nil {
				return fmt.Errorf("apply tax definition: %w", err)
			}
			total = total.Add(c.policy.Apply(perUnit.Mul(qty)))
		}
		c.items[i].Tax = total
	}
	return nil
}

func (c *Cart) indexOf(p models.Product) int {
	for i := range c.items {
		if c.items[i].Product.Equal(p) {
			return i
		}
	}
	return -1
}
