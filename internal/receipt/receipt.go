package receipt

import (
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/pricelab/sales-tax-service/internal/cart"
)

// LineItem is one receipt line, with monetary values rendered to exactly
// two decimal places.
type LineItem struct {
	Quantity    int    `json:"quantity"`
	Description string `json:"description"`
	UnitPrice   string `json:"unit_price"`
	Tax         string `json:"tax"`
	NetTotal    string `json:"net_total"`
}

// Receipt is the rendered summary of a cart.
type Receipt struct {
	ID         string     `json:"receipt_id"`
	Items      []LineItem `json:"items"`
	SubTotal   string     `json:"sub_total"`
	SalesTaxes string     `json:"sales_taxes"`
	Total      string     `json:"total"`
}

// FromCart snapshots a cart into a receipt.
func FromCart(c *cart.Cart) Receipt {
	items := c.Items()
	r := Receipt{
		ID:         uuid.New().String(),
		Items:      make([]LineItem, 0, len(items)),
		SubTotal:   c.SubTotal().StringFixed(2),
		SalesTaxes: c.Taxes().StringFixed(2),
		Total:      c.NetTotal().StringFixed(2),
	}
	for _, it := range items {
		r.Items = append(r.Items, LineItem{
			Quantity:    it.Quantity,
			Description: it.Product.DisplayName(),
			UnitPrice:   it.Product.Price.StringFixed(2),
			Tax:         it.Tax.StringFixed(2),
			NetTotal:    it.NetTotal().StringFixed(2),
		})
	}
	return r
}

// Text renders the classic printed receipt: one line per item, then the
// sales-tax and grand totals.
func (r Receipt) Text() string {
	var b strings.Builder
	for _, it := range r.Items {
		fmt.Fprintf(&b, "%d %s: %s\n", it.Quantity, it.Description, it.NetTotal)
	}
	fmt.Fprintf(&b, "Sales Taxes: %s\n", r.SalesTaxes)
	fmt.Fprintf(&b, "Total: %s\n", r.Total)
	return b.String()
}

// Write writes the text rendering to w.
func (r Receipt) Write(w io.Writer) error {
	_, err := io.WriteString(w, r.Text())
	return err
}
