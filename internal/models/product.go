package models

import (
	"github.com/shopspring/decimal"

	"github.com/pricelab/sales-tax-service/internal/apperrors"
)

// ProductSource identifies where a product was sourced from. Imported
// products attract import duty.
type ProductSource int

const (
	SourceLocal ProductSource = iota
	SourceImported
)

func (s ProductSource) String() string {
	switch s {
	case SourceImported:
		return "imported"
	default:
		return "local"
	}
}

// ProductCategory groups products for tax exemption purposes.
type ProductCategory int

const (
	CategoryOther ProductCategory = iota
	CategoryBooks
	CategoryFood
	CategoryMedical
)

func (c ProductCategory) String() string {
	switch c {
	case CategoryBooks:
		return "books"
	case CategoryFood:
		return "food"
	case CategoryMedical:
		return "medical"
	default:
		return "other"
	}
}

// Product is an immutable value describing one purchasable good. Two
// products are the same cart line if and only if all four fields match.
type Product struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Source   ProductSource   `json:"source"`
	Category ProductCategory `json:"category"`
}

// NewProduct builds a validated product.
func NewProduct(name string, price decimal.Decimal, source ProductSource, category ProductCategory) (Product, error) {
	p := Product{Name: name, Price: price, Source: source, Category: category}
	if err := p.Validate(); err != nil {
		return Product{}, err
	}
	return p, nil
}

// Validate checks that the product is well formed.
func (p Product) Validate() error {
	if p.Name == "" {
		return apperrors.NewValidationError("name", "product name is required")
	}
	if p.Price.IsNegative() {
		return apperrors.NewValidationError("price", "price cannot be negative")
	}
	if p.Price.Exponent() < -2 {
		return apperrors.NewValidationError("price", "price cannot have more than 2 decimal places")
	}
	return nil
}

// Equal reports structural equality over all four fields. Price is compared
// by value, not representation, so 2.0 and 2.00 are the same price.
func (p Product) Equal(other Product) bool {
	return p.Name == other.Name &&
		p.Source == other.Source &&
		p.Category == other.Category &&
		p.Price.Equal(other.Price)
}

// DisplayName is the receipt-facing name, with imported products prefixed.
func (p Product) DisplayName() string {
	if p.Source == SourceImported {
		return "imported " + p.Name
	}
	return p.Name
}
