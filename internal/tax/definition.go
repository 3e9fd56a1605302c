package tax

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/pricelab/sales-tax-service/internal/models"
)

// Definition computes the tax owed on a single unit of a product under one
// rule. The result is unrounded and quantity-free; the cart multiplies by
// quantity and applies the rounding policy per rule. Implementations must be
// stateless after construction.
//
// The built-in definitions never return an error. The error seam exists so
// externally supplied rules can fail without corrupting cart state.
type Definition interface {
	Apply(p models.Product) (decimal.Decimal, error)
}

// Registered definition names for NewDefinition.
const (
	DefinitionBasic  = "basic"
	DefinitionImport = "import"
)

// NewDefinition builds a registered tax definition by name.
func NewDefinition(name string) (Definition, error) {
	switch name {
	case DefinitionBasic:
		return NewBasicDefinition(), nil
	case DefinitionImport:
		return NewImportDefinition(), nil
	default:
		return nil, fmt.Errorf("unknown tax definition %q", name)
	}
}

// BasicDefinition is the 10% general sales tax. Books, food and medical
// products are exempt.
type BasicDefinition struct {
	rate decimal.Decimal
}

var basicExemptions = map[models.ProductCategory]struct{}{
	models.CategoryBooks:   {},
	models.CategoryFood:    {},
	models.CategoryMedical: {},
}

func NewBasicDefinition() BasicDefinition {
	return BasicDefinition{rate: decimal.New(10, -2)}
}

func (d BasicDefinition) Apply(p models.Product) (decimal.Decimal, error) {
	if _, exempt := basicExemptions[p.Category]; exempt {
		return decimal.Zero, nil
	}
	return p.Price.Mul(d.rate), nil
}

// ImportDefinition is the 5% import duty, applied to imported products with
// no exemptions.
type ImportDefinition struct {
	rate decimal.Decimal
}

func NewImportDefinition() ImportDefinition {
	return ImportDefinition{rate: decimal.New(5, -2)}
}

func (d ImportDefinition) Apply(p models.Product) (decimal.Decimal, error) {
	if p.Source != models.SourceImported {
		return decimal.Zero, nil
	}
	return p.Price.Mul(d.rate), nil
}
