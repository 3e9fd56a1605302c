package orderparse

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/pricelab/sales-tax-service/internal/models"
)

// ErrBadFormat is returned when an order line does not match the expected
// "<quantity> <name> at <price>" shape.
var ErrBadFormat = errors.New("order line does not match expected format")

// Order is one parsed order line, ready for Cart.AddItem.
type Order struct {
	Quantity int
	Product  models.Product
}

var (
	linePattern     = regexp.MustCompile(`^(?P<quantity>[0-9]+)\s+(?P<name>(?:.*(?P<imported>imported?))?.+)\s+at\s+(?P<price>[0-9]*\.?[0-9]+)$`)
	importedPattern = regexp.MustCompile(`\s*imported\s*`)
)

// categoryKeywords drives the fuzzy categorizer. First keyword hit wins.
var categoryKeywords = []struct {
	category models.ProductCategory
	keywords []string
}{
	{models.CategoryBooks, []string{"book"}},
	{models.CategoryFood, []string{"chocolate"}},
	{models.CategoryMedical, []string{"headache pill"}},
}

// ParseLine parses a single order line such as
// "1 imported box of chocolates at 10.00". The word "imported" anywhere in
// the name marks the product as imported and is stripped from the display
// name. The price is truncated to 2 decimal places.
func ParseLine(line string) (Order, error) {
	m := linePattern.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return Order{}, ErrBadFormat
	}

	quantity, err := strconv.Atoi(m[linePattern.SubexpIndex("quantity")])
	if err != nil {
		return Order{}, fmt.Errorf("%w: bad quantity", ErrBadFormat)
	}

	price, err := decimal.NewFromString(m[linePattern.SubexpIndex("price")])
	if err != nil {
		return Order{}, fmt.Errorf("%w: bad price", ErrBadFormat)
	}

	rawName := m[linePattern.SubexpIndex("name")]
	source := models.SourceLocal
	if m[linePattern.SubexpIndex("imported")] != "" {
		source = models.SourceImported
	}
	name := strings.TrimSpace(importedPattern.ReplaceAllString(rawName, " "))

	product, err := models.NewProduct(name, price.Truncate(2), source, Categorize(rawName))
	if err != nil {
		return Order{}, err
	}
	return Order{Quantity: quantity, Product: product}, nil
}

// ParseOrders reads line-oriented order input, skipping blank lines. It
// stops at the first malformed line, reporting its line number.
func ParseOrders(r io.Reader) ([]Order, error) {
	var orders []Order
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		order, err := ParseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		orders = append(orders, order)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read orders: %w", err)
	}
	return orders, nil
}

// Categorize maps a product name to its tax category by keyword lookup.
// Unknown names fall back to CategoryOther, which is taxable.
func Categorize(name string) models.ProductCategory {
	lower := strings.ToLower(name)
	for _, entry := range categoryKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				return entry.category
			}
		}
	}
	return models.CategoryOther
}
