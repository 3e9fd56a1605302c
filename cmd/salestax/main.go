// Command salestax reads line-oriented order descriptions from a file or
// stdin and prints an itemized receipt:
//
//	salestax -input orders.txt
//	cat orders.txt | salestax
package main

import (
	"flag"
	"io"
	"os"

	"github.com/pricelab/sales-tax-service/internal/cart"
	"github.com/pricelab/sales-tax-service/internal/logging"
	"github.com/pricelab/sales-tax-service/internal/orderparse"
	"github.com/pricelab/sales-tax-service/internal/receipt"
	"github.com/pricelab/sales-tax-service/internal/tax"
)

func main() {
	inputPath := flag.String("input", "", "order file to read (defaults to stdin)")
	logLevel := flag.String("log-level", "warn", "log level")
	flag.Parse()

	logger := logging.New("salestax", *logLevel, "console")

	var in io.Reader = os.Stdin
	if *inputPath != "" {
		f, err := os.Open(*inputPath)
		if err != nil {
			logger.Fatal().Err(err).Msg("Failed to open input file")
		}
		defer f.Close()
		in = f
	}

	orders, err := orderparse.ParseOrders(in)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to parse orders")
	}

	c := cart.New()
	for _, name := range []string{tax.DefinitionBasic, tax.DefinitionImport} {
		def, err := tax.NewDefinition(name)
		if err != nil {
			logger.Fatal().Err(err).Msg("Failed to build tax definition")
		}
		if err := c.AddTaxDefinition(def); err != nil {
			logger.Fatal().Err(err).Msg("Failed to register tax definition")
		}
	}

	for _, order := range orders {
		if err := c.AddItem(order.Product, order.Quantity); err != nil {
			logger.Fatal().Err(err).Str("product", order.Product.Name).Msg("Failed to add item")
		}
	}

	if err := receipt.FromCart(c).Write(os.Stdout); err != nil {
		logger.Fatal().Err(err).Msg("Failed to write receipt")
	}
}
