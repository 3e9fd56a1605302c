package service

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/pricelab/sales-tax-service/internal/cart"
	"github.com/pricelab/sales-tax-service/internal/metrics"
	"github.com/pricelab/sales-tax-service/internal/orderparse"
	"github.com/pricelab/sales-tax-service/internal/receipt"
	"github.com/pricelab/sales-tax-service/internal/tax"
)

// ReceiptService turns raw order lines into itemized receipts. It owns the
// standard rule set; every receipt session gets a fresh cart with the basic
// sales tax and import duty registered.
type ReceiptService struct {
	logger zerolog.Logger
}

// NewReceiptService creates a new receipt service.
func NewReceiptService(logger zerolog.Logger) *ReceiptService {
	return &ReceiptService{
		logger: logger.With().Str("component", "receipt-service").Logger(),
	}
}

// newStandardCart builds a cart with the two shipped tax definitions.
func newStandardCart() (*cart.Cart, error) {
	c := cart.New()
	if err := c.AddTaxDefinition(tax.NewBasicDefinition()); err != nil {
		return nil, err
	}
	if err := c.AddTaxDefinition(tax.NewImportDefinition()); err != nil {
		return nil, err
	}
	return c, nil
}

// BuildReceipt parses the given order lines, accumulates them into a cart
// and returns the computed receipt. The first bad line fails the whole
// request; no partial receipt is produced.
func (s *ReceiptService) BuildReceipt(lines []string) (*receipt.Receipt, error) {
	start := time.Now()

	c, err := newStandardCart()
	if err != nil {
		metrics.ReceiptsTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	for i, line := range lines {
		order, err := orderparse.ParseLine(line)
		if err != nil {
			metrics.ParseFailuresTotal.Inc()
			metrics.ReceiptsTotal.WithLabelValues("rejected").Inc()
			s.logger.Warn().Err(err).Int("line", i+1).Msg("Rejected order line")
			return nil, err
		}
		if err := c.AddItem(order.Product, order.Quantity); err != nil {
			metrics.ReceiptsTotal.WithLabelValues("rejected").Inc()
			s.logger.Warn().Err(err).Int("line", i+1).Msg("Rejected order item")
			return nil, err
		}
	}

	r := receipt.FromCart(c)

	metrics.ReceiptsTotal.WithLabelValues("ok").Inc()
	metrics.ReceiptDuration.Observe(time.Since(start).Seconds())
	metrics.ItemsPerReceipt.Observe(float64(len(r.Items)))

	s.logger.Info().
		Str("receipt_id", r.ID).
		Int("items", len(r.Items)).
		Str("sales_taxes", r.SalesTaxes).
		Str("total", r.Total).
		Msg("Receipt computed")

	return &r, nil
}
