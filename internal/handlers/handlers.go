package handlers

import (
	"github.com/rs/zerolog"

	"github.com/pricelab/sales-tax-service/internal/config"
	"github.com/pricelab/sales-tax-service/internal/service"
)

// Handlers holds all HTTP handlers for the sales tax service.
type Handlers struct {
	receiptService *service.ReceiptService
	config         *config.Config
	logger         zerolog.Logger
}

// NewHandlers creates a new handlers instance.
func NewHandlers(receiptService *service.ReceiptService, cfg *config.Config, logger zerolog.Logger) *Handlers {
	return &Handlers{
		receiptService: receiptService,
		config:         cfg,
		logger:         logger.With().Str("component", "handlers").Logger(),
	}
}
