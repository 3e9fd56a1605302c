package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pricelab/sales-tax-service/internal/apperrors"
	"github.com/pricelab/sales-tax-service/internal/orderparse"
)

// CreateReceiptRequest is the payload for POST /api/v1/receipts.
type CreateReceiptRequest struct {
	Lines []string `json:"lines" binding:"required"`
}

// CreateReceipt handles POST /api/v1/receipts
func (h *Handlers) CreateReceipt(c *gin.Context) {
	var req CreateReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn().Err(err).Msg("Failed to bind request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if len(req.Lines) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "at least one order line is required"})
		return
	}

	r, err := h.receiptService.BuildReceipt(req.Lines)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"receipt_id":  r.ID,
		"items":       r.Items,
		"sub_total":   r.SubTotal,
		"sales_taxes": r.SalesTaxes,
		"total":       r.Total,
		"text":        r.Text(),
	})
}

// handleError maps domain errors to HTTP responses.
func handleError(c *gin.Context, err error) {
	var verr *apperrors.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": verr.Message,
			"field": verr.Field,
		})
	case errors.Is(err, orderparse.ErrBadFormat):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
