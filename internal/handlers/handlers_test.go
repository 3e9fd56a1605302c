package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/pricelab/sales-tax-service/internal/config"
	"github.com/pricelab/sales-tax-service/internal/service"
)

func testHandlers() *Handlers {
	return NewHandlers(
		service.NewReceiptService(zerolog.Nop()),
		&config.Config{},
		zerolog.Nop(),
	)
}

func TestHealth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := testHandlers()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	h.Health(c)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}

	if resp["status"] != "healthy" {
		t.Errorf("Expected status 'healthy', got %v", resp["status"])
	}

	if resp["service"] != "sales-tax-service" {
		t.Errorf("Expected service 'sales-tax-service', got %v", resp["service"])
	}
}

func TestReady(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := testHandlers()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	h.Ready(c)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
}

func TestLive(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := testHandlers()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	h.Live(c)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
}

func postReceipt(t *testing.T, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.POST("/api/v1/receipts", testHandlers().CreateReceipt)

	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("Failed to marshal payload: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/receipts", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestCreateReceipt(t *testing.T) {
	w := postReceipt(t, map[string]interface{}{
		"lines": []string{
			"2 book at 12.49",
			"1 music CD at 14.99",
			"1 chocolate bar at 0.85",
		},
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", w.Code, w.Body.String())
	}

	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}

	if resp["sales_taxes"] != "1.50" {
		t.Errorf("Expected sales_taxes '1.50', got %v", resp["sales_taxes"])
	}

	if resp["total"] != "42.32" {
		t.Errorf("Expected total '42.32', got %v", resp["total"])
	}

	items, ok := resp["items"].([]interface{})
	if !ok || len(items) != 3 {
		t.Errorf("Expected 3 items, got %v", resp["items"])
	}

	if resp["receipt_id"] == "" {
		t.Error("Expected a receipt ID")
	}
}

func TestCreateReceiptBadLine(t *testing.T) {
	w := postReceipt(t, map[string]interface{}{
		"lines": []string{"this is not an order"},
	})

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
}

func TestCreateReceiptEmptyLines(t *testing.T) {
	w := postReceipt(t, map[string]interface{}{
		"lines": []string{},
	})

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
}

func TestCreateReceiptBadBody(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.POST("/api/v1/receipts", testHandlers().CreateReceipt)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/receipts", bytes.NewReader([]byte("not json")))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
}
