package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "financebook/internal/errors"
	"financebook/internal/services"
)

// PaymentItemHandler handles payment item requests
type PaymentItemHandler struct {
	paymentItemService services.PaymentItemServicer
}

// NewPaymentItemHandler creates a new PaymentItemHandler
func NewPaymentItemHandler(paymentItemService services.PaymentItemServicer) *PaymentItemHandler {
	return &PaymentItemHandler{paymentItemService: paymentItemService}
}

// apiDate accepts either RFC 3339 timestamps or plain YYYY-MM-DD dates.
type apiDate struct {
	time.Time
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *apiDate) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t, err = time.Parse("2006-01-02", s)
		if err != nil {
			return fmt.Errorf("invalid date %q", s)
		}
	}
	d.Time = t
	return nil
}

// CreatePaymentItemRequest represents the request payload for creating a payment item
type CreatePaymentItemRequest struct {
	Amount           *float64 `json:"amount" binding:"required"`
	Date             *apiDate `json:"date" binding:"required"`
	Periodic         bool     `json:"periodic"`
	Description      string   `json:"description"`
	InvoicePath      string   `json:"invoice_path"`
	ProductImagePath string   `json:"product_image_path"`
	RecipientID      *uint    `json:"recipient_id"`
	CategoryIDs      []uint   `json:"category_ids"`
}

// UpdatePaymentItemRequest represents the request payload for a partial
// update. Absent fields are left unchanged; an explicitly empty
// category_ids list resets the classification to UNCLASSIFIED.
type UpdatePaymentItemRequest struct {
	Amount           *float64 `json:"amount"`
	Date             *apiDate `json:"date"`
	Periodic         *bool    `json:"periodic"`
	Description      *string  `json:"description"`
	InvoicePath      *string  `json:"invoice_path"`
	ProductImagePath *string  `json:"product_image_path"`
	RecipientID      *uint    `json:"recipient_id"`
	CategoryIDs      *[]uint  `json:"category_ids"`
}

// CreatePaymentItem handles the creation of a new payment item
// @Summary     Create a payment item
// @Description Record a new cash-flow event with an optional classification
// @Tags        payment-items
// @Accept      json
// @Produce     json
// @Param       request body CreatePaymentItemRequest true "Payment item details"
// @Success     201 {object} models.PaymentItem "Payment item created"
// @Failure     400 {object} ErrorResponse "Invalid input or duplicate category type"
// @Failure     404 {object} ErrorResponse "Recipient or category not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /payment-items [post]
func (h *PaymentItemHandler) CreatePaymentItem(c *gin.Context) {
	var req CreatePaymentItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	item, err := h.paymentItemService.CreatePaymentItem(services.PaymentItemInput{
		Amount:           *req.Amount,
		Date:             req.Date.Time,
		Periodic:         req.Periodic,
		Description:      req.Description,
		InvoicePath:      req.InvoicePath,
		ProductImagePath: req.ProductImagePath,
		RecipientID:      req.RecipientID,
		CategoryIDs:      req.CategoryIDs,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

// ListPaymentItems handles the filtered listing of payment items
// @Summary     List payment items
// @Description List payment items, optionally filtered by sign and by categories (including their descendants)
// @Tags        payment-items
// @Accept      json
// @Produce     json
// @Param       expense_only query bool false "Only items with amount < 0"
// @Param       income_only query bool false "Only items with amount > 0"
// @Param       category_ids query []int false "Category ids to filter by" collectionFormat(multi)
// @Success     200 {array} models.PaymentItem "List of payment items"
// @Failure     400 {object} ErrorResponse "Conflicting filters or invalid parameters"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /payment-items [get]
func (h *PaymentItemHandler) ListPaymentItems(c *gin.Context) {
	expenseOnly, err := parseBoolQuery(c, "expense_only")
	if err != nil {
		respondWithError(c, err)
		return
	}
	incomeOnly, err := parseBoolQuery(c, "income_only")
	if err != nil {
		respondWithError(c, err)
		return
	}
	categoryIDs, err := parseIDListQuery(c, "category_ids")
	if err != nil {
		respondWithError(c, err)
		return
	}

	items, err := h.paymentItemService.ListPaymentItems(services.PaymentItemFilter{
		ExpenseOnly: expenseOnly,
		IncomeOnly:  incomeOnly,
		CategoryIDs: categoryIDs,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

// GetPaymentItemByID handles the retrieval of a specific payment item
// @Summary     Get payment item by ID
// @Description Get a payment item with its recipient and categories embedded
// @Tags        payment-items
// @Accept      json
// @Produce     json
// @Param       id path int true "Payment item ID"
// @Success     200 {object} models.PaymentItem "Payment item details"
// @Failure     400 {object} ErrorResponse "Invalid payment item ID"
// @Failure     404 {object} ErrorResponse "Payment item not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /payment-items/{id} [get]
func (h *PaymentItemHandler) GetPaymentItemByID(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	item, err := h.paymentItemService.GetPaymentItemByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// UpdatePaymentItem handles the partial update of a payment item
// @Summary     Update payment item
// @Description Partially update a payment item; supplying category_ids replaces the whole classification
// @Tags        payment-items
// @Accept      json
// @Produce     json
// @Param       id path int true "Payment item ID"
// @Param       request body UpdatePaymentItemRequest true "Fields to update"
// @Success     200 {object} models.PaymentItem "Updated payment item"
// @Failure     400 {object} ErrorResponse "Invalid input or duplicate category type"
// @Failure     404 {object} ErrorResponse "Payment item, recipient or category not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /payment-items/{id} [put]
func (h *PaymentItemHandler) UpdatePaymentItem(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdatePaymentItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	patch := services.PaymentItemPatch{
		Amount:           req.Amount,
		Periodic:         req.Periodic,
		Description:      req.Description,
		InvoicePath:      req.InvoicePath,
		ProductImagePath: req.ProductImagePath,
		RecipientID:      req.RecipientID,
		CategoryIDs:      req.CategoryIDs,
	}
	if req.Date != nil {
		patch.Date = &req.Date.Time
	}

	item, err := h.paymentItemService.UpdatePaymentItem(id, patch)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// DeletePaymentItem handles deleting a payment item
// @Summary     Delete payment item
// @Description Delete a payment item and its category links
// @Tags        payment-items
// @Accept      json
// @Produce     json
// @Param       id path int true "Payment item ID"
// @Success     204 "Payment item deleted"
// @Failure     400 {object} ErrorResponse "Invalid payment item ID"
// @Failure     404 {object} ErrorResponse "Payment item not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /payment-items/{id} [delete]
func (h *PaymentItemHandler) DeletePaymentItem(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.paymentItemService.DeletePaymentItem(id); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
