package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "financebook/internal/errors"
	"financebook/internal/services"
)

// RecipientHandler handles recipient requests
type RecipientHandler struct {
	recipientService services.RecipientServicer
}

// NewRecipientHandler creates a new RecipientHandler
func NewRecipientHandler(recipientService services.RecipientServicer) *RecipientHandler {
	return &RecipientHandler{recipientService: recipientService}
}

// CreateRecipientRequest represents the request payload for creating a recipient
type CreateRecipientRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
}

// CreateRecipient handles the creation of a new recipient
// @Summary     Create a recipient
// @Description Create a new counterparty
// @Tags        recipients
// @Accept      json
// @Produce     json
// @Param       request body CreateRecipientRequest true "Recipient details"
// @Success     201 {object} models.Recipient "Recipient created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /recipients [post]
func (h *RecipientHandler) CreateRecipient(c *gin.Context) {
	var req CreateRecipientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	recipient, err := h.recipientService.CreateRecipient(req.Name, req.Address)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, recipient)
}

// ListRecipients handles listing all recipients
// @Summary     List recipients
// @Description List all counterparties
// @Tags        recipients
// @Accept      json
// @Produce     json
// @Success     200 {array} models.Recipient "List of recipients"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /recipients [get]
func (h *RecipientHandler) ListRecipients(c *gin.Context) {
	recipients, err := h.recipientService.ListRecipients()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, recipients)
}

// GetRecipientByID handles the retrieval of a specific recipient
// @Summary     Get recipient by ID
// @Description Get a specific counterparty by ID
// @Tags        recipients
// @Accept      json
// @Produce     json
// @Param       id path int true "Recipient ID"
// @Success     200 {object} models.Recipient "Recipient details"
// @Failure     400 {object} ErrorResponse "Invalid recipient ID"
// @Failure     404 {object} ErrorResponse "Recipient not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /recipients/{id} [get]
func (h *RecipientHandler) GetRecipientByID(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	recipient, err := h.recipientService.GetRecipientByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, recipient)
}
