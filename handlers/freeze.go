package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"ratecraft/models"
	"ratecraft/services/freeze"
)

// FreezeHandler serves price-freeze issuance and lookup.
type FreezeHandler struct {
	Service freeze.PriceFreezeService
}

func NewFreezeHandler(svc freeze.PriceFreezeService) *FreezeHandler {
	return &FreezeHandler{Service: svc}
}

// CreateFreezeHandler locks a quoted price for the freeze window.
func (h *FreezeHandler) CreateFreezeHandler(c *gin.Context) {
	var input models.FreezeRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid input", "details": err.Error()})
		return
	}

	frozen, err := h.Service.CreateFreeze(c.Request.Context(), input)
	if err != nil {
		respondPricingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "freeze": frozen})
}

// GetFreezeHandler resolves an issued freeze by ID.
func (h *FreezeHandler) GetFreezeHandler(c *gin.Context) {
	id := c.Param("id")

	frozen, err := h.Service.GetFreeze(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, freeze.ErrFreezeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": err.Error()})
			return
		}
		getLogger(c).Error("failed to fetch price freeze", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to fetch price freeze"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "freeze": frozen})
}
