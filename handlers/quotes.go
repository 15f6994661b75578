package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	quotesRepo "ratecraft/database/repository/quotes"
)

// QuoteRecordsHandler exposes the quote audit trail to partners.
type QuoteRecordsHandler struct {
	Repo quotesRepo.QuoteRecordRepository
}

func NewQuoteRecordsHandler(repo quotesRepo.QuoteRecordRepository) *QuoteRecordsHandler {
	return &QuoteRecordsHandler{Repo: repo}
}

// GetQuoteRecordHandler returns one audited quote by ID.
func (h *QuoteRecordsHandler) GetQuoteRecordHandler(c *gin.Context) {
	id := c.Param("id")

	record, err := h.Repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "quote record not found"})
			return
		}
		getLogger(c).Error("failed to fetch quote record", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to fetch quote record"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "record": record})
}

// ListRecentQuotesHandler returns the newest audited quotes.
// Query param: limit (default 20, capped at 100).
func (h *QuoteRecordsHandler) ListRecentQuotesHandler(c *gin.Context) {
	limit, err := strconv.ParseInt(c.DefaultQuery("limit", "20"), 10, 64)
	if err != nil || limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	records, err := h.Repo.ListRecent(c.Request.Context(), limit)
	if err != nil {
		getLogger(c).Error("failed to list quote records", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to list quote records"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "records": records})
}
