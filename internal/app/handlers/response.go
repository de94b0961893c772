package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/DVilla96/banqi-1-sub000/internal/pkg/consts"
	"github.com/DVilla96/banqi-1-sub000/internal/pkg/models"
)

var errorStatusCodes = map[string]int{
	consts.ErrCodeLoanNotFound:         http.StatusNotFound,
	consts.ErrCodeScheduleNotReady:     http.StatusConflict,
	consts.ErrCodeInsufficientCapacity: http.StatusConflict,
	consts.ErrCodeReservationConflict:  http.StatusConflict,
	consts.ErrCodeCommitInProgress:     http.StatusConflict,
	consts.ErrCodeInvalidTransition:    http.StatusConflict,
	consts.ErrCodeInvalidRequest:       http.StatusBadRequest,
}

// respondError maps service errors onto HTTP statuses. Unknown errors stay
// opaque to the caller.
func respondError(c *gin.Context, err error) {
	if errors.Is(err, mongo.ErrNoDocuments) {
		c.JSON(http.StatusNotFound, gin.H{"code": consts.ErrCodeLoanNotFound, "error": "not found"})
		return
	}

	var customErr models.CustomError
	if errors.As(err, &customErr) {
		status, ok := errorStatusCodes[customErr.Code]
		if !ok {
			status = http.StatusInternalServerError
		}
		c.JSON(status, gin.H{"code": customErr.Code, "error": customErr.Message})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"code": consts.ErrCodeInternal, "error": "internal error"})
}

// parseAsOf reads an optional as-of date; valuation defaults to today.
func parseAsOf(value string) (time.Time, error) {
	if value == "" {
		return time.Now().UTC(), nil
	}
	return time.Parse("2006-01-02", value)
}
