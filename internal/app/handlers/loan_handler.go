package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/DVilla96/banqi-1-sub000/internal/pkg/consts"
	"github.com/DVilla96/banqi-1-sub000/internal/pkg/models"
	"github.com/DVilla96/banqi-1-sub000/internal/service/loan"
)

type LoanHandler struct {
	schedules *loan.ScheduleService
	statuses  *loan.StatusService
}

func NewLoanHandler(schedules *loan.ScheduleService, statuses *loan.StatusService) *LoanHandler {
	return &LoanHandler{schedules: schedules, statuses: statuses}
}

func (h *LoanHandler) parseLoanID(c *gin.Context) (primitive.ObjectID, bool) {
	loanID, err := primitive.ObjectIDFromHex(c.Param("loanId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": consts.ErrCodeInvalidRequest, "error": "invalid loan id"})
		return primitive.NilObjectID, false
	}
	return loanID, true
}

// GetSchedule regenerates the amortization schedule as of an optional date.
func (h *LoanHandler) GetSchedule(c *gin.Context) {
	loanID, ok := h.parseLoanID(c)
	if !ok {
		return
	}
	asOf, err := parseAsOf(c.Query("asOf"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": consts.ErrCodeInvalidRequest, "error": "asOf must be YYYY-MM-DD"})
		return
	}

	sched, err := h.schedules.GetSchedule(c.Request.Context(), loanID, asOf)
	if err != nil {
		respondError(c, err)
		return
	}
	if sched == nil {
		c.JSON(http.StatusConflict, gin.H{"code": consts.ErrCodeScheduleNotReady, "error": "loan has no schedulable state"})
		return
	}
	c.JSON(http.StatusOK, sched)
}

// GetPayoff values the cost of closing the loan at an optional date.
func (h *LoanHandler) GetPayoff(c *gin.Context) {
	loanID, ok := h.parseLoanID(c)
	if !ok {
		return
	}
	asOf, err := parseAsOf(c.Query("asOf"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": consts.ErrCodeInvalidRequest, "error": "asOf must be YYYY-MM-DD"})
		return
	}

	payoff, err := h.schedules.GetPayoff(c.Request.Context(), loanID, asOf)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"loanId": loanID.Hex(), "asOf": asOf.Format("2006-01-02"), "payoff": payoff})
}

// PreviewBreakdown shows how a candidate amount would split, without writes.
func (h *LoanHandler) PreviewBreakdown(c *gin.Context) {
	loanID, ok := h.parseLoanID(c)
	if !ok {
		return
	}

	var body models.BreakdownRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": consts.ErrCodeInvalidRequest, "error": err.Error()})
		return
	}
	asOf, err := parseAsOf(body.AsOf)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": consts.ErrCodeInvalidRequest, "error": "asOf must be YYYY-MM-DD"})
		return
	}

	breakdown, err := h.schedules.PreviewBreakdown(c.Request.Context(), loanID, body.Amount, asOf)
	if err != nil {
		respondError(c, err)
		return
	}
	if breakdown == nil {
		c.JSON(http.StatusConflict, gin.H{"code": consts.ErrCodeScheduleNotReady, "error": "loan has no unpaid period"})
		return
	}
	c.JSON(http.StatusOK, breakdown)
}

// UpdateStatus moves the loan through its lifecycle.
func (h *LoanHandler) UpdateStatus(c *gin.Context) {
	loanID, ok := h.parseLoanID(c)
	if !ok {
		return
	}

	var body models.StatusUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": consts.ErrCodeInvalidRequest, "error": err.Error()})
		return
	}

	if err := h.statuses.Transition(c.Request.Context(), loanID, consts.LoanStatus(body.Status)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"loanId": loanID.Hex(), "status": body.Status})
}
