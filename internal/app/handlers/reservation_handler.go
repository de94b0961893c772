package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/DVilla96/banqi-1-sub000/internal/pkg/consts"
	"github.com/DVilla96/banqi-1-sub000/internal/pkg/models"
	"github.com/DVilla96/banqi-1-sub000/internal/service/interfaces"
	"github.com/DVilla96/banqi-1-sub000/internal/service/reservation"
)

type ReservationHandler struct {
	reservations *reservation.Service
	loanRepo     interfaces.LoanRepositoryInterface
}

func NewReservationHandler(reservations *reservation.Service, loanRepo interfaces.LoanRepositoryInterface) *ReservationHandler {
	return &ReservationHandler{reservations: reservations, loanRepo: loanRepo}
}

func (h *ReservationHandler) loadFundingLoan(c *gin.Context) (loanID primitive.ObjectID, ok bool) {
	loanID, err := primitive.ObjectIDFromHex(c.Param("loanId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": consts.ErrCodeInvalidRequest, "error": "invalid loan id"})
		return primitive.NilObjectID, false
	}
	return loanID, true
}

// Claim reserves funding capacity for a payer ahead of a commit.
func (h *ReservationHandler) Claim(c *gin.Context) {
	loanID, ok := h.loadFundingLoan(c)
	if !ok {
		return
	}

	var body models.ReservationRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": consts.ErrCodeInvalidRequest, "error": err.Error()})
		return
	}

	loan, err := h.loanRepo.GetLoanByID(c.Request.Context(), loanID)
	if err != nil {
		respondError(c, err)
		return
	}
	if loan.Status != consts.LoanFundingActive {
		c.JSON(http.StatusConflict, gin.H{"code": consts.ErrCodeInvalidTransition, "error": "loan is not open for funding"})
		return
	}

	entry, err := h.reservations.Claim(c.Request.Context(), loan, body.PayerID, body.Amount, time.Now().UTC())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// Release drops a payer's reservation.
func (h *ReservationHandler) Release(c *gin.Context) {
	loanID, ok := h.loadFundingLoan(c)
	if !ok {
		return
	}

	if err := h.reservations.Release(c.Request.Context(), loanID.Hex(), c.Param("payerId")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Capacity reports how much of the loan is still open, net of reservations.
func (h *ReservationHandler) Capacity(c *gin.Context) {
	loanID, ok := h.loadFundingLoan(c)
	if !ok {
		return
	}

	loan, err := h.loanRepo.GetLoanByID(c.Request.Context(), loanID)
	if err != nil {
		respondError(c, err)
		return
	}

	available, err := h.reservations.AvailableCapacity(c.Request.Context(), loan, c.Query("payerId"), time.Now().UTC())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"loanId": loanID.Hex(), "available": available})
}
