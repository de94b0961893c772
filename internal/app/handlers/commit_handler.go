package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DVilla96/banqi-1-sub000/internal/pkg/consts"
	"github.com/DVilla96/banqi-1-sub000/internal/pkg/models"
	"github.com/DVilla96/banqi-1-sub000/internal/service/payment"
)

type CommitHandler struct {
	commits *payment.CommitService
}

func NewCommitHandler(commits *payment.CommitService) *CommitHandler {
	return &CommitHandler{commits: commits}
}

// Commit executes a repayment with its reinvestment plan.
func (h *CommitHandler) Commit(c *gin.Context) {
	var body models.CommitRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": consts.ErrCodeInvalidRequest, "error": err.Error()})
		return
	}

	asOf, err := parseAsOf(body.AsOf)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": consts.ErrCodeInvalidRequest, "error": "asOf must be YYYY-MM-DD"})
		return
	}

	result, err := h.commits.Commit(c.Request.Context(), body, asOf)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}
