package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/DVilla96/banqi-1-sub000/internal/pkg/consts"
	"github.com/DVilla96/banqi-1-sub000/internal/service/interfaces"
)

// maxProofSize caps proof uploads at 5 MiB.
const maxProofSize = 5 << 20

type ProofHandler struct {
	gcs     interfaces.GcsInterface
	payRepo interfaces.PaymentRepositoryInterface
}

func NewProofHandler(gcs interfaces.GcsInterface, payRepo interfaces.PaymentRepositoryInterface) *ProofHandler {
	return &ProofHandler{gcs: gcs, payRepo: payRepo}
}

// UploadProof stores a payment proof document in GCS and links the object
// reference onto the payment record.
func (h *ProofHandler) UploadProof(c *gin.Context) {
	paymentID, err := primitive.ObjectIDFromHex(c.Param("paymentId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": consts.ErrCodeInvalidRequest, "error": "invalid payment id"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": consts.ErrCodeInvalidRequest, "error": "missing proof file"})
		return
	}
	if fileHeader.Size > maxProofSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"code": consts.ErrCodeInvalidRequest, "error": "proof file too large"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, err)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respondError(c, err)
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	objectName, err := h.gcs.UploadProof(c.Request.Context(), paymentID.Hex(), data, contentType)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.payRepo.AttachProof(c.Request.Context(), paymentID, objectName); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"paymentId": paymentID.Hex(), "proofUrl": objectName})
}
