package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	receiptdomain "github.com/smallbiznis/pompabon/internal/receipt/domain"
)

type draftResponse struct {
	Draft        receiptdomain.Transaction `json:"draft"`
	VolumeLiters float64                   `json:"volume_liters"`
}

func (s *Server) GetDraft(c *gin.Context) {
	tx, err := s.draftSvc.Load(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, draftResponse{
		Draft:        tx,
		VolumeLiters: tx.VolumeLiters(),
	})
}

func (s *Server) SaveDraft(c *gin.Context) {
	var tx receiptdomain.Transaction
	if err := c.ShouldBindJSON(&tx); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	saved, err := s.draftSvc.Save(c.Request.Context(), tx)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, draftResponse{
		Draft:        saved,
		VolumeLiters: saved.VolumeLiters(),
	})
}
