package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	receiptdomain "github.com/smallbiznis/pompabon/internal/receipt/domain"
)

func (s *Server) PrintReceipt(c *gin.Context) {
	var tx receiptdomain.Transaction
	if err := c.ShouldBindJSON(&tx); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	resp, err := s.receiptSvc.Print(c.Request.Context(), receiptdomain.PrintRequest{Transaction: tx})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) PreviewReceipt(c *gin.Context) {
	var tx receiptdomain.Transaction
	if err := c.ShouldBindJSON(&tx); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	resp, err := s.receiptSvc.Preview(c.Request.Context(), receiptdomain.PrintRequest{Transaction: tx})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
