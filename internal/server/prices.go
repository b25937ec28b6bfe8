package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) GetPrices(c *gin.Context) {
	c.JSON(http.StatusOK, s.prices.Get())
}
