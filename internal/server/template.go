package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	templatedomain "github.com/freightdesk/tariff/internal/template/domain"
)

func (s *Server) ListTemplates(c *gin.Context) {
	mode := templatedomain.ShipmentMode(strings.ToUpper(strings.TrimSpace(c.Query("mode"))))

	resp, err := s.templateSvc.List(c.Request.Context(), mode)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetTemplate(c *gin.Context) {
	code := templatedomain.TemplateCode(strings.TrimSpace(c.Param("code")))

	resp, err := s.templateSvc.Get(c.Request.Context(), code)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}
