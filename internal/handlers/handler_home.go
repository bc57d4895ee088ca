package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// getHome godoc
// @Summary Redirect to the reconciliation report page.
// @Tags root
// @Success 302
// @Router / [get]
func getHome(c *gin.Context) {
	c.Redirect(http.StatusFound, "/report")
}
