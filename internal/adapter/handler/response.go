package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Every endpoint answers with the same envelope: {code, success, message,
// ...payload}. The product list is the one historical exception and returns
// a bare {products, count} body.

func respondOK(c *gin.Context, message string, extra gin.H) {
	body := gin.H{"code": http.StatusOK, "success": true}
	if message != "" {
		body["message"] = message
	}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"code": status, "success": false, "message": message})
}
