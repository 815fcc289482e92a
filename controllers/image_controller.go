package controllers

import (
	"io"
	"net/http"
	"strings"

	"healthtrack/utils"

	"github.com/gin-gonic/gin"
)

// ProxyImage streams a stored blob. Keys are content-addressed by upload time,
// so the response is served with long-lived immutable cache headers.
func ProxyImage(c *gin.Context) {
	key := strings.TrimPrefix(c.Param("path"), "/")
	if key == "" || strings.Contains(key, "..") {
		respondError(c, http.StatusBadRequest, "invalid image path")
		return
	}

	body, contentType, err := utils.FetchObject(c.Request.Context(), key)
	if err != nil {
		respondError(c, http.StatusNotFound, "not found")
		return
	}
	defer body.Close()

	c.Header("Cache-Control", "public, max-age=31536000, immutable")
	c.Header("Content-Type", contentType)
	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, body)
}
