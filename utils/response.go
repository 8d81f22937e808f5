package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const htmlContentType = "text/html; charset=utf-8"

// HTMLResponse sends a rendered page
func HTMLResponse(c *gin.Context, status int, body string) {
	c.Data(status, htmlContentType, []byte(body))
}

// Redirect answers 302 with a Location header and an empty body
func Redirect(c *gin.Context, location string) {
	c.Header("Location", location)
	c.Status(http.StatusFound)
	c.Writer.WriteHeaderNow()
}

// HTMLError sends a short error page. message must be safe to show to visitors.
func HTMLError(c *gin.Context, status int, message string) {
	c.Data(status, htmlContentType, []byte("<!DOCTYPE html><html><body><h1>"+
		http.StatusText(status)+"</h1><p>"+message+"</p></body></html>"))
}
