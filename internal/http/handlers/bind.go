package handlers

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
)

// bindBody decodes the request body into dst, picking JSON or form binding
// from the Content-Type header. An empty body leaves dst at its zero value.
func bindBody(c *gin.Context, dst any) error {
	if err := c.ShouldBind(dst); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
