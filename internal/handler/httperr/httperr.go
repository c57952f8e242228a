package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the single error body shape of the API.
type Response struct {
	Status int    `json:"-"`
	Error  string `json:"error"`
}

// AbortWithError records the original error on the context and aborts the
// handler chain. The error middleware renders the Response; the recorded
// error keeps its cause and stack for the request logger.
func AbortWithError(c *gin.Context, status int, err error, msg string) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: Response{Status: status, Error: msg},
	})
	c.Abort()
}
