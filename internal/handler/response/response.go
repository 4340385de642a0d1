package response

import (
	"net/http"

	"opensy-web/pkg/errno"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the JSON shape of every API failure.
type ErrorBody struct {
	Error string `json:"error"`
}

// JSON writes data with status 200. A json.RawMessage is written as-is, so
// node results reach the client unchanged.
func JSON(c *gin.Context, data interface{}) {
	if data == nil {
		data = gin.H{}
	}
	c.JSON(http.StatusOK, data)
}

// Error writes 500 {"error": msg}. Bad input and node failures share this path.
func Error(c *gin.Context, err error) {
	_, msg := errno.Decode(err)
	c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorBody{Error: msg})
}
