package response

import (
	"github.com/gin-gonic/gin"
)

// Envelope is the uniform wrapper every endpoint answers with. Field
// presence varies by call site: success bodies omit what they do not
// carry, error bodies always carry message and a diagnostics map.
type Envelope struct {
	Message    string `json:"message,omitempty"`
	Body       any    `json:"body,omitempty"`
	HTTPStatus int    `json:"httpStatus,omitempty"`
	IsError    bool   `json:"isError"`
}

func Success(c *gin.Context, status int, message string, body any) {
	c.JSON(status, Envelope{
		Message:    message,
		Body:       body,
		HTTPStatus: status,
	})
}

// Error writes the uniform error envelope. details is a flat mapping of
// diagnostic keys to strings; the original failure never goes out raw.
func Error(c *gin.Context, status int, message string, details map[string]string) {
	c.JSON(status, Envelope{
		Message:    message,
		Body:       details,
		HTTPStatus: status,
		IsError:    true,
	})
}
