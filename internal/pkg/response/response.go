package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"fyyur/internal/domain"
)

const (
	ErrorTemplate = "error.html"

	msgInternal = "Something went wrong. Please try again."
)

// offered puts HTML first so browsers and requests without an Accept header
// get pages; API clients ask for application/json explicitly.
var offered = []string{gin.MIMEHTML, gin.MIMEJSON}

// Success renders data with tmpl for browsers or the JSON envelope otherwise.
// notice is the one-shot message shown after an action completes.
func Success(c *gin.Context, statusCode int, tmpl string, data interface{}, notice string) {
	c.Negotiate(statusCode, gin.Negotiate{
		Offered:  offered,
		HTMLName: tmpl,
		HTMLData: gin.H{"Data": data, "Notice": notice},
		JSONData: gin.H{
			"success": true,
			"data":    data,
			"notice":  notice,
		},
	})
}

func Error(c *gin.Context, statusCode int, code string, message string) {
	ErrorWithDetails(c, statusCode, code, message, nil)
}

func ErrorWithDetails(c *gin.Context, statusCode int, code string, message string, details any) {
	body := gin.H{
		"code":    code,
		"message": message,
	}
	if details != nil {
		body["details"] = details
	}
	c.Negotiate(statusCode, gin.Negotiate{
		Offered:  offered,
		HTMLName: ErrorTemplate,
		HTMLData: gin.H{"Status": statusCode, "Code": code, "Message": message, "Details": details},
		JSONData: gin.H{
			"success": false,
			"error":   body,
		},
	})
}

func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, "NOT_FOUND", message)
}

func Internal(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "INTERNAL", msgInternal)
}

// FromError maps a domain error kind onto a status and renders it. Faults
// that are not a known kind are logged with the request logger and shown as
// a generic notice.
func FromError(c *gin.Context, err error, notFoundMessage string) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Please correct the highlighted fields.", ve.Fields)
	case errors.Is(err, domain.ErrValidation):
		Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, domain.ErrNotFound):
		NotFound(c, notFoundMessage)
	case errors.Is(err, domain.ErrConflict):
		Error(c, http.StatusConflict, "CONFLICT", "The change conflicts with existing data.")
	default:
		zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg("request failed")
		Internal(c)
	}
}
