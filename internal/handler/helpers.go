package handler

import (
	"errors"
	"net/http"
	"unicode"

	"warungpos/internal/apierror"
	"warungpos/internal/query"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New()

// envelope is the uniform response body: {code, message, data, pagination}.
// Error responses carry code and message only.
type envelope struct {
	Code       int               `json:"code"`
	Message    string            `json:"message"`
	Data       interface{}       `json:"data,omitempty"`
	Pagination *query.Pagination `json:"pagination,omitempty"`
}

func respond(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, envelope{Code: status, Message: message, Data: data})
}

func respondList(c *gin.Context, message string, data interface{}, p query.Pagination) {
	c.JSON(http.StatusOK, envelope{
		Code:       http.StatusOK,
		Message:    message,
		Data:       data,
		Pagination: &p,
	})
}

// respondError maps service errors onto the envelope. Typed errors keep
// their status and message; anything else is attached to the context for
// the error middleware and reported as a generic 500.
func respondError(c *gin.Context, err error) {
	var apiErr *apierror.Error
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.Code, apiErr)
		return
	}
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, apierror.New(http.StatusInternalServerError, "Internal server error."))
}

// bindAndValidate binds the JSON body and runs validator tags. A failed
// "required" tag produces the canonical "%s is required." message; any other
// tag reports the offending field. Returns false when a response was written.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.BadRequest("Invalid request body."))
		return false
	}
	return validateStruct(c, req)
}

// bindFormAndValidate binds multipart or urlencoded form bodies (menu
// create/update, which carry an image alongside the fields).
func bindFormAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBind(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.BadRequest("Invalid request body."))
		return false
	}
	return validateStruct(c, req)
}

func validateStruct(c *gin.Context, req interface{}) bool {
	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			field := lowerFirst(fe.Field())
			if fe.Tag() == "required" {
				c.JSON(http.StatusBadRequest, apierror.Validation(field))
			} else {
				c.JSON(http.StatusBadRequest, apierror.BadRequest(field+" is invalid."))
			}
			return false
		}
		c.JSON(http.StatusBadRequest, apierror.BadRequest("Invalid request body."))
		return false
	}
	return true
}

// paramID parses a uuid path parameter, responding 400 on junk.
func paramID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.BadRequest(name+" must be a valid id."))
		return uuid.Nil, false
	}
	return id, true
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}
