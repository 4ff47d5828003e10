package response

import (
	"errors"
	"net/http"

	"github.com/lalitaditya04/EcomStore-Platform/pkg/errs"
	"github.com/labstack/echo/v4"
)

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Message string      `json:"message"`
	Error   string      `json:"error,omitempty"`
	Errors  interface{} `json:"errors,omitempty"`
}

func WriteSuccessResponse(c echo.Context, statusCode int, data interface{}) error {
	return c.JSON(statusCode, data)
}

func WriteMessageResponse(c echo.Context, message string) error {
	return c.JSON(http.StatusOK, MessageResponse{Message: message})
}

// WriteErrorResponse renders {message, error?}. Internal failures get a
// generic message with the cause in error; everything else shows its own message.
func WriteErrorResponse(c echo.Context, err error, errors interface{}) error {
	statusCode := errs.GetErrorStatusCode(err)
	resp := ErrorResponse{}
	resp.Message = err.Error()
	resp.Errors = errors

	if statusCode == errs.ErrStatusInternalServer {
		resp.Message = errs.ErrInternalServer.Error()
		resp.Error = err.Error()
	}

	if resp.Errors == nil {
		resp.Errors = validationFields(err)
	}

	return c.JSON(statusCode, resp)
}

func validationFields(err error) interface{} {
	var validationErr *errs.ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Fields
	}

	return nil
}
