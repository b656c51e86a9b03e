package response

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

var ErrInternalServer = errors.New("internal server error")

type SuccessResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data"`
}

type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Errors  any    `json:"errors"`
}

func WriteSuccessResponse(c echo.Context, message string, data any) error {
	return WriteSuccessResponseWithStatus(c, http.StatusOK, message, data)
}

func WriteSuccessResponseWithStatus(c echo.Context, status int, message string, data any) error {
	return c.JSON(status, SuccessResponse{
		Status:  "success",
		Message: message,
		Data:    data,
	})
}

// WriteErrorResponse writes err with the given status. Server errors are
// reported as ErrInternalServer so internals never reach the client.
func WriteErrorResponse(c echo.Context, status int, err error, details any) error {
	if status >= http.StatusInternalServerError {
		err = ErrInternalServer
	}
	return c.JSON(status, ErrorResponse{
		Status:  "error",
		Message: err.Error(),
		Errors:  details,
	})
}
