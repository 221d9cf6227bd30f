package presenters

import (
	"github.com/gofiber/fiber/v2"
)

// ApiResponse is the envelope returned by every handler, success or not.
type ApiResponse struct {
	Result        interface{} `json:"result"`
	IsSuccess     bool        `json:"isSuccess"`
	StatusCode    int         `json:"statusCode"`
	ErrorMessages []string    `json:"errorMessages,omitempty"`
}

func SuccessResponse(c *fiber.Ctx, result interface{}, statusCode int) error {
	// A 204-style success still carries the envelope in a 200 body.
	httpStatus := statusCode
	if statusCode == fiber.StatusNoContent {
		httpStatus = fiber.StatusOK
	}

	return c.Status(httpStatus).JSON(ApiResponse{
		Result:     result,
		IsSuccess:  true,
		StatusCode: statusCode,
	})
}

func ErrorResponse(c *fiber.Ctx, statusCode int, message string, err error) error {
	messages := []string{message}
	if err != nil {
		messages = append(messages, err.Error())
	}

	return c.Status(statusCode).JSON(ApiResponse{
		Result:        nil,
		IsSuccess:     false,
		StatusCode:    statusCode,
		ErrorMessages: messages,
	})
}
