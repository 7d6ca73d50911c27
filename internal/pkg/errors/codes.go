package errors

import (
	"fmt"
	"net/http"
)

// Error code constants. Errors carry code + message; the console frontend
// handles i18n translation. Backend logs are always in English.

// Notification error codes.
const (
	CodeDefinitionNotFound = "DEFINITION_NOT_FOUND"
	CodeInstanceNotFound   = "INSTANCE_NOT_FOUND"
	CodeDeliveryNotFound   = "DELIVERY_NOT_FOUND"
	CodeDeliveryDuplicate  = "DELIVERY_DUPLICATE"
	CodeReadStateBackward  = "READ_STATE_BACKWARD"
)

// Targeting error codes.
const (
	CodeTargetInvalid      = "TARGET_INVALID"
	CodeGroupNotFound      = "GROUP_NOT_FOUND"
	CodeDepartmentNotFound = "DEPARTMENT_NOT_FOUND"
	CodeMemberNotFound     = "MEMBER_NOT_FOUND"
)

// Auth error codes.
const (
	CodeAuthFailed   = "AUTH_FAILED"
	CodeTokenExpired = "TOKEN_EXPIRED"
	CodeTokenInvalid = "TOKEN_INVALID"
)

// Validation error codes.
const (
	CodeInvalidRequestField = "INVALID_REQUEST_FIELD"
	CodeValidationFailed    = "VALIDATION_FAILED"
)

// Convenience constructors using predefined codes.

// ErrDefinitionNotFound creates a definition not found error.
func ErrDefinitionNotFound(definitionID string) *AppError {
	return &AppError{
		Code:       CodeDefinitionNotFound,
		Message:    "notification definition not found",
		HTTPStatus: http.StatusNotFound,
		Params:     map[string]interface{}{"definition_id": definitionID},
	}
}

// ErrInstanceNotFound creates an instance not found error.
func ErrInstanceNotFound(instanceID string) *AppError {
	return &AppError{
		Code:       CodeInstanceNotFound,
		Message:    "notification instance not found",
		HTTPStatus: http.StatusNotFound,
		Params:     map[string]interface{}{"instance_id": instanceID},
	}
}

// ErrDeliveryNotFound creates a delivery record not found error.
func ErrDeliveryNotFound(instanceID, recipientID string) *AppError {
	return &AppError{
		Code:       CodeDeliveryNotFound,
		Message:    "delivery record not found",
		HTTPStatus: http.StatusNotFound,
		Params:     map[string]interface{}{"instance_id": instanceID, "recipient_id": recipientID},
	}
}

// ErrGroupNotFoundf creates a group not found error.
func ErrGroupNotFoundf(format string, args ...interface{}) *AppError {
	return &AppError{
		Code:       CodeGroupNotFound,
		Message:    fmt.Sprintf(format, args...),
		HTTPStatus: http.StatusNotFound,
	}
}

// ErrDepartmentNotFoundf creates a department not found error.
func ErrDepartmentNotFoundf(format string, args ...interface{}) *AppError {
	return &AppError{
		Code:       CodeDepartmentNotFound,
		Message:    fmt.Sprintf(format, args...),
		HTTPStatus: http.StatusNotFound,
	}
}

// ErrTargetInvalidf creates a bad request error for a malformed target spec.
func ErrTargetInvalidf(format string, args ...interface{}) *AppError {
	return &AppError{
		Code:       CodeTargetInvalid,
		Message:    "invalid notification target: " + fmt.Sprintf(format, args...),
		HTTPStatus: http.StatusBadRequest,
	}
}

// ErrInvalidRequestFieldf creates a bad request error for a bad field value.
func ErrInvalidRequestFieldf(format string, args ...interface{}) *AppError {
	return &AppError{
		Code:       CodeInvalidRequestField,
		Message:    "invalid request field: " + fmt.Sprintf(format, args...),
		HTTPStatus: http.StatusBadRequest,
	}
}
