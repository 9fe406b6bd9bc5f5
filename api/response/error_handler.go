package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/krishivishwa/storefront/pkg/errors"
	"github.com/krishivishwa/storefront/pkg/logger"
)

var httpStatusMap = map[errors.ErrorCode]int{
	errors.CodeInternal:       http.StatusInternalServerError,
	errors.CodeBadRequest:     http.StatusBadRequest,
	errors.CodeNotFound:       http.StatusNotFound,
	errors.CodeConflict:       http.StatusConflict,
	errors.CodeForbidden:      http.StatusForbidden,
	errors.CodeTooManyRequest: http.StatusTooManyRequests,
	errors.CodeValidation:     http.StatusBadRequest,

	errors.CodeProductNotFound: http.StatusNotFound,

	errors.CodeCartEmpty:       http.StatusUnprocessableEntity,
	errors.CodeCartLineMissing: http.StatusNotFound,
	errors.CodeInvalidQuantity: http.StatusBadRequest,

	errors.CodeStepBlocked:       http.StatusUnprocessableEntity,
	errors.CodeOrderInFlight:     http.StatusConflict,
	errors.CodeInvalidScreenshot: http.StatusBadRequest,

	errors.CodeOrderNotFound: http.StatusNotFound,

	errors.CodeStoryNotFound:     http.StatusNotFound,
	errors.CodeAlreadySubscribed: http.StatusConflict,
}

func mapErrorCodeToHTTPStatus(code errors.ErrorCode) int {
	if status, ok := httpStatusMap[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

func getRequestID(c *gin.Context) string {
	if requestID, exists := c.Get(RequestIDKey); exists {
		if id, ok := requestID.(string); ok {
			return id
		}
	}
	return ""
}

// GetRequestID Exported for controllers and middleware.
func GetRequestID(c *gin.Context) string {
	return getRequestID(c)
}

// GetSessionID Return the storefront session id set by middleware.
func GetSessionID(c *gin.Context) string {
	if sessionID, exists := c.Get(SessionIDKey); exists {
		if id, ok := sessionID.(string); ok {
			return id
		}
	}
	return ""
}

// HandleError Handle binding and other framework-level errors.
func HandleError(c *gin.Context, err error, message string, code int) {
	requestID := getRequestID(c)

	logger.Error(message,
		zap.String("request_id", requestID),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.Int("status", code),
		zap.Error(err))

	c.JSON(code, &Response{
		Success:   false,
		Error:     "BAD_REQUEST",
		Message:   message,
		Code:      code,
		RequestID: requestID,
	})
}

// HandleAppError Map an application error to its HTTP status. Internal
// errors are logged in full but reach the client as a generic message.
func HandleAppError(c *gin.Context, err error) {
	requestID := getRequestID(c)
	appErr := errors.FromDomainError(err)
	httpStatus := mapErrorCodeToHTTPStatus(appErr.Code)

	fields := []zap.Field{
		zap.String("request_id", requestID),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.String("error_code", string(appErr.Code)),
		zap.Int("http_status", httpStatus),
	}
	if appErr.Err != nil {
		fields = append(fields, zap.Error(appErr.Err))
	}
	logger.Error(appErr.Message, fields...)

	userMessage := appErr.Message
	if appErr.Code == errors.CodeInternal {
		userMessage = "internal server error"
	}

	c.JSON(httpStatus, &Response{
		Success:   false,
		Error:     string(appErr.Code),
		Details:   appErr.Details,
		Message:   userMessage,
		Code:      httpStatus,
		RequestID: requestID,
	})
}
