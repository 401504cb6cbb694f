package response

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"space-age/internal/shared/errors"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

type errorClass struct {
	status int
	level  slog.Level
	msg    string
}

var errorClasses = map[errors.ErrorType]errorClass{
	errors.ErrorTypeNotFound:         {http.StatusNotFound, slog.LevelDebug, "Resource not found"},
	errors.ErrorTypeValidation:       {http.StatusBadRequest, slog.LevelDebug, "Validation error"},
	errors.ErrorTypeMethodNotAllowed: {http.StatusMethodNotAllowed, slog.LevelDebug, "Method not allowed"},
	errors.ErrorTypeUnauthorized:     {http.StatusUnauthorized, slog.LevelWarn, "Authorization error"},
	errors.ErrorTypeRateLimited:      {http.StatusTooManyRequests, slog.LevelWarn, "Rate limit exceeded"},
	errors.ErrorTypeExternal:         {http.StatusServiceUnavailable, slog.LevelError, "External service error"},
}

var internalClass = errorClass{http.StatusInternalServerError, slog.LevelError, "Internal server error"}

// Error logs err and writes it as JSON. Request errors are logged here and
// nowhere else.
func Error(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	ErrorWithMessage(w, r, logger, err, err.Error())
}

// ErrorWithMessage logs err but shows clientMessage to the caller.
func ErrorWithMessage(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error, clientMessage string) {
	errorType := errors.GetType(err)
	class := classify(errorType)

	logger.Log(r.Context(), class.level, class.msg,
		"method", r.Method,
		"path", r.URL.Path,
		"remote_addr", r.RemoteAddr,
		"error_type", errorType,
		"status_code", class.status,
		"error", err,
	)

	Success(w, class.status, ErrorResponse{
		Error:   string(errorType),
		Message: clientMessage,
		Code:    class.status,
	})
}

func classify(errorType errors.ErrorType) errorClass {
	if class, ok := errorClasses[errorType]; ok {
		return class
	}
	return internalClass
}

// Success writes data as a JSON body with the given status.
func Success(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if data != nil {
		// the status line is already out, nothing useful to do on failure
		_ = json.NewEncoder(w).Encode(data)
	}
}
