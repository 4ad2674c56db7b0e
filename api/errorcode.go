package api

import "github.com/campusconnect/helpmatch-api/store"

var (
	errorMessageMap = map[int64]string{
		999:  "internal server error",
		1001: "invalid authorization format",
		1003: "invalid token",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1100: store.ErrEmailTaken.Error(),
		1101: store.ErrUserNotFound.Error(),
		1102: "invalid credentials",

		1200: store.ErrRequestNotFound.Error(),

		1300: store.ErrMatchNotFound.Error(),
		1301: "invalid state transition",
		1302: "connection is not accepted yet",
		1303: "sender is not a participant in this match",
	}

	errorInternalServer             = errorJSON(999)
	errorInvalidAuthorizationFormat = errorJSON(1001)
	errorInvalidToken               = errorJSON(1003)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorEmailTaken         = errorJSON(1100)
	errorUserNotFound       = errorJSON(1101)
	errorInvalidCredentials = errorJSON(1102)

	errorRequestNotFound = errorJSON(1200)

	errorMatchNotFound        = errorJSON(1300)
	errorInvalidTransition    = errorJSON(1301)
	errorConnectionNotOpen    = errorJSON(1302)
	errorSenderNotParticipant = errorJSON(1303)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}

// conflictJSON carries a lifecycle conflict with the live current state
// in its message, e.g. "invalid transition from requested".
func conflictJSON(err error) ErrorResponse {
	return ErrorResponse{
		Code:    1301,
		Message: err.Error(),
	}
}
