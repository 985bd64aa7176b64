package response

import "net/http"

// CodeMsgMap holds the default message per status, used when no specific
// message is given.
var CodeMsgMap = map[int]string{
	http.StatusOK:                    "OK",
	http.StatusCreated:               "Created",
	http.StatusBadRequest:            "Bad Request",
	http.StatusUnauthorized:          "Unauthorized",
	http.StatusForbidden:             "Forbidden",
	http.StatusNotFound:              "Not Found",
	http.StatusRequestEntityTooLarge: "request body too large",
	http.StatusTooManyRequests:       "too many requests",
	http.StatusInternalServerError:   "server error",
	http.StatusServiceUnavailable:    "server busy",
	http.StatusGatewayTimeout:        "request timeout",
}
