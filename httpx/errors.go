package httpx

import (
	"fmt"
	"net/http"

	"github.com/go-chi/render"
	"github.com/mbolis/reward-web/backend"
	"github.com/mbolis/reward-web/log"
)

// Will log an error, and send an HTTP response with status 500 and default text
func LogInternalError(w http.ResponseWriter, code string, err error) {
	log.Errorf("%s: %s", code, err)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// Will log a debug message, and send an HTTP response with status 404 and default text
func LogNotFound(w http.ResponseWriter, code string, id any) {
	log.Debugf("%s: not found (%v)", code, id)
	http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
}

// Will log an error code at the given level, and send
// an HTTP response with status and default text
func LogStatus(w http.ResponseWriter, status int, level log.Level, code string) {
	log.Log(level, code)
	http.Error(w, http.StatusText(status), status)
}

// Will log an error code and message at the given level,
// and send an HTTP response with the given status and formatted message
func LogStatusMsg(w http.ResponseWriter, status int, level log.Level, code string, msg string, args ...any) {
	errMsg := fmt.Sprintf(msg, args...)
	log.Log(level, code+":", errMsg)
	http.Error(w, errMsg, status)
}

type ErrorBody struct {
	Code    string            `json:"code"`
	Message string            `json:"message,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// Will log a failed backend call, and send a JSON error with the backend's
// status and error code, or 502 when the backend could not be reached
func LogBackendError(w http.ResponseWriter, r *http.Request, code string, err error) {
	status := backend.StatusOf(err)
	body := ErrorBody{Code: "BACKEND_UNAVAILABLE", Message: "failed to reach the rewards service"}
	if domainCode, ok := backend.DomainCode(err); ok {
		body = ErrorBody{Code: domainCode}
	}

	level := log.WarnLevel
	if status < http.StatusInternalServerError {
		level = log.DebugLevel
	}
	log.Logf(level, "%s: %s", code, err)

	render.Status(r, status)
	render.JSON(w, r, body)
}
