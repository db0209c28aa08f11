package httpx

import (
	"encoding/base64"
	"net/http"
)

const toastCookie = "toast"

// SetToast stores a one-shot message to be shown by the next rendered page.
func SetToast(w http.ResponseWriter, msg string) {
	if msg == "" {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     toastCookie,
		Value:    base64.RawURLEncoding.EncodeToString([]byte(msg)),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// PopToast returns the pending toast message, if any, and expires it.
func PopToast(w http.ResponseWriter, r *http.Request) string {
	cookie, err := r.Cookie(toastCookie)
	if err != nil {
		return ""
	}
	http.SetCookie(w, &http.Cookie{
		Name:   toastCookie,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})

	msg, err := base64.RawURLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return ""
	}
	return string(msg)
}
