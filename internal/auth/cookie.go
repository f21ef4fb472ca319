package auth

import (
	"net/http"
)

const adminCookie = "milan_admin"

func VerifySession(r *http.Request, secret []byte) (Session, error) {
	cookie, err := r.Cookie(adminCookie)
	if err != nil {
		return Session{}, err
	}
	return ParseSession(cookie.Value, secret)
}

func SetAdminCookie(w http.ResponseWriter, secret []byte, TTLSeconds int) error {

	token, err := BuildAdminToken(secret)
	if err != nil {
		return err
	}
	cookie := &http.Cookie{
		Name:     adminCookie,
		Value:    token,
		MaxAge:   TTLSeconds,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	http.SetCookie(w, cookie)
	return nil
}

// ClearAdminCookie drops the session unconditionally.
func ClearAdminCookie(w http.ResponseWriter) {
	cookie := &http.Cookie{
		Name:     adminCookie,
		Value:    "",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	http.SetCookie(w, cookie)
}
