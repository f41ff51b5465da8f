package middleware

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/depositodopitty/pit/i18n"
)

const flashCookie = "flash"

// FlashMessage is a one-shot notice shown on the next page.
type FlashMessage struct {
	Kind    string // success or error
	Message string
}

// Flash sets a translated success flash using a translation code (or literal if missing).
func Flash(w http.ResponseWriter, r *http.Request, code string) {
	setFlash(w, "success", i18n.T(LangFrom(r), code))
}

// FlashError sets a translated error flash.
func FlashError(w http.ResponseWriter, r *http.Request, code string) {
	setFlash(w, "error", i18n.T(LangFrom(r), code))
}

func setFlash(w http.ResponseWriter, kind, msg string) {
	http.SetCookie(w, &http.Cookie{Name: flashCookie, Value: url.QueryEscape(kind + ":" + msg), Path: "/", HttpOnly: true, SameSite: http.SameSiteLaxMode})
}

// PopFlash reads and clears the flash cookie.
func PopFlash(w http.ResponseWriter, r *http.Request) *FlashMessage {
	c, err := r.Cookie(flashCookie)
	if err != nil || c.Value == "" {
		return nil
	}
	http.SetCookie(w, &http.Cookie{Name: flashCookie, Value: "", Path: "/", Expires: time.Unix(0, 0), MaxAge: -1})
	raw, err := url.QueryUnescape(c.Value)
	if err != nil {
		raw = c.Value
	}
	kind, msg, ok := strings.Cut(raw, ":")
	if !ok || (kind != "success" && kind != "error") {
		return &FlashMessage{Kind: "success", Message: raw}
	}
	return &FlashMessage{Kind: kind, Message: msg}
}
