// Package flash implements one-time, category-tagged notices carried in a
// cookie and shown on the next rendered page.
package flash

import (
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

const cookieName = "flash"

// Message is a single flash notice.
type Message struct {
	Category string
	Text     string
}

// Set queues a flash message for the next rendered page.
func Set(c echo.Context, category, text string) {
	value := base64.URLEncoding.EncodeToString([]byte(category + "|" + text))
	c.SetCookie(&http.Cookie{
		Name:     cookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
	})
}

// Pop returns the pending flash message, if any, and clears it.
func Pop(c echo.Context) *Message {
	cookie, err := c.Cookie(cookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}
	c.SetCookie(&http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	raw, err := base64.URLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return nil
	}
	parts := strings.SplitN(string(raw), "|", 2)
	if len(parts) != 2 {
		return nil
	}
	return &Message{Category: parts[0], Text: parts[1]}
}
