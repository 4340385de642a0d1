package locale

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	CookieName = "lang"
	cookieAge  = 365 * 24 * 60 * 60

	contextKey = "locale"
)

// Locale is the per-request language selection.
type Locale[T any] struct {
	Lang string
	Dir  string
	T    *T
}

// Middleware selects the dictionary for each request and remembers an
// explicit, supported ?lang= choice in a cookie.
func Middleware[T any](cat *Catalog[T]) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := c.Query("lang")
		cookie, _ := c.Cookie(CookieName)

		tag := Resolve(query, cookie, cat.Default())
		dict, tag := cat.Lookup(tag)

		if picked, ok := Normalize(query); ok && picked != cookie {
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(CookieName, picked, cookieAge, "/", "", false, true)
		}

		c.Set(contextKey, Locale[T]{Lang: tag, Dir: Dir(tag), T: dict})
		c.Next()
	}
}

// From returns the selection made by Middleware. Handlers not behind the
// middleware get the catalog default.
func From[T any](c *gin.Context, cat *Catalog[T]) Locale[T] {
	if v, ok := c.Get(contextKey); ok {
		if l, ok := v.(Locale[T]); ok {
			return l
		}
	}
	dict, tag := cat.Lookup(cat.Default())
	return Locale[T]{Lang: tag, Dir: Dir(tag), T: dict}
}
