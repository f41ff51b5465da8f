package middleware

import (
	"net/http"

	"github.com/depositodopitty/pit/auth"
	"github.com/depositodopitty/pit/internal/apiclient"
)

// Bearer forwards the API token of the signed in user to every API call made
// while serving the request.
func Bearer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id, ok := auth.IdentityFrom(r.Context()); ok && id.Token != "" {
			r = r.WithContext(apiclient.WithToken(r.Context(), id.Token))
		}
		next.ServeHTTP(w, r)
	})
}
