package api

import (
	"net/http"
	"strings"
)

// authorizationOpt sets the Authorization header on every attempt, replacing
// one set through Header.
type authorizationOpt struct {
	value string
}

// OAuth2 authorizes a call with a token of the given scheme, e.g. "Bearer".
func OAuth2(scheme, token string) Opt {
	return authorizationOpt{value: strings.TrimSpace(scheme + " " + token)}
}

func (opt authorizationOpt) Do(_ defaultClient, req *http.Request) {
	req.Header.Set("Authorization", opt.value)
}
