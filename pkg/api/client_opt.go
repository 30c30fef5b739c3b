package api

import (
	"net/http"
)

type oauth2Opt struct {
	token string
}

func OAuth2(prefix, token string) *oauth2Opt {
	return &oauth2Opt{token: prefix + " " + token}
}

func (opt *oauth2Opt) Do(client defaultClient, req *http.Request) {
	req.Header.Add("Authorization", opt.token)
}

type identityOpt struct {
	name  string
	value string
}

// Identity attaches the identity header of an authenticated session to the
// request.
func Identity(name, value string) *identityOpt {
	return &identityOpt{name: name, value: value}
}

func (opt *identityOpt) Do(client defaultClient, req *http.Request) {
	req.Header.Set(opt.name, opt.value)
}
