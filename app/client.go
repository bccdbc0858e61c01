package main

import (
	"errors"

	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"edubit/internal/api"
	"edubit/internal/session"
)

// backend is the shared API client. The shell proxies /api to the
// real service, so every call is same-origin.
var backend = api.New("/api", session.Token)

// requireAuth loads the persisted session and bounces unauthenticated
// visitors to the login screen.
func requireAuth(ctx app.Context) bool {
	session.Load(ctx.LocalStorage())
	if !session.LoggedIn() {
		ctx.Navigate("/login")
		return false
	}
	return true
}

// errorMessage prefers the server-provided detail, falling back to a
// generic screen-local message.
func errorMessage(err error, fallback string) string {
	var httpErr *api.HTTPError
	if errors.As(err, &httpErr) && httpErr.Message != "" {
		return httpErr.Message
	}
	var valErr *api.ValidationError
	if errors.As(err, &valErr) {
		return valErr.Message
	}
	return fallback
}
