package cli

import (
	"context"
)

// getToken is an indirection used to facilitate testing.
var getToken = GetToken

// Login stores a pasted admin bearer token. Token issuance happens outside
// the console; the token is opaque here and its validity is discovered on
// the first 401.
func (a *App) Login(ctx context.Context) error {
	token, err := getToken(a.out)
	if err != nil {
		return err
	}
	if token == "" {
		a.notify.Error("Empty token")
		return nil
	}
	if err := a.session.Set(token); err != nil {
		a.notify.Error("Failed to store session: " + err.Error())
		return err
	}
	a.notify.Success("Logged in")
	return nil
}

// Logout clears the stored token.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Clear(); err != nil {
		a.notify.Error("Failed to clear session: " + err.Error())
		return err
	}
	a.notify.Success("Logged out")
	return nil
}
