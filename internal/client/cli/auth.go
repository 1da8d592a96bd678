package cli

import (
	"context"
	"fmt"

	"github.com/onkmade/secondhand/internal/client/models"
	"github.com/onkmade/secondhand/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts the user for an email and password and attempts to create
// a new account via the AuthService.
//
// On success the returned identity becomes the active session. The password
// byte slice is securely wiped before returning. Any I/O or service error is
// reported to the user and returned unchanged.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	s, err := a.auth.Register(ctx, email, password)
	if err != nil {
		fmt.Fprintf(a.out, "Registration failed: %s\n", err.Error())
		return err
	}

	a.session = s
	fmt.Fprintf(a.out, "Welcome, %s!\n", s.DisplayName())
	return nil
}

// Login prompts the user for credentials and tries to authenticate. On
// success the identity is cached locally and becomes the active session.
// The password is securely wiped before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	s, err := a.auth.Login(ctx, email, password)
	if err != nil {
		fmt.Fprintf(a.out, "Login failed: %s\n", err.Error())
		return err
	}

	a.session = s
	fmt.Fprintf(a.out, "Logged in as %s\n", s.DisplayName())
	return nil
}

// Logout clears the active session. The remote call inside the service is
// best-effort; locally the user always ends up logged out.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	a.session = models.Session{}
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

// WhoAmI prints the active identity.
func (a *App) WhoAmI(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}
	fmt.Fprintf(a.out, "%s <%s>\n", a.session.DisplayName(), a.session.Email)
	return nil
}

// Ping checks server reachability and reports the result.
func (a *App) Ping(ctx context.Context) error {
	if err := a.client.Ping(ctx); err != nil {
		fmt.Fprintf(a.out, "Server unreachable: %s\n", err.Error())
		return err
	}
	fmt.Fprintln(a.out, "Server is up")
	return nil
}
