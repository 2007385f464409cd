package cli

import (
	"context"
	"fmt"

	"github.com/mveldre/rentahouse/internal/client/models"
	"github.com/mveldre/rentahouse/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and authenticates against the server. On
// success the returned token has already been persisted by the API client;
// the session manager only records the user, with no re-validation call.
// The password byte slice is wiped before returning.
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

	resp, err := a.client.Login(ctx, email, string(password))
	if err != nil {
		fmt.Fprintf(a.out, "Login failed: %s\n", err)
		return err
	}

	user, err := a.resolveUser(ctx, resp.User)
	if err != nil {
		fmt.Fprintf(a.out, "Login failed: %s\n", err)
		return err
	}

	a.session.LoginUser(user)
	fmt.Fprintf(a.out, "Welcome, %s!\n", user.FullName)
	return nil
}

// Register prompts for account details and creates a new account. Like the
// mobile app, a successful signup leaves the user logged in.
func (a *App) Register(ctx context.Context) error {
	fullName, err := getSimpleText(a.reader, "Enter full name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	phone, err := getSimpleText(a.reader, "Enter phone (optional)", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	resp, err := a.client.Register(ctx, fullName, email, string(password), phone)
	if err != nil {
		fmt.Fprintf(a.out, "Registration failed: %s\n", err)
		return err
	}

	user, err := a.resolveUser(ctx, resp.User)
	if err != nil {
		fmt.Fprintf(a.out, "Registration failed: %s\n", err)
		return err
	}

	a.session.LoginUser(user)
	fmt.Fprintf(a.out, "Account created. Welcome, %s!\n", user.FullName)
	return nil
}

// resolveUser falls back to fetching the current user when the auth response
// did not embed one. The token is already stored at this point, so the
// follow-up call authenticates normally.
func (a *App) resolveUser(ctx context.Context, user *models.User) (*models.User, error) {
	if user != nil {
		return user, nil
	}
	return a.client.GetMe(ctx)
}

// Logout clears the session; the UI always ends logged out.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

// WhoAmI prints the current account, the profile screen of the mobile app.
func (a *App) WhoAmI(ctx context.Context) error {
	user := a.session.CurrentUser()
	if user == nil {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}

	fmt.Fprintf(a.out, "id:        %s\n", user.ID)
	fmt.Fprintf(a.out, "full name: %s\n", user.FullName)
	fmt.Fprintf(a.out, "email:     %s\n", user.Email)
	if user.Phone != "" {
		fmt.Fprintf(a.out, "phone:     %s\n", user.Phone)
	}
	return nil
}
