package cli

import (
	"context"
	"os"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and authenticates. On success the session
// is persisted and the cached user updated.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}

	user, err := a.auth.Login(ctx, email, password)
	if err != nil {
		return err
	}

	a.user = user
	printlnFn("Logged in as", user.Name)
	return nil
}

// Signup walks the three-step signup wizard: submit details, verify the
// emailed code, complete. Completing logs the new account in.
func (a *App) Signup(ctx context.Context) error {
	form, err := a.promptSignupForm()
	if err != nil {
		return err
	}

	if err := a.auth.SignupInitiate(ctx, form); err != nil {
		return err
	}
	printlnFn("A verification code was sent to", form.Email)

	code, err := getSimpleText(a.reader, "Enter the 6-digit code", os.Stdout)
	if err != nil {
		return err
	}
	if err := a.auth.SignupVerify(ctx, form.Email, code); err != nil {
		return err
	}

	user, err := a.auth.SignupComplete(ctx, form.Email, code)
	if err != nil {
		return err
	}

	a.user = user
	printlnFn("Account created. Logged in as", user.Name)
	return nil
}

// Forgot walks the password-reset wizard: request a code, verify it, set a
// new password.
func (a *App) Forgot(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	if err := a.auth.ForgotInitiate(ctx, email); err != nil {
		return err
	}
	printlnFn("A reset code was sent to", email)

	code, err := getSimpleText(a.reader, "Enter the 6-digit code", os.Stdout)
	if err != nil {
		return err
	}
	if err := a.auth.ForgotVerify(ctx, email, code); err != nil {
		return err
	}

	newPassword, err := getPassword("Enter new password", os.Stdout)
	if err != nil {
		return err
	}
	if err := a.auth.ForgotReset(ctx, email, code, newPassword); err != nil {
		return err
	}

	printlnFn("Password updated. You can log in now.")
	return nil
}

// Logout clears the stored session and the cached user.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	a.user = nil
	printlnFn("Logged out.")
	return nil
}
