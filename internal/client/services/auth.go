package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/eventlane/eventlane/internal/client/models"
	"github.com/eventlane/eventlane/internal/client/session"
	"github.com/eventlane/eventlane/internal/client/validate"
	"github.com/eventlane/eventlane/internal/logging"
)

// AuthService owns login, the signup and forgot-password OTP wizards, the
// user profile, and the stored session.
type AuthService struct {
	backend Backend
	session session.Store
	log     logging.Logger
}

func NewAuthService(backend Backend, store session.Store, log logging.Logger) *AuthService {
	return &AuthService{backend: backend, session: store, log: log}
}

// storeAuthPayload decodes a {token, ...user fields} payload and persists
// both halves of the session.
func (s *AuthService) storeAuthPayload(ctx context.Context, raw json.RawMessage) (*models.User, error) {
	var tok struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(raw, &tok); err != nil {
		return nil, fmt.Errorf("decode auth response: %w", err)
	}
	if tok.Token == "" {
		return nil, fmt.Errorf("auth response carried no token")
	}

	var user models.User
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, fmt.Errorf("decode auth user: %w", err)
	}

	if err := s.session.SetToken(ctx, tok.Token); err != nil {
		return nil, fmt.Errorf("store token: %w", err)
	}
	if err := s.session.SetUser(ctx, &user); err != nil {
		return nil, fmt.Errorf("store user: %w", err)
	}
	return &user, nil
}

// Login authenticates and persists the session on success.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, error) {
	creds := validate.Credentials{Email: email, Password: password}
	if err := creds.Validate(); err != nil {
		return nil, err
	}

	var raw json.RawMessage
	body := map[string]string{"email": email, "password": password}
	if err := s.backend.Post(ctx, "/auth/login", body, &raw); err != nil {
		return nil, err
	}

	user, err := s.storeAuthPayload(ctx, raw)
	if err != nil {
		return nil, err
	}
	s.log.Info(ctx, "logged in", "user", user.ID)
	return user, nil
}

// SignupInitiate starts the signup wizard; the backend mails an OTP code.
func (s *AuthService) SignupInitiate(ctx context.Context, form validate.SignupForm) error {
	if err := form.Validate(); err != nil {
		return err
	}
	body := map[string]string{"name": form.Name, "email": form.Email, "password": form.Password}
	return s.backend.Post(ctx, "/auth/signup/initiate", body, nil)
}

// SignupVerify checks the OTP code for the pending signup.
func (s *AuthService) SignupVerify(ctx context.Context, email, code string) error {
	if err := validate.OTP(code); err != nil {
		return err
	}
	body := map[string]string{"email": email, "code": code}
	return s.backend.Post(ctx, "/auth/signup/verify", body, nil)
}

// SignupComplete finishes the wizard; the response is a login payload and
// is stored the same way.
func (s *AuthService) SignupComplete(ctx context.Context, email, code string) (*models.User, error) {
	var raw json.RawMessage
	body := map[string]string{"email": email, "code": code}
	if err := s.backend.Post(ctx, "/auth/signup/complete", body, &raw); err != nil {
		return nil, err
	}
	return s.storeAuthPayload(ctx, raw)
}

// ForgotInitiate requests a password-reset OTP for the address.
func (s *AuthService) ForgotInitiate(ctx context.Context, email string) error {
	if err := validate.Field(email, validate.EmailRules()...); err != nil {
		return err
	}
	return s.backend.Post(ctx, "/auth/forgot-password/initiate", map[string]string{"email": email}, nil)
}

// ForgotVerify checks the reset OTP.
func (s *AuthService) ForgotVerify(ctx context.Context, email, code string) error {
	if err := validate.OTP(code); err != nil {
		return err
	}
	body := map[string]string{"email": email, "code": code}
	return s.backend.Post(ctx, "/auth/forgot-password/verify", body, nil)
}

// ForgotReset sets the new password after a verified OTP.
func (s *AuthService) ForgotReset(ctx context.Context, email, code, newPassword string) error {
	if err := validate.Field(newPassword, validate.PasswordRules()...); err != nil {
		return err
	}
	body := map[string]string{"email": email, "code": code, "password": newPassword}
	return s.backend.Post(ctx, "/auth/forgot-password/reset", body, nil)
}

// Logout drops the stored session. The backend keeps no session state.
func (s *AuthService) Logout(ctx context.Context) error {
	return s.session.ClearAuth(ctx)
}

// CurrentUser reads the stored profile snapshot; nil when logged out.
func (s *AuthService) CurrentUser(ctx context.Context) (*models.User, error) {
	return s.session.User(ctx)
}

// Profile fetches the profile from the backend and refreshes the stored
// snapshot.
func (s *AuthService) Profile(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := s.backend.Get(ctx, "/users/profile", &user); err != nil {
		return nil, err
	}
	if err := s.session.SetUser(ctx, &user); err != nil {
		s.log.Warn(ctx, "refreshing stored user", "error", err)
	}
	return &user, nil
}

// UpdateProfile validates and submits profile edits; the stored snapshot
// is overwritten with the server's view.
func (s *AuthService) UpdateProfile(ctx context.Context, form validate.ProfileForm) (*models.User, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}

	body := map[string]string{
		"name":  form.Name,
		"email": form.Email,
		"phone": form.Phone,
		"bio":   form.Bio,
		"iban":  validate.NormalizeIBAN(form.IBAN),
	}
	var user models.User
	if err := s.backend.Put(ctx, "/users/profile", body, &user); err != nil {
		return nil, err
	}
	if err := s.session.SetUser(ctx, &user); err != nil {
		return nil, fmt.Errorf("store updated user: %w", err)
	}
	return &user, nil
}

// TokenExpiry reports when the stored token expires, read from its claims
// without verifying the signature (the server is the verifier; this is
// display-only).
func (s *AuthService) TokenExpiry(ctx context.Context) (time.Time, error) {
	token, err := s.session.Token(ctx)
	if err != nil {
		return time.Time{}, err
	}
	if token == "" {
		return time.Time{}, ErrNotLoggedIn
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, fmt.Errorf("parse token: %w", err)
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, fmt.Errorf("token has no expiry")
	}
	return exp.Time, nil
}
