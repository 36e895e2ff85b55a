package auth

import (
	"fmt"

	"agrimarket/internal/marketerrors"
	model "agrimarket/internal/models"
	"agrimarket/internal/notify"
)

// The demo accepts exactly one credential pair for every portal.
const (
	demoEmail    = "user@gmail.com"
	demoPassword = "123"
)

// validRoles are the role-scoped portals a user can log into
var validRoles = map[string]bool{
	"consumer": true,
	"farmer":   true,
	"industry": true,
}

// AuthService is the login gate. It is not an authentication system: one
// hardcoded credential pair, no tokens, no persistence.
type AuthService struct {
	notifier notify.Notifier
}

// NewAuthService creates a new AuthService instance
func NewAuthService(notifier notify.Notifier) *AuthService {
	return &AuthService{notifier: notifier}
}

// Login checks the credential pair for a role-scoped portal
func (s *AuthService) Login(email, password, role string) (model.User, error) {
	if !validRoles[role] {
		return model.User{}, fmt.Errorf("service: %w - %q", marketerrors.ErrUnknownRole, role)
	}

	if email != demoEmail || password != demoPassword {
		s.notifier.Notify(notify.Notification{
			Title:    "Login Failed",
			Message:  fmt.Sprintf("Please use: %s / %s", demoEmail, demoPassword),
			Severity: notify.SeverityDestructive,
		})
		return model.User{}, fmt.Errorf("service: %w", marketerrors.ErrInvalidCredentials)
	}

	s.notifier.Notify(notify.Notification{
		Title:    "Login Successful",
		Message:  fmt.Sprintf("Welcome to the %s portal!", role),
		Severity: notify.SeverityInfo,
	})
	return model.User{Email: email, Role: role}, nil
}
