package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/Francieverton/ACOLD-MKT/internal/events"
	"github.com/Francieverton/ACOLD-MKT/internal/logging"
	"github.com/Francieverton/ACOLD-MKT/internal/models"
	"github.com/Francieverton/ACOLD-MKT/internal/state"
)

// AuthService implements registration, login and logout against the state
// container. Passwords are compared in plaintext, matching the stored
// roster format (documented limitation).
type AuthService struct {
	App    *state.App
	Events events.Publisher
}

func (s *AuthService) publish(ctx context.Context, key string, event map[string]any) {
	if s.Events == nil {
		return
	}
	if err := s.Events.PublishEvent(ctx, events.TopicUserEvents, key, event); err != nil {
		logging.FromContext(ctx).Error("event_publish_failed", "topic", events.TopicUserEvents, "error", err)
	}
}

// Register creates a user, sets it as the current session and persists
// both. Email uniqueness is case-sensitive.
func (s *AuthService) Register(ctx context.Context, name, email, password, role string) (*models.User, error) {
	l := logging.FromContext(ctx).With("svc", "auth.register")

	if _, exists := s.App.FindUserByEmail(email); exists {
		l.Warn("register_failed", "reason", "duplicate email")
		return nil, ErrDuplicateEmail
	}

	if role != models.RoleSeller {
		role = models.RoleClient
	}

	user := models.User{
		ID:       uuid.NewString(),
		Name:     name,
		Email:    email,
		Password: password,
		Role:     role,
	}

	if err := s.App.AppendUser(ctx, user); err != nil {
		return nil, err
	}
	if err := s.App.SetSession(ctx, user); err != nil {
		return nil, err
	}

	s.publish(ctx, user.ID, map[string]any{
		"type":   "user_registered",
		"userID": user.ID,
		"role":   user.Role,
	})
	l.Info("register_success", "userID", user.ID, "role", user.Role)
	return &user, nil
}

// Login matches email and password exactly. The error does not reveal
// which of the two was wrong.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, error) {
	l := logging.FromContext(ctx).With("svc", "auth.login")

	user, ok := s.App.FindUserByEmail(email)
	if !ok || user.Password != password {
		l.Warn("login_failed", "reason", "invalid credentials")
		return nil, ErrInvalidCredentials
	}

	if err := s.App.SetSession(ctx, user); err != nil {
		return nil, err
	}

	s.publish(ctx, user.ID, map[string]any{
		"type":   "user_logged_in",
		"userID": user.ID,
	})
	l.Info("login_success", "userID", user.ID)
	return &user, nil
}

// Logout clears the session. The caller redirects to the login screen.
func (s *AuthService) Logout(ctx context.Context) error {
	l := logging.FromContext(ctx).With("svc", "auth.logout")

	user := s.App.CurrentUser()
	if err := s.App.ClearSession(ctx); err != nil {
		return err
	}
	if user != nil {
		s.publish(ctx, user.ID, map[string]any{
			"type":   "user_logged_out",
			"userID": user.ID,
		})
	}
	l.Info("logout_success")
	return nil
}
