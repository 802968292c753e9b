package services

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"digiwork-hub.com/digiwork-hub/internal/auth"
	"digiwork-hub.com/digiwork-hub/internal/constants"
	dto "digiwork-hub.com/digiwork-hub/internal/data_models"
	apperrors "digiwork-hub.com/digiwork-hub/internal/errors"
	"digiwork-hub.com/digiwork-hub/internal/mail"
	model "digiwork-hub.com/digiwork-hub/internal/models"
	repository "digiwork-hub.com/digiwork-hub/internal/repositories"
	"digiwork-hub.com/digiwork-hub/internal/rules"
)

type AuthService struct {
	*core
	mailer   mail.Mailer
	tokens   *auth.Tokens
	hasher   *auth.Hasher
	patterns *rules.Patterns
}

// Signup registers a user with a generated letter avatar and signs them in.
func (s *AuthService) Signup(ctx context.Context, req dto.SignupRequest) (*model.User, string, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)

	nameTaken, err := s.store.Users.NameTaken(ctx, req.Name)
	if err != nil {
		return nil, "", s.fail("auth.signup", err)
	}
	emailTaken, err := s.store.Users.EmailTaken(ctx, req.Email)
	if err != nil {
		return nil, "", s.fail("auth.signup", err)
	}

	verdict := s.patterns.Signup(rules.SignupInput{
		Name:            req.Name,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		NameTaken:       nameTaken,
		EmailTaken:      emailTaken,
	})
	if err := verdict.Err(); err != nil {
		return nil, "", err
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, "", apperrors.Unexpected(err)
	}

	avatar, err := s.files.GenerateAvatar(req.Name)
	if err != nil {
		return nil, "", apperrors.Unexpected(err)
	}

	user := &model.User{
		Name:              req.Name,
		Email:             req.Email,
		Password:          hash,
		ImagePath:         avatar,
		Role:              constants.DefaultRole,
		NotificationToken: req.NotificationToken,
	}
	var duplicate bool
	err = s.apply(ctx, "auth.signup", func(tx *repository.Store) (outcome, error) {
		err := tx.Users.Create(ctx, user)
		duplicate = errors.Is(err, repository.ErrDuplicate)
		return outcome{}, err
	})
	if err != nil {
		s.files.RemoveAll([]string{avatar})
		if duplicate {
			return nil, "", s.duplicateUser(ctx, req.Name)
		}
		return nil, "", err
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", apperrors.Unexpected(err)
	}
	return user, token, nil
}

// duplicateUser explains a unique index violation the pre-check missed.
func (c *core) duplicateUser(ctx context.Context, name string) error {
	if taken, err := c.store.Users.NameTaken(ctx, name); err == nil && taken {
		return apperrors.Validation("Username already exist")
	}
	return apperrors.Validation("Email already exist")
}

// Login verifies credentials and refreshes the device token when one is sent.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*model.User, string, error) {
	user, err := s.store.Users.FindByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, "", s.fail("auth.login", err)
	}

	verdict := rules.Login(req.Email, req.Password, user != nil, func() bool {
		return s.hasher.Matches(user.Password, req.Password)
	})
	if err := verdict.Err(); err != nil {
		return nil, "", err
	}

	if req.NotificationToken != "" && req.NotificationToken != user.NotificationToken {
		err := s.apply(ctx, "auth.login", func(tx *repository.Store) (outcome, error) {
			return outcome{}, tx.Users.UpdateFields(ctx, user.ID, map[string]any{"notification_token": req.NotificationToken})
		})
		if err != nil {
			return nil, "", err
		}
		user.NotificationToken = req.NotificationToken
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", apperrors.Unexpected(err)
	}
	return user, token, nil
}

// ForgotPassword stores a one-time reset code and mails it to the user.
func (s *AuthService) ForgotPassword(ctx context.Context, req dto.ForgotPasswordRequest) error {
	email := strings.TrimSpace(req.Email)
	code, err := auth.ResetCode()
	if err != nil {
		return apperrors.Unexpected(err)
	}

	err = s.apply(ctx, "auth.forgot_password", func(tx *repository.Store) (outcome, error) {
		user, err := tx.Users.FindByEmail(ctx, email)
		if err != nil {
			return outcome{}, missing(err, apperrors.ErrUserNotFound)
		}
		return outcome{}, tx.Users.UpdateFields(ctx, user.ID, map[string]any{"forgot_password_code": code})
	})
	if err != nil {
		return err
	}

	subject, html := mail.ResetCodeEmail(code)
	if err := s.mailer.Send(ctx, email, subject, html); err != nil {
		zap.L().Error("reset code mail failed", zap.String("email", email), zap.Error(err))
		return apperrors.Unexpected(err)
	}
	return nil
}

// ResetPassword replaces the password of the user holding a valid reset code.
func (s *AuthService) ResetPassword(ctx context.Context, req dto.ResetPasswordRequest) error {
	return s.apply(ctx, "auth.reset_password", func(tx *repository.Store) (outcome, error) {
		user, err := tx.Users.FindByEmail(ctx, strings.TrimSpace(req.Email))
		if err != nil {
			return outcome{}, missing(err, apperrors.ErrUserNotFound)
		}

		verdict := s.patterns.ResetPassword(user.ForgotPasswordCode, req.Code, req.Password, req.ConfirmPassword)
		if err := verdict.Err(); err != nil {
			return outcome{}, err
		}

		hash, err := s.hasher.Hash(req.Password)
		if err != nil {
			return outcome{}, apperrors.Unexpected(err)
		}
		return outcome{}, tx.Users.UpdateFields(ctx, user.ID, map[string]any{
			"password":             hash,
			"forgot_password_code": "",
		})
	})
}

// Authenticate resolves a bearer token to the acting user.
func (s *AuthService) Authenticate(ctx context.Context, raw string) (auth.Actor, error) {
	id, err := s.tokens.Verify(raw)
	if err != nil {
		return auth.Actor{}, apperrors.ErrInvalidToken
	}

	user, err := s.store.Users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return auth.Actor{}, apperrors.ErrInvalidToken
		}
		return auth.Actor{}, s.fail("auth.authenticate", err)
	}
	return auth.Actor{ID: user.ID, Name: user.Name, Email: user.Email}, nil
}
