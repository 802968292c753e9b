package services

import (
	"context"
	"errors"
	"strings"

	"digiwork-hub.com/digiwork-hub/internal/auth"
	"digiwork-hub.com/digiwork-hub/internal/constants"
	dto "digiwork-hub.com/digiwork-hub/internal/data_models"
	apperrors "digiwork-hub.com/digiwork-hub/internal/errors"
	model "digiwork-hub.com/digiwork-hub/internal/models"
	repository "digiwork-hub.com/digiwork-hub/internal/repositories"
	"digiwork-hub.com/digiwork-hub/internal/rules"
	"digiwork-hub.com/digiwork-hub/internal/storage"
)

type UserService struct {
	*core
	hasher   *auth.Hasher
	patterns *rules.Patterns
}

// ownImage reports whether p is an avatar this user owns on disk.
func ownImage(p string) bool {
	return p != "" && p != constants.DeletedUserImage && strings.HasPrefix(p, constants.ImagesDir+"/")
}

// UploadAvatar replaces the actor's avatar. The new image is written before
// the row changes and the old one is removed after the commit.
func (s *UserService) UploadAvatar(ctx context.Context, actor auth.Actor, upload storage.Upload) (*model.User, error) {
	if err := rules.Image(upload.Name).Err(); err != nil {
		return nil, err
	}

	p, err := s.files.SaveImage(upload)
	if err != nil {
		return nil, apperrors.Validation("The image could not be read")
	}

	var user *model.User
	err = s.apply(ctx, "user.upload_avatar", func(tx *repository.Store) (outcome, error) {
		var err error
		if user, err = tx.Users.FindByID(ctx, actor.ID); err != nil {
			return outcome{}, missing(err, apperrors.ErrUserNotFound)
		}

		previous := user.ImagePath
		if err := tx.Users.UpdateFields(ctx, user.ID, map[string]any{"image_path": p}); err != nil {
			return outcome{}, err
		}
		user.ImagePath = p

		var out outcome
		if ownImage(previous) {
			out.discard = []string{previous}
		}
		return out, nil
	})
	if err != nil {
		s.files.RemoveAll([]string{p})
		return nil, err
	}
	return user, nil
}

func (s *UserService) ChangeName(ctx context.Context, actor auth.Actor, name string) error {
	name = strings.TrimSpace(name)
	if err := s.patterns.UserName(name).Err(); err != nil {
		return err
	}

	var duplicate bool
	err := s.apply(ctx, "user.change_name", func(tx *repository.Store) (outcome, error) {
		user, err := tx.Users.FindByID(ctx, actor.ID)
		if err != nil {
			return outcome{}, missing(err, apperrors.ErrUserNotFound)
		}
		if user.Name == name {
			return outcome{}, nil
		}

		taken, err := tx.Users.NameTaken(ctx, name)
		if err != nil {
			return outcome{}, err
		}
		if taken {
			return outcome{}, apperrors.Validation("Username already exist")
		}

		err = tx.Users.UpdateFields(ctx, user.ID, map[string]any{"name": name})
		duplicate = errors.Is(err, repository.ErrDuplicate)
		return outcome{}, err
	})
	if duplicate {
		return apperrors.Validation("Username already exist")
	}
	return err
}

func (s *UserService) ChangeRole(ctx context.Context, actor auth.Actor, role string) error {
	role = strings.TrimSpace(role)
	if err := rules.UserRole(role).Err(); err != nil {
		return err
	}

	return s.apply(ctx, "user.change_role", func(tx *repository.Store) (outcome, error) {
		return outcome{}, missing(tx.Users.UpdateFields(ctx, actor.ID, map[string]any{"role": role}), apperrors.ErrUserNotFound)
	})
}

func (s *UserService) ChangePassword(ctx context.Context, actor auth.Actor, req dto.ChangePasswordRequest) error {
	return s.apply(ctx, "user.change_password", func(tx *repository.Store) (outcome, error) {
		user, err := tx.Users.FindByID(ctx, actor.ID)
		if err != nil {
			return outcome{}, missing(err, apperrors.ErrUserNotFound)
		}

		verdict := s.patterns.ChangePassword(req.CurrentPassword, req.NewPassword, req.ConfirmPassword, func(current string) bool {
			return s.hasher.Matches(user.Password, current)
		})
		if err := verdict.Err(); err != nil {
			return outcome{}, err
		}

		hash, err := s.hasher.Hash(req.NewPassword)
		if err != nil {
			return outcome{}, apperrors.Unexpected(err)
		}
		return outcome{}, tx.Users.UpdateFields(ctx, user.ID, map[string]any{"password": hash})
	})
}

func (s *UserService) UpdateNotificationToken(ctx context.Context, actor auth.Actor, token string) error {
	return s.apply(ctx, "user.update_token", func(tx *repository.Store) (outcome, error) {
		return outcome{}, missing(tx.Users.UpdateFields(ctx, actor.ID, map[string]any{"notification_token": token}), apperrors.ErrUserNotFound)
	})
}

// Search lists users whose name contains query, excluding the actor.
func (s *UserService) Search(ctx context.Context, actor auth.Actor, query string) ([]model.User, error) {
	users, err := s.store.Users.Search(ctx, strings.TrimSpace(query), actor.ID)
	if err != nil {
		return nil, s.fail("user.search", err)
	}
	return users, nil
}

// DeleteAccount removes the actor's row and avatar. Rows that reference the
// user stay and are projected as the unknown user.
func (s *UserService) DeleteAccount(ctx context.Context, actor auth.Actor) error {
	return s.apply(ctx, "user.delete", func(tx *repository.Store) (outcome, error) {
		user, err := tx.Users.FindByID(ctx, actor.ID)
		if err != nil {
			return outcome{}, missing(err, apperrors.ErrUserNotFound)
		}
		if err := tx.Users.Delete(ctx, user.ID); err != nil {
			return outcome{}, err
		}

		var out outcome
		if ownImage(user.ImagePath) {
			out.discard = []string{user.ImagePath}
		}
		return out, nil
	})
}
