package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dto "digiwork-hub.com/digiwork-hub/internal/data_models"
	apperrors "digiwork-hub.com/digiwork-hub/internal/errors"
)

func signupRequest() dto.SignupRequest {
	return dto.SignupRequest{
		Name:              "brian_s",
		Email:             "brian@example.com",
		Password:          "Secret123",
		ConfirmPassword:   "Secret123",
		NotificationToken: "device-1",
	}
}

func TestSignup(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	user, token, err := f.svc.Auth.Signup(ctx, signupRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "NA", user.Role)
	assert.NotEqual(t, "Secret123", user.Password)
	assert.True(t, strings.HasPrefix(user.ImagePath, "images/"))
	assert.True(t, f.files.Exists(user.ImagePath))

	actor, err := f.svc.Auth.Authenticate(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, actor.ID)
	assert.Equal(t, "brian_s", actor.Name)

	req := signupRequest()
	req.Email = "other@example.com"
	_, _, err = f.svc.Auth.Signup(ctx, req)
	requireKind(t, err, 400, "Username already exist")

	req = signupRequest()
	req.Name = "other_name"
	_, _, err = f.svc.Auth.Signup(ctx, req)
	requireKind(t, err, 400, "Email already exist")

	assert.Len(t, f.storedFiles(t, "images"), 1)
}

func TestSignupShortNameCreatesNothing(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	req := signupRequest()
	req.Name = "abcd"
	_, _, err := f.svc.Auth.Signup(ctx, req)
	requireKind(t, err, 400, "Username should be 5-20 characters")

	taken, err := f.store.Users.EmailTaken(ctx, req.Email)
	require.NoError(t, err)
	assert.False(t, taken)
	assert.Empty(t, f.storedFiles(t, "images"))
}

func TestLogin(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	_, _, err := f.svc.Auth.Signup(ctx, signupRequest())
	require.NoError(t, err)

	_, _, err = f.svc.Auth.Login(ctx, dto.LoginRequest{Email: "nobody@example.com", Password: "Secret123"})
	requireKind(t, err, 400, "User not found")

	_, _, err = f.svc.Auth.Login(ctx, dto.LoginRequest{Email: "brian@example.com", Password: "Wrong1234"})
	requireKind(t, err, 400, "Wrong password")

	user, token, err := f.svc.Auth.Login(ctx, dto.LoginRequest{
		Email:             "brian@example.com",
		Password:          "Secret123",
		NotificationToken: "device-2",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	stored, err := f.store.Users.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "device-2", stored.NotificationToken)
}

func TestAuthenticateRejectsBadTokens(t *testing.T) {
	f := setup(t)

	_, err := f.svc.Auth.Authenticate(context.Background(), "garbage")
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)

	token, err := f.svc.Auth.tokens.Issue(42)
	require.NoError(t, err)
	_, err = f.svc.Auth.Authenticate(context.Background(), token)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestForgotAndResetPassword(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	_, _, err := f.svc.Auth.Signup(ctx, signupRequest())
	require.NoError(t, err)

	err = f.svc.Auth.ForgotPassword(ctx, dto.ForgotPasswordRequest{Email: "missing@example.com"})
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)

	require.NoError(t, f.svc.Auth.ForgotPassword(ctx, dto.ForgotPasswordRequest{Email: "brian@example.com"}))
	stored, err := f.store.Users.FindByEmail(ctx, "brian@example.com")
	require.NoError(t, err)
	code := stored.ForgotPasswordCode
	require.Len(t, code, 8)
	assert.Equal(t, "brian@example.com", f.mailer.to)
	assert.Contains(t, f.mailer.html, code)

	reset := dto.ResetPasswordRequest{Email: "brian@example.com", Code: "WRONG000", Password: "Changed99", ConfirmPassword: "Changed99"}
	requireKind(t, f.svc.Auth.ResetPassword(ctx, reset), 400, "Invalid Code")

	reset.Code = code
	require.NoError(t, f.svc.Auth.ResetPassword(ctx, reset))

	// the code is single use
	requireKind(t, f.svc.Auth.ResetPassword(ctx, reset), 400, "Invalid Code")

	_, _, err = f.svc.Auth.Login(ctx, dto.LoginRequest{Email: "brian@example.com", Password: "Changed99"})
	require.NoError(t, err)
}

func TestForgotPasswordMailFailure(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	_, _, err := f.svc.Auth.Signup(ctx, signupRequest())
	require.NoError(t, err)

	f.mailer.err = errors.New("smtp down")
	err = f.svc.Auth.ForgotPassword(ctx, dto.ForgotPasswordRequest{Email: "brian@example.com"})
	assert.Equal(t, 500, apperrors.StatusCode(err))
}

func TestUserProfileChanges(t *testing.T) {
	f := setup(t)
	f.seedUsers(t, 2)
	ctx := context.Background()

	requireKind(t, f.svc.Users.ChangeName(ctx, actor(1), "user2"), 400, "Username already exist")
	requireKind(t, f.svc.Users.ChangeName(ctx, actor(1), "abc"), 400, "Username should be 5-20 characters")
	require.NoError(t, f.svc.Users.ChangeName(ctx, actor(1), "renamed_user"))

	requireKind(t, f.svc.Users.ChangeRole(ctx, actor(1), "dev"), 400, "Role should be 5-50 characters")
	require.NoError(t, f.svc.Users.ChangeRole(ctx, actor(1), "Backend Developer"))
	require.NoError(t, f.svc.Users.UpdateNotificationToken(ctx, actor(1), "device-9"))

	stored, err := f.store.Users.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "renamed_user", stored.Name)
	assert.Equal(t, "Backend Developer", stored.Role)
	assert.Equal(t, "device-9", stored.NotificationToken)

	found, err := f.svc.Users.Search(ctx, actor(1), "USER")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "user2", found[0].Name)
}

func TestChangePassword(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	user, _, err := f.svc.Auth.Signup(ctx, signupRequest())
	require.NoError(t, err)
	me := actor(user.ID)

	err = f.svc.Users.ChangePassword(ctx, me, dto.ChangePasswordRequest{CurrentPassword: "Nope12345", NewPassword: "Changed99", ConfirmPassword: "Changed99"})
	requireKind(t, err, 400, "Current password do not match.")

	err = f.svc.Users.ChangePassword(ctx, me, dto.ChangePasswordRequest{CurrentPassword: "Secret123", NewPassword: "Changed99", ConfirmPassword: "Changed99"})
	require.NoError(t, err)

	_, _, err = f.svc.Auth.Login(ctx, dto.LoginRequest{Email: "brian@example.com", Password: "Changed99"})
	require.NoError(t, err)
}

func TestAvatarUploadAndAccountDeletion(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	user, _, err := f.svc.Auth.Signup(ctx, signupRequest())
	require.NoError(t, err)
	me := actor(user.ID)
	generated := user.ImagePath

	_, err = f.svc.Users.UploadAvatar(ctx, me, upload("avatar.exe", "x"))
	requireKind(t, err, 400, "The image type is not allowed")

	_, err = f.svc.Users.UploadAvatar(ctx, me, upload("avatar.png", "not an image"))
	requireKind(t, err, 400, "")
	assert.Len(t, f.storedFiles(t, "images"), 1)

	task := f.createTask(t, user.ID, user.ID)
	require.NoError(t, f.svc.Users.DeleteAccount(ctx, me))
	assert.False(t, f.files.Exists(generated))

	_, err = f.store.Users.FindByID(ctx, user.ID)
	assert.Error(t, err)

	// rows pointing at the deleted user stay
	_, err = f.store.Tasks.FindByID(ctx, task.ID)
	require.NoError(t, err)
}

func TestReaperRemovesOnlyOrphans(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	task := f.createTask(t, 1, 2)

	kept, err := f.svc.Attachments.Upload(ctx, actor(1), task.ID, upload("kept.pdf", "%PDF"))
	require.NoError(t, err)
	orphan, err := f.files.SaveAttachment(upload("orphan.pdf", "%PDF"))
	require.NoError(t, err)

	reaper := NewReaper(f.store, f.files, time.Hour)

	removed, err := reaper.Sweep(ctx)
	require.NoError(t, err)
	assert.Zero(t, removed, "young files are kept")

	reaper.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	removed, err = reaper.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
	assert.True(t, f.files.Exists(kept.Path))
	assert.False(t, f.files.Exists(orphan))
}
