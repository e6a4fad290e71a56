package service

import (
	"Inkwell/internal/api/dto"
	"Inkwell/internal/model"
	"Inkwell/internal/pkg/consts"
	"Inkwell/internal/pkg/security"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	out, err := env.users.Register(ctx, &dto.RegisterDTO{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret1",
	})
	require.NoError(t, err)
	assert.Equal(t, consts.DefaultName, out.FirstName)
	assert.Equal(t, consts.DefaultName, out.LastName)
	assert.True(t, out.IsActive)
	assert.False(t, out.IsVerified)

	mail := env.mail.last()
	assert.Equal(t, "alice@example.com", mail.To)
	assert.Equal(t, signupSubject, mail.Subject)
	assert.Contains(t, mail.Body, "http://inkwell.test/api/users/activate/")

	stored := &model.User{}
	require.NoError(t, env.db.First(stored, out.ID).Error)
	assert.NotEqual(t, "secret1", stored.Password)

	_, err = env.users.Register(ctx, &dto.RegisterDTO{Username: "alice", Email: "a2@example.com", Password: "secret2"})
	assert.ErrorIs(t, err, ErrUsernameExist)
}

func TestLoginAndLogout(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.user(t, "alice")

	_, err := env.users.Login(ctx, &dto.CredentialDTO{Username: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, ErrPasswordIncorrect)
	_, err = env.users.Login(ctx, &dto.CredentialDTO{Username: "nobody", Password: "wrong"})
	assert.ErrorIs(t, err, ErrPasswordIncorrect)

	token, err := env.users.Login(ctx, &dto.CredentialDTO{Username: "alice", Password: "secret-alice"})
	require.NoError(t, err)
	claims, err := security.ValidateToken(token.Token)
	require.NoError(t, err)
	assert.Equal(t, alice.ID, claims.UserID)

	stored := &model.User{}
	require.NoError(t, env.db.First(stored, alice.ID).Error)
	assert.NotNil(t, stored.LastLogin)

	revoked, err := env.users.IsTokenRevoked(ctx, token.Token)
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, env.users.Logout(ctx, token.Token))
	revoked, err = env.users.IsTokenRevoked(ctx, token.Token)
	require.NoError(t, err)
	assert.True(t, revoked)

	assert.ErrorIs(t, env.users.Logout(ctx, "garbage"), ErrUnauthorized)
}

func TestLoginRefusesInactive(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.user(t, "alice")

	require.NoError(t, env.users.Deactivate(ctx, alice.ID, alice.ID))
	_, err := env.users.Login(ctx, &dto.CredentialDTO{Username: "alice", Password: "secret-alice"})
	assert.ErrorIs(t, err, ErrUserInactive)
}

func TestDeactivateOwnerOnly(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.user(t, "alice")
	bob := env.user(t, "bob")

	assert.ErrorIs(t, env.users.Deactivate(ctx, bob.ID, alice.ID), ErrForbidden)
	require.NoError(t, env.users.Deactivate(ctx, alice.ID, alice.ID))

	inactive := false
	page, err := env.users.ListUsers(ctx, &dto.UserListQuery{IsActive: &inactive}, 10)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "alice", page.Items[0].Username)
}

func TestProfileVisibility(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.user(t, "alice")
	bob := env.user(t, "bob")

	_, err := env.follows.ToggleFollow(ctx, bob.ID, alice.ID)
	require.NoError(t, err)
	_, err = env.reactions.RateAuthor(ctx, bob.ID, alice.ID)
	require.NoError(t, err)

	own, err := env.users.GetProfile(ctx, alice.ID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", own.Email)
	assert.Equal(t, int64(1), own.FollowerCount)
	assert.Equal(t, int64(1), own.Rating)

	other, err := env.users.GetProfile(ctx, bob.ID, alice.ID)
	require.NoError(t, err)
	assert.Empty(t, other.Email)

	bobs, err := env.users.GetProfile(ctx, 0, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), bobs.FollowingCount)

	_, err = env.users.GetProfile(ctx, 0, 999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpdateProfile(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.user(t, "alice")
	bob := env.user(t, "bob")

	first := "Alice"
	blank := "  "
	_, err := env.users.UpdateProfile(ctx, bob.ID, alice.ID, &dto.UpdateProfileDTO{FirstName: &first})
	assert.ErrorIs(t, err, ErrForbidden)

	out, err := env.users.UpdateProfile(ctx, alice.ID, alice.ID, &dto.UpdateProfileDTO{FirstName: &first, LastName: &blank})
	require.NoError(t, err)
	assert.Equal(t, "Alice", out.FirstName)
	assert.Equal(t, consts.DefaultName, out.LastName)
}

func TestRecoveryWindow(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		lastLogin  *time.Time
		createdAt  time.Time
		withinLink bool
	}{
		{"recent login", ptr(now.Add(-2 * 24 * time.Hour)), now.Add(-90 * 24 * time.Hour), true},
		{"seven full days", ptr(now.Add(-7*24*time.Hour - 23*time.Hour)), now.Add(-90 * 24 * time.Hour), true},
		{"eight days", ptr(now.Add(-8 * 24 * time.Hour)), now.Add(-90 * 24 * time.Hour), false},
		{"never logged in, new account", nil, now.Add(-24 * time.Hour), true},
		{"never logged in, old account", nil, now.Add(-30 * 24 * time.Hour), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.users.now = func() time.Time { return now }
			alice := env.user(t, "alice")
			require.NoError(t, env.db.Model(&model.User{}).Where("id = ?", alice.ID).
				Updates(map[string]any{"last_login": tt.lastLogin, "created_at": tt.createdAt}).Error)

			require.NoError(t, env.users.SendRecovery(context.Background(), "alice@example.com"))
			mail := env.mail.last()
			assert.Equal(t, recoverySubject, mail.Subject)
			assert.Equal(t, tt.withinLink, strings.Contains(mail.Body, alice.VerificationUUID))
		})
	}
}

func TestRecoveryUnknownEmail(t *testing.T) {
	env := newTestEnv(t)
	assert.ErrorIs(t, env.users.SendRecovery(context.Background(), "ghost@example.com"), ErrUserNotFound)
}

func TestActivate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.user(t, "alice")
	require.NoError(t, env.users.Deactivate(ctx, alice.ID, alice.ID))

	out, err := env.users.Activate(ctx, alice.VerificationUUID)
	require.NoError(t, err)
	assert.True(t, out.IsActive)
	assert.True(t, out.IsVerified)

	stored := &model.User{}
	require.NoError(t, env.db.First(stored, alice.ID).Error)
	assert.True(t, stored.IsActive)
	assert.NotEqual(t, alice.VerificationUUID, stored.VerificationUUID)

	// 旧链接失效
	_, err = env.users.Activate(ctx, alice.VerificationUUID)
	assert.ErrorIs(t, err, ErrActivationNotFound)
}

func TestActivateAfterRecoveryWindow(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		lastLogin time.Time
		wantErr   error
	}{
		{"inside window", now.Add(-3 * 24 * time.Hour), nil},
		{"outside window", now.Add(-10 * 24 * time.Hour), ErrActivationExpired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.users.now = func() time.Time { return now }
			ctx := context.Background()
			alice := env.user(t, "alice")
			require.NoError(t, env.users.Deactivate(ctx, alice.ID, alice.ID))
			require.NoError(t, env.db.Model(&model.User{}).Where("id = ?", alice.ID).
				Update("last_login", tt.lastLogin).Error)

			// 注册邮件里的链接
			_, err := env.users.Activate(ctx, alice.VerificationUUID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				stored := &model.User{}
				require.NoError(t, env.db.First(stored, alice.ID).Error)
				assert.False(t, stored.IsActive)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestActivateVerifiesActiveAccountAnyTime(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.user(t, "alice")
	env.users.now = func() time.Time { return time.Now().Add(60 * 24 * time.Hour) }

	out, err := env.users.Activate(ctx, alice.VerificationUUID)
	require.NoError(t, err)
	assert.True(t, out.IsVerified)
}

func ptr[T any](v T) *T {
	return &v
}
