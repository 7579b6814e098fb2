package authService

import (
	"context"
	"sync"
	"testing"

	"Robostaan/internal/api/auth"
	authRepository "Robostaan/internal/api/auth/repository"
	"Robostaan/internal/entity"
	"Robostaan/pkg/bcrypt"
	"Robostaan/pkg/utils"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuthRepo struct {
	mu          sync.Mutex
	users       map[string]entity.User // by id
	preferences map[string]entity.UserPreference
}

func newFakeAuthRepo() *fakeAuthRepo {
	return &fakeAuthRepo{
		users:       make(map[string]entity.User),
		preferences: make(map[string]entity.UserPreference),
	}
}

func (f *fakeAuthRepo) NewClient(tx bool) (authRepository.Client, error) {
	return authRepository.Client{
		Users:       &fakeUsers{repo: f},
		Preferences: &fakePreferences{repo: f},
		Commit:      func() error { return nil },
		Rollback:    func() error { return nil },
	}, nil
}

type fakeUsers struct {
	repo *fakeAuthRepo
}

func (f *fakeUsers) CreateUser(_ context.Context, user entity.User) error {
	f.repo.mu.Lock()
	defer f.repo.mu.Unlock()
	for _, existing := range f.repo.users {
		if existing.Email == user.Email {
			return auth.ErrEmailAlreadyInUse
		}
	}
	f.repo.users[user.ID] = user
	return nil
}

func (f *fakeUsers) GetByID(_ context.Context, id string) (entity.User, error) {
	f.repo.mu.Lock()
	defer f.repo.mu.Unlock()
	user, ok := f.repo.users[id]
	if !ok {
		return entity.User{}, auth.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (entity.User, error) {
	f.repo.mu.Lock()
	defer f.repo.mu.Unlock()
	for _, user := range f.repo.users {
		if user.Email == email {
			return user, nil
		}
	}
	return entity.User{}, auth.ErrUserNotFound
}

func (f *fakeUsers) UpdateUser(_ context.Context, update entity.User) error {
	f.repo.mu.Lock()
	defer f.repo.mu.Unlock()
	user, ok := f.repo.users[update.ID]
	if !ok {
		return auth.ErrUserNotFound
	}
	if update.Name != "" {
		user.Name = update.Name
	}
	if update.Bio != "" {
		user.Bio = update.Bio
	}
	f.repo.users[update.ID] = user
	return nil
}

func (f *fakeUsers) UpdateRole(_ context.Context, id string, role entity.Role) error {
	f.repo.mu.Lock()
	defer f.repo.mu.Unlock()
	user, ok := f.repo.users[id]
	if !ok {
		return auth.ErrUserNotFound
	}
	user.Role = role
	f.repo.users[id] = user
	return nil
}

func (f *fakeUsers) UpdateVerifiedStatus(_ context.Context, email string, verified bool) error {
	f.repo.mu.Lock()
	defer f.repo.mu.Unlock()
	for id, user := range f.repo.users {
		if user.Email == email {
			user.IsVerified = verified
			f.repo.users[id] = user
			return nil
		}
	}
	return auth.ErrUserNotFound
}

func (f *fakeUsers) UpdateProfilePhoto(_ context.Context, id string, photoURL string) error {
	f.repo.mu.Lock()
	defer f.repo.mu.Unlock()
	user, ok := f.repo.users[id]
	if !ok {
		return auth.ErrUserNotFound
	}
	user.ProfilePhotoURL = photoURL
	f.repo.users[id] = user
	return nil
}

func (f *fakeUsers) DeleteUser(_ context.Context, id string) error {
	f.repo.mu.Lock()
	defer f.repo.mu.Unlock()
	if _, ok := f.repo.users[id]; !ok {
		return auth.ErrUserNotFound
	}
	delete(f.repo.users, id)
	return nil
}

type fakePreferences struct {
	repo *fakeAuthRepo
}

func (f *fakePreferences) GetByUserID(_ context.Context, userID string) (entity.UserPreference, error) {
	f.repo.mu.Lock()
	defer f.repo.mu.Unlock()
	pref, ok := f.repo.preferences[userID]
	if !ok {
		return entity.UserPreference{}, auth.ErrPreferencesNotFound
	}
	return pref, nil
}

func (f *fakePreferences) Upsert(_ context.Context, pref entity.UserPreference) error {
	f.repo.mu.Lock()
	defer f.repo.mu.Unlock()
	f.repo.preferences[pref.UserID] = pref
	return nil
}

func newAuthTestService(repo *fakeAuthRepo) AuthService {
	return New(logrus.New(), repo, nil, nil, nil, nil, bcrypt.NewWithCost(4), utils.New())
}

func registeredUserID(t *testing.T, repo *fakeAuthRepo, email string) string {
	t.Helper()
	for id, user := range repo.users {
		if user.Email == email {
			return id
		}
	}
	t.Fatalf("no user registered with email %s", email)
	return ""
}

func TestRegisterUserCreatesDefaultPreferences(t *testing.T) {
	repo := newFakeAuthRepo()
	svc := newAuthTestService(repo)

	err := svc.User().RegisterUser(context.Background(), auth.CreateUserRequest{
		Name:     "Ada Lovelace",
		Email:    "ada@example.com",
		Password: "super-secret",
	})
	require.NoError(t, err)

	userID := registeredUserID(t, repo, "ada@example.com")
	user, err := svc.User().GetByID(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, user.Role)
	assert.NotEqual(t, "super-secret", user.Password)

	pref, err := svc.Preference().GetPreferences(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, "system", pref.Theme)
	assert.True(t, pref.EmailNotifications)
}

func TestRegisterUserRejectsDuplicateEmail(t *testing.T) {
	repo := newFakeAuthRepo()
	svc := newAuthTestService(repo)

	req := auth.CreateUserRequest{Name: "Ada Lovelace", Email: "ada@example.com", Password: "super-secret"}
	require.NoError(t, svc.User().RegisterUser(context.Background(), req))

	err := svc.User().RegisterUser(context.Background(), req)
	assert.ErrorIs(t, err, auth.ErrEmailAlreadyInUse)
}

func TestLoginVerifiesPassword(t *testing.T) {
	t.Setenv("JWT_ACCESS_TOKEN_SECRET", "test-secret")

	repo := newFakeAuthRepo()
	svc := newAuthTestService(repo)

	require.NoError(t, svc.User().RegisterUser(context.Background(), auth.CreateUserRequest{
		Name:     "Ada Lovelace",
		Email:    "ada@example.com",
		Password: "super-secret",
	}))

	resp, err := svc.Auth().Login(context.Background(), auth.LoginUserRequest{
		Email:    "ada@example.com",
		Password: "super-secret",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Greater(t, resp.ExpiresInMinutes, float64(0))

	_, err = svc.Auth().Login(context.Background(), auth.LoginUserRequest{
		Email:    "ada@example.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidEmailOrPassword)

	_, err = svc.Auth().Login(context.Background(), auth.LoginUserRequest{
		Email:    "nobody@example.com",
		Password: "super-secret",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidEmailOrPassword)
}

func TestUpdateRoleValidatesRole(t *testing.T) {
	repo := newFakeAuthRepo()
	svc := newAuthTestService(repo)

	require.NoError(t, svc.User().RegisterUser(context.Background(), auth.CreateUserRequest{
		Name:     "Ada Lovelace",
		Email:    "ada@example.com",
		Password: "super-secret",
	}))
	userID := registeredUserID(t, repo, "ada@example.com")

	assert.ErrorIs(t, svc.User().UpdateRole(context.Background(), userID, "owner"), auth.ErrInvalidRole)

	require.NoError(t, svc.User().UpdateRole(context.Background(), userID, "instructor"))
	user, err := svc.User().GetByID(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleInstructor, user.Role)
}

func TestDeleteUserRequiresSelfOrAdmin(t *testing.T) {
	repo := newFakeAuthRepo()
	svc := newAuthTestService(repo)

	require.NoError(t, svc.User().RegisterUser(context.Background(), auth.CreateUserRequest{
		Name:     "Ada Lovelace",
		Email:    "ada@example.com",
		Password: "super-secret",
	}))
	userID := registeredUserID(t, repo, "ada@example.com")

	stranger := entity.UserLoginData{ID: "someone-else", Role: entity.RoleUser}
	assert.Error(t, svc.User().DeleteUser(context.Background(), stranger, userID))

	self := entity.UserLoginData{ID: userID, Role: entity.RoleUser}
	require.NoError(t, svc.User().DeleteUser(context.Background(), self, userID))

	_, err := svc.User().GetByID(context.Background(), userID)
	assert.ErrorIs(t, err, auth.ErrUserNotFound)
}
