package usershandler

import (
	"testing"

	"github.com/stretchr/testify/require"

	"inspection-tools-backend/config"
	authutils "inspection-tools-backend/lib/utils/auth-utils"
	"inspection-tools-backend/models"
	authapimodels "inspection-tools-backend/models/api/auth"
	dbmodels "inspection-tools-backend/models/db"
)

type fakeUsersStore struct {
	users map[string]*dbmodels.User
	seq   int
}

func newFakeUsersStore() *fakeUsersStore {
	return &fakeUsersStore{users: map[string]*dbmodels.User{}}
}

func (f *fakeUsersStore) Create(rec dbmodels.User) (string, error) {
	f.seq++
	rec.ID = "user-" + string(rune('0'+f.seq))
	f.users[rec.ID] = &rec
	return rec.ID, nil
}

func (f *fakeUsersStore) GetByID(id string) (*dbmodels.User, error) {
	return f.users[id], nil
}

func (f *fakeUsersStore) FindByEmail(email string) (*dbmodels.User, error) {
	for _, rec := range f.users {
		if rec.Email == email {
			return rec, nil
		}
	}
	return nil, nil
}

func (f *fakeUsersStore) ExistByEmail(email string) (bool, error) {
	rec, _ := f.FindByEmail(email)
	return rec != nil, nil
}

func newTestHandler(t *testing.T) (impl, *fakeUsersStore) {
	t.Helper()
	if config.Conf == nil {
		config.Conf = &config.Configuration{}
		config.Conf.Auth.JWTSecret = "test-secret"
		config.Conf.Auth.JWTExpireInSec = 3600
	}
	store := newFakeUsersStore()
	return impl{store: store}, store
}

func TestRegister(t *testing.T) {
	handler, store := newTestHandler(t)
	data := authapimodels.RegisterData{
		Name:     "Jordan",
		Email:    "jordan@example.com",
		Password: "s3cret-pass",
		Role:     models.TechnicianRole,
	}

	view, err := handler.Register(data)
	require.NoError(t, err)
	require.NotEmpty(t, view.ID)
	require.Equal(t, data.Email, view.Email)
	require.Equal(t, models.TechnicianRole, view.Role)
	require.Equal(t, "Technician", view.RoleName)

	// the stored hash is bcrypt, never the raw password
	stored := store.users[view.ID]
	require.NotEqual(t, data.Password, stored.PasswordHash)
	require.True(t, authutils.CheckPassword(stored.PasswordHash, data.Password))

	_, err = handler.Register(data)
	require.ErrorIs(t, err, models.ErrConflict)
}

func TestLogin(t *testing.T) {
	handler, _ := newTestHandler(t)
	_, err := handler.Register(authapimodels.RegisterData{
		Name:     "Jordan",
		Email:    "jordan@example.com",
		Password: "s3cret-pass",
		Role:     models.ApproverRole,
	})
	require.NoError(t, err)

	resp, err := handler.Login(authapimodels.LoginData{Email: "jordan@example.com", Password: "s3cret-pass"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)

	// a wrong password and an unknown email fail identically
	_, err = handler.Login(authapimodels.LoginData{Email: "jordan@example.com", Password: "wrong"})
	require.ErrorIs(t, err, models.ErrUnauthenticated)
	_, err = handler.Login(authapimodels.LoginData{Email: "nobody@example.com", Password: "s3cret-pass"})
	require.ErrorIs(t, err, models.ErrUnauthenticated)
}

func TestGetByID(t *testing.T) {
	handler, _ := newTestHandler(t)
	view, err := handler.Register(authapimodels.RegisterData{
		Name:     "Jordan",
		Email:    "jordan@example.com",
		Password: "s3cret-pass",
		Role:     models.TechnicianRole,
	})
	require.NoError(t, err)

	got, err := handler.GetByID(view.ID)
	require.NoError(t, err)
	require.Equal(t, view.Email, got.Email)

	_, err = handler.GetByID("missing")
	require.ErrorIs(t, err, models.ErrNotFound)
}
