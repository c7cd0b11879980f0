package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dugunsalon/internal/database"
	"dugunsalon/internal/models"
)

type memStore struct {
	nextID int64
	users  []models.User
}

func (m *memStore) CreateUser(_ context.Context, u *models.User) (int64, error) {
	m.nextID++
	u.ID = m.nextID
	m.users = append(m.users, *u)
	return u.ID, nil
}

func (m *memStore) UserByUsername(_ context.Context, username string) (*models.User, error) {
	for i := range m.users {
		if m.users[i].Username == username {
			u := m.users[i]
			return &u, nil
		}
	}
	return nil, database.ErrNotFound
}

func (m *memStore) UserByEmail(_ context.Context, email string) (*models.User, error) {
	for i := range m.users {
		if m.users[i].Email == email {
			u := m.users[i]
			return &u, nil
		}
	}
	return nil, database.ErrNotFound
}

func registerInput() RegisterInput {
	return RegisterInput{
		Name:     "Ayşe Yılmaz",
		Email:    "ayse@example.com",
		Username: "ayse",
		Password: "gizli123",
	}
}

func TestRegisterAndLogin(t *testing.T) {
	store := &memStore{}
	svc := NewService(store)
	ctx := context.Background()

	id, err := svc.Register(ctx, registerInput())
	require.NoError(t, err)
	assert.Positive(t, id)

	// The password is stored hashed, never in the clear.
	assert.NotEqual(t, "gizli123", store.users[0].PasswordHash)
	assert.NotEmpty(t, store.users[0].PasswordHash)
	assert.Equal(t, models.RoleStaff, store.users[0].Role)

	user, err := svc.Login(ctx, "ayse", "gizli123")
	require.NoError(t, err)
	assert.Equal(t, id, user.ID)

	_, err = svc.Login(ctx, "ayse", "yanlış")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "yok", "gizli123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegister_Validation(t *testing.T) {
	svc := NewService(&memStore{})
	ctx := context.Background()

	in := registerInput()
	in.Password = ""
	_, err := svc.Register(ctx, in)
	var rerr *RegisterError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, "Ad, email, kullanıcı adı ve şifre zorunludur.", rerr.Message)
}

func TestRegister_Duplicates(t *testing.T) {
	store := &memStore{}
	svc := NewService(store)
	ctx := context.Background()

	_, err := svc.Register(ctx, registerInput())
	require.NoError(t, err)

	in := registerInput()
	in.Email = "baska@example.com"
	_, err = svc.Register(ctx, in)
	var rerr *RegisterError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, "Bu kullanıcı adı zaten kullanılıyor!", rerr.Message)

	in = registerInput()
	in.Username = "baska"
	_, err = svc.Register(ctx, in)
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, "Bu email adresi zaten kayıtlı!", rerr.Message)
}
