package user

import (
	"testing"

	"github.com/amirasaad/globalremit/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	phone := "0244123456"
	u, err := NewUser("kwame", "secret123", "Kwame", "Asante", "kwame@example.com", &phone)
	require.NoError(t, err)
	assert.Equal(t, "kwame", u.Username)
	assert.NotEqual(t, "secret123", u.Password)
	assert.True(t, utils.CheckPasswordHash("secret123", u.Password))
	require.NotNil(t, u.PhoneNumber)
	assert.Equal(t, phone, *u.PhoneNumber)
	assert.False(t, u.CreatedAt.IsZero())
	assert.Zero(t, u.ID)
}

func TestNewUser_BlankPhoneBecomesNil(t *testing.T) {
	blank := "  "
	u, err := NewUser("ama", "secret123", "Ama", "Mensah", "ama@example.com", &blank)
	require.NoError(t, err)
	assert.Nil(t, u.PhoneNumber)
}

func TestNewUser_Invalid(t *testing.T) {
	_, err := NewUser("", "secret123", "A", "B", "a@example.com", nil)
	assert.Error(t, err)

	_, err = NewUser("user", "secret123", "A", "B", " ", nil)
	assert.Error(t, err)
}
