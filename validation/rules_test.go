package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckPassword(t *testing.T) {
	tests := []struct {
		password string
		want     string
	}{
		{"Pass@123", ""},
		{"Sh@1", "Password must be at least 8 characters long"},
		{"pass@1234", "Password must contain at least one uppercase letter"},
		{"PASS@1234", "Password must contain at least one lowercase letter"},
		{"Pass@word", "Password must contain at least one digit"},
		{"Password1", `Password must contain at least one special character (!@#$%^&*()_+-=[]{};':"|,.<>/?)`},
		{`Password1\`, ""},
		{"Pé@1aaa", "Password must be at least 8 characters long"},
		{"Pé@1aaaa", ""},
	}

	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			assert.Equal(t, tt.want, CheckPassword(tt.password))
		})
	}
}

func TestValidEmailAndName(t *testing.T) {
	assert.True(t, ValidEmail("john@example.com"))
	assert.False(t, ValidEmail("invalid-email"))
	assert.False(t, ValidEmail("a b@example.com"))

	assert.True(t, ValidFullName("John Doe"))
	assert.False(t, ValidFullName("J"))
	assert.False(t, ValidFullName("John D0e"))
}

func TestUserCreation(t *testing.T) {
	t.Run("missing fields short-circuit", func(t *testing.T) {
		assert.Equal(t, []string{MsgFieldsRequired}, UserCreation("John", "", "Pass@123"))
	})

	t.Run("all failures reported", func(t *testing.T) {
		errs := UserCreation("J0hn", "nope", "short")
		assert.Equal(t, []string{
			MsgInvalidFullName,
			MsgInvalidEmail,
			"Password must be at least 8 characters long",
		}, errs)
	})

	t.Run("valid", func(t *testing.T) {
		assert.Empty(t, UserCreation("John Doe", "john@example.com", "Pass@123"))
	})
}

func TestUserUpdate(t *testing.T) {
	assert.Equal(t, []string{MsgUpdateFieldsNone}, UserUpdate("", ""))
	assert.Empty(t, UserUpdate("Jane Doe", ""))
	assert.Equal(t, []string{"Password must contain at least one digit"}, UserUpdate("", "Pass@word"))
	assert.Len(t, UserUpdate("J4ne", "x"), 2)
}

func TestImageChecks(t *testing.T) {
	assert.True(t, ValidImageType("image/png"))
	assert.True(t, ValidImageType("IMAGE/JPEG"))
	assert.False(t, ValidImageType("image/webp"))

	assert.True(t, ValidImageExtension("photo.JPG"))
	assert.True(t, ValidImageExtension("a.b.gif"))
	assert.False(t, ValidImageExtension("photo.bmp"))
	assert.False(t, ValidImageExtension("photo"))
}
