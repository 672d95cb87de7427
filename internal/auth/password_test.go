package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordLengthRules(t *testing.T) {
	cases := []struct {
		name     string
		password string
		wantErr  error
	}{
		{name: "empty", password: "", wantErr: ErrPasswordTooShort},
		{name: "blank", password: "        ", wantErr: ErrPasswordTooShort},
		{name: "five chars", password: "abcde", wantErr: ErrPasswordTooShort},
		{name: "six chars", password: "abcdef"},
		{name: "multibyte counts runes", password: "薄荷薄荷薄荷"},
		{name: "over bcrypt limit", password: strings.Repeat("x", 73), wantErr: ErrPasswordTooLong},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			hash, err := HashPassword(tc.password)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Empty(t, hash)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, hash)
		})
	}
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("S3curePass!")
	require.NoError(t, err)

	assert.NoError(t, VerifyPassword(hash, "S3curePass!"))
	assert.ErrorIs(t, VerifyPassword(hash, "wrong"), ErrPasswordMismatch)
	assert.Error(t, VerifyPassword("", "S3curePass!"))

	err = VerifyPassword("not-a-bcrypt-hash", "S3curePass!")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrPasswordMismatch)
}
