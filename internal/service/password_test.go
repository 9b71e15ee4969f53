package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"golang.org/x/crypto/bcrypt"
)

func restorePasswordGlobals() {
	bcryptGenerateFromPassword = bcrypt.GenerateFromPassword
	bcryptCompareHashAndPassword = bcrypt.CompareHashAndPassword
}

func TestHashPassword(t *testing.T) {
	t.Cleanup(restorePasswordGlobals)
	pwd := "S3curePass!"
	hash, err := HashPassword(pwd)
	require.NoError(t, err)
	require.NotEqual(t, pwd, hash)
	require.True(t, VerifyPassword(pwd, hash))

	// 相同密碼每次產生不同哈希 (隨機 salt)，但都能驗證通過
	hash2, err := HashPassword(pwd)
	require.NoError(t, err)
	require.NotEqual(t, hash, hash2)
	require.True(t, VerifyPassword(pwd, hash2))

	bcryptGenerateFromPassword = func(_ []byte, _ int) ([]byte, error) {
		return nil, errors.New("gen")
	}
	_, err = HashPassword(pwd)
	require.Error(t, err)
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("correct")
	require.NoError(t, err)

	require.True(t, VerifyPassword("correct", hash))
	require.False(t, VerifyPassword("wrong", hash))

	// 損壞的哈希回傳 false，不 panic
	require.False(t, VerifyPassword("anything", "not-a-bcrypt-hash"))
	require.False(t, VerifyPassword("anything", ""))
}

func TestNormalizePassword(t *testing.T) {
	// 72 bytes 以內原樣通過
	short := strings.Repeat("a", 72)
	require.Equal(t, []byte(short), normalizePassword(short))

	// 超過 72 bytes 改用 SHA-256 hex digest (64 bytes)
	long := strings.Repeat("a", 73)
	norm := normalizePassword(long)
	require.NotEqual(t, []byte(long), norm)
	require.Len(t, norm, 64)

	// normalize 結果相同的密碼，哈希互相可驗證
	long2 := strings.Repeat("a", 73)
	require.Equal(t, norm, normalizePassword(long2))
	hash, err := HashPassword(long)
	require.NoError(t, err)
	require.True(t, VerifyPassword(long2, hash))

	// 多位元組字元以 UTF-8 長度計算
	multibyte := strings.Repeat("密", 25) // 75 bytes
	require.Len(t, normalizePassword(multibyte), 64)
}

func TestLongPasswordRoundTrip(t *testing.T) {
	long := strings.Repeat("x", 200)
	hash, err := HashPassword(long)
	require.NoError(t, err)
	require.True(t, VerifyPassword(long, hash))
	require.False(t, VerifyPassword(strings.Repeat("y", 200), hash))
}
