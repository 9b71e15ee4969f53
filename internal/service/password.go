// File: internal/service/password.go
package service

import (
	"crypto/sha256"
	"encoding/hex"

	"golang.org/x/crypto/bcrypt"
)

// 測試可覆寫的 bcrypt 進入點
var (
	bcryptGenerateFromPassword   = bcrypt.GenerateFromPassword
	bcryptCompareHashAndPassword = bcrypt.CompareHashAndPassword
)

// bcrypt 輸入長度上限 (bytes)
const bcryptMaxLen = 72

// normalizePassword 將超過 72 bytes 的密碼以 SHA-256 hex digest 取代，
// 避免 bcrypt 截斷，且雜湊與驗證兩邊結果一致。
func normalizePassword(password string) []byte {
	encoded := []byte(password)
	if len(encoded) <= bcryptMaxLen {
		return encoded
	}
	sum := sha256.Sum256(encoded)
	return []byte(hex.EncodeToString(sum[:]))
}

// HashPassword 接收明文密碼，回傳 bcrypt 哈希字串
// 每次呼叫產生新的隨機 salt，相同密碼的哈希結果不同
func HashPassword(password string) (string, error) {
	hashBytes, err := bcryptGenerateFromPassword(normalizePassword(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashBytes), nil
}

// VerifyPassword 比對明文密碼與 bcrypt 哈希
// 哈希格式損壞時回傳 false，不會 panic 也不回傳錯誤
func VerifyPassword(password, storedHash string) bool {
	return bcryptCompareHashAndPassword([]byte(storedHash), normalizePassword(password)) == nil
}
