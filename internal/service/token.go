// File: internal/service/token.go
package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// 測試可覆寫此變數
var parseWithClaims = jwt.ParseWithClaims

// Claims 定義 JWT 負載內容，subject 為使用者 email
type Claims struct {
	jwt.RegisteredClaims
}

// TokenCodec 簽發與驗證存取令牌。
// secret 與演算法為啟動時載入的組態，不讀取環境變數也無套件層單例；
// 更換 secret 會使既有令牌全部失效。
type TokenCodec struct {
	secret     []byte
	method     jwt.SigningMethod
	defaultTTL time.Duration
}

var signingMethods = map[string]jwt.SigningMethod{
	"HS256": jwt.SigningMethodHS256,
	"HS384": jwt.SigningMethodHS384,
	"HS512": jwt.SigningMethodHS512,
}

// NewTokenCodec 建立 TokenCodec，演算法不支援時回傳錯誤
func NewTokenCodec(secret, algorithm string, defaultTTL time.Duration) (*TokenCodec, error) {
	if secret == "" {
		return nil, fmt.Errorf("signing secret is empty")
	}
	method, ok := signingMethods[algorithm]
	if !ok {
		return nil, fmt.Errorf("unsupported signing algorithm: %q", algorithm)
	}
	if defaultTTL <= 0 {
		return nil, fmt.Errorf("invalid default token ttl: %v", defaultTTL)
	}
	return &TokenCodec{secret: []byte(secret), method: method, defaultTTL: defaultTTL}, nil
}

// DefaultTTL 回傳組態中的預設令牌有效時間
func (tc *TokenCodec) DefaultTTL() time.Duration {
	return tc.defaultTTL
}

// Issue 依據 subject 與 TTL 簽發 JWT，ttl <= 0 使用預設值
func (tc *TokenCodec) Issue(subject string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = tc.defaultTTL
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(tc.method, claims)
	return token.SignedString(tc.secret)
}

// Verify 驗證並解析 JWT。簽章錯誤、演算法不符、格式損壞、
// 過期與 subject 缺失一律回傳 ErrUnauthenticated，不透露原因。
func (tc *TokenCodec) Verify(tokenString string) (*Claims, error) {
	token, err := parseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return tc.secret, nil
	}, jwt.WithValidMethods([]string{tc.method.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, ErrUnauthenticated
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrUnauthenticated
	}
	if claims.Subject == "" {
		return nil, ErrUnauthenticated
	}
	return claims, nil
}
