// File: internal/service/errors.go
package service

import "errors"

// 核心錯誤分類，由 transport 層轉換為對應的 HTTP 狀態碼。
// 所有錯誤皆可在邊界回復，核心不會因此終止程序。
var (
	// ErrDuplicateEmail 註冊時 email 已存在（含 commit 時的唯一索引衝突）
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrInvalidCredentials 帳號不存在或密碼錯誤，不區分兩者
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnauthenticated 令牌缺失、偽造、格式錯誤、過期或主體不存在，不區分原因
	ErrUnauthenticated = errors.New("could not validate credentials")

	// ErrForbidden 身分有效但帳號已停用
	ErrForbidden = errors.New("inactive user")

	// ErrNotFound 專案不存在，或不屬於呼叫者（兩者不可區分）
	ErrNotFound = errors.New("project not found")
)
