// internal/config/constants.go
package config

// アプリケーション情報
const (
	AppName    = "flash_keep"
	AppVersion = "0.3.0"
)

// デフォルト設定値
const (
	DefaultServerPort  = ":8080"
	DefaultLogLevel    = "info"
	DefaultReviewLimit = 20
	DefaultSessionCap  = 20
	DefaultReminderAt  = "08:00"
)
