// internal/config/constants.go
package config

// アプリケーション情報
const (
	AppName = "Wordify"
)

// デフォルト設定値
const (
	DefaultServerPort          = ":8080"
	DefaultLogLevel            = "info"
	DefaultQuestionCount       = 10
	DefaultMaxDistractors      = 3
	DefaultMasteryAccuracy     = 80.0
	DefaultMasteryMinAttempts  = 3
	DefaultJWTExpiresInMinutes = 60 * 24
)
