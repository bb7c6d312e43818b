// internal/service/testhelpers_test.go
package service

import (
	"wordify/internal/config"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB はトランザクション用のインメモリDBを返します。
// リポジトリはモックするのでマイグレーションは不要
func setupTestDB() *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect database for testing: " + err.Error())
	}
	return db
}

// testConfig はテスト用の設定を返します
func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			DefaultQuestionCount: 10,
			MaxDistractors:       3,
			MasteryAccuracy:      80.0,
			MasteryMinAttempts:   3,
		},
		JWT: config.JWTConfig{
			SecretKey:        "test-secret-key",
			ExpiresInMinutes: 60,
		},
	}
}
