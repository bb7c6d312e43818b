// internal/config/config.go
package config

import (
	"log"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type DatabaseConfig struct {
	URL string `mapstructure:"url"`
}

type AppConfig struct {
	DefaultQuestionCount int     `mapstructure:"default_question_count"` // 出題数の省略時デフォルト
	MaxDistractors       int     `mapstructure:"max_distractors"`        // 1問あたりの誤答選択肢の上限
	MasteryAccuracy      float64 `mapstructure:"mastery_accuracy"`       // mastered 判定の正答率閾値(%)
	MasteryMinAttempts   int     `mapstructure:"mastery_min_attempts"`   // mastered 判定の最低回答数
}

type JWTConfig struct {
	SecretKey        string `mapstructure:"secret_key"`
	ExpiresInMinutes int    `mapstructure:"expires_in_minutes"`
}

type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	ExposedHeaders   []string `mapstructure:"exposed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	App      AppConfig      `mapstructure:"app"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	CORS     CORSConfig     `mapstructure:"cors"`
	Log      LogConfig      `mapstructure:"log"`
}

var Cfg Config

func LoadConfig(path string) error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(path)
	viper.AddConfigPath(".")

	// 環境変数でも上書きできるようにする (例: APP_JWT_SECRET_KEY)
	viper.SetEnvPrefix("APP")
	viper.AutomaticEnv()
	viper.BindEnv("database.url", "DATABASE_URL")
	viper.BindEnv("jwt.secret_key", "JWT_SECRET_KEY")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return err
		}
	}

	if err := viper.Unmarshal(&Cfg); err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return err
	}

	applyDefaults(&Cfg)

	log.Println("Config loaded successfully")
	log.Printf("Server Port: %s", Cfg.Server.Port)
	log.Printf("Default Question Count: %d", Cfg.App.DefaultQuestionCount)
	log.Printf("Mastery Threshold: %.0f%% over %d attempts", Cfg.App.MasteryAccuracy, Cfg.App.MasteryMinAttempts)

	return nil
}

// applyDefaults は未設定・不正値をデフォルトに置き換えます
func applyDefaults(c *Config) {
	if c.Server.Port == "" {
		log.Printf("Server port not set, using default '%s'", DefaultServerPort)
		c.Server.Port = DefaultServerPort
	}
	if c.App.DefaultQuestionCount <= 0 {
		c.App.DefaultQuestionCount = DefaultQuestionCount
	}
	if c.App.MaxDistractors <= 0 {
		c.App.MaxDistractors = DefaultMaxDistractors
	}
	if c.App.MasteryAccuracy <= 0 {
		c.App.MasteryAccuracy = DefaultMasteryAccuracy
	}
	if c.App.MasteryMinAttempts <= 0 {
		c.App.MasteryMinAttempts = DefaultMasteryMinAttempts
	}
	if c.JWT.ExpiresInMinutes <= 0 {
		c.JWT.ExpiresInMinutes = DefaultJWTExpiresInMinutes
	}
	if c.JWT.SecretKey == "" {
		log.Println("Warning: JWT secret key is not set in config.")
	}
	if c.Database.URL == "" {
		log.Println("Warning: Database URL is not set in config.")
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
}
