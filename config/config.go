// file: config/config.go
package config

import (
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config 全部外部配置，启动时解析一次，显式传入各个 service，
// 避免可变的包级单例（测试可以按用例构造不同配置）
type Config struct {
	ListenAddr string `env:"LISTEN_ADDR" envDefault:":8080"`

	// MySQL
	DBDSN string `env:"DB_DSN" envDefault:"root:123456@tcp(localhost:3306)/devolympus?charset=utf8mb4&parseTime=True&loc=Local"`

	// Redis
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	// JWT
	JWTSecret string `env:"JWT_SECRET" envDefault:"a-very-secure-secret-that-should-be-in-env"`

	// Google OAuth（身份提供方）
	OAuthClientID     string `env:"OAUTH_CLIENT_ID"`
	OAuthClientSecret string `env:"OAUTH_CLIENT_SECRET"`
	OAuthRedirectURL  string `env:"OAUTH_REDIRECT_URL" envDefault:"http://localhost:8080/api/v1/auth/google/callback"`

	// Cloudinary（资源存储）
	CloudinaryURL string `env:"CLOUDINARY_URL"`

	// 报名窗口
	RegistrationOpen     bool      `env:"REGISTRATION_OPEN" envDefault:"true"`
	RegistrationDeadline time.Time `env:"REGISTRATION_DEADLINE" envDefault:"2026-03-01T00:00:00Z"`
	MinTeamSize          int       `env:"MIN_TEAM_SIZE" envDefault:"3"`
	MaxTeamSize          int       `env:"MAX_TEAM_SIZE" envDefault:"4"`

	// 缴费核验开关（管理员修改 verified 的总闸）
	PaymentVerificationEnabled bool `env:"PAYMENT_VERIFICATION_ENABLED" envDefault:"true"`
}

// RegistrationWindowOpen 报名是否开放：开关打开且未过截止时间
func (c Config) RegistrationWindowOpen(now time.Time) bool {
	return c.RegistrationOpen && now.Before(c.RegistrationDeadline)
}

// MustLoad 读取 .env（若存在）并解析环境变量，失败直接退出
func MustLoad() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("Failed to parse config: %v", err)
	}
	return cfg
}
