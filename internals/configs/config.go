package configs

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
	"gorm.io/gorm/utils"
)

// Config is the whole runtime configuration, read from the environment.
type Config struct {
	Env  string `env:"APP_ENV" env-default:"local"`
	Port string `env:"PORT" env-default:"5000"`

	JWTSecret string        `env:"ACCESS_TOKEN_SECRET" env-required:"true"`
	JWTTTL    time.Duration `env:"ACCESS_TOKEN_TTL" env-default:"48h"`

	Database Database

	RequestTimeout     time.Duration `env:"REQUEST_TIMEOUT" env-default:"5s"`
	CORSOrigins        string        `env:"CORS_ORIGINS" env-default:"*"`
	RateLimitPerMinute int           `env:"RATE_LIMIT_PER_MINUTE" env-default:"100"`
	EnforceRoles       bool          `env:"AUTH_ENFORCE_ROLES" env-default:"false"`

	// X-Forwarded-For is honoured only from these CIDRs or IPs; empty means the socket peer.
	TrustedProxies []string `env:"TRUSTED_PROXIES" env-separator:","`

	// SeedDir, when set, loads the JSON fixtures under it at startup.
	SeedDir string `env:"SEED_DIR"`

	CartItemTTL   time.Duration `env:"CART_ITEM_TTL" env-default:"720h"`
	CartSweepCron string        `env:"CART_SWEEP_CRON" env-default:"15 2 * * *"`

	Midtrans Midtrans
	OSS      OSS
}

type Database struct {
	URL      string `env:"DATABASE_URL"`
	User     string `env:"DB_USER"`
	Password string `env:"DB_PASSWORD"`
	Host     string `env:"DB_HOST" env-default:"localhost"`
	Port     string `env:"DB_PORT" env-default:"5432"`
	Name     string `env:"DB_NAME" env-default:"summer_school"`
	SSLMode  string `env:"DB_SSLMODE" env-default:"disable"`

	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" env-default:"20"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" env-default:"10"`
	ConnMaxIdleTime time.Duration `env:"DB_CONN_MAX_IDLE_TIME" env-default:"60s"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" env-default:"10m"`

	ConnectAttempts uint          `env:"DB_CONNECT_ATTEMPTS" env-default:"5"`
	ConnectDelay    time.Duration `env:"DB_CONNECT_DELAY" env-default:"1s"`
	AutoMigrate     bool          `env:"DB_AUTO_MIGRATE" env-default:"true"`
	SlowThreshold   time.Duration `env:"DB_SLOW_THRESHOLD" env-default:"200ms"`
}

type Midtrans struct {
	ServerKey     string `env:"MIDTRANS_SERVER_KEY"`
	UseProduction bool   `env:"MIDTRANS_USE_PROD" env-default:"false"`
}

type OSS struct {
	Endpoint        string `env:"ALI_OSS_ENDPOINT"`
	AccessKeyID     string `env:"ALI_OSS_ACCESS_KEY"`
	AccessKeySecret string `env:"ALI_OSS_SECRET_KEY"`
	Bucket          string `env:"ALI_OSS_BUCKET"`
	PublicBaseURL   string `env:"ALI_OSS_PUBLIC_BASE"`
	Prefix          string `env:"ALI_OSS_PREFIX" env-default:"classes/"`
}

// DSN builds the Postgres connection string. DATABASE_URL wins when set.
func (d Database) DSN() string {
	if strings.TrimSpace(d.URL) != "" {
		return d.URL
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=summer_school",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// Enabled reports whether all OSS credentials are present.
func (o OSS) Enabled() bool {
	return o.Endpoint != "" && o.AccessKeyID != "" && o.AccessKeySecret != "" && o.Bucket != ""
}

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("[INFO] no .env file found, using system environment")
		} else {
			log.Println("[INFO] .env file loaded")
		}
	} else {
		log.Println("[INFO] running on Railway, using system environment")
	}
}

// Load reads the environment into a Config.
func Load() (Config, error) {
	LoadEnv()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read env: %w", err)
	}
	return cfg, nil
}

// MustLoad is Load for main: missing required keys are fatal.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("[ERROR] config: %v", err)
	}
	log.Printf("[INFO] config loaded env=%s port=%s enforce_roles=%v", cfg.Env, cfg.Port, cfg.EnforceRoles)
	return cfg
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

// =======================
// GORM LOGGER CUSTOM
// =======================
type GormLogger struct {
	SlowThreshold time.Duration
	LogLevel      gormLogger.LogLevel
}

func NewGormLogger(slow time.Duration) gormLogger.Interface {
	if slow <= 0 {
		slow = 200 * time.Millisecond
	}
	return &GormLogger{
		SlowThreshold: slow,
		LogLevel:      gormLogger.Warn,
	}
}

func (l *GormLogger) LogMode(level gormLogger.LogLevel) gormLogger.Interface {
	nl := *l
	nl.LogLevel = level
	return &nl
}

func (l *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Info {
		log.Printf("[INFO] "+msg, data...)
	}
}

func (l *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Warn {
		log.Printf("[WARN] "+msg, data...)
	}
}

func (l *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Error {
		log.Printf("[ERROR] "+msg, data...)
	}
}

func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.LogLevel <= gormLogger.Silent {
		return
	}
	elapsed := time.Since(begin)
	sql, rows := fc()
	file := utils.FileWithLineNum()

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		log.Printf("[ERROR] %s | %v | %s | %d rows | %s", file, err, elapsed, rows, sql)
	case elapsed > l.SlowThreshold:
		log.Printf("[SLOW SQL] %s | %s | %d rows | %s", file, elapsed, rows, sql)
	case l.LogLevel >= gormLogger.Info:
		log.Printf("[QUERY] %s | %s | %d rows | %s", file, elapsed, rows, sql)
	}
}
