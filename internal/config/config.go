package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config anshin-house-data（HTTP API）設定
type Config struct {
	HTTP struct {
		Addr string
	}
	DBEnabled bool
	Database  DatabaseConfig
	Redis     struct {
		Enabled  bool
		Addr     string
		Password string
		DB       int
	}
	Log struct {
		Level  string
		Format string
	}
	Cache struct {
		ViewTTLSeconds int
	}
	Templates TemplateConfig
}

// DatabaseConfig PostgreSQL接続設定
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
	MaxConns int
	MaxIdle  int
}

// GetDSN 接続文字列を組み立てる
func (c *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode)
}

// TemplateConfig Excelテンプレートの場所と契約（シート名・テンプレート行）
// Changing the template files without updating these values breaks export;
// the export engine reports available sheet names when a lookup fails.
type TemplateConfig struct {
	Dir             string // テンプレート置き場
	MonthlyFile     string // 月次報告テンプレート xlsx
	MonthlySheet    string // 月次報告シート名
	MonthlyStyleRow int    // スタイルを持つテンプレート行（1始まり）
	RecordFile      string // 相談記録票テンプレート xlsx
	RecordSheet     string // 相談記録票シート名
}

func Load() *Config {
	cfg := &Config{}
	cfg.HTTP.Addr = getEnv("HTTP_ADDR", ":8080")

	// Default to true for local dev; without a DB the service falls back to
	// memory repositories so the UI pages are not empty.
	cfg.DBEnabled = getEnv("DB_ENABLED", "true") == "true"
	cfg.Database.Host = getEnv("DB_HOST", "localhost")
	cfg.Database.Port = parseInt(getEnv("DB_PORT", "5432"), 5432)
	cfg.Database.User = getEnv("DB_USER", "postgres")
	cfg.Database.Password = getEnv("DB_PASSWORD", "postgres")
	cfg.Database.Database = getEnv("DB_NAME", "anshin_house")
	cfg.Database.SSLMode = getEnv("DB_SSLMODE", "disable")
	cfg.Database.MaxConns = parseInt(getEnv("DB_MAX_CONNS", "10"), 10)
	cfg.Database.MaxIdle = parseInt(getEnv("DB_MAX_IDLE", "5"), 5)

	cfg.Redis.Enabled = getEnv("REDIS_ENABLED", "true") == "true"
	cfg.Redis.Addr = getEnv("REDIS_ADDR", "localhost:6379")
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", "")
	cfg.Redis.DB = parseInt(getEnv("REDIS_DB", "0"), 0)

	cfg.Log.Level = getEnv("LOG_LEVEL", "info")
	cfg.Log.Format = getEnv("LOG_FORMAT", "json")

	cfg.Cache.ViewTTLSeconds = parseInt(getEnv("VIEW_CACHE_TTL", "60"), 60)

	cfg.Templates.Dir = getEnv("TEMPLATE_DIR", "templates")
	cfg.Templates.MonthlyFile = getEnv("TEMPLATE_MONTHLY_FILE", "monthly_report.xlsx")
	cfg.Templates.MonthlySheet = getEnv("TEMPLATE_MONTHLY_SHEET", "月次報告")
	cfg.Templates.MonthlyStyleRow = parseInt(getEnv("TEMPLATE_MONTHLY_STYLE_ROW", "4"), 4)
	cfg.Templates.RecordFile = getEnv("TEMPLATE_RECORD_FILE", "consultation_record.xlsx")
	cfg.Templates.RecordSheet = getEnv("TEMPLATE_RECORD_SHEET", "相談記録票")

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseInt(s string, def int) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}
