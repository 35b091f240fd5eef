package config

import (
	"os"
	"path/filepath"
	"strconv"
)

type ServerConfig struct {
	Port string
}

type DBConfig struct {
	Path string // lokasi file sqlite
}

// LoadDBConfig menentukan lokasi file database.
// Mode development menyimpan pos.db di working directory, mode production
// (aplikasi yang sudah dipaketkan) menyimpannya di folder resources milik shell.
// POS_DB_PATH selalu menang jika di-set.
func LoadDBConfig() DBConfig {
	path := "pos.db"
	if GetEnv("APP_ENV", "development") == "production" {
		path = filepath.Join(GetEnv("RESOURCES_PATH", "."), "pos.db")
	}
	if envPath := os.Getenv("POS_DB_PATH"); envPath != "" {
		path = envPath
	}
	return DBConfig{Path: path}
}

func LoadServerConfig(defaultPort string) ServerConfig {
	port := defaultPort
	if envPort := os.Getenv("SERVER_PORT"); envPort != "" {
		port = envPort
	}
	return ServerConfig{Port: ":" + port}
}

type LowStockConfig struct {
	Threshold int
	CronSpec  string // format dengan field detik (robfig/cron WithSeconds)
}

func LoadLowStockConfig() LowStockConfig {
	return LowStockConfig{
		Threshold: GetEnvAsInt("LOW_STOCK_THRESHOLD", 5),
		CronSpec:  GetEnv("LOW_STOCK_CRON_SPEC", "0 */30 * * * *"),
	}
}

// Helper untuk mendapatkan Environment Variable jika ada, atau default
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func GetEnvAsInt(key string, fallback int) int {
	strValue := GetEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
