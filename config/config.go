package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

var (
	TLS_DOMAINS        = "" // e.g. "example.com,example2.com"
	MYSQL_DSN          = "" // MySQL will be used if this is set
	SQLITE_FILE        = "gallery.db" // SQLite will be used if MYSQL_DSN is not configured
	BIND_ADDRESS       = "0.0.0.0:8080"
	SESSION_KEY        = "change-me-in-production"
	DEBUG_MODE         = true
	DEFAULT_BUCKET_DIR = "" // Used for creating the initial bucket on first start
	MAX_UPLOAD_SIZE    = 2 * 1024 * 1024 // bytes
	PLACEHOLDER_IMAGE  = "https://via.placeholder.com/100"
)

func init() {
	// Optional .env next to the binary; real env vars take precedence
	_ = godotenv.Load()

	readEnvString("TLS_DOMAINS", &TLS_DOMAINS)
	readEnvString("MYSQL_DSN", &MYSQL_DSN)
	readEnvString("SQLITE_FILE", &SQLITE_FILE)
	readEnvString("BIND_ADDRESS", &BIND_ADDRESS)
	readEnvString("SESSION_KEY", &SESSION_KEY)
	readEnvBool("DEBUG_MODE", &DEBUG_MODE)
	readEnvString("DEFAULT_BUCKET_DIR", &DEFAULT_BUCKET_DIR)
	readEnvInt("MAX_UPLOAD_SIZE", &MAX_UPLOAD_SIZE)
	readEnvString("PLACEHOLDER_IMAGE", &PLACEHOLDER_IMAGE)
}

func readEnvString(name string, value *string) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	*value = v
}

func readEnvBool(name string, value *bool) {
	v := strings.ToLower(os.Getenv(name))
	if v == "true" || v == "1" || v == "yes" || v == "on" {
		*value = true
	} else if v == "false" || v == "0" || v == "no" || v == "off" {
		*value = false
	}
}

func readEnvInt(name string, value *int) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	f, err := strconv.Atoi(v)
	if err != nil {
		return
	}
	*value = f
}
