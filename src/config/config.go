package config

import (
	"os"
	"regexp"
)

// Schema names end up interpolated into table prefixes and join clauses,
// so only plain identifiers are accepted. Anything else falls back to public.
var schemaNamePattern = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

const DEFAULT_SCHEMA = "public"

func GetDSN() string {
	return os.Getenv("DATABASE_URL")
}

func GetSchema() string {
	schema := os.Getenv("MAIN_DB_SCHEMA")
	if schema == "" || !schemaNamePattern.MatchString(schema) {
		return DEFAULT_SCHEMA
	}
	return schema
}

func GetJWTSecret() []byte {
	return []byte(os.Getenv("JWT_SECRET_KEY"))
}

func GetSMTPFrom() string {
	from := os.Getenv("SMTP_FROM")
	if from == "" {
		from = "noreply@transferd.local"
	}
	return from
}

const TRAVEL_DATE_FORMAT = "2006-01-02"
const TRAVEL_TIME_FORMAT = "15:04"
