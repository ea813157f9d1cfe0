package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetSchemaDefault(t *testing.T) {
	t.Setenv("MAIN_DB_SCHEMA", "")
	assert.Equal(t, "public", GetSchema())
}

func TestGetSchemaValid(t *testing.T) {
	t.Setenv("MAIN_DB_SCHEMA", "transfers_prod")
	assert.Equal(t, "transfers_prod", GetSchema())
}

func TestGetSchemaRejectsNonIdentifier(t *testing.T) {
	t.Setenv("MAIN_DB_SCHEMA", `bad";DROP TABLE users;--`)
	assert.Equal(t, "public", GetSchema())

	t.Setenv("MAIN_DB_SCHEMA", "1starts_with_digit")
	assert.Equal(t, "public", GetSchema())
}

func TestGetSMTPFromDefault(t *testing.T) {
	t.Setenv("SMTP_FROM", "")
	assert.Equal(t, "noreply@transferd.local", GetSMTPFrom())
}
