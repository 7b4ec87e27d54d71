package config

import (
	"strings"
	"testing"
)

func validConfig() *Config {
	return &Config{
		AppPort:   "8080",
		MySQLHost: "mysql",
		MySQLPort: "3306",
		MySQLDB:   "lenddesk",
		MySQLUser: "lenddesk",
		MySQLPass: "secret",
		RedisAddr: "redis:6379",
		JWTSecret: "hmac-secret",
	}
}

func TestValidate(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing mysql host", func(c *Config) { c.MySQLHost = "" }},
		{"bad mysql port", func(c *Config) { c.MySQLPort = "not-a-port" }},
		{"missing app port", func(c *Config) { c.AppPort = "" }},
		{"missing jwt secret", func(c *Config) { c.JWTSecret = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig()
			tt.mutate(c)
			if err := c.Validate(); err == nil {
				t.Fatal("want error, got nil")
			}
		})
	}
}

func TestMySQLDSN(t *testing.T) {
	dsn := validConfig().MySQLDSN()
	if !strings.HasPrefix(dsn, "lenddesk:secret@tcp(mysql:3306)/lenddesk?") {
		t.Fatalf("dsn = %s", dsn)
	}
	if !strings.Contains(dsn, "parseTime=true") {
		t.Fatalf("dsn missing parseTime: %s", dsn)
	}
}

func TestLoadDefaults(t *testing.T) {
	c := Load()
	if c.AppPort != "8080" {
		t.Fatalf("AppPort = %s", c.AppPort)
	}
	if c.IdempTTLSecs != 300 {
		t.Fatalf("IdempTTLSecs = %d", c.IdempTTLSecs)
	}
}
