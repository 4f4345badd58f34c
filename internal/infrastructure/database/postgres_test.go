package database

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolConfig_EffectiveSSLMode(t *testing.T) {
	tests := []struct {
		name string
		cfg  PoolConfig
		want string
	}{
		{"defaults to strict validation", PoolConfig{}, "verify-full"},
		{"explicit mode is kept", PoolConfig{SSLMode: "verify-ca"}, "verify-ca"},
		{"disable is allowed", PoolConfig{SSLMode: "disable"}, "disable"},
		{"insecure opt-in keeps encryption", PoolConfig{SSLMode: "verify-full", InsecureSkipVerify: true}, "require"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.EffectiveSSLMode())
		})
	}
}

func TestPoolConfig_URL(t *testing.T) {
	cfg := PoolConfig{
		Host:     "db.internal",
		Port:     5433,
		User:     "blog",
		Password: "p@ss/word",
		Database: "blogdb",
	}

	u, err := url.Parse(cfg.URL())
	require.NoError(t, err)

	assert.Equal(t, "postgres", u.Scheme)
	assert.Equal(t, "db.internal:5433", u.Host)
	assert.Equal(t, "/blogdb", u.Path)
	assert.Equal(t, "blog", u.User.Username())
	password, ok := u.User.Password()
	assert.True(t, ok)
	assert.Equal(t, "p@ss/word", password)
	assert.Equal(t, "verify-full", u.Query().Get("sslmode"))
}

func TestPoolConfig_URL_IPv6Host(t *testing.T) {
	cfg := PoolConfig{Host: "::1", Port: 5432, User: "u", Password: "p", Database: "d", SSLMode: "disable"}

	u, err := url.Parse(cfg.URL())
	require.NoError(t, err)
	assert.Equal(t, "::1", u.Hostname())
	assert.Equal(t, "5432", u.Port())
}
