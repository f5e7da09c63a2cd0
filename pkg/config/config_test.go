package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
server:
  listen: ":9090"
  timeout: 15s

database:
  dsn: "file:test.db?mode=rwc"
  max_open_conns: 3

weibo:
  cookie: "SUB=test-cookie"
  base_url: "https://example.com"
  page_delay: 500ms
  checkin_delay: 1s
  max_pages: 10

schedule:
  default_daily_time: "07:30"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Listen)
	assert.Equal(t, 15*time.Second, cfg.Server.Timeout)
	assert.Equal(t, "file:test.db?mode=rwc", cfg.Database.DSN)
	assert.Equal(t, 3, cfg.Database.MaxOpenConns)
	assert.Equal(t, "SUB=test-cookie", cfg.Weibo.Cookie)
	assert.Equal(t, "https://example.com", cfg.Weibo.BaseURL)
	assert.Equal(t, 500*time.Millisecond, cfg.Weibo.PageDelay)
	assert.Equal(t, time.Second, cfg.Weibo.CheckinDelay)
	assert.Equal(t, 10, cfg.Weibo.MaxPages)
	assert.Equal(t, "07:30", cfg.Schedule.DefaultDailyTime)
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
weibo:
  cookie: "SUB=test-cookie"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Listen)
	assert.Equal(t, 30*time.Second, cfg.Server.Timeout)
	assert.Equal(t, "file:chaohua.db?cache=shared&mode=rwc&_txlock=immediate", cfg.Database.DSN)
	assert.Equal(t, 10, cfg.Database.MaxOpenConns)
	assert.Equal(t, 5, cfg.Database.MaxIdleConns)
	assert.Equal(t, "https://m.weibo.cn", cfg.Weibo.BaseURL)
	assert.Contains(t, cfg.Weibo.UserAgent, "iPhone")
	assert.Equal(t, 300*time.Millisecond, cfg.Weibo.PageDelay)
	assert.Equal(t, 400*time.Millisecond, cfg.Weibo.CheckinDelay)
	assert.Equal(t, 50, cfg.Weibo.MaxPages)
	assert.Equal(t, "09:00", cfg.Schedule.DefaultDailyTime)
}

func TestLoad_EnvExpansion(t *testing.T) {
	t.Setenv("TEST_WEIBO_COOKIE", "SUB=from-env")

	path := writeConfig(t, `
weibo:
  cookie: "${TEST_WEIBO_COOKIE}"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "SUB=from-env", cfg.Weibo.Cookie)
}

func TestLoad_Failures(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load("/nonexistent/config.yml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "read config file")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := writeConfig(t, "weibo: [broken")
		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse config")
	})

	t.Run("missing cookie", func(t *testing.T) {
		path := writeConfig(t, `
server:
  listen: ":8080"
`)
		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "weibo.cookie is required")
	})

	t.Run("negative delay", func(t *testing.T) {
		path := writeConfig(t, `
weibo:
  cookie: "SUB=test"
  page_delay: -1s
`)
		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "pacing delays")
	})

	t.Run("short server timeout", func(t *testing.T) {
		path := writeConfig(t, `
server:
  timeout: 100ms
weibo:
  cookie: "SUB=test"
`)
		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "server timeout")
	})
}

func TestConfig_Accessors(t *testing.T) {
	path := writeConfig(t, `
server:
  listen: ":7070"
  timeout: 5s
weibo:
  cookie: "SUB=test"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	listen, timeout := cfg.GetServerConfig()
	assert.Equal(t, ":7070", listen)
	assert.Equal(t, 5*time.Second, timeout)

	wcfg := cfg.GetWeiboConfig()
	assert.Equal(t, "SUB=test", wcfg.Cookie)
}
