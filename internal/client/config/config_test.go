package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaults() Config {
	var c Config
	c.LoadDefaults()
	return c
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	c := defaults()

	assert.Equal(t, "http://127.0.0.1:5000/api/v1", c.APIURL)
	assert.Equal(t, "hotelpanel.db", c.DBPath)
	assert.Equal(t, 10*time.Second, c.RequestTimeout)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, "text", c.LogFormat)
	require.NoError(t, c.Validate())
}

func TestLoad_NoArgsGivesDefaults(t *testing.T) {
	cfg, err := load(nil)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(defaults(), *cfg))
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    func(c *Config)
		wantErr bool
	}{
		{
			name: "all flags",
			args: []string{"-a", "http://10.0.0.2:5000/api/v1", "-d", "/tmp/s.db", "-t", "30", "-l", "debug", "-f", "json"},
			want: func(c *Config) {
				c.APIURL = "http://10.0.0.2:5000/api/v1"
				c.DBPath = "/tmp/s.db"
				c.RequestTimeout = 30 * time.Second
				c.LogLevel = "debug"
				c.LogFormat = "json"
			},
		},
		{
			name: "foreign flags are ignored",
			args: []string{"-x", "1", "-a=http://h/api", "-verbose"},
			want: func(c *Config) { c.APIURL = "http://h/api" },
		},
		{
			name:    "non-numeric timeout",
			args:    []string{"-t", "abc"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaults()
			err := parseFlags(&cfg, tt.args)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)

			want := defaults()
			tt.want(&want)
			if diff := cmp.Diff(want, cfg); diff != "" {
				t.Fatalf("config mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseFile_JSON(t *testing.T) {
	path := writeFile(t, "cfg.json", `{"api_url":"http://json:1/api","request_timeout":"1500ms","log_format":"zap"}`)

	cfg := defaults()
	require.NoError(t, parseFile(&cfg, path))

	assert.Equal(t, "http://json:1/api", cfg.APIURL)
	assert.Equal(t, 1500*time.Millisecond, cfg.RequestTimeout)
	assert.Equal(t, "zap", cfg.LogFormat)
	assert.Equal(t, "hotelpanel.db", cfg.DBPath, "missing keys keep defaults")
}

func TestParseFile_YAML(t *testing.T) {
	path := writeFile(t, "cfg.yaml", "api_url: https://hotel.example/api/v1\ndb_path: /var/lib/hotelctl/s.db\nrequest_timeout: 5000000000\nlog_level: warn\n")

	cfg := defaults()
	require.NoError(t, parseFile(&cfg, path))

	assert.Equal(t, "https://hotel.example/api/v1", cfg.APIURL)
	assert.Equal(t, "/var/lib/hotelctl/s.db", cfg.DBPath)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestParseFile_Errors(t *testing.T) {
	cfg := defaults()

	require.NoError(t, parseFile(&cfg, ""), "no file is a no-op")
	require.Error(t, parseFile(&cfg, filepath.Join(t.TempDir(), "missing.json")))
	require.Error(t, parseFile(&cfg, writeFile(t, "bad.json", `{ this is not valid json`)))
	require.Error(t, parseFile(&cfg, writeFile(t, "bad.yml", "request_timeout: soon\n")))
}

func TestLoad_Precedence(t *testing.T) {
	path := writeFile(t, "cfg.yml", "api_url: http://file/api\nlog_level: debug\nrequest_timeout: 1500ms\n")

	cfg, err := load([]string{"-c", path, "-a", "http://flag/api"})
	require.NoError(t, err)

	assert.Equal(t, "http://flag/api", cfg.APIURL, "flags beat the file")
	assert.Equal(t, "debug", cfg.LogLevel, "file beats defaults")
	assert.Equal(t, 1500*time.Millisecond, cfg.RequestTimeout, "unset -t keeps the file value")
}

func TestLoad_Invalid(t *testing.T) {
	_, err := load([]string{"-a", "not a url", "-f", "xml", "-t", "0"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "APIURL must be a valid URL")
	assert.Contains(t, err.Error(), "LogFormat must be one of: text json zap")
	assert.Contains(t, err.Error(), "RequestTimeout must be positive")
}
