package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/atinyakov/go-movie-gateway/internal/config"
	"github.com/atinyakov/go-movie-gateway/internal/gateway"
)

func env(kv map[string]string) func(string) string {
	return func(k string) string {
		return kv[k]
	}
}

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("no env, no config", func(t *testing.T) {
		opts, err := config.Load(nil, env(nil))
		require.NoError(t, err)

		require.Equal(t, "localhost:8080", opts.Port)
		require.Equal(t, "", opts.GRPCAddress)
		require.Equal(t, gateway.DefaultBaseURL, opts.SourcesBaseURL)
		require.Zero(t, opts.UpstreamTimeout)
		require.Equal(t, "info", opts.LogLevel)
		require.False(t, opts.EnableHTTPS)
		require.False(t, opts.EnablePprof)
		require.Equal(t, "", opts.Config)
		require.Equal(t, gateway.DefaultSources(gateway.DefaultBaseURL), opts.Sources())
	})

	t.Run("flags", func(t *testing.T) {
		opts, err := config.Load([]string{"-a", ":9090", "-g", ":3200", "-t", "5s", "-l", "debug", "-p"}, env(nil))
		require.NoError(t, err)

		require.Equal(t, ":9090", opts.Port)
		require.Equal(t, ":3200", opts.GRPCAddress)
		require.Equal(t, 5*time.Second, opts.UpstreamTimeout)
		require.Equal(t, "debug", opts.LogLevel)
		require.True(t, opts.EnablePprof)
	})

	t.Run("env overrides flags", func(t *testing.T) {
		opts, err := config.Load([]string{"-a", ":9090"}, env(map[string]string{
			"SERVER_ADDRESS":   "127.0.0.1:9999",
			"GRPC_ADDRESS":     ":3201",
			"SOURCES_BASE_URL": "http://example.com/videos",
			"UPSTREAM_TIMEOUT": "2s",
			"LOG_LEVEL":        "warn",
			"ENABLE_PPROF":     "true",
		}))
		require.NoError(t, err)

		require.Equal(t, "127.0.0.1:9999", opts.Port)
		require.Equal(t, ":3201", opts.GRPCAddress)
		require.Equal(t, "http://example.com/videos", opts.SourcesBaseURL)
		require.Equal(t, 2*time.Second, opts.UpstreamTimeout)
		require.Equal(t, "warn", opts.LogLevel)
		require.True(t, opts.EnablePprof)
		require.Equal(t, "http://example.com/videos/AllMovies.json", opts.Sources().AllMovies)
	})

	t.Run("json config file", func(t *testing.T) {
		path := writeConfig(t, "cfg.json", `{
			"server_address": "10.0.0.1:8081",
			"grpc_address": ":3200",
			"genre_sources": ["http://a/1.json", "http://a/2.json"],
			"all_movies_source": "http://a/all.json",
			"upstream_timeout": "1m",
			"log_level": "error",
			"enable_pprof": true
		}`)

		opts, err := config.Load(nil, env(map[string]string{"CONFIG": path}))
		require.NoError(t, err)

		require.Equal(t, path, opts.Config)
		require.Equal(t, "10.0.0.1:8081", opts.Port)
		require.Equal(t, ":3200", opts.GRPCAddress)
		require.Equal(t, time.Minute, opts.UpstreamTimeout)
		require.Equal(t, "error", opts.LogLevel)
		require.True(t, opts.EnablePprof)
		require.Equal(t, gateway.Sources{
			Genres:    []string{"http://a/1.json", "http://a/2.json"},
			AllMovies: "http://a/all.json",
		}, opts.Sources())
	})

	t.Run("yaml config file", func(t *testing.T) {
		path := writeConfig(t, "cfg.yaml", `
server_address: ":7000"
sources_base_url: "https://cdn.example.com/catalogs"
enable_https: true
tls_hosts:
  - movies.example.com
`)

		opts, err := config.Load([]string{"-c", path}, env(nil))
		require.NoError(t, err)

		require.Equal(t, ":7000", opts.Port)
		require.True(t, opts.EnableHTTPS)
		require.Equal(t, []string{"movies.example.com"}, opts.TLSHosts)
		require.Equal(t, "https://cdn.example.com/catalogs/action.json", opts.Sources().Genres[0])
	})

	t.Run("flags override config file", func(t *testing.T) {
		path := writeConfig(t, "cfg.json", `{"server_address": ":7000", "log_level": "error"}`)

		opts, err := config.Load([]string{"-c", path, "-a", ":7001"}, env(nil))
		require.NoError(t, err)

		require.Equal(t, ":7001", opts.Port)
		require.Equal(t, "error", opts.LogLevel, "unset flag must not reset file value")
	})
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  map[string]string
		file string
	}{
		{name: "unknown flag", args: []string{"-z"}},
		{name: "bad timeout env", env: map[string]string{"UPSTREAM_TIMEOUT": "soon"}},
		{name: "negative timeout", args: []string{"-t", "-1s"}},
		{name: "bad bool env", env: map[string]string{"ENABLE_HTTPS": "maybe"}},
		{name: "bad base url", env: map[string]string{"SOURCES_BASE_URL": "ftp://example.com"}},
		{name: "https without hosts", args: []string{"-s"}},
		{name: "missing config file", env: map[string]string{"CONFIG": "/does/not/exist.json"}},
		{name: "broken config file", file: `{"server_address": `},
		{name: "bad timeout in file", file: `{"upstream_timeout": "later"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := tt.env
			if tt.file != "" {
				e = map[string]string{"CONFIG": writeConfig(t, "cfg.json", tt.file)}
			}

			_, err := config.Load(tt.args, env(e))
			require.Error(t, err)
		})
	}
}
