// Package config provides functionality for managing configuration options
// for the application using command-line flags, environment variables and
// an optional JSON or YAML config file.
//
// Precedence, lowest first: built-in defaults, config file, explicitly set
// flags, environment variables.
package config

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/atinyakov/go-movie-gateway/internal/gateway"
)

// Options holds the configuration values for the application.
type Options struct {
	// Port defines the HTTP server's listening address (ip:port).
	Port string

	// GRPCAddress is the gRPC listening address. Empty disables gRPC.
	GRPCAddress string

	// SourcesBaseURL is the base the default source URLs are derived from.
	SourcesBaseURL string

	// GenreSources overrides the per-genre catalog URLs.
	GenreSources []string

	// AllMoviesSource overrides the consolidated catalog URL.
	AllMoviesSource string

	// UpstreamTimeout bounds each upstream request. Zero disables it.
	UpstreamTimeout time.Duration

	// LogLevel is a zap level name.
	LogLevel string

	// EnablePprof indicates whether to enable pprof for performance profiling.
	EnablePprof bool

	// EnableHTTPS indicates whether to serve HTTPS with autocert.
	EnableHTTPS bool

	// TLSHosts whitelists the domains autocert may request certificates for.
	TLSHosts []string

	// Config is the path of the config file, if any.
	Config string
}

// fileOptions mirrors the config file. Pointers tell "absent" from "zero".
type fileOptions struct {
	ServerAddress   *string  `json:"server_address" yaml:"server_address"`
	GRPCAddress     *string  `json:"grpc_address" yaml:"grpc_address"`
	SourcesBaseURL  *string  `json:"sources_base_url" yaml:"sources_base_url"`
	GenreSources    []string `json:"genre_sources" yaml:"genre_sources"`
	AllMoviesSource *string  `json:"all_movies_source" yaml:"all_movies_source"`
	UpstreamTimeout *string  `json:"upstream_timeout" yaml:"upstream_timeout"`
	LogLevel        *string  `json:"log_level" yaml:"log_level"`
	EnablePprof     *bool    `json:"enable_pprof" yaml:"enable_pprof"`
	EnableHTTPS     *bool    `json:"enable_https" yaml:"enable_https"`
	TLSHosts        []string `json:"tls_hosts" yaml:"tls_hosts"`
}

func defaults() *Options {
	return &Options{
		Port:           "localhost:8080",
		SourcesBaseURL: gateway.DefaultBaseURL,
		LogLevel:       "info",
	}
}

// Parse reads the process arguments and environment.
func Parse() (*Options, error) {
	return Load(os.Args[1:], os.Getenv)
}

// Load builds Options from args and getenv.
func Load(args []string, getenv func(string) string) (*Options, error) {
	options := defaults()
	flagged := *options

	fs := flag.NewFlagSet("gateway", flag.ContinueOnError)
	fs.StringVar(&flagged.Port, "a", options.Port, "run on ip:port server")
	fs.StringVar(&flagged.GRPCAddress, "g", options.GRPCAddress, "gRPC ip:port, empty disables gRPC")
	fs.StringVar(&flagged.SourcesBaseURL, "u", options.SourcesBaseURL, "base url of the catalog sources")
	fs.DurationVar(&flagged.UpstreamTimeout, "t", options.UpstreamTimeout, "upstream request timeout, 0 disables it")
	fs.StringVar(&flagged.LogLevel, "l", options.LogLevel, "log level")
	fs.BoolVar(&flagged.EnablePprof, "p", options.EnablePprof, "enable pprof")
	fs.BoolVar(&flagged.EnableHTTPS, "s", options.EnableHTTPS, "enable https")
	fs.StringVar(&flagged.Config, "c", options.Config, "path to config file (json or yaml)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	options.Config = flagged.Config
	if cfg := getenv("CONFIG"); cfg != "" {
		options.Config = cfg
	}

	if options.Config != "" {
		if err := loadFile(options.Config, options); err != nil {
			return nil, err
		}
	}

	// only flags given on the command line beat the config file
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "a":
			options.Port = flagged.Port
		case "g":
			options.GRPCAddress = flagged.GRPCAddress
		case "u":
			options.SourcesBaseURL = flagged.SourcesBaseURL
		case "t":
			options.UpstreamTimeout = flagged.UpstreamTimeout
		case "l":
			options.LogLevel = flagged.LogLevel
		case "p":
			options.EnablePprof = flagged.EnablePprof
		case "s":
			options.EnableHTTPS = flagged.EnableHTTPS
		}
	})

	if err := applyEnv(options, getenv); err != nil {
		return nil, err
	}

	if err := options.validate(); err != nil {
		return nil, err
	}

	return options, nil
}

func loadFile(path string, options *Options) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var fo fileOptions
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fo)
	default:
		err = json.Unmarshal(data, &fo)
	}
	if err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if fo.ServerAddress != nil {
		options.Port = *fo.ServerAddress
	}
	if fo.GRPCAddress != nil {
		options.GRPCAddress = *fo.GRPCAddress
	}
	if fo.SourcesBaseURL != nil {
		options.SourcesBaseURL = *fo.SourcesBaseURL
	}
	if len(fo.GenreSources) > 0 {
		options.GenreSources = fo.GenreSources
	}
	if fo.AllMoviesSource != nil {
		options.AllMoviesSource = *fo.AllMoviesSource
	}
	if fo.UpstreamTimeout != nil {
		d, err := time.ParseDuration(*fo.UpstreamTimeout)
		if err != nil {
			return fmt.Errorf("parse config %s: upstream_timeout: %w", path, err)
		}
		options.UpstreamTimeout = d
	}
	if fo.LogLevel != nil {
		options.LogLevel = *fo.LogLevel
	}
	if fo.EnablePprof != nil {
		options.EnablePprof = *fo.EnablePprof
	}
	if fo.EnableHTTPS != nil {
		options.EnableHTTPS = *fo.EnableHTTPS
	}
	if len(fo.TLSHosts) > 0 {
		options.TLSHosts = fo.TLSHosts
	}

	return nil
}

func applyEnv(options *Options, getenv func(string) string) error {
	if serverAddress := getenv("SERVER_ADDRESS"); serverAddress != "" {
		options.Port = serverAddress
	}

	if grpcAddress := getenv("GRPC_ADDRESS"); grpcAddress != "" {
		options.GRPCAddress = grpcAddress
	}

	if baseURL := getenv("SOURCES_BASE_URL"); baseURL != "" {
		options.SourcesBaseURL = baseURL
	}

	if timeout := getenv("UPSTREAM_TIMEOUT"); timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil {
			return fmt.Errorf("UPSTREAM_TIMEOUT: %w", err)
		}
		options.UpstreamTimeout = d
	}

	if level := getenv("LOG_LEVEL"); level != "" {
		options.LogLevel = level
	}

	if enablePprof := getenv("ENABLE_PPROF"); enablePprof != "" {
		v, err := strconv.ParseBool(enablePprof)
		if err != nil {
			return fmt.Errorf("ENABLE_PPROF: %w", err)
		}
		options.EnablePprof = v
	}

	if enableHTTPS := getenv("ENABLE_HTTPS"); enableHTTPS != "" {
		v, err := strconv.ParseBool(enableHTTPS)
		if err != nil {
			return fmt.Errorf("ENABLE_HTTPS: %w", err)
		}
		options.EnableHTTPS = v
	}

	return nil
}

func (o *Options) validate() error {
	if o.UpstreamTimeout < 0 {
		return errors.New("upstream timeout must not be negative")
	}

	s := o.Sources()
	for _, u := range append([]string{s.AllMovies}, s.Genres...) {
		parsed, err := url.ParseRequestURI(u)
		if err != nil {
			return fmt.Errorf("invalid source url %q: %w", u, err)
		}
		if parsed.Scheme != "http" && parsed.Scheme != "https" {
			return fmt.Errorf("invalid source url %q: scheme must be http or https", u)
		}
	}

	if o.EnableHTTPS && len(o.TLSHosts) == 0 {
		return errors.New("https requires tls_hosts in the config file")
	}

	return nil
}

// Sources resolves the catalog URLs: explicit lists win, the rest is
// derived from SourcesBaseURL.
func (o *Options) Sources() gateway.Sources {
	s := gateway.DefaultSources(o.SourcesBaseURL)

	if len(o.GenreSources) > 0 {
		s.Genres = append([]string(nil), o.GenreSources...)
	}
	if o.AllMoviesSource != "" {
		s.AllMovies = o.AllMoviesSource
	}

	return s
}
