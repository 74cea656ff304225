// Package config manages environment variables.
//
// It reads variables from the `.env` file and the process environment,
// loads them into structured Go types (struct), and validates that
// required values are present so they can be reused across the
// application runtime.
//
// Responsibilities:
//   - Load environment variables (optionally from a `.env` file).
//   - Map env vars into a structured Go config (structs).
//   - Validate required values so the app fails fast on bad/missing config.
//   - Provide defaults for optional settings (port, CORS origins, observability).
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: if a `.env` file exists it is loaded into the
	// process env before any variable is read.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

/*
	Key mapping used by LoadConfig:

	- A handful of well-known, unprefixed variables are recognized directly:
	    PORT           -> server.port
	    RESEND_API_KEY -> integration.resend_api_key
	    EMAIL_USER     -> contact.recipient
	- Everything else is read with the CONTACT_ prefix. Keys are lowercased,
	  the prefix is removed and "." marks nesting, e.g.
	    CONTACT_SERVER.CORS_ALLOWED_ORIGINS -> server.cors_allowed_origins
*/

// EnvPrefix is the prefix for every non-aliased configuration variable.
const EnvPrefix = "CONTACT_"

// envAliases maps the unprefixed variables the service has always accepted
// onto their koanf keys.
var envAliases = map[string]string{
	"PORT":           "server.port",
	"RESEND_API_KEY": "integration.resend_api_key",
	"EMAIL_USER":     "contact.recipient",
}

const (
	DefaultPort         = "5000"
	DefaultEnv          = "development"
	DefaultFrom         = "Portfolio Contact <onboarding@resend.dev>"
	DefaultReadTimeout  = 10
	DefaultWriteTimeout = 30
	DefaultIdleTimeout  = 60
)

// DefaultCORSAllowedOrigins are the only browser origins allowed to call
// the API when no explicit list is configured.
var DefaultCORSAllowedOrigins = []string{
	"https://hafsa-lac.vercel.app",
	"http://localhost:5173",
}

// Config is the root configuration object for the application.
//
// The `koanf:"..."` tags specify where koanf maps values from and the
// `validate:"..."` tags are enforced by go-playground/validator.
//
// Observability is a pointer because it is optional. If not provided,
// defaults are injected.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Integration   IntegrationConfig    `koanf:"integration" validate:"required"`
	Contact       ContactConfig        `koanf:"contact" validate:"required"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are expressed in seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"min=1"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"min=1"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"min=1"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required,min=1"`
}

// IntegrationConfig stores credentials for third-party providers.
type IntegrationConfig struct {
	ResendAPIKey string `koanf:"resend_api_key" validate:"required"`
}

// ContactConfig describes where contact submissions are delivered.
type ContactConfig struct {
	// Recipient is the operator's mailbox that receives every submission.
	Recipient string `koanf:"recipient" validate:"required,email"`

	// From is the fixed sender identity. Resend requires it to be a
	// verified domain or its onboarding address.
	From string `koanf:"from" validate:"required"`
}

// LoadConfig loads configuration from environment variables on top of the
// defaults, validates it and returns the resulting config.
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	for key, value := range defaultValues() {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("could not set default %s: %w", key, err)
		}
	}

	err := k.Load(env.ProviderWithValue("", ".", envValue), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load env variables: %w", err)
	}

	mainConfig := &Config{}
	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("could not unmarshal main config: %w", err)
	}

	mainConfig.Server.CORSAllowedOrigins = trimOrigins(mainConfig.Server.CORSAllowedOrigins)
	if len(mainConfig.Server.CORSAllowedOrigins) == 0 {
		mainConfig.Server.CORSAllowedOrigins = append([]string(nil), DefaultCORSAllowedOrigins...)
	}

	validate := validator.New()
	if err := validate.Struct(mainConfig); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// Service name and environment are forced so telemetry is labelled
	// consistently regardless of what was set.
	mainConfig.Observability.ServiceName = ServiceName
	mainConfig.Observability.Environment = mainConfig.Primary.Env
	mainConfig.Observability.Logging.Level = mainConfig.Observability.GetLogLevel()

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}

	return mainConfig, nil
}

// defaultValues are loaded into koanf before the environment, so a variable
// only overrides its own key. The log level has no default here;
// GetLogLevel derives it from the environment name.
func defaultValues() map[string]interface{} {
	observability := DefaultObservabilityConfig()

	return map[string]interface{}{
		"primary.env":                 DefaultEnv,
		"server.port":                 DefaultPort,
		"server.read_timeout":         DefaultReadTimeout,
		"server.write_timeout":        DefaultWriteTimeout,
		"server.idle_timeout":         DefaultIdleTimeout,
		"server.cors_allowed_origins": append([]string(nil), DefaultCORSAllowedOrigins...),
		"contact.from":                DefaultFrom,

		"observability.logging.format":                        observability.Logging.Format,
		"observability.new_relic.app_log_forwarding_enabled":  observability.NewRelic.AppLogForwardingEnabled,
		"observability.new_relic.distributed_tracing_enabled": observability.NewRelic.DistributedTracingEnabled,
		"observability.new_relic.debug_logging":               observability.NewRelic.DebugLogging,
	}
}

// corsOriginsKey holds a comma-separated list in the environment.
const corsOriginsKey = "server.cors_allowed_origins"

// envValue maps an environment variable onto its koanf key and value.
func envValue(name, value string) (string, interface{}) {
	key := mapEnvKey(name)
	if key == corsOriginsKey {
		return key, strings.Split(value, ",")
	}
	return key, value
}

// mapEnvKey turns an environment variable name into a koanf key.
// Returning "" tells koanf to skip the variable.
func mapEnvKey(s string) string {
	if key, ok := envAliases[s]; ok {
		return key
	}
	if !strings.HasPrefix(s, EnvPrefix) {
		return ""
	}
	return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
}

func trimOrigins(origins []string) []string {
	out := make([]string, 0, len(origins))
	for _, o := range origins {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
