package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/deppfellow/portfolio-contact/internal/config"
	"github.com/rs/zerolog"
)

func TestNewLoggerProductionWritesJSON(t *testing.T) {
	cfg := config.DefaultObservabilityConfig()
	cfg.Environment = "production"

	var buf bytes.Buffer
	log := newLogger(cfg, nil, &buf)
	log.Info().Str("port", "5000").Msg("starting server")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected JSON log line, got %q: %v", buf.String(), err)
	}
	if entry["service"] != config.ServiceName {
		t.Fatalf("expected service field, got %v", entry["service"])
	}
	if entry["environment"] != "production" {
		t.Fatalf("expected environment field, got %v", entry["environment"])
	}
	if entry["message"] != "starting server" {
		t.Fatalf("unexpected message: %v", entry["message"])
	}
}

func TestNewLoggerRespectsLevel(t *testing.T) {
	cfg := config.DefaultObservabilityConfig()
	cfg.Environment = "production"
	cfg.Logging.Level = "warn"

	var buf bytes.Buffer
	log := newLogger(cfg, nil, &buf)
	log.Info().Msg("hidden")
	log.Warn().Msg("visible")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info line should be filtered at warn level: %q", out)
	}
	if !strings.Contains(out, "visible") {
		t.Fatalf("warn line missing: %q", out)
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"debug": zerolog.DebugLevel,
		"info":  zerolog.InfoLevel,
		"warn":  zerolog.WarnLevel,
		"error": zerolog.ErrorLevel,
		"":      zerolog.InfoLevel,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestLoggerServiceWithoutLicenseKey(t *testing.T) {
	svc := NewLoggerService(config.DefaultObservabilityConfig())
	if svc.GetApplication() != nil {
		t.Fatalf("expected no New Relic application without a license key")
	}
	svc.Shutdown()

	var nilService *LoggerService
	if nilService.GetApplication() != nil {
		t.Fatalf("nil service must report no application")
	}
}
