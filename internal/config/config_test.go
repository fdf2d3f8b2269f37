package config

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func envOf(vars map[string]string) func(string) string {
	return func(key string) string { return vars[key] }
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want Config
	}{
		{
			name: "defaults",
			env:  nil,
			want: Config{Addr: DefaultAddr, AllowedOrigins: []string{DefaultAllowedOrigin}, LogLevel: DefaultLogLevel},
		},
		{
			name: "overrides",
			env: map[string]string{
				EnvAddr:           "127.0.0.1:8080",
				EnvAllowedOrigins: "https://a.example, https://b.example,",
				EnvLogLevel:       "DEBUG",
			},
			want: Config{
				Addr:           "127.0.0.1:8080",
				AllowedOrigins: []string{"https://a.example", "https://b.example"},
				LogLevel:       "debug",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := load(envOf(tt.env))
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("config mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"address without port", map[string]string{EnvAddr: "localhost"}},
		{"only separators", map[string]string{EnvAllowedOrigins: " , "}},
		{"unknown level", map[string]string{EnvLogLevel: "verbose"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := load(envOf(tt.env)); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("err = %v; want ErrInvalidConfig", err)
			}
		})
	}
}
