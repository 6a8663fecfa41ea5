package main

import (
	"testing"

	"github.com/pdftoolbox/pdftoolbox/internal/config"
)

func TestListenAddress(t *testing.T) {
	tests := []struct {
		name             string
		cfg              config.ServerCfg
		hostSet, portSet bool
		wantHost         string
		wantPort         string
	}{
		{
			name:     "config values used when flags are untouched",
			cfg:      config.ServerCfg{Host: "0.0.0.0", Port: "9090"},
			wantHost: "0.0.0.0",
			wantPort: "9090",
		},
		{
			name:     "explicit flags win over config",
			cfg:      config.ServerCfg{Host: "0.0.0.0", Port: "9090"},
			hostSet:  true,
			portSet:  true,
			wantHost: "127.0.0.1",
			wantPort: "8080",
		},
		{
			name:     "flag defaults when config is empty",
			cfg:      config.ServerCfg{},
			wantHost: "127.0.0.1",
			wantPort: "8080",
		},
		{
			name:     "mixed: config port with explicit host",
			cfg:      config.ServerCfg{Host: "0.0.0.0", Port: "9090"},
			hostSet:  true,
			wantHost: "127.0.0.1",
			wantPort: "9090",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			host, port := listenAddress(tt.cfg, "127.0.0.1", "8080", tt.hostSet, tt.portSet)
			if host != tt.wantHost {
				t.Errorf("host = %q, want %q", host, tt.wantHost)
			}
			if port != tt.wantPort {
				t.Errorf("port = %q, want %q", port, tt.wantPort)
			}
		})
	}
}
