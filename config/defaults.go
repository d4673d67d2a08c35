package config

import "time"

// DefaultConfig returns the built-in defaults. They are complete enough
// to run the service locally with the in-memory presence store and the
// compiled-in capability catalog.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            ":8080",
			MetricsAddr:     ":9090",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			ShutdownTimeout: 30 * time.Second,
			RateLimitRPS:    100,
			RateLimitBurst:  200,
		},
		Log: LogConfig{
			Level:            "info",
			Format:           "json",
			OutputPaths:      []string{"stdout"},
			EnableCaller:     true,
			EnableStacktrace: false,
		},
		Presence: PresenceConfig{
			Backend:      "memory",
			HeartbeatTTL: 30 * time.Second,
			Redis: RedisConfig{
				Addr:       "localhost:6379",
				DB:         0,
				KeyPrefix:  "agentmatch:presence:",
				MaxRetries: 3,
				PoolSize:   10,
			},
		},
		Routing: RoutingConfig{
			FallbackRole:    "command_fallback_agent",
			MinProficiency:  0.5,
			RequirePresence: false,
		},
		Telemetry: TelemetryConfig{
			Enabled:      false,
			OTLPEndpoint: "localhost:4317",
			ServiceName:  "agentmatch",
			SampleRate:   1.0,
		},
		Metrics: MetricsConfig{
			Enabled:   true,
			Namespace: "agentmatch",
		},
	}
}
