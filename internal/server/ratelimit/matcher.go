package ratelimit

import (
	"strings"
)

// MatchEndpoint matches a request path and method to an endpoint
// configuration. Path matching supports prefix matching (e.g. "/v1/roles/"
// matches "/v1/roles/{id}/evaluations"). Returns nil when no rule matches.
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	// Health checks are never limited
	if path == "/health" && method == "GET" {
		return &EndpointConfig{Limit: 0}
	}

	// Exact match wins over prefix match
	for i := range configs {
		config := &configs[i]
		if config.Path == path && config.Method == method {
			return config
		}
	}

	for i := range configs {
		config := &configs[i]
		if config.Method == method && strings.HasSuffix(config.Path, "/") && strings.HasPrefix(path, config.Path) {
			return config
		}
	}

	return nil
}
