package ratelimit

import "strings"

// MatchEndpoint resolves the budget for a request path and method, or nil
// when only the default budget applies. Exact matches win; a configured
// path ending in "/" then matches by prefix, so "/analyses/" covers the
// per-record toggle route without enumerating record IDs. The health
// check is always unlimited.
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	if path == "/health" && method == "GET" {
		return &EndpointConfig{}
	}

	var prefix *EndpointConfig
	for i := range configs {
		route := &configs[i]
		if route.Method != method {
			continue
		}
		if route.Path == path {
			return route
		}
		if prefix == nil && strings.HasSuffix(route.Path, "/") && strings.HasPrefix(path, route.Path) {
			prefix = route
		}
	}
	return prefix
}
