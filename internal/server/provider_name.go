package server

import (
	"strings"

	"github.com/preston-bernstein/afl-teams-service/internal/providers"
)

// normalizeProviderName prefers the name the provider reports, so an unknown PROVIDER
// that fell back to fixture is still labelled "fixture".
func normalizeProviderName(raw string, provider providers.DataProvider) string {
	if named, ok := provider.(providers.Named); ok {
		if name := named.Name(); name != "" {
			return name
		}
	}
	if raw = strings.TrimSpace(raw); raw != "" {
		return strings.ToLower(raw)
	}
	return "provider"
}
