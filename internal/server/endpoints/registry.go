package endpoints

import (
	"github.com/pdftoolbox/pdftoolbox/internal/api"
)

// All returns all endpoint instances.
func All() []api.Endpoint {
	return []api.Endpoint{
		// Health endpoint
		&HealthEndpoint{},

		// Document operation endpoints
		&MergeEndpoint{},
		&DeletePagesEndpoint{},
		&ExtractPagesEndpoint{},

		// Static files (catch-all, must be last)
		&StaticEndpoint{},
	}
}
