package health

import (
	"context"

	"weather-dashboard/internal/domain/model"
)

// ComponentGateway reports the health of one backing component.
type ComponentGateway interface {
	Health(ctx context.Context) model.ComponentHealthStatus
}
