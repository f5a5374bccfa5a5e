package health

import (
	"context"

	healthgateway "weather-dashboard/internal/domain/gateway/health"
	"weather-dashboard/internal/domain/model"
)

type healthUseCase struct {
	cacheGateway   healthgateway.ComponentGateway
	historyGateway healthgateway.ComponentGateway
}

func NewHealthUseCase(cacheGateway healthgateway.ComponentGateway, historyGateway healthgateway.ComponentGateway) UseCase {
	return &healthUseCase{
		cacheGateway:   cacheGateway,
		historyGateway: historyGateway,
	}
}

// CheckHealth is DOWN when any component is DOWN. Disabled components do not count.
func (useCase *healthUseCase) CheckHealth(ctx context.Context) model.HealthResponse {
	cacheHealth := useCase.cacheGateway.Health(ctx)
	historyHealth := useCase.historyGateway.Health(ctx)

	overallStatus := model.StatusUp
	if cacheHealth.Status == model.StatusDown || historyHealth.Status == model.StatusDown {
		overallStatus = model.StatusDown
	}

	return model.HealthResponse{
		Status:  overallStatus,
		Cache:   cacheHealth,
		History: historyHealth,
	}
}
