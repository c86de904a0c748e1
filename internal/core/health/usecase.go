package health

import (
	"context"

	"lotteryfrontend.app/internal/ports"
	"lotteryfrontend.app/pkg/errors"
)

type UseCase struct {
	checker ports.SystemHealthChecker
	logger  ports.Logger
}

type UseCaseDependencies struct {
	Checker ports.SystemHealthChecker
	Logger  ports.Logger
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Checker == nil {
		return nil, errors.NewValidationError("health checker is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	return &UseCase{
		checker: deps.Checker,
		logger:  deps.Logger,
	}, nil
}

// Liveness is always ok while the process can answer
func (uc *UseCase) Liveness() Status {
	return Liveness()
}

// Readiness runs every component check; the service is ready only when all pass
func (uc *UseCase) Readiness(ctx context.Context) Report {
	components := uc.checker.CheckAll(ctx)

	ready := true
	for name, status := range components {
		if !status.IsHealthy() {
			ready = false
			uc.logger.Warn("Component not ready",
				ports.F("component", name),
				ports.F("error", status.Error))
		}
	}

	return Report{
		Ready:      ready,
		Service:    ServiceName,
		Components: components,
	}
}
