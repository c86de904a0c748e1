package health

import "lotteryfrontend.app/internal/ports"

const (
	ServiceName     = "lottery-chatbot-frontend"
	LivenessMessage = "Lottery chatbot website is running correctly"
	StatusOK        = "ok"
)

// Status is the fixed liveness body
type Status struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Message string `json:"message"`
}

// Liveness returns the constant liveness status. It never touches the filesystem.
func Liveness() Status {
	return Status{
		Status:  StatusOK,
		Service: ServiceName,
		Message: LivenessMessage,
	}
}

// Report is the readiness result across all checked components
type Report struct {
	Ready      bool                          `json:"ready"`
	Service    string                        `json:"service"`
	Components map[string]ports.HealthStatus `json:"components"`
}
