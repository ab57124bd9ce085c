package model

// Scope carries per-request identity. Populated by the delivery layer and
// threaded through every use case call.
type Scope struct {
	UserID string
}

// Environment represents the deployment environment.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)
