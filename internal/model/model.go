package model

// Environment identifies the deployment environment.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

// Scope carries per-invocation identity through handlers and logging.
type Scope struct {
	InvocationID string // unique per tool call
	ClientIP     string // source of the upstream session connection
}
