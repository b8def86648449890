package server

import "context"

type HealthChecker interface {
	Healthy(ctx context.Context) bool
}

// HealthCheckerFunc adapts a plain function to HealthChecker.
type HealthCheckerFunc func(ctx context.Context) bool

func (f HealthCheckerFunc) Healthy(ctx context.Context) bool {
	return f(ctx)
}

type OkHealthChecker struct {
}

func NewOkHealthChecker() *OkHealthChecker {
	return &OkHealthChecker{}
}

func (hc *OkHealthChecker) Healthy(ctx context.Context) bool {
	return true
}

// All is healthy when every dependency is. Checks stop at the first failure.
type All []HealthChecker

func (a All) Healthy(ctx context.Context) bool {
	for _, hc := range a {
		if hc != nil && !hc.Healthy(ctx) {
			return false
		}
	}
	return true
}
