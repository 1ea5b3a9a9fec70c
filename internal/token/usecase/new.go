package usecase

import (
	"time"

	"token-srv/internal/token"
	"token-srv/pkg/jwt"
	"token-srv/pkg/log"

	"github.com/prometheus/client_golang/prometheus"
)

type implUseCase struct {
	l       log.Logger
	jwtMgr  jwt.Manager
	metrics *metrics
	now     func() time.Time
}

// New creates the token UseCase. Metrics are registered on reg; a nil reg
// keeps them unregistered.
func New(l log.Logger, jwtMgr jwt.Manager, reg prometheus.Registerer) token.UseCase {
	return &implUseCase{
		l:       l,
		jwtMgr:  jwtMgr,
		metrics: newMetrics(reg),
		now:     time.Now,
	}
}
