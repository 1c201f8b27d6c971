// ABOUTME: Status handler reports configuration problems and feature flags
// ABOUTME: Missing upstream keys show up here instead of failing startup

package handlers

import (
	"context"
	"net/http"
	"sort"

	"github.com/danielgtaylor/huma/v2"

	"newsdesk-api/api/dto/responses"
	"newsdesk-api/pkg/featureflags"
)

// StateReporter reports a component state, e.g. a circuit breaker
type StateReporter interface {
	State() string
}

// StatusConfig is the static part of the status report
type StatusConfig struct {
	MissingSources []string
	Store          string
	Flags          featureflags.Manager
	Breakers       map[string]StateReporter
}

// StatusHandler handles status requests
type StatusHandler struct {
	cfg StatusConfig
}

// NewStatusHandler creates a new status handler
func NewStatusHandler(cfg StatusConfig) *StatusHandler {
	missing := append([]string(nil), cfg.MissingSources...)
	sort.Strings(missing)
	cfg.MissingSources = missing
	return &StatusHandler{cfg: cfg}
}

// RegisterRoutes registers the status route
func (h *StatusHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "getStatus",
		Method:      http.MethodGet,
		Path:        "/status",
		Summary:     "Service status",
		Description: "Lists configuration still required by upstream sources and the state of feature flags",
		Tags:        []string{"Status"},
	}, h.Status)
}

// StatusOutput is the status report
type StatusOutput struct {
	Body responses.StatusResponse
}

// Status handles GET /status
func (h *StatusHandler) Status(ctx context.Context, input *struct{}) (*StatusOutput, error) {
	body := responses.StatusResponse{
		Status:         "ok",
		MissingSources: h.cfg.MissingSources,
		Flags:          map[string]bool{},
		Store:          h.cfg.Store,
	}

	if len(body.MissingSources) > 0 {
		body.Status = "degraded"
	} else {
		body.MissingSources = []string{}
	}

	if h.cfg.Flags != nil {
		for _, flag := range featureflags.All() {
			body.Flags[string(flag)] = h.cfg.Flags.IsEnabled(ctx, flag)
		}
	}

	if len(h.cfg.Breakers) > 0 {
		body.Breakers = make(map[string]string, len(h.cfg.Breakers))
		for name, breaker := range h.cfg.Breakers {
			body.Breakers[name] = breaker.State()
		}
	}

	return &StatusOutput{Body: body}, nil
}
