package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsdesk-api/api/dto/responses"
	"newsdesk-api/pkg/featureflags"
)

type fixedState string

func (s fixedState) State() string { return string(s) }

func getStatus(t *testing.T, cfg StatusConfig) responses.StatusResponse {
	t.Helper()
	_, api := humatest.New(t)
	NewStatusHandler(cfg).RegisterRoutes(api)

	resp := api.Get("/status")
	require.Equal(t, http.StatusOK, resp.Code)

	var status responses.StatusResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &status))
	return status
}

func TestStatusHandler_Degraded(t *testing.T) {
	status := getStatus(t, StatusConfig{
		MissingSources: []string{"NEWSPAPER_API_KEY", "HEADLINES_API_KEY"},
		Store:          "sqlite",
		Flags:          featureflags.NewStaticManager(map[featureflags.FeatureFlag]bool{featureflags.SearchEnabled: true}),
		Breakers:       map[string]StateReporter{"NewsAPI": fixedState("open")},
	})

	assert.Equal(t, "degraded", status.Status)
	assert.Equal(t, []string{"HEADLINES_API_KEY", "NEWSPAPER_API_KEY"}, status.MissingSources)
	assert.Equal(t, "sqlite", status.Store)
	assert.True(t, status.Flags["search_enabled"])
	assert.False(t, status.Flags["breaker_enabled"])
	assert.Len(t, status.Flags, len(featureflags.All()))
	assert.Equal(t, "open", status.Breakers["NewsAPI"])
}

func TestStatusHandler_OK(t *testing.T) {
	status := getStatus(t, StatusConfig{Store: "memory"})

	assert.Equal(t, "ok", status.Status)
	assert.NotNil(t, status.MissingSources)
	assert.Empty(t, status.MissingSources)
	assert.Empty(t, status.Breakers)
}
