package app

import (
	"io"
	"log/slog"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"complyhub/internal/interactions"
	"complyhub/internal/platform/config"
	httptransport "complyhub/internal/transport/http"
	"complyhub/pkg/platform/apiclient/mocks"
	"complyhub/pkg/testutil"
)

func testConfig() config.Server {
	return config.Server{
		Addr:                 ":0",
		LogLevel:             "info",
		APIKey:               "test-key",
		CompanyLookupTimeout: time.Second,
		ScreeningTimeout:     time.Second,
		AuditTopic:           "complyhub.audit",
		AuditQueueSize:       8,
	}
}

func TestProofOfAddressNodeIsListedAndErrors(t *testing.T) {
	a, err := New(testConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	defer a.Close()

	rr := testutil.DoRequest(a.Handler(), testutil.NewRequest(t, http.MethodGet, "/interactions"))
	testutil.AssertStatusOK(t, rr)
	descriptors := testutil.UnmarshalResponse[[]interactions.Descriptor](t, rr)
	names := []string{}
	for _, d := range *descriptors {
		names = append(names, d.Name)
	}
	assert.Equal(t, []string{interactions.AMLScreeningNode, interactions.CompanyLookupNode, interactions.ProofOfAddressNode}, names)

	rr = testutil.DoRequest(a.Handler(), testutil.NewJSONRequest(t, http.MethodPost,
		"/interactions/ProofOfAddressCheck/run", httptransport.RunRequest{Attributes: map[string]string{"clientId": "c1"}}))
	testutil.AssertStatusOK(t, rr)
	exec := testutil.UnmarshalResponse[interactions.Execution](t, rr)
	assert.Equal(t, "error", exec.Branch)
	require.NotNil(t, exec.Error)
	assert.Equal(t, interactions.CodeNotSupported, exec.Error.Code)
}

func TestEndToEndCompanyLookup(t *testing.T) {
	ctrl := gomock.NewController(t)
	doer := mocks.NewMockDoer(ctrl)
	doer.EXPECT().Do(gomock.Any()).DoAndReturn(func(r *http.Request) (*http.Response, error) {
		assert.Equal(t, "/v1/lookup/companies/c1", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("Authorization"))
		return testutil.JSONResponse(200, `{"id":"c1","name":"Acme","registrationNumber":"123"}`), nil
	})

	a, err := New(testConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)), WithDoer(doer))
	require.NoError(t, err)
	defer a.Close()

	rr := testutil.DoRequest(a.Handler(), testutil.NewJSONRequest(t, http.MethodPost,
		"/interactions/CompanyLookup/run", httptransport.RunRequest{Attributes: map[string]string{"companyId": "c1"}}))

	testutil.AssertStatusOK(t, rr)
	exec := testutil.UnmarshalResponse[interactions.Execution](t, rr)
	assert.Equal(t, "success", exec.Branch)
	assert.Equal(t, 200, exec.Status)

	metricsRR := testutil.DoRequest(a.Handler(), testutil.NewRequest(t, http.MethodGet, "/metrics"))
	testutil.AssertStatusOK(t, metricsRR)
	body := metricsRR.Body.String()
	assert.True(t, strings.Contains(body, `complyhub_interaction_runs_total{branch="success",node="CompanyLookup"} 1`), body)
	assert.Contains(t, body, "complyhub_client_request_duration_seconds")
}

func TestNewRejectsInvalidClientConfig(t *testing.T) {
	cfg := testConfig()
	cfg.APIKey = ""
	_, err := New(cfg, slog.Default())
	assert.Error(t, err)
}

func TestNewWithKafkaBrokersUsesQueue(t *testing.T) {
	cfg := testConfig()
	cfg.AuditKafkaBrokers = []string{"127.0.0.1:1"}

	a, err := New(cfg, slog.Default())
	require.NoError(t, err)
	defer a.Close()

	assert.NotNil(t, a.kafka)
	assert.NotNil(t, a.worker)
}
