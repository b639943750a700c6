package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Batu1-1an/AWS-Cost-Optimization-Dashboard/config"
	"github.com/Batu1-1an/AWS-Cost-Optimization-Dashboard/model"
	"github.com/Batu1-1an/AWS-Cost-Optimization-Dashboard/service/analyzer"
)

type fakeAnalyzer struct {
	costReport     *model.CostByServiceReport
	idleReport     *model.IdleInstanceReport
	untaggedReport *model.UntaggedResourceReport
	ebsReport      *model.EBSOptimizationReport
	anomalyReport  *model.CostAnomalyReport
	daily          []model.DailyCost
	loadBalancers  []model.LoadBalancerInfo
	accountInfo    *model.AccountInfo
	err            error

	gotDays         int
	gotRegion       string
	gotRequiredTags []string
	gotThresholds   analyzer.IdleThresholds
	gotAnomalyOpts  analyzer.AnomalyOptions
}

func (f *fakeAnalyzer) AnalyzeCostByService(ctx context.Context, days int) (*model.CostByServiceReport, error) {
	f.gotDays = days
	return f.costReport, f.err
}

func (f *fakeAnalyzer) AnalyzeIdleInstances(ctx context.Context, region string, periodDays int, thresholds analyzer.IdleThresholds) (*model.IdleInstanceReport, error) {
	f.gotRegion = region
	f.gotDays = periodDays
	f.gotThresholds = thresholds
	return f.idleReport, f.err
}

func (f *fakeAnalyzer) AnalyzeUntaggedResources(ctx context.Context, region string, requiredTags []string) (*model.UntaggedResourceReport, error) {
	f.gotRegion = region
	f.gotRequiredTags = requiredTags
	return f.untaggedReport, f.err
}

func (f *fakeAnalyzer) AnalyzeEBSOptimization(ctx context.Context, region string) (*model.EBSOptimizationReport, error) {
	f.gotRegion = region
	return f.ebsReport, f.err
}

func (f *fakeAnalyzer) AnalyzeCostAnomalies(ctx context.Context, opts analyzer.AnomalyOptions) (*model.CostAnomalyReport, error) {
	f.gotAnomalyOpts = opts
	return f.anomalyReport, f.err
}

func (f *fakeAnalyzer) GetDailyCostHistory(ctx context.Context, days int) ([]model.DailyCost, error) {
	f.gotDays = days
	return f.daily, f.err
}

func (f *fakeAnalyzer) AnalyzeUnusedLoadBalancers(ctx context.Context, region string) ([]model.LoadBalancerInfo, error) {
	f.gotRegion = region
	return f.loadBalancers, f.err
}

func (f *fakeAnalyzer) GetAccountInfo(ctx context.Context) (*model.AccountInfo, error) {
	return f.accountInfo, f.err
}

func testConfig() *config.Config {
	return &config.Config{
		DefaultRegion:          "us-east-1",
		CostWindowDays:         30,
		IdlePeriodDays:         14,
		IdleAvgCPUThreshold:    5.0,
		IdleMaxCPUThreshold:    10.0,
		AnomalyHistoryDays:     60,
		AnomalyStdDevThreshold: 2.5,
		RequiredTags:           []string{"Project", "Owner"},
	}
}

func serve(fake *fakeAnalyzer, target string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	SetupRoutes(router, NewHandler(fake, testConfig()))

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, target, nil))
	return recorder
}

func TestCostByService(t *testing.T) {
	fake := &fakeAnalyzer{costReport: &model.CostByServiceReport{
		Start: "2024-05-01", End: "2024-05-31",
		Services: []model.ServiceCost{{Service: "Amazon EC2", Amount: 42.5, Unit: "USD"}},
		Total:    42.5,
	}}

	recorder := serve(fake, "/cost-by-service?days=7")

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))
	assert.Equal(t, 7, fake.gotDays)

	var got model.CostByServiceReport
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
	assert.Equal(t, 42.5, got.Total)
}

func TestCostByServiceDefaultsWindow(t *testing.T) {
	fake := &fakeAnalyzer{costReport: &model.CostByServiceReport{}}

	recorder := serve(fake, "/cost-by-service")

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, 30, fake.gotDays)
}

func TestCostByServiceRejectsBadDays(t *testing.T) {
	for _, days := range []string{"0", "-3", "abc"} {
		t.Run(days, func(t *testing.T) {
			recorder := serve(&fakeAnalyzer{}, "/cost-by-service?days="+days)

			require.Equal(t, http.StatusBadRequest, recorder.Code)

			var apiErr APIError
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &apiErr))
			assert.Contains(t, apiErr.Error, "days")
		})
	}
}

func TestCostByServiceAnalyzerFailure(t *testing.T) {
	recorder := serve(&fakeAnalyzer{err: errors.New("throttled")}, "/cost-by-service")

	require.Equal(t, http.StatusInternalServerError, recorder.Code)

	var apiErr APIError
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &apiErr))
	assert.Equal(t, "Failed to retrieve cost data", apiErr.Error)
}

func TestIdleInstances(t *testing.T) {
	fake := &fakeAnalyzer{idleReport: &model.IdleInstanceReport{Region: "eu-west-1"}}

	recorder := serve(fake, "/idle-instances?region=eu-west-1&days=7")

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "eu-west-1", fake.gotRegion)
	assert.Equal(t, 7, fake.gotDays)
	assert.Equal(t, analyzer.IdleThresholds{AvgCPU: 5.0, MaxCPU: 10.0}, fake.gotThresholds)
}

func TestIdleInstancesUnknownRegion(t *testing.T) {
	recorder := serve(&fakeAnalyzer{}, "/idle-instances?region=moon-base-1")

	require.Equal(t, http.StatusBadRequest, recorder.Code)

	var apiErr APIError
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &apiErr))
	assert.Contains(t, apiErr.Error, "moon-base-1")
}

func TestIdleInstancesFallsBackToDefaultRegion(t *testing.T) {
	fake := &fakeAnalyzer{idleReport: &model.IdleInstanceReport{}}

	recorder := serve(fake, "/idle-instances")

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "us-east-1", fake.gotRegion)
	assert.Equal(t, 14, fake.gotDays)
}

func TestUntaggedResourcesParsesRequiredTags(t *testing.T) {
	fake := &fakeAnalyzer{untaggedReport: &model.UntaggedResourceReport{}}

	recorder := serve(fake, "/untagged-resources?required_tags=Team,%20CostCenter,")

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, []string{"Team", "CostCenter"}, fake.gotRequiredTags)
}

func TestUntaggedResourcesDefaultsToConfiguredTags(t *testing.T) {
	fake := &fakeAnalyzer{untaggedReport: &model.UntaggedResourceReport{}}

	recorder := serve(fake, "/untagged-resources")

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, []string{"Project", "Owner"}, fake.gotRequiredTags)
}

func TestEBSOptimization(t *testing.T) {
	fake := &fakeAnalyzer{ebsReport: &model.EBSOptimizationReport{
		Region:            "us-east-1",
		UnattachedVolumes: []model.VolumeInfo{{VolumeID: "vol-1"}},
		LegacyTypeVolumes: []model.VolumeInfo{},
	}}

	recorder := serve(fake, "/ebs-optimization")

	require.Equal(t, http.StatusOK, recorder.Code)

	var got model.EBSOptimizationReport
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
	require.Len(t, got.UnattachedVolumes, 1)
	assert.Equal(t, "vol-1", got.UnattachedVolumes[0].VolumeID)
}

func TestCostAnomalies(t *testing.T) {
	fake := &fakeAnalyzer{anomalyReport: &model.CostAnomalyReport{IsAnomaly: true}}

	recorder := serve(fake, "/cost-anomalies?days=30&threshold=3.0")

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, analyzer.AnomalyOptions{HistoryDays: 30, StdDevThreshold: 3.0}, fake.gotAnomalyOpts)
}

func TestCostAnomaliesRejectsBadThreshold(t *testing.T) {
	for _, threshold := range []string{"0", "-1.5", "high"} {
		t.Run(threshold, func(t *testing.T) {
			recorder := serve(&fakeAnalyzer{}, "/cost-anomalies?threshold="+threshold)

			require.Equal(t, http.StatusBadRequest, recorder.Code)
		})
	}
}

func TestUnusedLoadBalancersEmptyResultIsJSONArray(t *testing.T) {
	fake := &fakeAnalyzer{loadBalancers: []model.LoadBalancerInfo{}}

	recorder := serve(fake, "/unused-load-balancers")

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, "[]", recorder.Body.String())
}

func TestAccount(t *testing.T) {
	fake := &fakeAnalyzer{accountInfo: &model.AccountInfo{AccountID: "123456789012"}}

	recorder := serve(fake, "/account")

	require.Equal(t, http.StatusOK, recorder.Code)

	var got model.AccountInfo
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
	assert.Equal(t, "123456789012", got.AccountID)
}

func TestRegions(t *testing.T) {
	recorder := serve(&fakeAnalyzer{}, "/regions")

	require.Equal(t, http.StatusOK, recorder.Code)

	var regions []string
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &regions))
	assert.Contains(t, regions, "us-east-1")
}

func TestPostIsRejected(t *testing.T) {
	router := mux.NewRouter()
	SetupRoutes(router, NewHandler(&fakeAnalyzer{}, testConfig()))

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/cost-by-service", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, recorder.Code)
}
