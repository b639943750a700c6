package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/Batu1-1an/AWS-Cost-Optimization-Dashboard/config"
	"github.com/Batu1-1an/AWS-Cost-Optimization-Dashboard/model"
	"github.com/Batu1-1an/AWS-Cost-Optimization-Dashboard/service/analyzer"
)

// Handler serves the dashboard's read-only analysis endpoints
type Handler struct {
	analyzer analyzer.AnalyzerService
	cfg      *config.Config
}

func NewHandler(a analyzer.AnalyzerService, cfg *config.Config) *Handler {
	return &Handler{
		analyzer: a,
		cfg:      cfg,
	}
}

// SetupRoutes configures the API routes
func SetupRoutes(router *mux.Router, h *Handler) {
	router.HandleFunc("/cost-by-service", h.CostByService).Methods("GET")
	router.HandleFunc("/idle-instances", h.IdleInstances).Methods("GET")
	router.HandleFunc("/untagged-resources", h.UntaggedResources).Methods("GET")
	router.HandleFunc("/ebs-optimization", h.EBSOptimization).Methods("GET")
	router.HandleFunc("/cost-anomalies", h.CostAnomalies).Methods("GET")
	router.HandleFunc("/unused-load-balancers", h.UnusedLoadBalancers).Methods("GET")
	router.HandleFunc("/account", h.Account).Methods("GET")
	router.HandleFunc("/regions", h.Regions).Methods("GET")
}

// CostByService handles GET /cost-by-service?days=
func (h *Handler) CostByService(w http.ResponseWriter, r *http.Request) {
	days, err := queryInt(r, "days", h.cfg.CostWindowDays)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	report, err := h.analyzer.AnalyzeCostByService(r.Context(), days)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to retrieve cost data")
		return
	}

	respondJSON(w, http.StatusOK, report)
}

// IdleInstances handles GET /idle-instances?region=&days=
func (h *Handler) IdleInstances(w http.ResponseWriter, r *http.Request) {
	region, err := h.queryRegion(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	days, err := queryInt(r, "days", h.cfg.IdlePeriodDays)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	thresholds := analyzer.IdleThresholds{
		AvgCPU: h.cfg.IdleAvgCPUThreshold,
		MaxCPU: h.cfg.IdleMaxCPUThreshold,
	}

	report, err := h.analyzer.AnalyzeIdleInstances(r.Context(), region, days, thresholds)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to retrieve idle instance data")
		return
	}

	respondJSON(w, http.StatusOK, report)
}

// UntaggedResources handles GET /untagged-resources?region=&required_tags=a,b
func (h *Handler) UntaggedResources(w http.ResponseWriter, r *http.Request) {
	region, err := h.queryRegion(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	requiredTags := h.cfg.RequiredTags
	if raw, ok := r.URL.Query()["required_tags"]; ok && len(raw) > 0 {
		requiredTags = splitTags(raw[0])
	}

	report, err := h.analyzer.AnalyzeUntaggedResources(r.Context(), region, requiredTags)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to retrieve untagged resource data")
		return
	}

	respondJSON(w, http.StatusOK, report)
}

// EBSOptimization handles GET /ebs-optimization?region=
func (h *Handler) EBSOptimization(w http.ResponseWriter, r *http.Request) {
	region, err := h.queryRegion(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	report, err := h.analyzer.AnalyzeEBSOptimization(r.Context(), region)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to retrieve EBS optimization data")
		return
	}

	respondJSON(w, http.StatusOK, report)
}

// CostAnomalies handles GET /cost-anomalies?days=&threshold=
func (h *Handler) CostAnomalies(w http.ResponseWriter, r *http.Request) {
	days, err := queryInt(r, "days", h.cfg.AnomalyHistoryDays)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	threshold, err := queryFloat(r, "threshold", h.cfg.AnomalyStdDevThreshold)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	report, err := h.analyzer.AnalyzeCostAnomalies(r.Context(), analyzer.AnomalyOptions{
		HistoryDays:     days,
		StdDevThreshold: threshold,
	})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to retrieve cost anomaly data")
		return
	}

	respondJSON(w, http.StatusOK, report)
}

// UnusedLoadBalancers handles GET /unused-load-balancers?region=
func (h *Handler) UnusedLoadBalancers(w http.ResponseWriter, r *http.Request) {
	region, err := h.queryRegion(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	loadBalancers, err := h.analyzer.AnalyzeUnusedLoadBalancers(r.Context(), region)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to retrieve load balancer data")
		return
	}

	respondJSON(w, http.StatusOK, loadBalancers)
}

// Account handles GET /account
func (h *Handler) Account(w http.ResponseWriter, r *http.Request) {
	info, err := h.analyzer.GetAccountInfo(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to retrieve account info")
		return
	}

	respondJSON(w, http.StatusOK, info)
}

// Regions handles GET /regions
func (h *Handler) Regions(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, model.Regions)
}

func (h *Handler) queryRegion(r *http.Request) (string, error) {
	region := r.URL.Query().Get("region")
	if region == "" {
		return h.cfg.DefaultRegion, nil
	}
	if !model.IsValidRegion(region) {
		return "", fmt.Errorf("unknown region %q", region)
	}
	return region, nil
}

func queryInt(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return 0, fmt.Errorf("parameter %q must be a positive integer", name)
	}
	return value, nil
}

func queryFloat(r *http.Request, name string, fallback float64) (float64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || value <= 0 {
		return 0, fmt.Errorf("parameter %q must be a positive number", name)
	}
	return value, nil
}

func splitTags(raw string) []string {
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			tags = append(tags, trimmed)
		}
	}
	return tags
}
