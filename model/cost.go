package model

// ServiceCost represents cost attributed to a single AWS service
type ServiceCost struct {
	Service string  `json:"service"`
	Amount  float64 `json:"amount"`
	Unit    string  `json:"unit"`
}

// CostByServiceReport contains per-service spend over a day window
type CostByServiceReport struct {
	Start    string        `json:"start"`
	End      string        `json:"end"`
	Services []ServiceCost `json:"services"`
	Total    float64       `json:"total"`
}

// DailyCost is one day's total spend. Date is an ISO 8601 day (YYYY-MM-DD),
// so lexicographic order is chronological order.
type DailyCost struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
}

// CostAnomalyReport is the outcome of checking the latest day's spend against
// the baseline built from every earlier day in the window.
type CostAnomalyReport struct {
	LatestDate      string  `json:"latest_date"`
	LatestCost      float64 `json:"latest_cost"`
	BaselineAverage float64 `json:"baseline_average"`
	BaselineStdDev  float64 `json:"baseline_std_dev"`
	Threshold       float64 `json:"threshold"`
	IsAnomaly       bool    `json:"is_anomaly"`
	HistoryDays     int     `json:"history_days"`
	StdDevThreshold float64 `json:"std_dev_threshold"`
	BaselinePoints  int     `json:"baseline_points"`
}
