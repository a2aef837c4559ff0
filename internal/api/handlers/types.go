package handlers

import "time"

type ErrorResponse struct {
	Error   string            `json:"error"`
	Code    string            `json:"code"`
	Details map[string]string `json:"details,omitempty"`
}

type BalanceResponse struct {
	Mode          string    `json:"gamemode"`
	Teams         []int     `json:"teams"`
	Probabilities []float64 `json:"probabilities"`
	Fairness      float64   `json:"fairness"`
}

type ModeResponse struct {
	Mode       string `json:"gamemode"`
	Teams      int    `json:"teams"`
	TeamSize   int    `json:"team_size"`
	Partitions int    `json:"partitions"`
	Cached     bool   `json:"cached"`
}

type HealthStatus struct {
	Status      string    `json:"status"`
	Service     string    `json:"service"`
	Timestamp   time.Time `json:"timestamp"`
	CachedModes []string  `json:"cached_modes"`
}
