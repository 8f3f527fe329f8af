package models

import "github.com/smazurov/tulipd/internal/logging"

// Health check models
type HealthData struct {
	Status  string `json:"status" example:"ok" doc:"Service status"`
	Message string `json:"message" example:"API is healthy" doc:"Status message"`
}

type HealthResponse struct {
	Body HealthData
}

// Version models
type VersionData struct {
	Name      string `json:"name" example:"tulipd" doc:"Application name"`
	Version   string `json:"version" example:"dev" doc:"Application version"`
	GitCommit string `json:"git_commit" example:"abc1234" doc:"Git commit SHA"`
	BuildDate string `json:"build_date" example:"2026-10-01 14:30" doc:"Build timestamp"`
	BuildID   string `json:"build_id" example:"a1b2c3d4" doc:"Unique build identifier"`
	GoVersion string `json:"go_version" example:"go1.24.11" doc:"Go compiler version"`
	Compiler  string `json:"compiler" example:"gc" doc:"Compiler used"`
	Platform  string `json:"platform" example:"linux/arm" doc:"Platform"`
}

type VersionResponse struct {
	Body VersionData
}

// LEDs models
type LEDsData struct {
	Available []string `json:"available" doc:"LEDs the driver can address"`
	Count     int      `json:"count" example:"4" doc:"Number of LEDs"`
}

type LEDsResponse struct {
	Body LEDsData
}

// WiFi MAC models
type WifiMACData struct {
	Address string `json:"address" example:"00:1a:2b:3c:4d:5e" doc:"WiFi MAC address"`
	Path    string `json:"path" example:"/persist/wifimac.dat" doc:"Calibration file the address was read from"`
}

type WifiMACResponse struct {
	Body WifiMACData
}

// Log models
type LogsRequest struct {
	Limit int `query:"limit" minimum:"1" maximum:"1000" default:"100" doc:"Maximum number of entries, newest last"`
}

type LogsData struct {
	Entries []logging.LogEntry `json:"entries" doc:"Recent log entries"`
	Count   int                `json:"count" example:"100" doc:"Number of entries returned"`
}

type LogsResponse struct {
	Body LogsData
}
