package dto

import "follower_bot/dal"

type HealthResp struct {
	Status      string `json:"status"`
	AppName     string `json:"app_name"`
	Environment string `json:"environment"`
}

type BotStats struct {
	FollowedCount int               `json:"followed_count"`
	FarmingStats  *dal.FarmingStats `json:"farming_stats"`
	CleanupStats  *dal.CleanupStats `json:"cleanup_stats,omitempty"`
}

type StatusResp struct {
	Status          string    `json:"status"`
	IsRunning       bool      `json:"is_running"`
	AuthenticatedAs *string   `json:"authenticated_as"`
	Stats           *BotStats `json:"stats"`
}

type DailyLimits struct {
	DailyFollowLimit  int `json:"daily_follow_limit"`
	HourlyFollowLimit int `json:"hourly_follow_limit"`
}

type ConfigResp struct {
	FarmingEnabled bool        `json:"farming_enabled"`
	CleanupEnabled bool        `json:"cleanup_enabled"`
	DailyLimits    DailyLimits `json:"daily_limits"`
}

type MessageResp struct {
	Message string `json:"message"`
	Success bool   `json:"success"`
}

type StarReq struct {
	Repo string `json:"repo"`
}
