package logic

import (
	"context"
	"follower_bot/shared"
)

const (
	actionFollow   = "follow"
	actionUnfollow = "unfollow"
	actionStar     = "star"
)

// IActionExecutor is the only path through which relationship mutations reach the platform.
// Each call makes exactly one remote request; errors are logged and reported as false.
type IActionExecutor interface {
	Follow(ctx context.Context, login string) bool
	Unfollow(ctx context.Context, login string) bool
	Star(ctx context.Context, repo string) bool
}

type actionExecutor struct {
	logger   shared.ILogger
	platform IPlatform
	metrics  IMetrics
}

func NewActionExecutor(logger shared.ILogger, platform IPlatform, metrics IMetrics) IActionExecutor {
	return &actionExecutor{
		logger:   logger,
		platform: platform,
		metrics:  metrics,
	}
}

func (ae *actionExecutor) Follow(ctx context.Context, login string) bool {
	return ae.do(actionFollow, login, func() error { return ae.platform.Follow(ctx, login) })
}

func (ae *actionExecutor) Unfollow(ctx context.Context, login string) bool {
	return ae.do(actionUnfollow, login, func() error { return ae.platform.Unfollow(ctx, login) })
}

func (ae *actionExecutor) Star(ctx context.Context, repo string) bool {
	return ae.do(actionStar, repo, func() error { return ae.platform.StarRepo(ctx, repo) })
}

func (ae *actionExecutor) do(action, target string, call func() error) bool {
	err := call()
	ae.metrics.ActionDone(action, err == nil)
	if err != nil {
		ae.logger.Errorf("Failed to %s %s: %v", action, target, err)
		return false
	}
	ae.logger.Infof("Done: %s %s", action, target)
	return true
}
