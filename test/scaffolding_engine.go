package test

import (
	"context"
	"follower_bot/dal"
	"follower_bot/logic"
	"follower_bot/shared"
	"follower_bot/test/mocks"
	"follower_bot/texts"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"io"
	"testing"
)

const selfLogin = "me"

type engineHarness struct {
	cfg          *shared.Config
	logger       shared.ILogger
	mockPlatform *mocks.MockIPlatform
	mockNotifier *mocks.MockINotifier
	metrics      logic.IMetrics
	recorder     logic.ISessionRecorder
	engine       logic.IEngine
}

func setupEngineTest(t *testing.T) (*gomock.Controller, *engineHarness) {

	ctrl := gomock.NewController(t)

	cfg := shared.DefaultConfig()
	cfg.StateDir = t.TempDir()
	cfg.Secrets.GitHubToken = "ghp_test"
	cfg.Pacing = shared.Pacing{}
	cfg.CycleIntervalSec = 3600

	h := &engineHarness{
		cfg:          cfg,
		logger:       log.New(io.Discard),
		mockPlatform: mocks.NewMockIPlatform(ctrl),
		mockNotifier: mocks.NewMockINotifier(ctrl),
		metrics:      logic.NewMetrics(),
		recorder:     logic.NewSessionRecorder(texts.NewTexts()),
	}
	return ctrl, h
}

// init builds the engine over the harness and initializes it as user "me".
func (h *engineHarness) init(t *testing.T) logic.IEngine {
	h.mockPlatform.EXPECT().WhoAmI(gomock.Any()).Return(selfLogin, nil).AnyTimes()
	h.build()
	require.Nil(t, h.engine.Init(context.Background()))
	t.Cleanup(h.engine.Shutdown)
	return h.engine
}

func (h *engineHarness) build() logic.IEngine {
	repo := dal.NewRepo(h.logger, dal.NewFileStore(h.cfg, h.logger))
	executor := logic.NewActionExecutor(h.logger, h.mockPlatform, h.metrics)
	h.engine = logic.NewEngine(h.cfg, h.logger, repo, h.mockPlatform, executor,
		h.recorder, h.mockNotifier, texts.NewTexts(), h.metrics)
	return h.engine
}

func (h *engineHarness) seedFollowed(t *testing.T, logins ...string) {
	repo := newStateReader(h.cfg)
	fu := repo.LoadFollowed()
	fu.Logins = logins
	require.True(t, repo.SaveFollowed(fu))
}

func (h *engineHarness) followed() []string {
	return sorted(newStateReader(h.cfg).LoadFollowed().Logins)
}

func (h *engineHarness) farmingStats() *dal.FarmingStats {
	return newStateReader(h.cfg).LoadFarmingStats()
}

func (h *engineHarness) cleanupStats() *dal.CleanupStats {
	return newStateReader(h.cfg).LoadCleanupStats()
}
