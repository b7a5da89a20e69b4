package test

import (
	"context"
	"errors"
	"follower_bot/logic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"strings"
	"testing"
	"time"
)

func Test_Engine_Full_Cycle_Report(t *testing.T) {

	ctrl, h := setupEngineTest(t)
	defer ctrl.Finish()
	h.cfg.CleanupNonFollowers = true
	engine := h.init(t)

	h.mockPlatform.EXPECT().GetFollowers(gomock.Any()).Return([]string{"a", "b"}, nil).Times(2)
	h.mockPlatform.EXPECT().GetFollowing(gomock.Any()).Return([]string{"a", "b", "c"}, nil)
	h.mockPlatform.EXPECT().Follow(gomock.Any(), "a").Return(nil)
	h.mockPlatform.EXPECT().Follow(gomock.Any(), "b").Return(nil)
	h.mockPlatform.EXPECT().Unfollow(gomock.Any(), "c").Return(nil)

	var sent []string
	h.mockNotifier.EXPECT().Send(gomock.Any()).Do(func(text string) { sent = append(sent, text) }).Times(2)

	assert.Nil(t, engine.TriggerCycle())

	require.Len(t, sent, 2)
	assert.Equal(t, "🗑️ <b>Cleanup:</b> Unfollowed 1 users", sent[0])
	report := sent[1]
	assert.True(t, strings.HasPrefix(report, "🤖 <b>Activity Report</b>"))
	assert.Contains(t, report, "🔙 <b>Followed Back</b> (2)")
	assert.Contains(t, report, "🗑️ <b>Unfollowed</b> (1)")
	assert.NotContains(t, report, "Farmed")
	assert.NotContains(t, report, "Starred")

	// Recorder was cleared by the report
	_, ok := h.recorder.Flush()
	assert.False(t, ok)
}

func Test_Engine_Cycle_Without_Activity_Sends_Nothing(t *testing.T) {

	ctrl, h := setupEngineTest(t)
	defer ctrl.Finish()
	engine := h.init(t)

	h.mockPlatform.EXPECT().GetFollowers(gomock.Any()).Return([]string{}, nil)

	assert.Nil(t, engine.RunCycle(context.Background()))
}

func Test_Engine_Failing_Step_Does_Not_Stop_Cycle(t *testing.T) {

	ctrl, h := setupEngineTest(t)
	defer ctrl.Finish()
	h.cfg.CleanupNonFollowers = true
	engine := h.init(t)

	gomock.InOrder(
		h.mockPlatform.EXPECT().GetFollowers(gomock.Any()).Return(nil, errors.New("boom")),
		h.mockPlatform.EXPECT().GetFollowers(gomock.Any()).Return([]string{}, nil),
	)
	h.mockPlatform.EXPECT().GetFollowing(gomock.Any()).Return([]string{"c"}, nil)
	h.mockPlatform.EXPECT().Unfollow(gomock.Any(), "c").Return(nil)
	h.mockNotifier.EXPECT().Send(gomock.Any()).Times(2)

	assert.Nil(t, engine.RunCycle(context.Background()))
	assert.Equal(t, 1, h.cleanupStats().TotalUnfollowed)
}

func Test_Engine_Panicking_Step_Does_Not_Stop_Cycle(t *testing.T) {

	ctrl, h := setupEngineTest(t)
	defer ctrl.Finish()
	h.cfg.CleanupNonFollowers = true
	engine := h.init(t)

	h.mockPlatform.EXPECT().GetFollowers(gomock.Any()).DoAndReturn(func(context.Context) ([]string, error) {
		panic("unexpected")
	})
	h.mockPlatform.EXPECT().GetFollowers(gomock.Any()).Return([]string{"c"}, nil)
	h.mockPlatform.EXPECT().GetFollowing(gomock.Any()).Return([]string{"c"}, nil)

	assert.Nil(t, engine.RunCycle(context.Background()))
	assert.NotNil(t, h.cleanupStats().LastCleanup)
}

func Test_Engine_Manual_Trigger_Rejected_While_Busy(t *testing.T) {

	ctrl, h := setupEngineTest(t)
	defer ctrl.Finish()
	engine := h.init(t)

	entered := make(chan struct{})
	release := make(chan struct{})
	h.mockPlatform.EXPECT().GetFollowers(gomock.Any()).Return([]string{"x"}, nil)
	h.mockPlatform.EXPECT().Follow(gomock.Any(), "x").DoAndReturn(func(context.Context, string) error {
		close(entered)
		<-release
		return nil
	})

	done := make(chan error)
	go func() { done <- engine.TriggerFollowBack() }()
	<-entered

	assert.ErrorIs(t, engine.TriggerCleanup(), logic.ErrBusy)
	assert.ErrorIs(t, engine.TriggerFarm(), logic.ErrBusy)
	assert.ErrorIs(t, engine.TriggerCycle(), logic.ErrBusy)
	_, err := engine.TriggerStar("golang/go")
	assert.ErrorIs(t, err, logic.ErrBusy)

	// A scheduled cycle waits for the slot instead
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, engine.RunCycle(ctx), context.DeadlineExceeded)

	close(release)
	assert.Nil(t, <-done)
	assert.Equal(t, []string{"x"}, h.followed())
}

func Test_Engine_Start_Stop_Idempotent(t *testing.T) {

	ctrl, h := setupEngineTest(t)
	defer ctrl.Finish()
	engine := h.init(t)

	cycleRan := make(chan struct{}, 1)
	h.mockPlatform.EXPECT().GetFollowers(gomock.Any()).DoAndReturn(func(context.Context) ([]string, error) {
		select {
		case cycleRan <- struct{}{}:
		default:
		}
		return []string{}, nil
	}).AnyTimes()

	started, err := engine.Start()
	assert.Nil(t, err)
	assert.True(t, started)
	started, err = engine.Start()
	assert.Nil(t, err)
	assert.False(t, started)
	assert.True(t, engine.Status().IsRunning)
	assert.Equal(t, "Running", engine.Status().Status)

	select {
	case <-cycleRan:
	case <-time.After(5 * time.Second):
		t.Fatal("background cycle did not run")
	}

	assert.True(t, engine.Stop())
	assert.False(t, engine.Stop())
	assert.False(t, engine.Status().IsRunning)
	assert.Equal(t, "Stopped", engine.Status().Status)
}

func Test_Engine_Not_Initialized_Without_Token(t *testing.T) {

	ctrl, h := setupEngineTest(t)
	defer ctrl.Finish()
	h.cfg.Secrets.GitHubToken = ""
	engine := h.build()

	err := engine.Init(context.Background())
	assert.ErrorIs(t, err, logic.ErrNotInitialized)
	assertNotInitialized(t, engine)
}

func Test_Engine_Not_Initialized_When_Auth_Fails(t *testing.T) {

	ctrl, h := setupEngineTest(t)
	defer ctrl.Finish()
	h.mockPlatform.EXPECT().WhoAmI(gomock.Any()).Return("", errors.New("401 Bad credentials"))
	engine := h.build()

	err := engine.Init(context.Background())
	assert.ErrorIs(t, err, logic.ErrNotInitialized)
	assert.ErrorContains(t, err, "Bad credentials")
	assertNotInitialized(t, engine)
}

func assertNotInitialized(t *testing.T, engine logic.IEngine) {
	assert.ErrorIs(t, engine.TriggerFollowBack(), logic.ErrNotInitialized)
	assert.ErrorIs(t, engine.TriggerFarm(), logic.ErrNotInitialized)
	assert.ErrorIs(t, engine.TriggerCleanup(), logic.ErrNotInitialized)
	assert.ErrorIs(t, engine.TriggerCycle(), logic.ErrNotInitialized)
	assert.ErrorIs(t, engine.RunCycle(context.Background()), logic.ErrNotInitialized)
	_, err := engine.TriggerStar("golang/go")
	assert.ErrorIs(t, err, logic.ErrNotInitialized)
	_, err = engine.ConfigInfo()
	assert.ErrorIs(t, err, logic.ErrNotInitialized)
	started, err := engine.Start()
	assert.False(t, started)
	assert.ErrorIs(t, err, logic.ErrNotInitialized)
	assert.False(t, engine.Stop())

	status := engine.Status()
	assert.Equal(t, "Error: Bot not initialized", status.Status)
	assert.False(t, status.IsRunning)
	assert.Nil(t, status.AuthenticatedAs)
}

func Test_Engine_Status_And_Config(t *testing.T) {

	ctrl, h := setupEngineTest(t)
	defer ctrl.Finish()
	h.cfg.Farming.Enabled = true
	h.cfg.Farming.DailyFollowLimit = 50
	h.cfg.Farming.HourlyFollowLimit = 10
	h.seedFollowed(t, "a", "b", "c")
	engine := h.init(t)

	status := engine.Status()
	assert.Equal(t, "Stopped", status.Status)
	require.NotNil(t, status.AuthenticatedAs)
	assert.Equal(t, selfLogin, *status.AuthenticatedAs)
	assert.Equal(t, 3, status.Stats.FollowedCount)
	assert.NotNil(t, status.Stats.FarmingStats)

	cfg, err := engine.ConfigInfo()
	require.Nil(t, err)
	assert.True(t, cfg.FarmingEnabled)
	assert.False(t, cfg.CleanupEnabled)
	assert.Equal(t, 50, cfg.DailyLimits.DailyFollowLimit)
	assert.Equal(t, 10, cfg.DailyLimits.HourlyFollowLimit)
}

func Test_Engine_Star(t *testing.T) {

	ctrl, h := setupEngineTest(t)
	defer ctrl.Finish()
	engine := h.init(t)

	h.mockPlatform.EXPECT().StarRepo(gomock.Any(), "golang/go").Return(nil).Times(1)

	starred, err := engine.TriggerStar("https://github.com/golang/go/")
	assert.Nil(t, err)
	assert.True(t, starred)
	starred, err = engine.TriggerStar("golang/go")
	assert.Nil(t, err)
	assert.False(t, starred)

	sr := newStateReader(h.cfg).LoadStarredRepos()
	assert.Equal(t, []string{"golang/go"}, sr.Repos)
	assert.Equal(t, 1, sr.StarsToday)
	assert.Equal(t, 1, sr.TotalStarred)
	assert.NotNil(t, newStateReader(h.cfg).LoadStarStats().LastRun)
	assert.Equal(t, 1, h.recorder.Counts()[logic.CatStarred])

	_, err = engine.TriggerStar("not-a-repo")
	assert.NotNil(t, err)
}

func Test_Engine_Star_Failure(t *testing.T) {

	ctrl, h := setupEngineTest(t)
	defer ctrl.Finish()
	engine := h.init(t)

	h.mockPlatform.EXPECT().StarRepo(gomock.Any(), "golang/go").Return(errors.New("403 Forbidden"))

	starred, err := engine.TriggerStar("golang/go")
	assert.NotNil(t, err)
	assert.False(t, starred)
	assert.Empty(t, newStateReader(h.cfg).LoadStarredRepos().Repos)
}
