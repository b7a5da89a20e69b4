package test

import (
	"errors"
	"follower_bot/logic"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"testing"
)

func setupCleanupTest(t *testing.T, followed ...string) (*gomock.Controller, *engineHarness, logic.IEngine) {
	ctrl, h := setupEngineTest(t)
	h.cfg.CleanupNonFollowers = true
	if len(followed) > 0 {
		h.seedFollowed(t, followed...)
	}
	return ctrl, h, h.init(t)
}

func Test_Cleanup_Disabled_Does_Nothing(t *testing.T) {

	ctrl, h := setupEngineTest(t)
	defer ctrl.Finish()
	h.cfg.CleanupNonFollowers = false
	engine := h.init(t)

	assert.Nil(t, engine.TriggerCleanup())
	assert.Nil(t, h.cleanupStats().LastCleanup)
}

func Test_Cleanup_Unfollows_Non_Reciprocators(t *testing.T) {

	ctrl, h, engine := setupCleanupTest(t, "p", "q", "z")
	defer ctrl.Finish()

	h.mockPlatform.EXPECT().GetFollowers(gomock.Any()).Return([]string{"p"}, nil)
	h.mockPlatform.EXPECT().GetFollowing(gomock.Any()).Return([]string{"p", "q", "r"}, nil)
	h.mockPlatform.EXPECT().Unfollow(gomock.Any(), "q").Return(nil).Times(1)
	h.mockPlatform.EXPECT().Unfollow(gomock.Any(), "r").Return(nil).Times(1)
	h.mockNotifier.EXPECT().Send("🗑️ <b>Cleanup:</b> Unfollowed 2 users").Times(1)

	assert.Nil(t, engine.TriggerCleanup())

	assert.Equal(t, []string{"p", "z"}, h.followed())
	assert.Equal(t, 2, h.recorder.Counts()[logic.CatUnfollowed])
	cs := h.cleanupStats()
	assert.Equal(t, 2, cs.TotalUnfollowed)
	assert.NotNil(t, cs.LastCleanup)
	assert.NotNil(t, cs.NextCleanup)

	// The deferred report carries the same count
	report, ok := h.recorder.Flush()
	assert.True(t, ok)
	assert.Contains(t, report, "<b>Unfollowed</b> (2)")
}

func Test_Cleanup_Cap_Is_Twenty(t *testing.T) {

	ctrl, h, engine := setupCleanupTest(t)
	defer ctrl.Finish()

	h.mockPlatform.EXPECT().GetFollowers(gomock.Any()).Return([]string{"fan"}, nil)
	h.mockPlatform.EXPECT().GetFollowing(gomock.Any()).Return(append(makeLogins("n", 30), "fan"), nil)
	h.mockPlatform.EXPECT().Unfollow(gomock.Any(), gomock.Any()).Return(nil).Times(20)
	h.mockNotifier.EXPECT().Send("🗑️ <b>Cleanup:</b> Unfollowed 20 users").Times(1)

	assert.Nil(t, engine.TriggerCleanup())
	assert.Equal(t, 20, h.cleanupStats().TotalUnfollowed)
}

func Test_Cleanup_Fetches_Following_Fresh(t *testing.T) {

	ctrl, h, engine := setupCleanupTest(t)
	defer ctrl.Finish()

	h.mockPlatform.EXPECT().GetFollowers(gomock.Any()).Return([]string{}, nil).Times(2)
	gomock.InOrder(
		h.mockPlatform.EXPECT().GetFollowing(gomock.Any()).Return([]string{"a"}, nil),
		h.mockPlatform.EXPECT().GetFollowing(gomock.Any()).Return([]string{"b"}, nil),
	)
	h.mockPlatform.EXPECT().Unfollow(gomock.Any(), "a").Return(nil).Times(1)
	h.mockPlatform.EXPECT().Unfollow(gomock.Any(), "b").Return(nil).Times(1)
	h.mockNotifier.EXPECT().Send(gomock.Any()).Times(2)

	assert.Nil(t, engine.TriggerCleanup())
	assert.Nil(t, engine.TriggerCleanup())
}

func Test_Cleanup_No_Notification_Without_Unfollows(t *testing.T) {

	ctrl, h, engine := setupCleanupTest(t, "q")
	defer ctrl.Finish()

	h.mockPlatform.EXPECT().GetFollowers(gomock.Any()).Return([]string{}, nil)
	h.mockPlatform.EXPECT().GetFollowing(gomock.Any()).Return([]string{"q"}, nil)
	h.mockPlatform.EXPECT().Unfollow(gomock.Any(), "q").Return(errors.New("500"))

	assert.Nil(t, engine.TriggerCleanup())
	assert.Equal(t, []string{"q"}, h.followed())
	cs := h.cleanupStats()
	assert.Equal(t, 0, cs.TotalUnfollowed)
	assert.NotNil(t, cs.LastCleanup)
}

func Test_Cleanup_Following_Error(t *testing.T) {

	ctrl, h, engine := setupCleanupTest(t)
	defer ctrl.Finish()

	h.mockPlatform.EXPECT().GetFollowers(gomock.Any()).Return([]string{}, nil)
	h.mockPlatform.EXPECT().GetFollowing(gomock.Any()).Return(nil, errors.New("timeout"))

	assert.ErrorContains(t, engine.TriggerCleanup(), "timeout")
	assert.NotNil(t, h.cleanupStats().LastCleanup)
}
