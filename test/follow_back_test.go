package test

import (
	"errors"
	"follower_bot/logic"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"testing"
)

func Test_Follow_Back_New_Followers(t *testing.T) {

	ctrl, h := setupEngineTest(t)
	defer ctrl.Finish()
	engine := h.init(t)

	h.mockPlatform.EXPECT().GetFollowers(gomock.Any()).Return([]string{"y", "x"}, nil)
	h.mockPlatform.EXPECT().Follow(gomock.Any(), "x").Return(nil).Times(1)
	h.mockPlatform.EXPECT().Follow(gomock.Any(), "y").Return(nil).Times(1)

	assert.Nil(t, engine.TriggerFollowBack())
	assert.Equal(t, []string{"x", "y"}, h.followed())
	assert.Equal(t, 2, h.recorder.Counts()[logic.CatFollowedBack])
}

func Test_Follow_Back_Is_Idempotent(t *testing.T) {

	ctrl, h := setupEngineTest(t)
	defer ctrl.Finish()
	engine := h.init(t)

	h.mockPlatform.EXPECT().GetFollowers(gomock.Any()).Return([]string{"x", "y"}, nil).Times(2)
	h.mockPlatform.EXPECT().Follow(gomock.Any(), "x").Return(nil).Times(1)
	h.mockPlatform.EXPECT().Follow(gomock.Any(), "y").Return(nil).Times(1)

	assert.Nil(t, engine.TriggerFollowBack())
	assert.Nil(t, engine.TriggerFollowBack())
	assert.Equal(t, []string{"x", "y"}, h.followed())
	assert.Equal(t, 2, h.recorder.Counts()[logic.CatFollowedBack])
}

func Test_Follow_Back_Skips_Already_Followed(t *testing.T) {

	ctrl, h := setupEngineTest(t)
	defer ctrl.Finish()
	h.seedFollowed(t, "x")
	engine := h.init(t)

	h.mockPlatform.EXPECT().GetFollowers(gomock.Any()).Return([]string{"x", "y", "y"}, nil)
	h.mockPlatform.EXPECT().Follow(gomock.Any(), "y").Return(nil).Times(1)

	assert.Nil(t, engine.TriggerFollowBack())
	assert.Equal(t, []string{"x", "y"}, h.followed())
	assert.Equal(t, 1, h.recorder.Counts()[logic.CatFollowedBack])
}

func Test_Follow_Back_Failure_Is_Retried_Next_Time(t *testing.T) {

	ctrl, h := setupEngineTest(t)
	defer ctrl.Finish()
	engine := h.init(t)

	h.mockPlatform.EXPECT().GetFollowers(gomock.Any()).Return([]string{"x", "y"}, nil).Times(2)
	h.mockPlatform.EXPECT().Follow(gomock.Any(), "x").Return(nil).Times(1)
	gomock.InOrder(
		h.mockPlatform.EXPECT().Follow(gomock.Any(), "y").Return(errors.New("502 Bad Gateway")),
		h.mockPlatform.EXPECT().Follow(gomock.Any(), "y").Return(nil),
	)

	assert.Nil(t, engine.TriggerFollowBack())
	assert.Equal(t, []string{"x"}, h.followed())

	assert.Nil(t, engine.TriggerFollowBack())
	assert.Equal(t, []string{"x", "y"}, h.followed())
	assert.Equal(t, 2, h.recorder.Counts()[logic.CatFollowedBack])
}

func Test_Follow_Back_Nothing_New(t *testing.T) {

	ctrl, h := setupEngineTest(t)
	defer ctrl.Finish()
	h.seedFollowed(t, "x")
	engine := h.init(t)

	h.mockPlatform.EXPECT().GetFollowers(gomock.Any()).Return([]string{"x"}, nil)

	assert.Nil(t, engine.TriggerFollowBack())
	assert.Equal(t, 0, h.recorder.Counts()[logic.CatFollowedBack])
}

func Test_Follow_Back_Followers_Error(t *testing.T) {

	ctrl, h := setupEngineTest(t)
	defer ctrl.Finish()
	engine := h.init(t)

	h.mockPlatform.EXPECT().GetFollowers(gomock.Any()).Return(nil, errors.New("network down"))

	err := engine.TriggerFollowBack()
	assert.ErrorContains(t, err, "network down")
	assert.Empty(t, h.followed())
}
