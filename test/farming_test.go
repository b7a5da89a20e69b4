package test

import (
	"errors"
	"follower_bot/logic"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"os"
	"path/filepath"
	"testing"
)

func setupFarmingTest(t *testing.T, repos ...string) (*gomock.Controller, *engineHarness, logic.IEngine) {
	ctrl, h := setupEngineTest(t)
	h.cfg.Farming.Enabled = true
	h.cfg.Farming.TargetRepos = repos
	return ctrl, h, h.init(t)
}

func Test_Farming_Disabled_Does_Nothing(t *testing.T) {

	ctrl, h := setupEngineTest(t)
	defer ctrl.Finish()
	h.cfg.Farming.Enabled = false
	h.cfg.Farming.TargetRepos = []string{"golang/go"}
	engine := h.init(t)

	// No platform calls beyond WhoAmI are expected
	assert.Nil(t, engine.TriggerFarm())

	_, err := os.Stat(filepath.Join(h.cfg.StateDir, "farming_stats.json"))
	assert.True(t, os.IsNotExist(err))
	assert.Equal(t, 0, h.recorder.Counts()[logic.CatFarmed])
}

func Test_Farming_No_Target_Repos_Does_Nothing(t *testing.T) {

	ctrl, h, engine := setupFarmingTest(t)
	defer ctrl.Finish()

	assert.Nil(t, engine.TriggerFarm())
	assert.Equal(t, 0, h.farmingStats().TotalFarmed)
}

func Test_Farming_Cap_Is_Five(t *testing.T) {

	ctrl, h, engine := setupFarmingTest(t, "golang/go")
	defer ctrl.Finish()

	stargazers := makeLogins("s", 12)
	h.mockPlatform.EXPECT().GetStargazers(gomock.Any(), "golang/go", 1).Return(stargazers, nil)
	h.mockPlatform.EXPECT().Follow(gomock.Any(), gomock.Any()).Return(nil).Times(5)

	assert.Nil(t, engine.TriggerFarm())

	assert.Equal(t, stargazers[:5], h.followed())
	assert.Equal(t, 5, h.recorder.Counts()[logic.CatFarmed])
	fs := h.farmingStats()
	assert.Equal(t, 5, fs.FollowsToday)
	assert.Equal(t, 5, fs.FollowsThisHour)
	assert.Equal(t, 5, fs.TotalFarmed)
	assert.Equal(t, 5, fs.Sources["golang/go"])
	assert.NotNil(t, fs.LastFarming)
	assert.NotNil(t, fs.NextFarming)
	assert.True(t, fs.NextFarming.After(fs.LastFarming.Time))
}

func Test_Farming_Fewer_Candidates_Than_Cap(t *testing.T) {

	ctrl, h, engine := setupFarmingTest(t, "golang/go")
	defer ctrl.Finish()

	h.mockPlatform.EXPECT().GetStargazers(gomock.Any(), "golang/go", gomock.Any()).Return([]string{"a", "b"}, nil)
	h.mockPlatform.EXPECT().Follow(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	assert.Nil(t, engine.TriggerFarm())
	assert.Equal(t, 2, h.farmingStats().TotalFarmed)
}

func Test_Farming_Cap_Counts_Successes(t *testing.T) {

	ctrl, h, engine := setupFarmingTest(t, "golang/go")
	defer ctrl.Finish()

	stargazers := makeLogins("s", 10)
	h.mockPlatform.EXPECT().GetStargazers(gomock.Any(), "golang/go", gomock.Any()).Return(stargazers, nil)
	h.mockPlatform.EXPECT().Follow(gomock.Any(), "s00").Return(errors.New("blocked"))
	h.mockPlatform.EXPECT().Follow(gomock.Any(), "s01").Return(errors.New("blocked"))
	h.mockPlatform.EXPECT().Follow(gomock.Any(), gomock.Any()).Return(nil).Times(5)

	assert.Nil(t, engine.TriggerFarm())
	assert.Equal(t, stargazers[2:7], h.followed())
}

func Test_Farming_Filters_Self_And_Followed(t *testing.T) {

	ctrl, h := setupEngineTest(t)
	defer ctrl.Finish()
	h.cfg.Farming.Enabled = true
	h.cfg.Farming.TargetRepos = []string{"golang/go"}
	h.seedFollowed(t, "a", "b")
	engine := h.init(t)

	h.mockPlatform.EXPECT().GetStargazers(gomock.Any(), "golang/go", gomock.Any()).
		Return([]string{selfLogin, "a", "b", "c"}, nil)
	h.mockPlatform.EXPECT().Follow(gomock.Any(), "c").Return(nil).Times(1)

	assert.Nil(t, engine.TriggerFarm())
	assert.Equal(t, []string{"a", "b", "c"}, h.followed())
}

func Test_Farming_Picks_One_Configured_Repo(t *testing.T) {

	repos := []string{"golang/go", "rust-lang/rust", "python/cpython"}
	ctrl, h, engine := setupFarmingTest(t, repos...)
	defer ctrl.Finish()

	var picked []string
	h.mockPlatform.EXPECT().GetStargazers(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, repo string, _ int) ([]string, error) {
			picked = append(picked, repo)
			return nil, nil
		}).Times(6)

	for i := 0; i < 6; i++ {
		assert.Nil(t, engine.TriggerFarm())
	}
	assert.Len(t, picked, 6)
	for _, repo := range picked {
		assert.Contains(t, repos, repo)
	}
}

func Test_Farming_Daily_Limit(t *testing.T) {

	ctrl, h := setupEngineTest(t)
	defer ctrl.Finish()
	h.cfg.Farming.Enabled = true
	h.cfg.Farming.TargetRepos = []string{"golang/go"}
	h.cfg.Farming.DailyFollowLimit = 2
	engine := h.init(t)

	h.mockPlatform.EXPECT().GetStargazers(gomock.Any(), "golang/go", gomock.Any()).Return(makeLogins("s", 10), nil).Times(1)
	h.mockPlatform.EXPECT().Follow(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	assert.Nil(t, engine.TriggerFarm())
	// Limit exhausted: no stargazer fetch, no follows
	assert.Nil(t, engine.TriggerFarm())

	fs := h.farmingStats()
	assert.Equal(t, 2, fs.FollowsToday)
	assert.Equal(t, 2, fs.TotalFarmed)
}

func Test_Farming_Hourly_Limit(t *testing.T) {

	ctrl, h := setupEngineTest(t)
	defer ctrl.Finish()
	h.cfg.Farming.Enabled = true
	h.cfg.Farming.TargetRepos = []string{"golang/go"}
	h.cfg.Farming.HourlyFollowLimit = 3
	engine := h.init(t)

	h.mockPlatform.EXPECT().GetStargazers(gomock.Any(), "golang/go", gomock.Any()).Return(makeLogins("s", 10), nil).Times(1)
	h.mockPlatform.EXPECT().Follow(gomock.Any(), gomock.Any()).Return(nil).Times(3)

	assert.Nil(t, engine.TriggerFarm())
	assert.Equal(t, 3, h.farmingStats().FollowsThisHour)
}

func Test_Farming_Stargazer_Error(t *testing.T) {

	ctrl, h, engine := setupFarmingTest(t, "golang/go")
	defer ctrl.Finish()

	h.mockPlatform.EXPECT().GetStargazers(gomock.Any(), "golang/go", gomock.Any()).Return(nil, errors.New("404 Not Found"))

	err := engine.TriggerFarm()
	assert.ErrorContains(t, err, "golang/go")
	assert.Empty(t, h.followed())
}

func Test_Farming_Walks_Past_Followed_Pages(t *testing.T) {

	ctrl, h := setupEngineTest(t)
	defer ctrl.Finish()
	h.cfg.Farming.Enabled = true
	h.cfg.Farming.TargetRepos = []string{"golang/go"}
	all := makeLogins("s", 150)
	h.seedFollowed(t, all[:100]...)
	engine := h.init(t)

	h.mockPlatform.EXPECT().GetStargazers(gomock.Any(), "golang/go", 1).Return(all[:100], nil)
	h.mockPlatform.EXPECT().GetStargazers(gomock.Any(), "golang/go", 2).Return(all[100:], nil)
	h.mockPlatform.EXPECT().Follow(gomock.Any(), gomock.Any()).Return(nil).Times(5)

	assert.Nil(t, engine.TriggerFarm())

	assert.Equal(t, 5, h.farmingStats().TotalFarmed)
	assert.Equal(t, sorted(all[:105]), h.followed())
}

func Test_Farming_Stops_Paging_Once_Cap_Is_Reached(t *testing.T) {

	ctrl, h, engine := setupFarmingTest(t, "golang/go")
	defer ctrl.Finish()

	// A full first page has enough candidates; page 2 is never fetched
	h.mockPlatform.EXPECT().GetStargazers(gomock.Any(), "golang/go", 1).Return(makeLogins("s", 100), nil).Times(1)
	h.mockPlatform.EXPECT().Follow(gomock.Any(), gomock.Any()).Return(nil).Times(5)

	assert.Nil(t, engine.TriggerFarm())
	assert.Equal(t, 5, h.farmingStats().TotalFarmed)
}

func Test_Farming_Scan_Limit_Bounds_The_Walk(t *testing.T) {

	ctrl, h := setupEngineTest(t)
	defer ctrl.Finish()
	h.cfg.Farming.Enabled = true
	h.cfg.Farming.TargetRepos = []string{"golang/go"}
	h.cfg.Farming.ScanLimit = 200
	all := makeLogins("s", 300)
	h.seedFollowed(t, all...)
	engine := h.init(t)

	h.mockPlatform.EXPECT().GetStargazers(gomock.Any(), "golang/go", 1).Return(all[:100], nil)
	h.mockPlatform.EXPECT().GetStargazers(gomock.Any(), "golang/go", 2).Return(all[100:200], nil)

	assert.Nil(t, engine.TriggerFarm())
	assert.Equal(t, 0, h.farmingStats().TotalFarmed)
	assert.NotNil(t, h.farmingStats().LastFarming)
}
