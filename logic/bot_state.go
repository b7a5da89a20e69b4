package logic

import (
	"follower_bot/dal"
	"follower_bot/shared"
	"github.com/samber/lo"
	"sort"
	"sync"
	"time"
)

// botState is the in-memory authority over the persisted records.
// Every mutation is saved at once; a failed save leaves memory authoritative until the next one.
type botState struct {
	logger       shared.ILogger
	repo         dal.IRepo
	metrics      IMetrics
	mu           sync.Mutex
	followedRec  *dal.FollowedUsers
	followed     map[string]struct{}
	farmingStats *dal.FarmingStats
	cleanupStats *dal.CleanupStats
	starredRepos *dal.StarredRepos
	starStats    *dal.StarStats
}

func newBotState(logger shared.ILogger, repo dal.IRepo, metrics IMetrics) *botState {
	bs := botState{
		logger:       logger,
		repo:         repo,
		metrics:      metrics,
		followedRec:  repo.LoadFollowed(),
		farmingStats: repo.LoadFarmingStats(),
		cleanupStats: repo.LoadCleanupStats(),
		starredRepos: repo.LoadStarredRepos(),
		starStats:    repo.LoadStarStats(),
	}
	bs.followed = make(map[string]struct{}, len(bs.followedRec.Logins))
	for _, login := range bs.followedRec.Logins {
		bs.followed[login] = struct{}{}
	}
	metrics.FollowedCount(len(bs.followed))
	return &bs
}

func (bs *botState) followedCount() int {
	bs.mu.Lock()
	defer bs.mu.Unlock()
	return len(bs.followed)
}

func (bs *botState) isFollowed(login string) bool {
	bs.mu.Lock()
	defer bs.mu.Unlock()
	_, ok := bs.followed[login]
	return ok
}

// notFollowed returns the logins not in the followed set, keeping their order.
func (bs *botState) notFollowed(logins []string) []string {
	bs.mu.Lock()
	defer bs.mu.Unlock()
	return lo.Filter(logins, func(login string, _ int) bool {
		_, ok := bs.followed[login]
		return !ok
	})
}

func (bs *botState) addFollowed(login string) {
	bs.mu.Lock()
	defer bs.mu.Unlock()
	if _, ok := bs.followed[login]; ok {
		return
	}
	bs.followed[login] = struct{}{}
	bs.saveFollowed()
}

func (bs *botState) removeFollowed(login string) {
	bs.mu.Lock()
	defer bs.mu.Unlock()
	if _, ok := bs.followed[login]; !ok {
		return
	}
	delete(bs.followed, login)
	bs.saveFollowed()
}

func (bs *botState) saveFollowed() {
	logins := lo.Keys(bs.followed)
	sort.Strings(logins)
	bs.followedRec.Logins = logins
	bs.repo.SaveFollowed(bs.followedRec)
	bs.metrics.FollowedCount(len(logins))
}

// farmingAllowance is how many more farming follows the daily and hourly limits permit right now.
func (bs *botState) farmingAllowance(now time.Time, dailyLimit, hourlyLimit int) int {
	bs.mu.Lock()
	defer bs.mu.Unlock()
	bs.farmingStats.RollOver(now)
	return max(0, min(dailyLimit-bs.farmingStats.FollowsToday, hourlyLimit-bs.farmingStats.FollowsThisHour))
}

func (bs *botState) recordFarmed(now time.Time, source string) {
	bs.mu.Lock()
	defer bs.mu.Unlock()
	fs := bs.farmingStats
	fs.RollOver(now)
	fs.FollowsToday++
	fs.FollowsThisHour++
	fs.TotalFarmed++
	fs.Sources[source]++
	bs.repo.SaveFarmingStats(fs)
}

func (bs *botState) finishFarming(now, next time.Time) {
	bs.mu.Lock()
	defer bs.mu.Unlock()
	bs.farmingStats.RollOver(now)
	bs.farmingStats.LastFarming = dal.NewTimestamp(now)
	bs.farmingStats.NextFarming = dal.NewTimestamp(next)
	bs.repo.SaveFarmingStats(bs.farmingStats)
}

// farmingStatsCopy returns a snapshot safe to serialize outside the lock.
func (bs *botState) farmingStatsCopy() dal.FarmingStats {
	bs.mu.Lock()
	defer bs.mu.Unlock()
	res := *bs.farmingStats
	res.Sources = lo.Assign(bs.farmingStats.Sources)
	return res
}

func (bs *botState) recordUnfollowed() {
	bs.mu.Lock()
	defer bs.mu.Unlock()
	bs.cleanupStats.TotalUnfollowed++
	bs.repo.SaveCleanupStats(bs.cleanupStats)
}

func (bs *botState) finishCleanup(now, next time.Time) {
	bs.mu.Lock()
	defer bs.mu.Unlock()
	bs.cleanupStats.LastCleanup = dal.NewTimestamp(now)
	bs.cleanupStats.NextCleanup = dal.NewTimestamp(next)
	bs.repo.SaveCleanupStats(bs.cleanupStats)
}

func (bs *botState) cleanupStatsCopy() dal.CleanupStats {
	bs.mu.Lock()
	defer bs.mu.Unlock()
	return *bs.cleanupStats
}

func (bs *botState) isStarred(repo string) bool {
	bs.mu.Lock()
	defer bs.mu.Unlock()
	return lo.Contains(bs.starredRepos.Repos, repo)
}

func (bs *botState) recordStarred(now time.Time, repo string) {
	bs.mu.Lock()
	defer bs.mu.Unlock()
	sr := bs.starredRepos
	sr.RollOver(now)
	if !lo.Contains(sr.Repos, repo) {
		sr.Repos = append(sr.Repos, repo)
	}
	sr.StarsToday++
	sr.TotalStarred++
	bs.repo.SaveStarredRepos(sr)
	bs.starStats.LastRun = dal.NewTimestamp(now)
	bs.repo.SaveStarStats(bs.starStats)
}
