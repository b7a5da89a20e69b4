package dal

import (
	"encoding/json"
	"fmt"
	"time"
)

type Kind string

const (
	KindFollowed     Kind = "followed"
	KindFarmingStats Kind = "farming_stats"
	KindCleanupStats Kind = "cleanup_stats"
	KindStarredRepos Kind = "starred_repos"
	KindStarStats    Kind = "star_stats"
)

var AllKinds = []Kind{KindFollowed, KindFarmingStats, KindCleanupStats, KindStarredRepos, KindStarStats}

const (
	DayFormat  = "2006-01-02"
	HourFormat = "2006-01-02T15"
)

// Timestamp serializes as RFC 3339 and also accepts zone-less ISO 8601 values.
type Timestamp struct {
	time.Time
}

func NewTimestamp(t time.Time) *Timestamp {
	return &Timestamp{t}
}

func (ts Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(ts.Time.Format(time.RFC3339Nano))
}

func (ts *Timestamp) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return err
	}
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05", DayFormat} {
		if t, err := time.Parse(layout, str); err == nil {
			ts.Time = t
			return nil
		}
	}
	return fmt.Errorf("unrecognized timestamp '%s'", str)
}

// docExtras keeps the raw keys of a stored document, so keys written by another
// schema version survive a load/save round trip.
type docExtras struct {
	extras map[string]json.RawMessage
}

func (de *docExtras) getExtras() map[string]json.RawMessage  { return de.extras }
func (de *docExtras) setExtras(m map[string]json.RawMessage) { de.extras = m }

type FollowedUsers struct {
	docExtras
	Logins      []string   `json:"followed_users"`
	LastUpdated *Timestamp `json:"last_updated"`
}

type FarmingStats struct {
	docExtras
	Today           string         `json:"today"`
	FollowsToday    int            `json:"follows_today"`
	Hour            string         `json:"hour"`
	FollowsThisHour int            `json:"follows_this_hour"`
	TotalFarmed     int            `json:"total_farmed"`
	Sources         map[string]int `json:"sources"`
	LastFarming     *Timestamp     `json:"last_farming"`
	NextFarming     *Timestamp     `json:"next_farming"`
}

type CleanupStats struct {
	docExtras
	LastCleanup     *Timestamp `json:"last_cleanup"`
	NextCleanup     *Timestamp `json:"next_cleanup"`
	TotalUnfollowed int        `json:"total_unfollowed"`
}

type StarredRepos struct {
	docExtras
	Repos        []string `json:"repos"`
	Today        string   `json:"today"`
	StarsToday   int      `json:"stars_today"`
	TotalStarred int      `json:"total_starred"`
}

type StarStats struct {
	docExtras
	LastRun *Timestamp `json:"last_run"`
	NextRun *Timestamp `json:"next_run"`
}

func DefaultFollowedUsers() *FollowedUsers {
	return &FollowedUsers{Logins: []string{}}
}

func DefaultFarmingStats(now time.Time) *FarmingStats {
	return &FarmingStats{
		Today:   now.Format(DayFormat),
		Hour:    now.Format(HourFormat),
		Sources: map[string]int{},
	}
}

func DefaultCleanupStats() *CleanupStats {
	return &CleanupStats{}
}

func DefaultStarredRepos(now time.Time) *StarredRepos {
	return &StarredRepos{
		Repos: []string{},
		Today: now.Format(DayFormat),
	}
}

func DefaultStarStats() *StarStats {
	return &StarStats{}
}

// RollOver resets the per-day and per-hour counters when now is past the stored markers.
func (fs *FarmingStats) RollOver(now time.Time) {
	day := now.Format(DayFormat)
	if fs.Today != day {
		fs.Today = day
		fs.FollowsToday = 0
	}
	hour := now.Format(HourFormat)
	if fs.Hour != hour {
		fs.Hour = hour
		fs.FollowsThisHour = 0
	}
}

func (sr *StarredRepos) RollOver(now time.Time) {
	day := now.Format(DayFormat)
	if sr.Today != day {
		sr.Today = day
		sr.StarsToday = 0
	}
}
