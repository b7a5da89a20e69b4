package logic

import (
	"follower_bot/texts"
	"strconv"
	"strings"
	"sync"
)

type ActivityCategory string

const (
	CatFollowedBack ActivityCategory = "followed_back"
	CatFarmed       ActivityCategory = "farmed"
	CatUnfollowed   ActivityCategory = "unfollowed"
	CatStarred      ActivityCategory = "starred"
)

// Report line order
var reportCategories = []struct {
	cat     ActivityCategory
	snippet string
}{
	{CatFollowedBack, texts.ReportFollowedBack},
	{CatUnfollowed, texts.ReportUnfollowed},
	{CatStarred, texts.ReportStarred},
	{CatFarmed, texts.ReportFarmed},
}

// ISessionRecorder accumulates what happened since the last report.
type ISessionRecorder interface {
	Record(cat ActivityCategory, item string)
	Flush() (report string, ok bool)
	Counts() map[ActivityCategory]int
}

type sessionRecorder struct {
	txt        texts.ITexts
	mu         sync.Mutex
	activities map[ActivityCategory][]string
}

func NewSessionRecorder(txt texts.ITexts) ISessionRecorder {
	sr := sessionRecorder{txt: txt}
	sr.reset()
	return &sr
}

func (sr *sessionRecorder) reset() {
	sr.activities = make(map[ActivityCategory][]string, len(reportCategories))
	for _, rc := range reportCategories {
		sr.activities[rc.cat] = []string{}
	}
}

// Record appends item to cat. Unknown categories are ignored.
func (sr *sessionRecorder) Record(cat ActivityCategory, item string) {
	sr.mu.Lock()
	defer sr.mu.Unlock()
	if list, ok := sr.activities[cat]; ok {
		sr.activities[cat] = append(list, item)
	}
}

// Flush composes the report and clears all categories. ok is false if there was nothing to report.
func (sr *sessionRecorder) Flush() (string, bool) {

	sr.mu.Lock()
	defer sr.mu.Unlock()

	parts := []string{sr.txt.Get(texts.ReportHeader) + "\n"}
	for _, rc := range reportCategories {
		count := len(sr.activities[rc.cat])
		if count == 0 {
			continue
		}
		parts = append(parts, sr.txt.WithVals(rc.snippet, map[string]string{"count": strconv.Itoa(count)}))
	}
	sr.reset()

	if len(parts) == 1 {
		return "", false
	}
	return strings.Join(parts, "\n"), true
}

func (sr *sessionRecorder) Counts() map[ActivityCategory]int {
	sr.mu.Lock()
	defer sr.mu.Unlock()
	res := make(map[ActivityCategory]int, len(sr.activities))
	for cat, list := range sr.activities {
		res[cat] = len(list)
	}
	return res
}
