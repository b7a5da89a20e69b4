package dal

import (
	"encoding/json"
	"errors"
	"follower_bot/shared"
	"time"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_repo.go -package mocks follower_bot/dal IRepo

// IRepo loads and saves the bot's state records. Loading never fails: a missing, unreadable or
// malformed document yields the record's defaults. Saving reports success; failures are logged.
type IRepo interface {
	LoadFollowed() *FollowedUsers
	SaveFollowed(fu *FollowedUsers) bool
	LoadFarmingStats() *FarmingStats
	SaveFarmingStats(fs *FarmingStats) bool
	LoadCleanupStats() *CleanupStats
	SaveCleanupStats(cs *CleanupStats) bool
	LoadStarredRepos() *StarredRepos
	SaveStarredRepos(sr *StarredRepos) bool
	LoadStarStats() *StarStats
	SaveStarStats(ss *StarStats) bool
}

type extrasHolder interface {
	getExtras() map[string]json.RawMessage
	setExtras(map[string]json.RawMessage)
}

type Repo struct {
	logger shared.ILogger
	store  IDocStore
	now    func() time.Time
}

func NewRepo(logger shared.ILogger, store IDocStore) IRepo {
	return &Repo{
		logger: logger,
		store:  store,
		now:    time.Now,
	}
}

func (repo *Repo) LoadFollowed() *FollowedUsers {
	res := loadDoc(repo.store, repo.logger, KindFollowed, DefaultFollowedUsers)
	if res.Logins == nil {
		res.Logins = []string{}
	}
	return res
}

func (repo *Repo) SaveFollowed(fu *FollowedUsers) bool {
	fu.LastUpdated = NewTimestamp(repo.now())
	return saveDoc(repo.store, repo.logger, KindFollowed, fu)
}

func (repo *Repo) LoadFarmingStats() *FarmingStats {
	res := loadDoc(repo.store, repo.logger, KindFarmingStats, func() *FarmingStats {
		return DefaultFarmingStats(repo.now())
	})
	if res.Sources == nil {
		res.Sources = map[string]int{}
	}
	return res
}

func (repo *Repo) SaveFarmingStats(fs *FarmingStats) bool {
	return saveDoc(repo.store, repo.logger, KindFarmingStats, fs)
}

func (repo *Repo) LoadCleanupStats() *CleanupStats {
	return loadDoc(repo.store, repo.logger, KindCleanupStats, DefaultCleanupStats)
}

func (repo *Repo) SaveCleanupStats(cs *CleanupStats) bool {
	return saveDoc(repo.store, repo.logger, KindCleanupStats, cs)
}

func (repo *Repo) LoadStarredRepos() *StarredRepos {
	res := loadDoc(repo.store, repo.logger, KindStarredRepos, func() *StarredRepos {
		return DefaultStarredRepos(repo.now())
	})
	if res.Repos == nil {
		res.Repos = []string{}
	}
	return res
}

func (repo *Repo) SaveStarredRepos(sr *StarredRepos) bool {
	return saveDoc(repo.store, repo.logger, KindStarredRepos, sr)
}

func (repo *Repo) LoadStarStats() *StarStats {
	return loadDoc(repo.store, repo.logger, KindStarStats, DefaultStarStats)
}

func (repo *Repo) SaveStarStats(ss *StarStats) bool {
	return saveDoc(repo.store, repo.logger, KindStarStats, ss)
}

// loadDoc merges the stored document over the defaults key by key: stored keys win,
// keys missing from the document keep their default value.
func loadDoc[PT extrasHolder](store IDocStore, logger shared.ILogger, kind Kind, defaults func() PT) PT {

	data, err := store.ReadDoc(kind)
	if err != nil {
		if !errors.Is(err, ErrDocNotFound) {
			logger.Errorf("Failed to read %s state; using defaults: %v", kind, err)
		}
		return defaults()
	}

	var stored map[string]json.RawMessage
	if err = json.Unmarshal(data, &stored); err != nil {
		logger.Errorf("Malformed %s state; using defaults: %v", kind, err)
		return defaults()
	}

	var merged map[string]json.RawMessage
	if merged, err = toKeyMap(defaults()); err != nil {
		logger.Errorf("Failed to serialize %s defaults: %v", kind, err)
		return defaults()
	}
	for k, v := range stored {
		merged[k] = v
	}

	var mergedJson []byte
	if mergedJson, err = json.Marshal(merged); err != nil {
		logger.Errorf("Failed to merge %s state; using defaults: %v", kind, err)
		return defaults()
	}
	res := defaults()
	if err = json.Unmarshal(mergedJson, res); err != nil {
		logger.Errorf("Invalid %s state; using defaults: %v", kind, err)
		return defaults()
	}
	res.setExtras(merged)
	return res
}

// saveDoc writes the record's fields over whatever keys were loaded with it.
func saveDoc(store IDocStore, logger shared.ILogger, kind Kind, rec extrasHolder) bool {

	known, err := toKeyMap(rec)
	if err != nil {
		logger.Errorf("Failed to serialize %s state: %v", kind, err)
		return false
	}
	out := make(map[string]json.RawMessage, len(known))
	for k, v := range rec.getExtras() {
		out[k] = v
	}
	for k, v := range known {
		out[k] = v
	}

	var data []byte
	if data, err = json.MarshalIndent(out, "", "  "); err != nil {
		logger.Errorf("Failed to serialize %s state: %v", kind, err)
		return false
	}
	if err = store.WriteDoc(kind, data); err != nil {
		logger.Errorf("Failed to save %s state: %v", kind, err)
		return false
	}
	rec.setExtras(out)
	return true
}

func toKeyMap(obj any) (map[string]json.RawMessage, error) {
	data, err := json.Marshal(obj)
	if err != nil {
		return nil, err
	}
	res := map[string]json.RawMessage{}
	if err = json.Unmarshal(data, &res); err != nil {
		return nil, err
	}
	return res, nil
}
