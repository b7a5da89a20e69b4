package dal

import (
	"errors"
	"fmt"
	"follower_bot/shared"
	"github.com/gofrs/flock"
	"os"
	"path/filepath"
)

type fileStore struct {
	logger shared.ILogger
	paths  map[Kind]string
}

func NewFileStore(cfg *shared.Config, logger shared.ILogger) IDocStore {
	dir := cfg.StateDir
	if dir == "" {
		dir = "."
	}
	followersFile := cfg.FollowersFile
	if followersFile == "" {
		followersFile = "followers.json"
	}
	paths := map[Kind]string{
		KindFollowed:     followersFile,
		KindFarmingStats: "farming_stats.json",
		KindCleanupStats: "cleanup_stats.json",
		KindStarredRepos: "starred_repos.json",
		KindStarStats:    "star_stats.json",
	}
	for kind, fn := range paths {
		if !filepath.IsAbs(fn) {
			paths[kind] = filepath.Join(dir, fn)
		}
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		logger.Errorf("Failed to create state directory %s: %v", dir, err)
	}
	return &fileStore{logger, paths}
}

func (fs *fileStore) pathOf(kind Kind) (string, error) {
	path, ok := fs.paths[kind]
	if !ok {
		return "", fmt.Errorf("unknown document kind '%s'", kind)
	}
	return path, nil
}

func (fs *fileStore) ReadDoc(kind Kind) ([]byte, error) {
	path, err := fs.pathOf(kind)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrDocNotFound
		}
		return nil, err
	}
	return data, nil
}

// WriteDoc replaces the file atomically: other processes see either the old or the new document.
func (fs *fileStore) WriteDoc(kind Kind, doc []byte) error {
	path, err := fs.pathOf(kind)
	if err != nil {
		return err
	}

	lock := flock.New(path + ".lock")
	if err = lock.Lock(); err != nil {
		return fmt.Errorf("failed to lock %s: %w", path, err)
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			fs.logger.Warnf("Failed to unlock %s: %v", path, err)
		}
	}()

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err = tmp.Write(doc); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err = tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if err = os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	return nil
}
