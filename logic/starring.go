package logic

import (
	"context"
	"fmt"
	"follower_bot/shared"
)

// star stars repo unless it was starred before. Returns whether a star was added.
func (e *engine) star(ctx context.Context, state *botState, repo string) (bool, error) {

	owner, name, err := shared.SplitRepoName(repo)
	if err != nil {
		return false, err
	}
	repo = owner + "/" + name

	if state.isStarred(repo) {
		e.logger.Infof("Already starred %s", repo)
		return false, nil
	}
	if !e.executor.Star(ctx, repo) {
		return false, fmt.Errorf("failed to star %s", repo)
	}
	state.recordStarred(e.now(), repo)
	e.recorder.Record(CatStarred, repo)
	return true, nil
}
