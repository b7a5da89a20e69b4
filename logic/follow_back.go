package logic

import (
	"context"
	"fmt"
	"github.com/samber/lo"
	"sort"
)

// followBack follows every live follower not yet in the followed set.
func (e *engine) followBack(ctx context.Context, state *botState) error {

	followers, err := e.platform.GetFollowers(ctx)
	if err != nil {
		return fmt.Errorf("failed to get followers: %w", err)
	}

	candidates := state.notFollowed(lo.Uniq(followers))
	if len(candidates) == 0 {
		e.logger.Info("No new followers to follow back")
		return nil
	}
	sort.Strings(candidates)
	e.logger.Infof("Following back %d new followers", len(candidates))

	done := runBatch(ctx, candidates, 0, e.cfg.Pacing.FollowBack(), e.executor.Follow, func(login string) {
		state.addFollowed(login)
		e.recorder.Record(CatFollowedBack, login)
	})

	e.logger.Infof("Followed back %d of %d", done, len(candidates))
	return nil
}
