package logic

import (
	"context"
	"fmt"
	"follower_bot/texts"
	"github.com/samber/lo"
	"sort"
	"strconv"
)

// cleanup unfollows accounts that do not follow back. Both lists are fetched fresh on every run.
func (e *engine) cleanup(ctx context.Context, state *botState) error {

	if !e.cfg.CleanupNonFollowers {
		e.logger.Debug("Cleanup disabled; skipping")
		return nil
	}

	defer func() {
		now := e.now()
		state.finishCleanup(now, now.Add(e.cfg.CycleInterval()))
	}()

	followers, err := e.platform.GetFollowers(ctx)
	if err != nil {
		return fmt.Errorf("failed to get followers: %w", err)
	}
	following, err := e.platform.GetFollowing(ctx)
	if err != nil {
		return fmt.Errorf("failed to get following: %w", err)
	}

	nonReciprocators, _ := lo.Difference(lo.Uniq(following), followers)
	if len(nonReciprocators) == 0 {
		e.logger.Info("Everyone followed follows back")
		return nil
	}
	sort.Strings(nonReciprocators)
	e.logger.Infof("Found %d non-reciprocating accounts", len(nonReciprocators))

	done := runBatch(ctx, nonReciprocators, cleanupBatchCap, e.cfg.Pacing.Cleanup(), e.executor.Unfollow, func(login string) {
		state.removeFollowed(login)
		state.recordUnfollowed()
		e.recorder.Record(CatUnfollowed, login)
	})

	e.logger.Infof("Unfollowed %d of %d", done, len(nonReciprocators))
	if done > 0 {
		e.notifier.Send(e.txt.WithVals(texts.CleanupUnfollowed, map[string]string{"count": strconv.Itoa(done)}))
	}
	return nil
}
