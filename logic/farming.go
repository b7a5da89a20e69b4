package logic

import (
	"context"
	"fmt"
	"github.com/samber/lo"
)

// farm follows a few stargazers of one randomly chosen target repository.
func (e *engine) farm(ctx context.Context, state *botState) error {

	fc := e.cfg.Farming
	if !fc.Enabled || len(fc.TargetRepos) == 0 {
		e.logger.Debug("Farming disabled or no target repos; skipping")
		return nil
	}

	limit := min(farmingBatchCap, state.farmingAllowance(e.now(), fc.DailyFollowLimit, fc.HourlyFollowLimit))
	if limit == 0 {
		e.logger.Infof("Farming limits reached (daily %d, hourly %d); skipping", fc.DailyFollowLimit, fc.HourlyFollowLimit)
		e.finishFarming(state)
		return nil
	}

	repo := lo.SampleBy(fc.TargetRepos, e.randIntn)
	scanLimit := fc.ScanLimit
	if scanLimit <= 0 {
		scanLimit = defaultScanLimit
	}
	e.logger.Infof("Farming stargazers of %s", repo)

	// Stargazers come oldest first, so the walk goes past pages whose users are all followed already
	done, scanned, tried := 0, 0, 0
	for page := 1; done < limit && scanned < scanLimit; page++ {
		stargazers, err := e.platform.GetStargazers(ctx, repo, page)
		if err != nil {
			if done == 0 {
				return fmt.Errorf("failed to get stargazers of %s: %w", repo, err)
			}
			e.logger.Warnf("Stopping stargazer walk of %s at page %d: %v", repo, page, err)
			break
		}
		scanned += len(stargazers)

		candidates := lo.Filter(lo.Uniq(stargazers), func(login string, _ int) bool {
			return login != e.self
		})
		candidates = state.notFollowed(candidates)
		if len(candidates) > 0 {
			if tried > 0 && !sleepCtx(ctx, e.cfg.Pacing.Farming()) {
				break
			}
			tried += len(candidates)
			done += runBatch(ctx, candidates, limit-done, e.cfg.Pacing.Farming(), e.executor.Follow, func(login string) {
				state.addFollowed(login)
				state.recordFarmed(e.now(), repo)
				e.recorder.Record(CatFarmed, login)
			})
		}
		if len(stargazers) < StargazerPageSize || ctx.Err() != nil {
			break
		}
	}

	e.logger.Infof("Farmed %d from %s after scanning %d stargazers (cap %d)", done, repo, scanned, limit)
	e.finishFarming(state)
	return nil
}

func (e *engine) finishFarming(state *botState) {
	now := e.now()
	state.finishFarming(now, now.Add(e.cfg.CycleInterval()))
}
