package logic

import (
	"context"
	"errors"
	"fmt"
	"follower_bot/dal"
	"follower_bot/dto"
	"follower_bot/shared"
	"follower_bot/texts"
	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"
	"math/rand/v2"
	"sync"
	"time"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_engine.go -package mocks follower_bot/logic IEngine

var (
	ErrNotInitialized = errors.New("bot not initialized")
	ErrBusy           = errors.New("a cycle is already in progress")
)

const (
	farmingBatchCap  = 5
	cleanupBatchCap  = 20
	defaultScanLimit = 3000
	panicSleepSec    = 10
)

// IEngine runs follow-back, farming and cleanup, alone or as a cycle, and the background loop that
// repeats the cycle. At most one task or cycle runs at any time.
type IEngine interface {
	Init(ctx context.Context) error
	Start() (bool, error)
	Stop() bool
	Shutdown()
	Status() *dto.StatusResp
	ConfigInfo() (*dto.ConfigResp, error)
	RunCycle(ctx context.Context) error
	TriggerCycle() error
	TriggerFollowBack() error
	TriggerFarm() error
	TriggerCleanup() error
	TriggerStar(repo string) (bool, error)
}

type engine struct {
	cfg       *shared.Config
	logger    shared.ILogger
	repo      dal.IRepo
	platform  IPlatform
	executor  IActionExecutor
	recorder  ISessionRecorder
	notifier  INotifier
	txt       texts.ITexts
	metrics   IMetrics
	now       func() time.Time
	randIntn  func(n int) int
	slot      *semaphore.Weighted
	ctx       context.Context
	cancel    context.CancelFunc
	wake      chan struct{}
	muState   sync.Mutex
	state     *botState
	self      string
	initErr   error
	running   bool
	loopAlive bool
}

type taskFunc func(ctx context.Context, state *botState) error

func NewEngine(
	cfg *shared.Config,
	logger shared.ILogger,
	repo dal.IRepo,
	platform IPlatform,
	executor IActionExecutor,
	recorder ISessionRecorder,
	notifier INotifier,
	txt texts.ITexts,
	metrics IMetrics,
) IEngine {

	e := engine{
		cfg:      cfg,
		logger:   logger,
		repo:     repo,
		platform: platform,
		executor: executor,
		recorder: recorder,
		notifier: notifier,
		txt:      txt,
		metrics:  metrics,
		now:      time.Now,
		randIntn: rand.IntN,
		slot:     semaphore.NewWeighted(1),
		wake:     make(chan struct{}, 1),
		initErr:  ErrNotInitialized,
	}
	e.ctx, e.cancel = context.WithCancel(context.Background())
	return &e
}

// Init checks the credentials and loads the persisted state. Until it succeeds, every operation
// except Status and Stop reports ErrNotInitialized.
func (e *engine) Init(ctx context.Context) error {

	var err error
	var self string
	if e.cfg.Secrets.GitHubToken == "" {
		err = fmt.Errorf("%w: GITHUB_TOKEN is not set", ErrNotInitialized)
	} else if self, err = e.platform.WhoAmI(ctx); err != nil {
		err = fmt.Errorf("%w: failed to authenticate: %v", ErrNotInitialized, err)
	}
	if err != nil {
		e.muState.Lock()
		e.initErr = err
		e.muState.Unlock()
		return err
	}

	state := newBotState(e.logger, e.repo, e.metrics)

	e.muState.Lock()
	e.state = state
	e.self = self
	e.initErr = nil
	e.muState.Unlock()

	e.logger.Infof("Authenticated as %s; %d logins in followed set", self, state.followedCount())
	return nil
}

func (e *engine) initialized() (*botState, string, error) {
	e.muState.Lock()
	defer e.muState.Unlock()
	if e.state == nil {
		return nil, "", e.initErr
	}
	return e.state, e.self, nil
}

// Start launches the background loop. Returns false if it was already running.
func (e *engine) Start() (bool, error) {

	e.muState.Lock()
	defer e.muState.Unlock()

	if e.running {
		return false, nil
	}
	if e.state == nil {
		return false, e.initErr
	}
	e.running = true
	select {
	case <-e.wake:
	default:
	}
	if !e.loopAlive {
		e.loopAlive = true
		go e.cycleLoop()
	}
	e.logger.Info("Background loop started")
	return true, nil
}

// Stop asks the background loop to end after the current cycle. Returns false if it was not running.
func (e *engine) Stop() bool {

	e.muState.Lock()
	defer e.muState.Unlock()

	if !e.running {
		return false
	}
	e.running = false
	select {
	case e.wake <- struct{}{}:
	default:
	}
	e.logger.Info("Background loop stopping after current cycle")
	return true
}

// Shutdown stops the loop and cancels work in flight.
func (e *engine) Shutdown() {
	e.Stop()
	e.cancel()
}

func (e *engine) isRunning() bool {
	e.muState.Lock()
	defer e.muState.Unlock()
	return e.running
}

// keepLooping decides whether the loop goroutine goes on; it retires the loop under the same lock
// that Start checks, so a concurrent Start either sees the loop alive or spawns a new one.
func (e *engine) keepLooping() bool {
	e.muState.Lock()
	defer e.muState.Unlock()
	if e.running && e.ctx.Err() == nil {
		return true
	}
	e.loopAlive = false
	return false
}

func (e *engine) cycleLoop() {
	for e.keepLooping() {
		e.cycleLoopInner()
		select {
		case <-e.ctx.Done():
		case <-e.wake:
		case <-time.After(e.cfg.CycleInterval()):
		}
	}
	e.logger.Info("Background loop ended")
}

func (e *engine) cycleLoopInner() {

	defer func() {
		if r := recover(); r != nil {
			e.logger.Errorf("Background cycle panicked: %v", r)
			e.logger.Infof("Sleeping %d seconds after panic", panicSleepSec)
			sleepCtx(e.ctx, panicSleepSec*time.Second)
		}
	}()

	if err := e.RunCycle(e.ctx); err != nil && !errors.Is(err, context.Canceled) {
		e.logger.Errorf("Background cycle failed: %v", err)
	}
}

// RunCycle waits for the cycle slot, then runs one full cycle.
func (e *engine) RunCycle(ctx context.Context) error {
	state, _, err := e.initialized()
	if err != nil {
		return err
	}
	if err = e.slot.Acquire(ctx, 1); err != nil {
		return err
	}
	defer e.slot.Release(1)
	e.runCycle(ctx, state)
	return nil
}

func (e *engine) runCycle(ctx context.Context, state *botState) {

	cycleId := uuid.NewString()[:8]
	start := time.Now()
	e.logger.Infof("Cycle %s starting", cycleId)

	e.runStep(ctx, cycleId, "follow-back", state, e.followBack)
	e.runStep(ctx, cycleId, "farming", state, e.farm)
	e.runStep(ctx, cycleId, "cleanup", state, e.cleanup)
	e.runStep(ctx, cycleId, "report", state, e.flushReport)

	elapsed := time.Since(start)
	e.metrics.CycleFinished(elapsed)
	e.logger.Infof("Cycle %s finished in %v", cycleId, elapsed.Round(time.Millisecond))
}

func (e *engine) runStep(ctx context.Context, cycleId, name string, state *botState, fn taskFunc) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Errorf("Cycle %s: %s panicked: %v", cycleId, name, r)
		}
	}()
	if err := fn(ctx, state); err != nil {
		e.logger.Errorf("Cycle %s: %s failed: %v", cycleId, name, err)
	}
}

func (e *engine) flushReport(_ context.Context, _ *botState) error {
	if report, ok := e.recorder.Flush(); ok {
		e.notifier.Send(report)
	}
	return nil
}

// trigger runs fn right away if the cycle slot is free, and fails with ErrBusy if it is not.
func (e *engine) trigger(name string, fn taskFunc) (err error) {

	state, _, err := e.initialized()
	if err != nil {
		return err
	}
	if !e.slot.TryAcquire(1) {
		return ErrBusy
	}
	defer e.slot.Release(1)

	defer func() {
		if r := recover(); r != nil {
			e.logger.Errorf("Manual %s panicked: %v", name, r)
			err = fmt.Errorf("%s failed: %v", name, r)
		}
	}()

	e.logger.Infof("Manual %s triggered", name)
	return fn(e.ctx, state)
}

func (e *engine) TriggerCycle() error {
	return e.trigger("cycle", func(ctx context.Context, state *botState) error {
		e.runCycle(ctx, state)
		return nil
	})
}

func (e *engine) TriggerFollowBack() error {
	return e.trigger("follow-back", e.followBack)
}

func (e *engine) TriggerFarm() error {
	return e.trigger("farming", e.farm)
}

func (e *engine) TriggerCleanup() error {
	return e.trigger("cleanup", e.cleanup)
}

// TriggerStar stars repo. Returns false if it was starred before.
func (e *engine) TriggerStar(repo string) (bool, error) {
	starred := false
	err := e.trigger("star", func(ctx context.Context, state *botState) error {
		var err error
		starred, err = e.star(ctx, state, repo)
		return err
	})
	return starred, err
}

func (e *engine) Status() *dto.StatusResp {

	state, self, err := e.initialized()
	if err != nil {
		return &dto.StatusResp{Status: "Error: Bot not initialized"}
	}

	running := e.isRunning()
	fs := state.farmingStatsCopy()
	cs := state.cleanupStatsCopy()
	res := dto.StatusResp{
		Status:          "Stopped",
		IsRunning:       running,
		AuthenticatedAs: &self,
		Stats: &dto.BotStats{
			FollowedCount: state.followedCount(),
			FarmingStats:  &fs,
			CleanupStats:  &cs,
		},
	}
	if running {
		res.Status = "Running"
	}
	return &res
}

func (e *engine) ConfigInfo() (*dto.ConfigResp, error) {
	if _, _, err := e.initialized(); err != nil {
		return nil, err
	}
	return &dto.ConfigResp{
		FarmingEnabled: e.cfg.Farming.Enabled,
		CleanupEnabled: e.cfg.CleanupNonFollowers,
		DailyLimits: dto.DailyLimits{
			DailyFollowLimit:  e.cfg.Farming.DailyFollowLimit,
			HourlyFollowLimit: e.cfg.Farming.HourlyFollowLimit,
		},
	}, nil
}
