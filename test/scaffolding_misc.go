package test

import (
	"fmt"
	"follower_bot/dal"
	"follower_bot/shared"
	"follower_bot/test/mocks"
	"github.com/charmbracelet/log"
	"go.uber.org/mock/gomock"
	"io"
	"sort"
)

func setupDummyLogger(mockLogger *mocks.MockILogger) {
	mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warn(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warnf(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Printf(gomock.Any(), gomock.Any()).AnyTimes()
}

type dummyObserver struct{}

func (dummyObserver) Finish() {}

func setupDummyMetrics(mockMetrics *mocks.MockIMetrics) {
	mockMetrics.EXPECT().StartWebRequestIn(gomock.Any()).Return(dummyObserver{}).AnyTimes()
	mockMetrics.EXPECT().StartApiRequestOut(gomock.Any()).Return(dummyObserver{}).AnyTimes()
	mockMetrics.EXPECT().ActionDone(gomock.Any(), gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().CycleFinished(gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().ServiceStarted().AnyTimes()
	mockMetrics.EXPECT().FollowedCount(gomock.Any()).AnyTimes()
}

// newStateReader opens the state in cfg's directory the way a restarted process would.
func newStateReader(cfg *shared.Config) dal.IRepo {
	logger := log.New(io.Discard)
	return dal.NewRepo(logger, dal.NewFileStore(cfg, logger))
}

func sorted(items []string) []string {
	res := append([]string{}, items...)
	sort.Strings(res)
	return res
}

func makeLogins(prefix string, count int) []string {
	var res []string
	for i := 0; i < count; i++ {
		res = append(res, fmt.Sprintf("%s%02d", prefix, i))
	}
	return res
}
