package worker_test

import (
	"context"
	"errors"
	"fmt"
	"net/textproto"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"mca/internal/config"
	"mca/internal/payback"
	mockpayback "mca/internal/payback/mock"
	"mca/internal/rollup"
	mockrollup "mca/internal/rollup/mock"
	"mca/internal/worker"
	"mca/pkg/domain"
	"mca/pkg/logger"
	"mca/pkg/serrors"
	"mca/pkg/stats"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func makeJob[T river.JobArgs](id int64, args T) *river.Job[T] {
	return &river.Job[T]{
		JobRow: &rivertype.JobRow{ID: id, Kind: args.Kind()},
		Args:   args,
	}
}

func TestNewOptions(t *testing.T) {
	cfg := &config.Config{}
	cfg.Worker.MaxWorkers = 4
	cfg.Worker.ReminderCron = "0 13 * * 1-5"
	cfg.Worker.ReminderHorizonDays = 3

	options, err := worker.NewOptions(cfg)
	require.NoError(t, err)
	require.Equal(t, 4, options.MaxWorkers)
	require.Equal(t, 3, options.ReminderHorizonDays)
	require.Equal(t, time.Minute, options.UnavailableSnooze)
	require.Equal(t, 60, options.UnavailableMaxSnoozes)

	// Friday afternoon runs next on Monday
	next := options.ReminderSchedule.Next(time.Date(2025, time.March, 28, 14, 0, 0, 0, time.UTC))
	require.Equal(t, time.Date(2025, time.March, 31, 13, 0, 0, 0, time.UTC), next)
}

func TestNewOptions_NoReminder(t *testing.T) {
	options, err := worker.NewOptions(&config.Config{})
	require.NoError(t, err)
	require.Nil(t, options.ReminderSchedule)
}

func TestNewOptions_InvalidCron(t *testing.T) {
	cfg := &config.Config{}
	cfg.Worker.ReminderCron = "every day"

	_, err := worker.NewOptions(cfg)
	require.Error(t, err)
}

func TestStatsRefreshWorker_Work_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mockrollup.NewMockRollup(ctrl)
	w := worker.NewStatsRefreshWorker(mock)

	fundingID := domain.FundingID(uuid.New())
	mock.EXPECT().Refresh(gomock.Any(), fundingID).Return(&stats.FundingStats{FundingID: fundingID}, nil)

	require.NoError(t, w.Work(context.Background(), makeJob(1, rollup.NewRefreshArgs(fundingID, 3, time.Minute))))
}

func TestStatsRefreshWorker_Work_NotFoundCancels(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mockrollup.NewMockRollup(ctrl)
	w := worker.NewStatsRefreshWorker(mock)

	mock.EXPECT().Refresh(gomock.Any(), gomock.Any()).Return(nil, serrors.With(serrors.ErrNotFound, "funding not found"))

	err := w.Work(context.Background(), makeJob(2, rollup.NewRefreshArgs(domain.FundingID(uuid.New()), 3, 0)))
	require.Error(t, err)
	var cancelErr *river.JobCancelError
	require.ErrorAs(t, err, &cancelErr)
}

func TestStatsRefreshWorker_Work_GenericErrorWrapped(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mockrollup.NewMockRollup(ctrl)
	w := worker.NewStatsRefreshWorker(mock)

	boom := errors.New("boom")
	mock.EXPECT().Refresh(gomock.Any(), gomock.Any()).Return(nil, boom)

	err := w.Work(context.Background(), makeJob(3, rollup.NewRefreshArgs(domain.FundingID(uuid.New()), 3, 0)))
	require.ErrorIs(t, err, boom)
	var cancelErr *river.JobCancelError
	require.NotErrorAs(t, err, &cancelErr, "did not expect JobCancelError")
}

func TestPaybackFailedWorker_Work_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mockpayback.NewMockService(ctrl)
	w := worker.NewPaybackFailedWorker(mock, time.Minute, 5)

	paybackID := domain.PaybackID(uuid.New())
	mock.EXPECT().NotifyFailed(gomock.Any(), paybackID).Return(nil)

	require.NoError(t, w.Work(context.Background(), makeJob(10, payback.NotifyFailedArgs{PaybackID: paybackID})))
}

func TestPaybackFailedWorker_Work_StaleCancels(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mockpayback.NewMockService(ctrl)
	w := worker.NewPaybackFailedWorker(mock, time.Minute, 5)

	mock.EXPECT().NotifyFailed(gomock.Any(), gomock.Any()).Return(serrors.With(serrors.ErrConflict, "payback is paid"))

	err := w.Work(context.Background(), makeJob(11, payback.NotifyFailedArgs{PaybackID: domain.PaybackID(uuid.New())}))
	require.Error(t, err)
	var cancelErr *river.JobCancelError
	require.ErrorAs(t, err, &cancelErr)
}

func TestPaybackFailedWorker_Work_UnavailableSnoozes(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mockpayback.NewMockService(ctrl)
	w := worker.NewPaybackFailedWorker(mock, 90*time.Second, 5)

	mock.EXPECT().NotifyFailed(gomock.Any(), gomock.Any()).
		Return(serrors.With(serrors.ErrUnavailable, "relay down"))

	err := w.Work(context.Background(), makeJob(12, payback.NotifyFailedArgs{PaybackID: domain.PaybackID(uuid.New())}))
	require.Error(t, err)
	var snoozeErr *river.JobSnoozeError
	require.ErrorAs(t, err, &snoozeErr)
	require.Equal(t, 90*time.Second, snoozeErr.Duration)
}

func TestPaybackFailedWorker_Work_SnoozesExhausted(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mockpayback.NewMockService(ctrl)
	w := worker.NewPaybackFailedWorker(mock, 90*time.Second, 5)

	mock.EXPECT().NotifyFailed(gomock.Any(), gomock.Any()).
		Return(serrors.With(serrors.ErrUnavailable, "relay down"))

	job := makeJob(13, payback.NotifyFailedArgs{PaybackID: domain.PaybackID(uuid.New())})
	job.Attempt = 6

	err := w.Work(context.Background(), job)
	require.ErrorIs(t, err, serrors.ErrUnavailable)
	var snoozeErr *river.JobSnoozeError
	require.NotErrorAs(t, err, &snoozeErr, "did not expect JobSnoozeError")
	var cancelErr *river.JobCancelError
	require.NotErrorAs(t, err, &cancelErr, "did not expect JobCancelError")
}

func TestPaybackFailedWorker_Work_RelayRejectionCancels(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mockpayback.NewMockService(ctrl)
	w := worker.NewPaybackFailedWorker(mock, time.Minute, 5)

	rejected := serrors.Wrap(serrors.ErrBadRequest, &textproto.Error{Code: 550, Msg: "no such user"}, "relay rejected email")
	mock.EXPECT().NotifyFailed(gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("could not send failure notification: %w", rejected))

	err := w.Work(context.Background(), makeJob(14, payback.NotifyFailedArgs{PaybackID: domain.PaybackID(uuid.New())}))
	var cancelErr *river.JobCancelError
	require.ErrorAs(t, err, &cancelErr)
	var snoozeErr *river.JobSnoozeError
	require.NotErrorAs(t, err, &snoozeErr, "did not expect JobSnoozeError")
}

func TestReminderWorker_Work(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mockpayback.NewMockService(ctrl)
	w := worker.NewReminderWorker(mock)

	mock.EXPECT().RemindUpcoming(gomock.Any(), 3).Return(2, nil)

	require.NoError(t, w.Work(context.Background(), makeJob(20, worker.ReminderArgs{HorizonDays: 3})))
}

func TestReminderWorker_Work_Retries(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mockpayback.NewMockService(ctrl)
	w := worker.NewReminderWorker(mock)

	mock.EXPECT().RemindUpcoming(gomock.Any(), 3).Return(0, serrors.With(serrors.ErrUnavailable, "relay down"))

	err := w.Work(context.Background(), makeJob(21, worker.ReminderArgs{HorizonDays: 3}))
	require.ErrorIs(t, err, serrors.ErrUnavailable)
	var cancelErr *river.JobCancelError
	require.NotErrorAs(t, err, &cancelErr, "did not expect JobCancelError")
}

func TestReminderArgs_InsertOpts(t *testing.T) {
	opts := worker.ReminderArgs{}.InsertOpts()
	require.Equal(t, time.Hour, opts.UniqueOpts.ByPeriod)
	require.Contains(t, opts.UniqueOpts.ByState, rivertype.JobStateCompleted)
}
