package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stpnv0/mari-gunting/internal/domain"
	"github.com/stpnv0/mari-gunting/internal/scheduler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestScheduler_Tick_SweepsAll(t *testing.T) {
	sweeper := mocks.NewMockBookingSweeper(t)
	log := newTestLogger(t)

	s := New(sweeper, 50*time.Millisecond, log)

	expired := []*domain.Booking{
		{ID: "b1", CustomerID: "c1", BarberID: "p1", Status: domain.BookingStatusExpired},
	}
	sweeper.EXPECT().ExpireOverdue(mock.Anything).Return(expired, nil)
	sweeper.EXPECT().AutoConfirmOverdue(mock.Anything).Return(nil, nil)
	sweeper.EXPECT().SettleOutstanding(mock.Anything).Return(nil, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(sweeper.Calls), 3)
}

func TestScheduler_Tick_ErrorDoesNotStopOtherSweeps(t *testing.T) {
	sweeper := mocks.NewMockBookingSweeper(t)
	log := newTestLogger(t)

	s := New(sweeper, time.Hour, log)

	sweeper.EXPECT().ExpireOverdue(mock.Anything).Return(nil, errors.New("db error")).Once()
	sweeper.EXPECT().AutoConfirmOverdue(mock.Anything).Return(nil, nil).Once()
	sweeper.EXPECT().SettleOutstanding(mock.Anything).Return(nil, errors.New("provider down")).Once()

	s.tick(context.Background())
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	sweeper := mocks.NewMockBookingSweeper(t)
	log := newTestLogger(t)

	s := New(sweeper, time.Second, log) // interval longer than test

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
		// success
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}

func TestScheduler_MultipleTicks(t *testing.T) {
	sweeper := mocks.NewMockBookingSweeper(t)
	log := newTestLogger(t)

	s := New(sweeper, 30*time.Millisecond, log)

	sweeper.EXPECT().ExpireOverdue(mock.Anything).Return(nil, nil)
	sweeper.EXPECT().AutoConfirmOverdue(mock.Anything).Return(nil, nil)
	sweeper.EXPECT().SettleOutstanding(mock.Anything).Return(nil, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	calls := len(sweeper.Calls)
	assert.GreaterOrEqual(t, calls, 6)
}
