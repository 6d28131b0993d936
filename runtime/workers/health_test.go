package workers

import (
	"context"
	"dynamic-voice/mocks"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHealthMonitoringWorker_Reports_Room_Count(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	rooms := mocks.NewMockRoomCounter(ctrl)

	// Then the room count is read on every tick
	rooms.EXPECT().Len().Return(3).MinTimes(1)

	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Millisecond)
	defer cancel()

	queue := make(chan struct{}, 4)
	err := NewHealthMonitoringWorker(slog.Default(), rooms, 20*time.Millisecond,
		NamedChannel{Name: "events", Channel: queue}).Run(ctx)

	req.NoError(err)
}

func TestFill(t *testing.T) {
	req := require.New(t)
	queue := make(chan int, 10)
	for i := 0; i < 9; i++ {
		queue <- i
	}

	length, capacity, ok := fill(queue)
	req.True(ok)
	req.Equal(9, length)
	req.Equal(10, capacity)

	_, _, ok = fill("not a channel")
	req.False(ok)
}
