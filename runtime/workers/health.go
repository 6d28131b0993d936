package workers

import (
	"context"
	"dynamic-voice/contract"
	"log/slog"
	"os"
	"reflect"
	"time"

	"github.com/shirou/gopsutil/process"
)

// A queue filled above this percentage means the dispatcher is falling behind the gateway.
const highWaterPercent = 80

type NamedChannel struct {
	Name    string
	Channel any
}

// HealthMonitoringWorker periodically logs the live room count, the fill level of the
// event queues and the bot's own CPU and RAM usage.
// Reading len(channel) and cap(channel) is non-blocking, so this won't interfere with the dispatcher.
type HealthMonitoringWorker struct {
	log            *slog.Logger
	rooms          contract.RoomCounter
	channels       []NamedChannel
	metricInterval time.Duration
	pid            int32
}

func NewHealthMonitoringWorker(
	log *slog.Logger,
	rooms contract.RoomCounter,
	metricInterval time.Duration,
	channels ...NamedChannel,
) *HealthMonitoringWorker {
	return &HealthMonitoringWorker{
		log:            log,
		rooms:          rooms,
		channels:       channels,
		metricInterval: metricInterval,
		pid:            int32(os.Getpid()),
	}
}

func (w *HealthMonitoringWorker) Run(ctx context.Context) error {
	p, err := process.NewProcess(w.pid)
	if err != nil {
		return err
	}

	ticker := time.NewTicker(w.metricInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping health monitoring")
			return nil
		case <-ticker.C:
			w.report(p)
		}
	}
}

func (w *HealthMonitoringWorker) report(p *process.Process) {
	attrs := []any{"rooms", w.rooms.Len()}

	cpu, err := p.CPUPercent()
	if err != nil {
		w.log.Error("Error while finding process cpu usage", "err", err)
	} else {
		attrs = append(attrs, "cpu", cpu)
	}
	ram, err := p.MemoryPercent()
	if err != nil {
		w.log.Error("Error while finding process ram usage", "err", err)
	} else {
		attrs = append(attrs, "ram", ram)
	}
	w.log.Info("Health", attrs...)

	for _, nc := range w.channels {
		length, capacity, ok := fill(nc.Channel)
		if !ok {
			w.log.Error("Provided object is not a channel", "name", nc.Name)
			continue
		}
		if capacity > 0 && length*100 >= capacity*highWaterPercent {
			w.log.Warn("Queue close to saturation", "name", nc.Name, "length", length, "capacity", capacity)
		}
	}
}

func fill(channel any) (length, capacity int, ok bool) {
	v := reflect.ValueOf(channel)
	if v.Kind() != reflect.Chan {
		return 0, 0, false
	}
	return v.Len(), v.Cap(), true
}
