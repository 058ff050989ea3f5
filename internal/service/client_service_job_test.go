// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// ── start / stop ─────────────────────────────────────────────────────────────

func TestPeriodicJob_Start_CallsTick(t *testing.T) {
	var calls atomic.Int64
	var job periodicJob

	// Интервал 10ms: за 55ms должно быть ~5 тиков
	job.start(context.Background(), 10*time.Millisecond, nil, false, func(context.Context) bool {
		calls.Add(1)
		return true
	})
	time.Sleep(55 * time.Millisecond)
	job.stop()

	got := calls.Load()
	assert.GreaterOrEqual(t, got, int64(3), "tick должен быть вызван несколько раз, вызвано: %d", got)
}

func TestPeriodicJob_Immediate(t *testing.T) {
	var calls atomic.Int64
	var job periodicJob

	job.start(context.Background(), time.Hour, nil, true, func(context.Context) bool {
		calls.Add(1)
		return true
	})
	time.Sleep(20 * time.Millisecond)
	job.stop()

	assert.Equal(t, int64(1), calls.Load(), "первый тик должен выполниться сразу")
}

func TestPeriodicJob_Stop_StopsGoroutine(t *testing.T) {
	var calls atomic.Int64
	var job periodicJob

	job.start(context.Background(), 10*time.Millisecond, nil, false, func(context.Context) bool {
		calls.Add(1)
		return true
	})
	time.Sleep(30 * time.Millisecond)
	job.stop()

	callsAfterStop := calls.Load()
	time.Sleep(30 * time.Millisecond)

	assert.Equal(t, callsAfterStop, calls.Load(), "после stop новых вызовов быть не должно")
}

func TestPeriodicJob_Stop_BeforeStart_NoPanic(t *testing.T) {
	var job periodicJob

	// stop без start не должен паниковать
	assert.NotPanics(t, func() { job.stop() })
}

func TestPeriodicJob_TickFalseTerminates(t *testing.T) {
	var calls atomic.Int64
	var job periodicJob

	job.start(context.Background(), 5*time.Millisecond, nil, false, func(context.Context) bool {
		calls.Add(1)
		return false
	})
	time.Sleep(40 * time.Millisecond)

	assert.Equal(t, int64(1), calls.Load())
	job.stop()
}

func TestPeriodicJob_DoneTerminates(t *testing.T) {
	var calls atomic.Int64
	var job periodicJob
	done := make(chan struct{})

	job.start(context.Background(), 5*time.Millisecond, done, false, func(context.Context) bool {
		calls.Add(1)
		return true
	})
	time.Sleep(20 * time.Millisecond)
	close(done)
	time.Sleep(10 * time.Millisecond)

	afterDone := calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, afterDone, calls.Load(), "после закрытия done тиков быть не должно")
	job.stop()
}

func TestPeriodicJob_ClosedDoneSkipsImmediateTick(t *testing.T) {
	var calls atomic.Int64
	var job periodicJob
	done := make(chan struct{})
	close(done)

	job.start(context.Background(), time.Millisecond, done, true, func(context.Context) bool {
		calls.Add(1)
		return true
	})
	job.stop()

	assert.Zero(t, calls.Load())
}

func TestPeriodicJob_ContextCancel(t *testing.T) {
	var calls atomic.Int64
	var job periodicJob
	ctx, cancel := context.WithCancel(context.Background())

	job.start(ctx, 5*time.Millisecond, nil, false, func(context.Context) bool {
		calls.Add(1)
		return true
	})
	time.Sleep(20 * time.Millisecond)
	cancel()
	time.Sleep(10 * time.Millisecond)

	afterCancel := calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, afterCancel, calls.Load())
	job.stop()
}

func TestPeriodicJob_RestartStopsPrevious(t *testing.T) {
	var first, second atomic.Int64
	var job periodicJob

	job.start(context.Background(), 5*time.Millisecond, nil, false, func(context.Context) bool {
		first.Add(1)
		return true
	})
	time.Sleep(20 * time.Millisecond)

	job.start(context.Background(), 5*time.Millisecond, nil, false, func(context.Context) bool {
		second.Add(1)
		return true
	})
	firstAfterRestart := first.Load()
	time.Sleep(30 * time.Millisecond)
	job.stop()

	assert.Equal(t, firstAfterRestart, first.Load(), "первый job должен быть остановлен")
	assert.Greater(t, second.Load(), int64(0))
}
