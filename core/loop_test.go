package core

import (
	"context"
	"testing"
	"time"

	"github.com/automoto/gazelaser/sensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameLoopStepPublishesSnapshot(t *testing.T) {
	loop := NewGameLoop(newTestSession(), sensor.Static(faceReading(false)), 60)
	assert.Nil(t, loop.Latest())

	loop.Step(0)
	snap := loop.Latest()
	require.NotNil(t, snap)
	assert.Equal(t, 3, snap.Lives)
	require.NotNil(t, snap.Gaze)
	_, aim := beamCounts(*snap)
	assert.Equal(t, 2, aim)
}

func TestGameLoopReadsHandoff(t *testing.T) {
	var h sensor.Handoff
	loop := NewGameLoop(newTestSession(), &h, 60)

	loop.Step(0)
	assert.Nil(t, loop.Latest().LeftEye)

	h.Publish(faceReading(false))
	loop.Step(16 * time.Millisecond)
	require.NotNil(t, loop.Latest().LeftEye)
	assert.Equal(t, 600.0, loop.Latest().LeftEye.X)
}

func TestGameLoopRunAndStop(t *testing.T) {
	loop := NewGameLoop(newTestSession(), sensor.Static{}, 200)

	done := make(chan struct{})
	go func() {
		loop.Run(context.Background())
		close(done)
	}()

	require.Eventually(t, func() bool { return loop.Latest() != nil }, time.Second, time.Millisecond)
	assert.True(t, loop.Running())

	loop.Stop()
	loop.Stop()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("loop did not stop")
	}
	assert.False(t, loop.Running())
}

func TestGameLoopStopsOnContext(t *testing.T) {
	loop := NewGameLoop(newTestSession(), sensor.Static{}, 200)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		loop.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("loop ignored cancellation")
	}
}

func TestGameLoopPumpsSensorOnItsOwnGoroutine(t *testing.T) {
	loop := NewGameLoop(newTestSession(), nil, 200).PumpFrom(sensor.Static(faceReading(false)), time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		loop.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool {
		snap := loop.Latest()
		return snap != nil && snap.LeftEye != nil
	}, time.Second, time.Millisecond)
	assert.Equal(t, 600.0, loop.Latest().LeftEye.X)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("loop ignored cancellation")
	}

	seq := loop.handoff.Seq()
	assert.Positive(t, seq)
	time.Sleep(5 * time.Millisecond)
	assert.Equal(t, seq, loop.handoff.Seq(), "pump kept publishing after Run returned")
}
