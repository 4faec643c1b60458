package system

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fixedClock() time.Time {
	// Wednesday, 2026-08-26 15:04:05
	return time.Date(2026, time.August, 26, 15, 4, 5, 0, time.UTC)
}

func TestRegistry_Time(t *testing.T) {
	r := NewRegistry(func(o *Options) { o.Clock = fixedClock })

	reply, handled := r.Handle(context.Background(), "What TIME is it? ")

	assert.True(t, handled)
	assert.Equal(t, "The current time is 03:04 PM.", reply)
}

func TestRegistry_Date(t *testing.T) {
	r := NewRegistry(func(o *Options) { o.Clock = fixedClock })

	reply, handled := r.Handle(context.Background(), "what day is it")
	assert.True(t, handled)
	assert.Equal(t, "Today is Wednesday, August 26.", reply)

	reply, handled = r.Handle(context.Background(), "today's date please")
	assert.True(t, handled)
	assert.Equal(t, "Today is Wednesday, August 26.", reply)
}

func TestRegistry_Unhandled(t *testing.T) {
	r := NewRegistry(func(o *Options) { o.Clock = fixedClock })

	_, handled := r.Handle(context.Background(), "sing me a song")

	assert.False(t, handled)
}

func TestRegistry_CustomHandler(t *testing.T) {
	r := NewRegistry(func(o *Options) { o.DisableBuiltins = true })
	r.Register(func(_ context.Context, cmd string) (string, bool) {
		if cmd == "ping" {
			return "pong", true
		}
		return "", false
	})

	reply, handled := r.Handle(context.Background(), "  PING ")
	assert.True(t, handled)
	assert.Equal(t, "pong", reply)

	_, handled = r.Handle(context.Background(), "what time is it")
	assert.False(t, handled)
}

func TestRegistry_FirstMatchWins(t *testing.T) {
	r := NewRegistry(func(o *Options) { o.DisableBuiltins = true })
	r.Register(func(_ context.Context, cmd string) (string, bool) { return "first", true })
	r.Register(func(_ context.Context, cmd string) (string, bool) { return "second", true })

	reply, handled := r.Handle(context.Background(), "anything")
	assert.True(t, handled)
	assert.Equal(t, "first", reply)
}
