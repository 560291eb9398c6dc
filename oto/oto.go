// Package oto plays audio buffers on the default output device.
package oto

import (
	"bytes"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/lobo-larsen/modal-composer"
)

// ErrUnavailable is returned when the output device cannot be opened.
var ErrUnavailable = errors.New("audio output unavailable")

type (
	// Options for opening the output device.
	Options struct {
		SampleRate int
		BufferSize time.Duration // 0 uses the driver default
	}

	// Context is the output device. It implements modal.AudioContext.
	Context struct {
		ctx     *oto.Context
		ready   chan struct{}
		playing sync.WaitGroup
	}

	playback struct {
		done chan struct{}
	}
)

const pollInterval = 10 * time.Millisecond

var shared struct {
	once sync.Once
	ctx  *Context
	err  error
}

// NewContext opens the output device. The underlying driver allows only one
// device per process; prefer Shared.
func NewContext(opts Options) (*Context, error) {
	if opts.SampleRate <= 0 {
		return nil, fmt.Errorf("%w: invalid sample rate %v", ErrUnavailable, opts.SampleRate)
	}
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   opts.SampleRate,
		ChannelCount: 2,
		Format:       oto.FormatFloat32LE,
		BufferSize:   opts.BufferSize,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return &Context{ctx: ctx, ready: ready}, nil
}

// Shared opens the output device on first use. Later calls return the same
// context, or the same error, regardless of the options passed.
func Shared(opts Options) (*Context, error) {
	shared.once.Do(func() {
		shared.ctx, shared.err = NewContext(opts)
	})
	return shared.ctx, shared.err
}

// Play schedules the buffer and returns immediately. Every buffer gets its
// own player, so buffers played close together overlap and are mixed by the
// device.
func (c *Context) Play(buffer modal.AudioBuffer) modal.Waiter {
	p := &playback{done: make(chan struct{})}
	data := FloatBufferToBytes(buffer, nil)
	c.playing.Add(1)
	go func() {
		defer c.playing.Done()
		defer close(p.done)
		<-c.ready
		player := c.ctx.NewPlayer(bytes.NewReader(data))
		player.Play()
		for player.IsPlaying() {
			time.Sleep(pollInterval)
		}
		player.Close()
	}()
	return p
}

// Close waits for the scheduled buffers to finish and suspends the device.
func (c *Context) Close() error {
	c.playing.Wait()
	if err := c.ctx.Suspend(); err != nil {
		return fmt.Errorf("cannot suspend oto context: %w", err)
	}
	return nil
}

func (p *playback) Wait() {
	<-p.done
}
