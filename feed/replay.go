package feed

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/lixenwraith/particle-morph/parameter"
)

// Replay plays recorded detector output, one JSON frame per line
type Replay struct {
	name   string
	r      io.Reader
	loop   bool
	closer io.Closer

	// Interval paces lines without dt_ms
	Interval time.Duration
}

func NewReplay(name string, r io.Reader, loop bool) *Replay {
	return &Replay{name: name, r: r, loop: loop, Interval: parameter.FeedReplayInterval}
}

// OpenReplayFile opens path for replay, loop needs a seekable file
func OpenReplayFile(path string, loop bool) (*Replay, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open replay %s: %w", path, err)
	}
	rp := NewReplay("file:"+path, f, loop)
	rp.closer = f
	return rp, nil
}

func (rp *Replay) Name() string { return rp.name }

// Run emits frames at their recorded pace, returns nil at end of input
func (rp *Replay) Run(ctx context.Context, sink Sink) error {
	if rp.closer != nil {
		defer rp.closer.Close()
	}

	timer := time.NewTimer(0)
	defer timer.Stop()
	<-timer.C

	// Only the very first frame skips its delay, a rewound pass keeps the recorded pace
	started := false
	for {
		emitted, err := rp.pass(ctx, sink, timer, &started)
		if err != nil {
			return err
		}
		if !rp.loop || ctx.Err() != nil {
			return nil
		}
		seeker, ok := rp.r.(io.Seeker)
		if !ok {
			return fmt.Errorf("replay %s: loop requires a seekable input", rp.name)
		}
		if _, err := seeker.Seek(0, io.SeekStart); err != nil {
			return fmt.Errorf("replay %s: rewind: %w", rp.name, err)
		}
		if emitted == 0 {
			// Nothing playable, avoid spinning on an empty file
			return nil
		}
	}
}

// pass reads the input once, returns the count of emitted frames
func (rp *Replay) pass(ctx context.Context, sink Sink, timer *time.Timer, started *bool) (int, error) {
	scanner := bufio.NewScanner(rp.r)
	scanner.Buffer(make([]byte, 0, 4096), parameter.FeedMaxLineBytes)

	emitted := 0
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 || line[0] == '#' {
			continue
		}

		frame, delay, err := decodeFrame(line)
		if err != nil {
			sink.Malformed(err)
			continue
		}

		wait := rp.Interval
		if delay != nil {
			wait = *delay
		}
		if *started && wait > 0 {
			timer.Reset(wait)
			select {
			case <-ctx.Done():
				return emitted, nil
			case <-timer.C:
			}
		} else if ctx.Err() != nil {
			return emitted, nil
		}

		frame.At = time.Now()
		sink.Frame(frame)
		emitted++
		*started = true
	}
	if err := scanner.Err(); err != nil {
		return emitted, fmt.Errorf("replay %s: %w", rp.name, err)
	}
	return emitted, nil
}
