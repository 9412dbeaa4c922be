// Package feed delivers hand landmark frames from an external detector into the gesture interpreter
package feed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/lixenwraith/particle-morph/gesture"
)

var (
	ErrSourceClosed = errors.New("feed source closed")
	ErrMalformed    = errors.New("malformed frame")
	ErrUnknownFeed  = errors.New("unknown feed")
)

// Frame is one detector result, nil Hand means no hand visible
type Frame struct {
	Hand *gesture.Hand
	At   time.Time
}

// Sink receives frames and decode failures from a Source
type Sink interface {
	Frame(f Frame)
	Malformed(err error)
}

// Source produces frames until ctx is cancelled or the stream ends
// A non-nil error before the first frame means the detector never came up
type Source interface {
	Name() string
	Run(ctx context.Context, sink Sink) error
}

// Immediate is implemented by sources that are live as soon as Run starts, with no detector to wait for
type Immediate interface {
	Immediate() bool
}

// wireFrame is the JSON shape shared by replay files and the websocket bridge
// {"landmarks":[{"x":0.41,"y":0.52,"z":-0.01}, ...], "dt_ms":33}, "landmarks":null for no hand
type wireFrame struct {
	Landmarks []gesture.Landmark   `json:"landmarks"`
	Hands     [][]gesture.Landmark `json:"hands"`
	DelayMs   *int                 `json:"dt_ms"`
}

// decodeFrame parses one JSON frame, only the first hand of a multi-hand result is used
func decodeFrame(data []byte) (Frame, *time.Duration, error) {
	var w wireFrame
	if err := json.Unmarshal(data, &w); err != nil {
		return Frame{}, nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	landmarks := w.Landmarks
	if landmarks == nil && len(w.Hands) > 0 {
		landmarks = w.Hands[0]
	}

	var f Frame
	if landmarks != nil {
		f.Hand = &gesture.Hand{Landmarks: landmarks}
		if !f.Hand.Valid() {
			return Frame{}, nil, fmt.Errorf("%w: %d landmarks", ErrMalformed, len(landmarks))
		}
	}

	if w.DelayMs != nil {
		if *w.DelayMs < 0 {
			return Frame{}, nil, fmt.Errorf("%w: negative dt_ms", ErrMalformed)
		}
		d := time.Duration(*w.DelayMs) * time.Millisecond
		return f, &d, nil
	}
	return f, nil, nil
}

// Open resolves a feed target
//
//	""/"pointer"       mouse and key emulation via pointer
//	"none"             no detector, returns nil Source
//	"-"                JSON lines on stdin
//	"file:PATH"/PATH   JSON lines replayed from a file, "loop:PATH" rewinds at EOF
//	"ws://", "wss://"  websocket bridge
func Open(target string, pointer *Pointer) (Source, error) {
	switch {
	case target == "" || target == "pointer":
		if pointer == nil {
			return nil, fmt.Errorf("%w: pointer feed without input", ErrUnknownFeed)
		}
		return pointer, nil
	case target == "none":
		return nil, nil
	case target == "-":
		return NewReplay("stdin", os.Stdin, false), nil
	case strings.HasPrefix(target, "ws://"), strings.HasPrefix(target, "wss://"):
		return NewWebSocket(target), nil
	case strings.HasPrefix(target, "loop:"):
		return OpenReplayFile(strings.TrimPrefix(target, "loop:"), true)
	case strings.HasPrefix(target, "file:"):
		return OpenReplayFile(strings.TrimPrefix(target, "file:"), false)
	case strings.Contains(target, "://"):
		return nil, fmt.Errorf("%w: %q", ErrUnknownFeed, target)
	default:
		return OpenReplayFile(target, false)
	}
}

// Unavailable is a Source that fails immediately, it carries an Open error to the status indicator
func Unavailable(name string, err error) Source {
	return unavailable{name: name, err: err}
}

type unavailable struct {
	name string
	err  error
}

func (u unavailable) Name() string                    { return u.name }
func (u unavailable) Run(context.Context, Sink) error { return u.err }
