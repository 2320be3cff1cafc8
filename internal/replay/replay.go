// Package replay records the pointer stream of a breakout session and
// re-simulates it. The simulation is deterministic given its configuration
// and the pointer x fed to each frame, so a recording is just those two.
package replay

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

// Version is the file format version written by this package.
const Version = 1

var (
	// ErrVersion is returned when decoding a file written by another format version.
	ErrVersion = errors.New("replay: unsupported version")

	// ErrMismatch is returned by Verify when re-simulation diverges from the recording.
	ErrMismatch = errors.New("replay: result mismatch")
)

// Result summarizes how a session ended.
type Result struct {
	Frames   int    `msgpack:"frames"`
	Score    int    `msgpack:"score"`
	Won      bool   `msgpack:"won"`
	GameOver bool   `msgpack:"game_over"`
	Hash     uint64 `msgpack:"hash"`
}

func (r Result) String() string {
	outcome := "in progress"
	switch {
	case r.Won:
		outcome = "won"
	case r.GameOver:
		outcome = "lost"
	}
	return fmt.Sprintf("%s after %d frames, score %d (hash %016x)", outcome, r.Frames, r.Score, r.Hash)
}

// File is a complete recording.
type File struct {
	Version    int                   `msgpack:"version"`
	GameID     string                `msgpack:"game_id"`
	RecordedAt time.Time             `msgpack:"recorded_at"`
	Config     config.BreakoutConfig `msgpack:"config"`
	Pointers   []int32               `msgpack:"pointers"` // Pointer x per simulated frame
	Result     Result                `msgpack:"result"`
}

// Duration returns the real-time length of the recording at its frame rate.
func (f *File) Duration() time.Duration {
	if f.Config.FrameRate <= 0 {
		return 0
	}
	return time.Duration(len(f.Pointers)) * time.Second / time.Duration(f.Config.FrameRate)
}

// Recorder collects pointer values as frames are simulated.
// It implements registry.FrameObserver.
type Recorder struct {
	gameID   string
	cfg      config.BreakoutConfig
	pointers []int32
}

// NewRecorder creates a recorder for a session of gameID built from cfg.
func NewRecorder(gameID string, cfg config.BreakoutConfig) *Recorder {
	return &Recorder{
		gameID:   gameID,
		cfg:      cfg,
		pointers: make([]int32, 0, 1024),
	}
}

// ObserveFrame appends the pointer fed to one simulated frame.
func (r *Recorder) ObserveFrame(pointerX int) {
	r.pointers = append(r.pointers, int32(pointerX)) //#nosec G115 -- playfield coordinates
}

// ObserveReset discards frames from the previous attempt; only the latest
// session is kept.
func (r *Recorder) ObserveReset() {
	r.pointers = r.pointers[:0]
}

// Len returns the number of recorded frames.
func (r *Recorder) Len() int {
	return len(r.pointers)
}

// File packages the recording with the live session's final result.
func (r *Recorder) File(result Result) *File {
	pointers := make([]int32, len(r.pointers))
	copy(pointers, r.pointers)
	return &File{
		Version:    Version,
		GameID:     r.gameID,
		RecordedAt: time.Now().UTC(),
		Config:     r.cfg,
		Pointers:   pointers,
		Result:     result,
	}
}

// Encode writes f to w.
func Encode(w io.Writer, f *File) error {
	if err := msgpack.NewEncoder(w).Encode(f); err != nil {
		return fmt.Errorf("replay: encode: %w", err)
	}
	return nil
}

// Decode reads a file from r.
func Decode(r io.Reader) (*File, error) {
	var f File
	if err := msgpack.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("replay: decode: %w", err)
	}
	if f.Version != Version {
		return nil, fmt.Errorf("%w: %d (want %d)", ErrVersion, f.Version, Version)
	}
	return &f, nil
}

// Save writes f to path, creating parent directories.
func Save(path string, f *File) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("replay: cannot create directory %s: %w", dir, err)
		}
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("replay: %w", err)
	}
	defer out.Close()

	w := bufio.NewWriter(out)
	if err := Encode(w, f); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("replay: write %s: %w", path, err)
	}
	return out.Close()
}

// Load reads a file from path.
func Load(path string) (*File, error) {
	in, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}
	defer in.Close()

	return Decode(bufio.NewReader(in))
}

// Run rebuilds the session from the recorded configuration and feeds it the
// recorded pointers, one per frame.
func Run(f *File) (Result, error) {
	layoutID, ok := breakout.LayoutID(f.GameID)
	if !ok {
		return Result{}, fmt.Errorf("replay: %q is not a breakout game", f.GameID)
	}
	if err := f.Config.Validate(); err != nil {
		return Result{}, fmt.Errorf("replay: recorded config: %w", err)
	}

	s, err := breakout.NewSessionForLayout(f.Config, layoutID)
	if err != nil {
		return Result{}, fmt.Errorf("replay: %w", err)
	}

	for _, p := range f.Pointers {
		if s.GameOver() {
			break
		}
		s.Step(int(p))
	}

	snap := s.Snapshot()
	return Result{
		Frames:   s.Frame(),
		Score:    s.Score(),
		Won:      s.Won(),
		GameOver: s.GameOver(),
		Hash:     snap.Hash(),
	}, nil
}

// Verify re-simulates f and checks the outcome against the recorded result.
func Verify(f *File) (Result, error) {
	got, err := Run(f)
	if err != nil {
		return got, err
	}
	if got != f.Result {
		return got, fmt.Errorf("%w: recorded %s, replayed %s", ErrMismatch, f.Result, got)
	}
	return got, nil
}
