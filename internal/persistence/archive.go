package persistence

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"

	"github.com/talgya/ant-world/internal/engine"
)

// EventArchive appends events to a zstd-compressed JSONL file, one event
// per line.
type EventArchive struct {
	f   *os.File
	enc *zstd.Encoder
	w   *bufio.Writer
}

// CreateEventArchive creates (or truncates) the archive at path.
func CreateEventArchive(path string) (*EventArchive, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	return &EventArchive{f: f, enc: enc, w: bufio.NewWriterSize(enc, 64*1024)}, nil
}

// Write appends events and flushes them through the encoder.
func (a *EventArchive) Write(events []engine.Event) error {
	for _, e := range events {
		b, err := json.Marshal(e)
		if err != nil {
			return err
		}
		if _, err := a.w.Write(b); err != nil {
			return err
		}
		if err := a.w.WriteByte('\n'); err != nil {
			return err
		}
	}
	return a.w.Flush()
}

// Close finishes the zstd frame and closes the file.
func (a *EventArchive) Close() error {
	var err1 error
	if err := a.w.Flush(); err != nil {
		err1 = err
	}
	if err := a.enc.Close(); err != nil && err1 == nil {
		err1 = err
	}
	if err := a.f.Close(); err != nil && err1 == nil {
		err1 = err
	}
	return err1
}

// ReadEventArchive decodes every event in the archive at path.
func ReadEventArchive(path string) ([]engine.Event, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	var events []engine.Event
	sc := bufio.NewScanner(dec)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	line := 0
	for sc.Scan() {
		line++
		var e engine.Event
		if err := json.Unmarshal(sc.Bytes(), &e); err != nil {
			return events, fmt.Errorf("%s line %d: %w", path, line, err)
		}
		events = append(events, e)
	}
	return events, sc.Err()
}
