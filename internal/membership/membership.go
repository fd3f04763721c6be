package membership

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// File is the durable set of channels the bot should rejoin after a
// restart. A nil *File (no rejoin file configured) is valid and every
// method on it is a no-op.
type File struct {
	path string
	set  map[string]bool
}

// Load reads the rejoin file, creating it empty if it does not exist.
// Errors here are fatal for the caller: a rejoin file that cannot be
// read or created at startup must not be silently ignored.
func Load(path string) (*File, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		if err := os.WriteFile(path, nil, 0o644); err != nil {
			return nil, fmt.Errorf("create rejoin file: %w", err)
		}
		data = nil
	} else if err != nil {
		return nil, fmt.Errorf("read rejoin file: %w", err)
	}

	f := &File{path: path, set: make(map[string]bool)}
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			f.set[strings.ToLower(line)] = true
		}
	}
	return f, nil
}

// Channels returns the current membership set, in no particular order.
func (f *File) Channels() []string {
	if f == nil {
		return nil
	}
	channels := make([]string, 0, len(f.set))
	for ch := range f.set {
		channels = append(channels, ch)
	}
	return channels
}

func (f *File) Add(channel string) {
	if f == nil {
		return
	}
	f.set[strings.ToLower(channel)] = true
	f.save()
}

func (f *File) Remove(channel string) {
	if f == nil {
		return
	}
	delete(f.set, strings.ToLower(channel))
	f.save()
}

// save rewrites the whole file from the in-memory set. A failed rewrite
// is logged and swallowed: the in-memory set stays authoritative for
// this run, the durable copy is just stale.
func (f *File) save() {
	var b strings.Builder
	for ch := range f.set {
		b.WriteString(ch)
		b.WriteString("\n")
	}
	if err := os.WriteFile(f.path, []byte(b.String()), 0o644); err != nil {
		slog.Warn("rejoin file not updated", "path", f.path, "err", err)
	}
}
