package ingest

import (
	"context"
	"strings"
	"sync"
)

// fakeRunner returns canned output per command name.
type fakeRunner struct {
	outputs map[string]string
	errs    map[string]error
	block   map[string]bool

	mu    sync.Mutex
	calls [][]string
}

func (f *fakeRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	f.mu.Lock()
	f.calls = append(f.calls, append([]string{name}, args...))
	f.mu.Unlock()

	if f.block[name] {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if err := f.errs[name]; err != nil {
		return nil, err
	}
	return []byte(f.outputs[name]), nil
}

func (f *fakeRunner) called(name string) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.calls {
		if c[0] == name {
			return c
		}
	}
	return nil
}

func lines(s ...string) string {
	return strings.Join(s, "\n") + "\n"
}
