package authfakes

import (
	"context"
	"net/http"
	"sync"

	"github.com/gianpd/zungri-web/supabase"
)

// FakeSessionSource is a canned SessionSource for tests. It records how
// many times it was asked for a session so idempotence can be asserted.
type FakeSessionSource struct {
	Session   *supabase.RawSession
	Refreshed bool
	Err       error

	lock  sync.Mutex
	calls int
}

func NewFakeSessionSource() *FakeSessionSource {
	return &FakeSessionSource{}
}

func (f *FakeSessionSource) SessionFromRequest(_ context.Context, _ *http.Request) (*supabase.RawSession, bool, error) {
	f.lock.Lock()
	defer f.lock.Unlock()

	f.calls++
	if f.Err != nil {
		return nil, false, f.Err
	}
	return f.Session, f.Refreshed, nil
}

func (f *FakeSessionSource) CallCount() int {
	f.lock.Lock()
	defer f.lock.Unlock()
	return f.calls
}
