package ui

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/chat-client/v2/internal/auth"
	"github.com/chat-client/v2/services"
	"github.com/stretchr/testify/require"
)

// trace records the order in which collaborators are touched.
type trace struct {
	mu     sync.Mutex
	events []string
}

func (tr *trace) add(e string) {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	tr.events = append(tr.events, e)
}

func (tr *trace) list() []string {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	return append([]string(nil), tr.events...)
}

type fakeEvent struct {
	tr        *trace
	prevented bool
}

func (e *fakeEvent) PreventDefault() {
	e.prevented = true
	e.tr.add("preventDefault")
}

type fakeForm struct {
	tr         *trace
	values     map[string]string
	submitting bool
}

func (f *fakeForm) Value(id string) string { return f.values[id] }

func (f *fakeForm) SetSubmitting(submitting bool) {
	f.submitting = submitting
	if submitting {
		f.tr.add("disable")
	} else {
		f.tr.add("enable")
	}
}

type fakePage struct {
	mu        sync.Mutex
	text      map[string]string
	navigated []string
}

func newFakePage() *fakePage {
	return &fakePage{text: make(map[string]string)}
}

func (p *fakePage) SetText(id, text string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.text[id] = text
}

func (p *fakePage) Navigate(path string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.navigated = append(p.navigated, path)
}

type memStorage struct {
	items  map[string]string
	writes int
	err    error
}

func newMemStorage() *memStorage {
	return &memStorage{items: make(map[string]string)}
}

func (s *memStorage) SetItem(key, value string) error {
	if s.err != nil {
		return s.err
	}
	s.writes++
	s.items[key] = value
	return nil
}

var errDiskFull = errors.New("disk full")

// newBackend starts a mock auth backend and returns a service pointed at it.
func newBackend(t *testing.T, tr *trace, handler http.HandlerFunc) auth.Service {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tr.add("request")
		handler(w, r)
	}))
	t.Cleanup(server.Close)

	client, err := services.NewApiClient(server.URL, "csrftoken", 0)
	require.NoError(t, err)
	client.SetCookie("csrftoken", "csrf-value")
	return services.NewAuthService(client, "/api/v1/dj-rest-auth/login/", "/api/v1/dj-rest-auth/registration/")
}

// unreachableService returns a service whose backend is already shut down.
func unreachableService(t *testing.T) auth.Service {
	t.Helper()
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	client, err := services.NewApiClient(url, "csrftoken", 0)
	require.NoError(t, err)
	return services.NewAuthService(client, "/login/", "/registration/")
}
