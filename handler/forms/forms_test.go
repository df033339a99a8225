package forms

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/bwmarrin/discordgo"
)

// recordedRequest is one REST call captured by the fake transport.
type recordedRequest struct {
	method string
	path   string
	body   []byte
}

// fakeTransport records every REST call a session makes and answers 204,
// so handlers can run against a real discordgo.Session without a gateway.
type fakeTransport struct {
	mu       sync.Mutex
	requests []recordedRequest
}

func (f *fakeTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	var body []byte
	if req.Body != nil {
		body, _ = io.ReadAll(req.Body)
		req.Body.Close()
	}

	f.mu.Lock()
	f.requests = append(f.requests, recordedRequest{method: req.Method, path: req.URL.Path, body: body})
	f.mu.Unlock()

	return &http.Response{
		Status:     "204 No Content",
		StatusCode: http.StatusNoContent,
		Header:     make(http.Header),
		Body:       io.NopCloser(bytes.NewReader(nil)),
		Request:    req,
	}, nil
}

func (f *fakeTransport) pathsContaining(fragment string) []recordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()

	var matched []recordedRequest
	for _, r := range f.requests {
		if strings.Contains(r.path, fragment) {
			matched = append(matched, r)
		}
	}
	return matched
}

func newTestSession(t *testing.T) (*discordgo.Session, *fakeTransport) {
	t.Helper()
	s, err := discordgo.New("Bot test-token")
	if err != nil {
		t.Fatalf("creating session: %v", err)
	}
	ft := &fakeTransport{}
	s.Client = &http.Client{Transport: ft}
	return s, ft
}

// interactionCallback decodes the interaction response body captured by the
// fake transport.
type interactionCallback struct {
	Type int `json:"type"`
	Data struct {
		Content string `json:"content"`
		Flags   int    `json:"flags"`
	} `json:"data"`
}

func decodeCallback(t *testing.T, body []byte) interactionCallback {
	t.Helper()
	var cb interactionCallback
	if err := json.Unmarshal(body, &cb); err != nil {
		t.Fatalf("decoding interaction callback %s: %v", body, err)
	}
	return cb
}
