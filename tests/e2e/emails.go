//go:build e2e

package e2e

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

type RecordedEmail struct {
	Email         string  `json:"email"`
	RecipientName string  `json:"recipientName"`
	Status        string  `json:"status"`
	ResourceTitle string  `json:"resourceTitle"`
	Kind          string  `json:"kind"`
	Notes         *string `json:"notes"`
	Authorization string  `json:"-"`
}

// EmailRecorder stands in for the outbound email function and keeps every
// request it receives.
type EmailRecorder struct {
	server *httptest.Server

	mu     sync.Mutex
	emails []RecordedEmail
	fail   bool
}

func NewEmailRecorder(t *testing.T) *EmailRecorder {
	t.Helper()
	r := &EmailRecorder{}
	r.server = httptest.NewServer(http.HandlerFunc(r.handle))
	t.Cleanup(r.server.Close)
	return r
}

func (r *EmailRecorder) URL() string {
	return r.server.URL
}

func (r *EmailRecorder) handle(w http.ResponseWriter, req *http.Request) {
	var e RecordedEmail
	if err := json.NewDecoder(req.Body).Decode(&e); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	e.Authorization = req.Header.Get("Authorization")

	r.mu.Lock()
	r.emails = append(r.emails, e)
	fail := r.fail
	r.mu.Unlock()

	if fail {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"success":true}`))
}

// SetFailing makes every following request answer 500 until Reset.
func (r *EmailRecorder) SetFailing() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fail = true
}

func (r *EmailRecorder) Emails() []RecordedEmail {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]RecordedEmail, len(r.emails))
	copy(out, r.emails)
	return out
}

func (r *EmailRecorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.emails = nil
	r.fail = false
}
