//go:build unit

package email

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"booking-ops-portal/internal/domain/decision"
	"booking-ops-portal/internal/infra"
	"booking-ops-portal/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMessage() decision.EmailMessage {
	notes := "see you there"
	return decision.EmailMessage{
		Email:         "dj@example.com",
		RecipientName: "DJ Nova",
		Status:        decision.StatusAccepted,
		ResourceTitle: "Rooftop Sunset Session",
		Kind:          decision.KindBookingRequest,
		Notes:         &notes,
	}
}

func TestSendDecisionEmail(t *testing.T) {
	t.Run("posts payload with bearer key", func(t *testing.T) {
		var got decisionEmailRequest
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			_, _ = w.Write([]byte(`{"success":true}`))
		}))
		defer srv.Close()

		s := NewHTTPSender(config.EmailConfig{Endpoint: srv.URL, APIKey: "secret", Timeout: time.Second})
		res, err := s.SendDecisionEmail(context.Background(), testMessage())

		require.NoError(t, err)
		assert.True(t, res.Success)
		assert.Equal(t, "dj@example.com", got.Email)
		assert.Equal(t, "accepted", got.Status)
		assert.Equal(t, "booking_request", got.Kind)
		require.NotNil(t, got.Notes)
		assert.Equal(t, "see you there", *got.Notes)
	})

	t.Run("in-band failure", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"success":false,"error":"mailbox unavailable"}`))
		}))
		defer srv.Close()

		s := NewHTTPSender(config.EmailConfig{Endpoint: srv.URL, Timeout: time.Second})
		res, err := s.SendDecisionEmail(context.Background(), testMessage())

		require.NoError(t, err)
		assert.False(t, res.Success)
		assert.Equal(t, "mailbox unavailable", res.Error)
	})

	t.Run("error status is reported as failure", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		s := NewHTTPSender(config.EmailConfig{Endpoint: srv.URL, Timeout: time.Second})
		res, err := s.SendDecisionEmail(context.Background(), testMessage())

		require.NoError(t, err)
		assert.False(t, res.Success)
		assert.Contains(t, res.Error, "502")
	})

	t.Run("disabled without endpoint", func(t *testing.T) {
		s := NewHTTPSender(config.EmailConfig{})
		res, err := s.SendDecisionEmail(context.Background(), testMessage())

		assert.Nil(t, res)
		assert.True(t, infra.IsKind(err, infra.KindRemoteFailure))
	})

	t.Run("malformed response", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`not json`))
		}))
		defer srv.Close()

		s := NewHTTPSender(config.EmailConfig{Endpoint: srv.URL, Timeout: time.Second})
		_, err := s.SendDecisionEmail(context.Background(), testMessage())

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindRemoteFailure))
	})

	t.Run("no content is success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}))
		defer srv.Close()

		s := NewHTTPSender(config.EmailConfig{Endpoint: srv.URL, Timeout: time.Second})
		res, err := s.SendDecisionEmail(context.Background(), testMessage())

		require.NoError(t, err)
		assert.True(t, res.Success)
	})

	t.Run("unreachable endpoint is a remote failure", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		url := srv.URL
		srv.Close()

		s := NewHTTPSender(config.EmailConfig{Endpoint: url, Timeout: time.Second})
		res, err := s.SendDecisionEmail(context.Background(), testMessage())

		assert.Nil(t, res)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindRemoteFailure))
		assert.False(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
