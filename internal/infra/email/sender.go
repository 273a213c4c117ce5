package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"booking-ops-portal/internal/domain/decision"
	"booking-ops-portal/internal/infra"
	"booking-ops-portal/internal/pkg/config"
	"booking-ops-portal/internal/usecase/shared"
)

const maxResponseBody = 64 << 10

var ErrDisabled = infra.NewRepoErr(infra.KindRemoteFailure, "email delivery is not configured")

type decisionEmailRequest struct {
	Email         string  `json:"email"`
	RecipientName string  `json:"recipientName"`
	Status        string  `json:"status"`
	ResourceTitle string  `json:"resourceTitle"`
	Kind          string  `json:"kind"`
	Notes         *string `json:"notes,omitempty"`
}

// HTTPSender posts decision emails to the outbound email function.
type HTTPSender struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

func NewHTTPSender(cfg config.EmailConfig) *HTTPSender {
	return &HTTPSender{
		endpoint: cfg.Endpoint,
		apiKey:   cfg.APIKey,
		client:   &http.Client{Timeout: cfg.Timeout},
	}
}

func (s *HTTPSender) SendDecisionEmail(ctx context.Context, msg decision.EmailMessage) (*shared.EmailResult, error) {
	if s.endpoint == "" {
		return nil, ErrDisabled
	}

	body, err := json.Marshal(decisionEmailRequest{
		Email:         msg.Email,
		RecipientName: msg.RecipientName,
		Status:        msg.Status.String(),
		ResourceTitle: msg.ResourceTitle,
		Kind:          msg.Kind.String(),
		Notes:         msg.Notes,
	})
	if err != nil {
		return nil, remoteErr("failed to encode decision email", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, remoteErr("failed to build decision email request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, remoteErr("failed to send decision email", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return nil, remoteErr("failed to read decision email response", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return &shared.EmailResult{Success: false, Error: fmt.Sprintf("email function returned %d", resp.StatusCode)}, nil
	}

	// A bare 2xx (e.g. 204) means the function accepted the email.
	if len(bytes.TrimSpace(raw)) == 0 {
		return &shared.EmailResult{Success: true}, nil
	}

	var result shared.EmailResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, remoteErr("failed to decode decision email response", err)
	}
	return &result, nil
}

func remoteErr(msg string, err error) error {
	return infra.WrapKind(infra.KindRemoteFailure, msg, err)
}
