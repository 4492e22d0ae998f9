package grpc

import (
	"context"
	"log"
	"time"

	trustpb "messenger-service/pb/trust"

	"messenger-service/internal/config"
	"messenger-service/internal/observability"
)

// Verdict is the outcome of a trust gate check.
type Verdict struct {
	Allowed bool
	Reason  string
}

// TrustClient wraps the trust gate gRPC client. Every check runs under a
// bounded timeout; when the call itself fails the configured fail mode
// decides the verdict.
type TrustClient struct {
	client   trustpb.UserValidationClient
	timeout  time.Duration
	failMode string
}

// NewTrustClient constructs the wrapper.
func NewTrustClient(client trustpb.UserValidationClient, timeout time.Duration, failMode string) *TrustClient {
	return &TrustClient{client: client, timeout: timeout, failMode: failMode}
}

// CheckUser asks the trust gate whether the user may connect.
func (t *TrustClient) CheckUser(ctx context.Context, userID int, username string) Verdict {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	resp, err := t.client.CheckUserStatus(ctx, &trustpb.UserRequest{UserId: int64(userID), Username: username})
	if err != nil {
		log.Printf("trust gate unavailable user_id=%d fail_mode=%s: %v", userID, t.failMode, err)
		if t.failMode == config.FailClosed {
			observability.IncTrustVerdict("fail_closed")
			return Verdict{Allowed: false, Reason: "trust gate unavailable"}
		}
		observability.IncTrustVerdict("fail_open")
		return Verdict{Allowed: true}
	}

	if resp.GetIsBanned() {
		observability.IncTrustVerdict("banned")
		return Verdict{Allowed: false, Reason: resp.GetMessage()}
	}
	observability.IncTrustVerdict("clear")
	return Verdict{Allowed: true}
}
