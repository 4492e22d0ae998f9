package grpc

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	grpclib "google.golang.org/grpc"

	"messenger-service/internal/config"
	trustpb "messenger-service/pb/trust"
)

type fakeValidation struct {
	resp *trustpb.UserResponse
	err  error
}

func (f *fakeValidation) CheckUserStatus(ctx context.Context, in *trustpb.UserRequest, opts ...grpclib.CallOption) (*trustpb.UserResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func TestTrustClientClearVerdict(t *testing.T) {
	client := NewTrustClient(&fakeValidation{resp: &trustpb.UserResponse{IsBanned: false}}, time.Second, config.FailOpen)

	verdict := client.CheckUser(context.Background(), 1, "alice")
	require.True(t, verdict.Allowed)
}

func TestTrustClientBannedVerdict(t *testing.T) {
	client := NewTrustClient(&fakeValidation{
		resp: &trustpb.UserResponse{IsBanned: true, Message: "account suspended"},
	}, time.Second, config.FailOpen)

	verdict := client.CheckUser(context.Background(), 2, "bob")
	require.False(t, verdict.Allowed)
	require.Equal(t, "account suspended", verdict.Reason)
}

func TestTrustClientFailOpenOnError(t *testing.T) {
	client := NewTrustClient(&fakeValidation{err: errors.New("unavailable")}, time.Second, config.FailOpen)

	verdict := client.CheckUser(context.Background(), 1, "alice")
	require.True(t, verdict.Allowed)
}

func TestTrustClientFailClosedOnError(t *testing.T) {
	client := NewTrustClient(&fakeValidation{err: errors.New("unavailable")}, time.Second, config.FailClosed)

	verdict := client.CheckUser(context.Background(), 1, "alice")
	require.False(t, verdict.Allowed)
	require.NotEmpty(t, verdict.Reason)
}
