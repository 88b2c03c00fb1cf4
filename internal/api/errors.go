package api

import (
	"context"
	"errors"
	"fmt"

	"github.com/Japjeet07/ChefMaker-sub000/internal/outbox"
	"github.com/Japjeet07/ChefMaker-sub000/internal/store"
	"google.golang.org/grpc/codes"
	grpcstatus "google.golang.org/grpc/status"
)

// toStatus converts a core error into a gRPC status error.
func toStatus(err error) error {
	if err == nil {
		return nil
	}
	var code codes.Code
	var cu *outbox.ChatUpdateError
	switch {
	case errors.As(err, &cu):
		code = codes.Aborted
	case errors.Is(err, store.ErrInvalid):
		code = codes.InvalidArgument
	case errors.Is(err, store.ErrNotFound):
		code = codes.NotFound
	case errors.Is(err, store.ErrNotParticipant):
		code = codes.PermissionDenied
	case errors.Is(err, store.ErrUnavailable), errors.Is(err, store.ErrQueryUnsupported):
		code = codes.Unavailable
	case errors.Is(err, context.Canceled):
		code = codes.Canceled
	case errors.Is(err, context.DeadlineExceeded):
		code = codes.DeadlineExceeded
	default:
		code = codes.Internal
	}
	return grpcstatus.Error(code, err.Error())
}

// ErrChatUpdate is what a client sees for a send whose message was stored but
// whose chat metadata update failed.
var ErrChatUpdate = errors.New("chat update failed")

// fromStatus maps a gRPC error back onto the store sentinels so callers can
// keep using errors.Is on either side of the socket.
func fromStatus(err error) error {
	if err == nil {
		return nil
	}
	st, ok := grpcstatus.FromError(err)
	if !ok {
		return err
	}
	var sentinel error
	switch st.Code() {
	case codes.InvalidArgument:
		sentinel = store.ErrInvalid
	case codes.NotFound:
		sentinel = store.ErrNotFound
	case codes.PermissionDenied:
		sentinel = store.ErrNotParticipant
	case codes.Unavailable:
		sentinel = store.ErrUnavailable
	case codes.Aborted:
		sentinel = ErrChatUpdate
	case codes.Canceled:
		sentinel = context.Canceled
	case codes.DeadlineExceeded:
		sentinel = context.DeadlineExceeded
	default:
		return err
	}
	return fmt.Errorf("%s: %w", st.Message(), sentinel)
}
