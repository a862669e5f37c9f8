package service

import (
	"connectrpc.com/connect"

	"github.com/mmynk/groupsplit/internal/apperr"
)

// toConnectError maps a domain error onto a Connect status code.
// Over the JSON protocol NotFound is served as HTTP 404 and both
// InvalidArgument and FailedPrecondition as HTTP 400.
func toConnectError(err error) *connect.Error {
	switch apperr.KindOf(err) {
	case apperr.KindNotFound:
		return connect.NewError(connect.CodeNotFound, err)
	case apperr.KindInvalidInput:
		return connect.NewError(connect.CodeInvalidArgument, err)
	case apperr.KindConflict:
		return connect.NewError(connect.CodeFailedPrecondition, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}
