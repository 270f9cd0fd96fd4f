package service

import (
	"errors"

	"connectrpc.com/connect"

	"github.com/mmynk/moneyquest/internal/calculator"
	"github.com/mmynk/moneyquest/internal/storage"
)

// toConnectError maps domain and storage errors to Connect codes.
// fallback is used for errors with no specific mapping.
func toConnectError(err error, fallback connect.Code) error {
	switch {
	case errors.Is(err, calculator.ErrInvalidPurchase),
		errors.Is(err, calculator.ErrUnknownParticipant),
		errors.Is(err, calculator.ErrInvalidParticipant):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, storage.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	default:
		return connect.NewError(fallback, err)
	}
}
