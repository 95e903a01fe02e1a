package notifier

import "errors"

var (
	// ErrRendererNil is returned when a nil renderer is provided.
	ErrRendererNil = errors.New("notifier: renderer cannot be nil")

	// ErrTransportNil is returned when a nil transport is provided.
	ErrTransportNil = errors.New("notifier: transport cannot be nil")

	// ErrUnknownType is returned when a job carries an unrecognized
	// notification type. In the deferred path this counts as a job failure,
	// handled the same way as a transport failure.
	ErrUnknownType = errors.New("notifier: unknown notification type")

	// ErrSendFailed wraps the final transport error once retries are
	// exhausted on the synchronous path.
	ErrSendFailed = errors.New("notifier: delivery failed")
)
