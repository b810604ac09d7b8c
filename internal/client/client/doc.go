// Package client is the CLI's gateway to the timeline event store.
//
// GRPCClient implements Gateway over the timeline gRPC service. Status codes
// are mapped onto the shared sentinels in internal/common so callers can use
// errors.Is: common.ErrorNotFound, common.ErrorValidation,
// common.ErrorAlreadyExists, and common.ErrorStore (which ErrUnavailable
// also matches).
//
// SubscribeToEvents keeps a server stream open in the background and hands
// every received snapshot to a callback. If the stream breaks it is reopened
// after a short delay until the subscription is cancelled.
package client
