package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrAccessDenied indicates the permission gate refused to start a session.
var ErrAccessDenied = errors.New("access denied")

// ErrLoginFailed indicates the store rejected the ambient identity.
var ErrLoginFailed = errors.New("login failed")

// ErrNetworkUnavailable indicates a transient loss of connectivity to the store.
var ErrNetworkUnavailable = errors.New("network unavailable")

// ErrRejectedOperation indicates a mutation the store refused or could not parse.
var ErrRejectedOperation = errors.New("operation rejected")

// ErrUnclassified is the kind of every fault not covered by the other sentinels.
var ErrUnclassified = errors.New("unclassified fault")
