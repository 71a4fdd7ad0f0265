// Package aur provides a client for the Arch User Repository RPC interface.
//
// # Overview
//
// The client speaks version 5 of the AUR RPC and only uses the info query,
// which accepts any number of repeated arg[] parameters and answers with a
// "multiinfo" payload:
//
//	GET https://aur.archlinux.org/rpc/?v=5&type=info&arg[]=yay&arg[]=go
//
// Names are packed greedily into as few requests as possible while keeping
// every request URL within [DefaultMaxURLLength] characters, the limit the
// AUR web server enforces. See [Pack].
//
// # Missing packages
//
// A name with no matching entry in any response is simply absent from the
// result. Packages from the official repositories (glibc, python, ...) are
// never returned by the AUR, so callers treat absence as "not an AUR
// package" rather than as an error.
//
// # Errors
//
// Failures are returned as *errors.Error values from
// github.com/matzehuels/aurorder/pkg/errors with one of the codes
// TRANSPORT_ERROR, RATE_LIMITED, MALFORMED_RESPONSE, PROTOCOL_MISMATCH or
// QUERY_TOO_LONG. A failure in any batch fails the whole call.
package aur
