// Package deepskylog is a thin client for the DeepskyLog equipment API.
//
// DeepskyLog (https://www.deepskylog.org) lets visual observers log their
// deep-sky observations and the equipment used for them. This package
// retrieves a user's equipment inventory — instruments, eyepieces, lenses and
// filters — one category per call, as a map keyed by the service's integer
// item ID.
//
// The client is deliberately simple: one GET per call, a fixed per-request
// timeout, no retries, no pagination and no caching. Failures map onto four
// distinguishable kinds: [AuthenticationError] (the service rejected the
// user), [ServerError] (the service faulted or answered outside its
// contract), [MalformedResponseError] (the body was not the expected mapping)
// and [TransportError] (no response arrived at all). Check them with
// errors.As.
//
// Credential and session management are out of scope; the username path
// segment is the only identity the client sends.
package deepskylog
