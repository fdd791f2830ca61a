// Package backend implements the order and product gateways against the remote
// REST service.
//
// Every call goes through a single resty client with retries disabled and a
// gobreaker circuit breaker. Transport errors and 5xx responses count as breaker
// failures; 4xx responses are the backend rejecting the request and do not.
// A 404 on an identity-addressed call is reported as errs.ObjectNotFoundError.
// While the circuit is open calls fail with errs.ErrServiceUnavailable.
//
// Request and latency counts are exported through internal/pkg/metrics.
package backend
