// Package sis is the HTTP client for the student-information-system API.
//
// The SIS exposes named queries over POST: {base}/query/{name} returns a page
// of rows ({"results": [...]}) and {base}/query/{name}/count returns the total
// ({"count": n}). Pages are addressed with the page/pagesize query parameters.
// Every request carries a bearer token obtained from a TokenSource; the
// client never refreshes tokens itself.
//
// # Resilience
//
// The API is rate limited and occasionally flaky, so the client retries 429,
// 5xx and network-level failures with exponential backoff, honoring the
// server's Retry-After header (seconds or HTTP-date, floored at one second)
// when present. Other 4xx responses are client errors and fail immediately.
// A shared rate limiter paces all outgoing requests so parallel callers
// cannot amplify a 429 storm; retries for one logical request are strictly
// sequential.
//
// # Pagination
//
// QueryAll fetches the count first, then sequential pages until the
// cumulative row count reaches it. An empty or short page before the total is
// reached fails the fetch: a silently truncated snapshot would surface
// downstream as a wave of phantom "removed" records, which is far worse than
// a failed run.
//
// The client only ever reads. Nothing in this package issues a mutating call
// against the SIS.
package sis
