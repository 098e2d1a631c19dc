// Package httpserver implements the relay API: gasless incident submission
// on behalf of clients, incident lookups and reward summaries, plus the
// operational endpoints (livez, readyz, drain, undrain) and a standalone
// metrics listener.
//
// Drain marks the server not ready so load balancers stop routing to it,
// while in-flight and follow-up requests still complete; undrain reverses
// it. Shutdown closes both listeners within the configured grace period.
package httpserver
