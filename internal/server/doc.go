// Package server provides HTTP routing, middleware and the server lifecycle for the task list API.
//
// # Router Infrastructure
//
// The [Router] interface defines HTTP routing with middleware support.
//
// The [BasicRouter] implementation registers "METHOD /path" patterns on an [http.ServeMux], so path parameters come
// from [http.Request.PathValue] and a wrong method yields 405 without handler code.
//
// # Middleware
//
// [Middleware] wraps the whole mux. The first one added is outermost. The API installs them in this order:
//
//  1. [Recover] : 500 instead of a dropped connection when a handler panics
//  2. [RequestID] : X-Request-ID echoed or generated
//  3. [Logging] : one line per request with status, latency and request id
//  4. [CORS] : allowed origins from config, preflight answered with 204
//  5. [RateLimit] : token bucket shared by all clients, 429 when empty
//
// # Handler Interface
//
// Custom handlers implement the [Handler] interface, which wraps the stdlib handler interface and adds routes,
// allowing handlers to register multiple routes to encapsulate route definitions within the implementation.
//
// # Lifecycle
//
// [Server] serves until its context is cancelled and then calls [http.Server.Shutdown] with a bounded timeout.
package server
