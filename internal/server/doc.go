// Package server wires the HTTP API: routing, request middleware, JSON
// encoding, and input validation.
//
// Every request passes through the request-ID and logging middleware and
// the identity binder. Routes under /api (except /api/auth) sit behind
// RequireUser; /api/users additionally requires the admin role. Handlers
// resolve the bound identity once with auth.MustFromContext and pass the
// owner's user ID into the services explicitly.
package server
