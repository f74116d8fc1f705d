// Package auth provides authentication and per-request identity binding
// for tasktrack.
//
// # Tokens
//
// Identity tokens are JWTs signed with HS256 using the configured secret.
// A token carries {sub: username, iat, exp}; it is valid while the
// signature matches and the expiry lies in the future. Verification
// failures - malformed token, bad signature, expired, missing subject -
// all collapse into ErrInvalidToken so callers learn nothing about the
// cause.
//
//	issuer, err := auth.NewTokenIssuer(secret, 24*time.Hour)
//	token, err := issuer.Issue("alice")
//	subject, err := issuer.Verify(token)
//
// # Passwords
//
// Passwords are stored as salted bcrypt hashes. CheckPassword fails closed
// on malformed stored hashes. Login performs a dummy comparison when the
// username is unknown so both failure paths take similar time.
//
// # Identity Binding
//
// Middleware is the per-request identity binder: it extracts the bearer
// token from the Authorization header, verifies it, resolves the subject
// to a user record, and binds an Identity to the request context. It never
// aborts the request; if anything fails the request continues anonymous,
// and RequireUser/RequireAdmin reject at the routes that need an identity.
// Handlers behind RequireUser resolve the identity with MustFromContext,
// which panics if the route was wired without protection.
package auth
