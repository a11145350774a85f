// Package auth implements the authentication core for TaskFlow: signed
// session tokens, the auth cookie lifecycle, request-level identity
// resolution, and route guards for authenticated and admin-only routes.
//
// Known limitation: there is no server-side session store and no
// revocation list. Logout only clears the client cookie, so a captured
// token remains valid until it expires or the signing secret is rotated,
// which invalidates every outstanding token at once.
package auth
