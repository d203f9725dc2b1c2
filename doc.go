// Package metawall implements the MetaWall social wall backend: user account
// management and post CRUD over Bun, fronted by a request-processing pipeline
// built on Fiber.
//
// Pipeline:
//   - Every inbound request passes the body validation gate, optionally the
//     bearer-token auth gate, and then the business handler. Handlers are
//     wrapped so returned errors and panics alike funnel into the central
//     error responder, which owns all client-facing error formatting.
//   - The auth gate is stateless. Tokens are self-contained HS256 JWTs signed
//     with a process-wide secret loaded once at startup; rotating the secret
//     invalidates every outstanding token. There is no revocation list.
//
// Persistence:
//   - Repositories own the domain queries. Password hashes and verification
//     tokens are excluded from default reads and must be requested explicitly
//     through the WithSecrets variants.
package metawall
