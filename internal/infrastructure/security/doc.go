// Package security provides the credential primitives used by the accounts
// services: bcrypt password hashing, HS256 session tokens, TOTP, random
// one-time secrets and AES-GCM sealing of stored TOTP seeds.
package security
