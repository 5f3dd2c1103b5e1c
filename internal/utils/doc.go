// Package utils provides general-purpose helper utilities
// used across different parts of the client.
// Includes the HTTP client constructor, client-side JWT inspection,
// bearer header parsing and idempotency key generation.
package utils
