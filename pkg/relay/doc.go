// Package relay exposes the custody ledger over HTTP, mirroring the relay
// backend that fronts the custody scheme: POST /api/transfer executes a
// privileged distribution as the ledger owner, and read-only endpoints
// answer the balance, decimals, and asset queries the wallet UI consumes.
//
// The relay performs no retries and no idempotency deduplication; ledger
// failures are surfaced verbatim in the error payload with a non-2xx
// status. A typed REST client for the same surface lives in client.go.
package relay
