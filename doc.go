// Package payledger is a single-pass batch engine for client payment logs.
// It ingests an append-only CSV of transaction records (deposits,
// withdrawals, disputes, resolves, chargebacks) and produces the final
// per-client balance sheet.
//
// The core pieces:
//   - Exact amounts: fixed-point values with 4 fractional digits over an
//     unbounded integer part, with no floating point anywhere.
//   - A transaction journal: a per-(client, tx) lifecycle state machine that
//     turns valid records into balance effects and silently drops the rest.
//   - A streaming ingestion pipeline: memory-bounded chunk reads that
//     reassemble rows across arbitrary read boundaries and drive a pluggable
//     row grammar under configurable strictness policies.
//
// The package carries all the logic behind the `plg` command-line tool. A run
// is deterministic, single-threaded and leaves no state behind.
package payledger
