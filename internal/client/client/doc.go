// Package client contains the client-side building blocks of the EcoTracker CLI.
//
// # Overview
//
//  1. A transport-agnostic API contract (see the Client interface) covering
//     registration, login, entry submission, history, dashboards and report
//     export.
//  2. A gRPC implementation (see GRPCClient) that injects the access token
//     via an interceptor, transparently refreshes an expired token once per
//     call, and maps gRPC status codes to sentinel errors.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) wiring an
//     SQLite database and applying the embedded goose migrations.
//
// # Error Handling
//
// Callers match conditions with errors.Is: ErrUnavailable, ErrUnauthorized,
// ErrInvalidInput, ErrAlreadyExists, ErrNotFound.
package client
