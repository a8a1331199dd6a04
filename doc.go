// Package bourso provides a programmatic client for the BoursoBank
// customer web portal, which exposes no official API. It drives the
// portal's consumer login flow (including the randomized virtual keypad
// and the conditional strong-authentication step), maintains the HTTP
// session state the portal expects, and executes multi-step web-form
// workflows on top of it.
//
// The core functionalities include:
//   - Session & authentication: the two-pass login-page handshake, the
//     virtual keypad decoding, and the in-app approval (MFA) sub-flow.
//   - Account listing: scraping the dashboard into typed accounts with
//     balances in minor units.
//   - Funds transfers: driving the portal's multi-page transfer wizard
//     as a strictly sequential, pull-driven sequence of steps.
//   - Trading: placing, checking and cancelling simple orders, and
//     fetching quotes and trading summaries.
//
// This package holds the domain model (accounts, validated value types);
// the web sub-package holds the portal client itself. The `bourso`
// command-line tool and the api sub-package are thin front-ends over
// these operations.
package bourso
