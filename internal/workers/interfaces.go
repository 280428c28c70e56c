// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the server's background jobs next to the HTTP
// server. Every worker lives until its context is cancelled.
package workers

import "context"

// Worker is a long-running background job.
//
// Run blocks until ctx is done. Returning nil after cancellation is a clean
// stop; any other error stops every sibling worker.
type Worker interface {
	Name() string
	Run(ctx context.Context) error
}
