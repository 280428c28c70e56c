// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

// Client defines the lifecycle contract for runnable client applications.
type Client interface {
	// Run executes the subcommand named by args[0] with the remaining
	// arguments as its flags.
	Run(args []string) error
}

// Session persists the bearer token between client invocations.
type Session interface {
	// Load returns the saved token, or "" when there is none.
	Load() (string, error)
	Save(token string) error
	Clear() error
}
