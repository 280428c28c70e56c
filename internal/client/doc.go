// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the store-keeper command-line client.
//
// Every invocation runs one subcommand (login, stores, add-item, ...)
// against the server through an [adapter.ServerAdapter]. The bearer token
// obtained by register or login is kept in a session file between
// invocations and removed again by logout.
package client
