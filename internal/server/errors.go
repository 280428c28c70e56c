// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNoServersAreCreated is returned by NewServer when there is no HTTP
// handler or no address to serve it on.
var errNoServersAreCreated = errors.New("no servers are created: HTTP address is required")
