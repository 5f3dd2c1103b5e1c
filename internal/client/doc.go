// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the client application runtime.
//
// It wires the credential store, the session, the authenticated API client
// and the services into a single process lifecycle.
package client
