// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It ties the login flow, the background workers bound to the session and the
// conversation screens into a single process lifecycle.
package client
