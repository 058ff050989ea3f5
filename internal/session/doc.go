// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session holds the authenticated identity of the running client.
//
// A [Store] keeps the decoded token claims and the raw bearer token together
// under one lock: either both are present or neither is. Login populates the
// store, the token refresher replaces its contents on renewal, and logout
// clears it. Clearing is the signal background tasks observe to terminate;
// they either check [Store.Snapshot] before each network call or select on
// [Store.Done].
package session
