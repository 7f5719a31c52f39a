// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package bill holds the in-memory bill of one client session.
//
// A [Session] owns an ordered list of line items, at most one per catalog id,
// and keeps its grand total in sync after every change. [Session.View]
// projects the state into a [View] of preformatted strings for display; it
// never mutates the session.
package bill
