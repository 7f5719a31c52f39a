// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http serves the catalog and bill rendering endpoints of the
// development server. It speaks the same contract the billing client uses:
// GET and POST /items, POST /generate-pdf.
package http
