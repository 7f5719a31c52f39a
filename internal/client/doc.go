// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive billing client runtime.
//
// It runs the terminal billing form over the client services for the
// lifetime of the process.
package client
