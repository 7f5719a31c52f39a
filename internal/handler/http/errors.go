// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrInvalidItem is returned for an add-item body without a usable name
	// or price.
	ErrInvalidItem = errors.New("invalid item data")

	// ErrInvalidBill is returned for a bill body that is not a JSON array of
	// lines.
	ErrInvalidBill = errors.New("invalid bill data")
)
