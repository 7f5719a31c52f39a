// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models contains the data types exchanged between the billing client
// and the catalog server: catalog entries, bill line items and the request and
// response bodies of the /items and /generate-pdf endpoints.
//
// Monetary amounts are [decimal.Decimal] values. They are encoded as bare JSON
// numbers so the server sees the same shape a browser client would send.
package models

import "github.com/shopspring/decimal"

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}
