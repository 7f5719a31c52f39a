// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-visible notices shown by the billing client.
//
// Keeping every notice in one place keeps the wording consistent between the
// service layer, which picks the notice for an outcome, and the terminal UI,
// which displays it.
package app

const (
	// MsgSelectItem is shown when an item is added to the bill without a
	// catalog selection.
	MsgSelectItem = "Please select an item."

	// MsgInvalidQuantity is shown when the quantity is not a positive integer.
	MsgInvalidQuantity = "Please enter a valid quantity."

	// MsgInvalidNewItem is shown when a new catalog entry has an empty name
	// or a non-positive price.
	MsgInvalidNewItem = "Please enter a valid item name and price."

	// MsgEmptyBill is shown when an export is requested for an empty bill.
	MsgEmptyBill = "Please add items to the bill first."

	// MsgCatalogFetchFailed is shown when the catalog cannot be loaded.
	MsgCatalogFetchFailed = "Could not load items from the server."

	// MsgAddItemFailed is the fallback when the server rejects a new item
	// without giving a reason.
	MsgAddItemFailed = "Failed to add item."

	// MsgAddItemTransport is shown when the add-item request cannot complete.
	MsgAddItemTransport = "An error occurred while adding the item."

	// MsgExportFailed is shown when the server refuses to render the bill.
	MsgExportFailed = "Failed to generate PDF. Please try again."

	// MsgExportTransport is shown when the export request cannot complete.
	MsgExportTransport = "An error occurred while generating the PDF."

	// MsgNoItemsAvailable is the placeholder entry of an empty catalog.
	MsgNoItemsAvailable = "No items available"

	// MsgItemAddedToBill confirms a successful add-to-bill command.
	MsgItemAddedToBill = "Item added to the bill."

	// MsgBillSaved prefixes the path of a saved bill document.
	MsgBillSaved = "Bill saved to"

	// MsgBillCleared confirms an explicit bill reset.
	MsgBillCleared = "Bill cleared."

	// MsgUnexpected is shown for failures that fit no other notice.
	MsgUnexpected = "Something went wrong. Please try again."
)
