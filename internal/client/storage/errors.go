package storage

import "errors"

// Common client storage errors
var (
	// ErrAccountNotFound indicates that account was not found
	ErrAccountNotFound = errors.New("account not found")

	// ErrPayeeNotFound indicates that payee was not found
	ErrPayeeNotFound = errors.New("payee not found")

	// ErrTransactionNotFound indicates that transaction was not found
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrSessionNotFound indicates that no relay session exists
	ErrSessionNotFound = errors.New("session not found")

	// ErrClockNotFound indicates that no clock state has been persisted yet
	ErrClockNotFound = errors.New("clock state not found")

	// ErrMetadataNotFound indicates that metadata key was not found
	ErrMetadataNotFound = errors.New("metadata key not found")

	// ErrUnknownDataset indicates a change referencing a dataset
	// this replica has no table for
	ErrUnknownDataset = errors.New("unknown dataset")

	// ErrUnknownColumn indicates a change referencing a column
	// this replica has no mapping for
	ErrUnknownColumn = errors.New("unknown column")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
