package models

import "errors"

// Sentinel errors for the query boundary. Handlers convert these into a
// single textual error payload; nothing else crosses the transport layer.
var (
	// ErrInvalidDate indicates the composed (year, month, day) is not a real
	// calendar date.
	ErrInvalidDate = errors.New("invalid date")

	// ErrNonTradingDay indicates the resolved date falls on a weekend.
	ErrNonTradingDay = errors.New("data is only available for work days (Monday to Friday)")

	// ErrSnapshotNotFound indicates no snapshot exists for the requested
	// exchange and date.
	ErrSnapshotNotFound = errors.New("snapshot not found")

	// ErrTickerNotFound indicates the requested ticker is absent from an
	// otherwise valid snapshot.
	ErrTickerNotFound = errors.New("ticker not found")

	// ErrProfileNotFound indicates a company profile lookup miss.
	ErrProfileNotFound = errors.New("company profile not found")
)
