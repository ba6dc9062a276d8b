package errors

import "net/http"

var (
	ErrRoomNotFound = New(
		"ROOM_NOT_FOUND",
		"Saved room not found",
		http.StatusNotFound,
	)

	ErrInvalidRoomID = New(
		"INVALID_ROOM_ID",
		"Invalid room ID",
		http.StatusBadRequest,
	)

	ErrInvalidFormat = New(
		"INVALID_FORMAT",
		"Invalid export format: must be svg or dxf",
		http.StatusBadRequest,
	)

	ErrMalformedGeometry = New(
		"MALFORMED_GEOMETRY",
		"Surface geometry contains non-finite values",
		http.StatusBadRequest,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
