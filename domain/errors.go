package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("internal server error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("your requested item is not found")
	// ErrConflict will throw if the current action already exists
	ErrConflict = errors.New("your item already exist")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("given param is not valid")
	// ErrForbidden will throw if the caller may not touch the item
	ErrForbidden = errors.New("you are not allowed to do this")
	// ErrUnauthorized will throw if the request carries no identity
	ErrUnauthorized = errors.New("user not authenticated")

	// ErrInvalidTarget will throw if a like target has an unsupported kind
	ErrInvalidTarget = errors.New("invalid like target")
	// ErrStorageUnavailable wraps any failure of the persistence layer
	ErrStorageUnavailable = errors.New("storage unavailable")
	// ErrCacheMiss is returned by cache stores when a key is absent
	ErrCacheMiss = errors.New("cache miss")
	// ErrCacheUnavailable wraps any failure of the cache backend
	ErrCacheUnavailable = errors.New("cache unavailable")
	// ErrNotificationDeliveryFailed wraps sender failures; it is logged, never returned to callers of Like
	ErrNotificationDeliveryFailed = errors.New("notification delivery failed")
)
