package services

import "errors"

var (
	// ErrEmptyCart: checkout refused, nothing changed; user can keep adding.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrInvalidLine: a cart index that does not exist. Indicates a client/
	// engine desync rather than a normal user path.
	ErrInvalidLine = errors.New("invalid cart line")

	// ErrItemNotFound: a cart line references a catalog item that no longer
	// exists at commit time. Fails the whole checkout transaction.
	ErrItemNotFound = errors.New("food item not found")

	// ErrValidation: malformed input on item-management paths.
	ErrValidation = errors.New("validation failed")
)
