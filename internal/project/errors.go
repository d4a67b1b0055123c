package project

import "errors"

// Errors returned by project operations.
var (
	// ErrRemoveRoot indicates an attempt to remove or move the root collection.
	// Removing the root is a programming error and panics.
	ErrRemoveRoot = errors.New("cannot remove the root item")

	// ErrNotFound indicates an id does not resolve to an item.
	ErrNotFound = errors.New("item not found")

	// ErrNotCollection indicates a parent id names an item that cannot hold children.
	ErrNotCollection = errors.New("item is not a collection")

	// ErrMoveIntoSelf indicates a move target is the item itself or one of its descendants.
	ErrMoveIntoSelf = errors.New("cannot move an item into itself or its descendants")

	// ErrUnknownKind indicates a serialized item has no registered decoder.
	ErrUnknownKind = errors.New("unknown item kind")
)
