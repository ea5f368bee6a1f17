package storage

import "errors"

var (
	// ErrRange reports a read outside a block's written region.
	ErrRange = errors.New("storage: range outside block's written region")

	// ErrBlockOutOfRange reports a block index past the end of the file.
	ErrBlockOutOfRange = errors.New("storage: block index out of range")

	// ErrConfig reports a layout that can never work, such as a record
	// that cannot fit inside one block under a non-spanning strategy.
	ErrConfig = errors.New("storage: invalid block layout configuration")

	// ErrPayloadSize reports an encoded record whose length does not
	// match what the strategy or the stored prefix requires.
	ErrPayloadSize = errors.New("storage: payload length mismatch")
)
