package record

import "errors"

var (
	// ErrEncode reports a field value that does not fit its declared width.
	ErrEncode = errors.New("record: field does not fit declared width")

	// ErrDecode reports stored bytes that do not parse into a valid record.
	ErrDecode = errors.New("record: malformed encoded record")
)
