package share

import "errors"

// Errors returned by the share codec.
var (
	// ErrDecode indicates a token that is not valid base64 or raw deflate data.
	ErrDecode = errors.New("undecodable share token")

	// ErrTooLarge indicates a token that inflates beyond MaxDecodedSize.
	ErrTooLarge = errors.New("share token too large")
)
