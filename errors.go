package qrgen

import "errors"

// ErrDataTooLong is returned when a payload exceeds the byte capacity of
// version 10 at the requested error correction level.
var ErrDataTooLong = errors.New("qrgen: data too long")
