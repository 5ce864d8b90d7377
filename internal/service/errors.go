package service

import "errors"

// ErrVendor tags any failure of an outbound payment-provider call. The
// handler maps it to a generic 500; the wrapped detail is for logs only.
var ErrVendor = errors.New("payment provider call failed")
