package util

import (
	"fmt"
)

// Panicf panics with a formatted message. Reserved for programming
// invariant violations that must fail loudly.
func Panicf(format string, args ...interface{}) {
	s := fmt.Sprintf(format, args...)
	panic(s)
}
