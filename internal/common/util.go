package common

// WipeByteArray zeroes the slice in place. Used to shorten the lifetime of
// password bytes in memory after they have been handed off.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
