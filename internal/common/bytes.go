// Package common contains small helpers shared across client components.
package common

// WipeByteArray overwrites the slice with zeros. Use it to clear password
// bytes as soon as they are no longer needed.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
