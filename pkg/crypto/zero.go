// pkg/crypto/zero.go

package crypto

// SecureZero overwrites a byte slice to reduce the chance of sensitive data lingering in memory.
func SecureZero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
