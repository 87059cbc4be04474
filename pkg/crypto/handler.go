/* pkg/crypto/handler.go */

package crypto

import (
	"crypto/rand"
	"io"
	"math/big"

	cerr "github.com/cockroachdb/errors"
)

// ----------------------------
// 🔐 Randomness
// ----------------------------

// Source supplies the uniform randomness password sampling consumes.
type Source interface {
	// IntN returns a uniform integer in [0, n). n must be positive.
	IntN(n int) (int, error)
	// Shuffle permutes b uniformly in place.
	Shuffle(b []byte) error
}

// SystemSource draws from crypto/rand. The zero value is ready to use.
type SystemSource struct {
	// Reader overrides crypto/rand.Reader when set.
	Reader io.Reader
}

// NewSystemSource returns a Source backed by the operating system CSPRNG.
func NewSystemSource() *SystemSource {
	return &SystemSource{}
}

func (s *SystemSource) reader() io.Reader {
	if s == nil || s.Reader == nil {
		return rand.Reader
	}
	return s.Reader
}

// IntN returns a uniform integer in [0, n).
func (s *SystemSource) IntN(n int) (int, error) {
	if n <= 0 {
		return 0, cerr.AssertionFailedf("random range must be positive, got %d", n)
	}
	v, err := rand.Int(s.reader(), big.NewInt(int64(n)))
	if err != nil {
		return 0, cerr.Wrap(err, "read random index")
	}
	return int(v.Int64()), nil
}

// Shuffle performs a Fisher-Yates shuffle of b.
func (s *SystemSource) Shuffle(b []byte) error {
	return ShuffleWith(s, b)
}

// ShuffleWith performs a Fisher-Yates shuffle of b using src.IntN, so any
// Source only needs a correct IntN to shuffle uniformly.
func ShuffleWith(src Source, b []byte) error {
	for i := len(b) - 1; i > 0; i-- {
		j, err := src.IntN(i + 1)
		if err != nil {
			return err
		}
		b[i], b[j] = b[j], b[i]
	}
	return nil
}

// RandomChar returns a uniformly chosen byte of charset.
func RandomChar(src Source, charset []byte) (byte, error) {
	n, err := src.IntN(len(charset))
	if err != nil {
		return 0, err
	}
	return charset[n], nil
}
