package generator

import (
	"io"

	"github.com/zarlcorp/core/pkg/zcrypto"
)

// SecureSource returns a cryptographically secure random reader.
func SecureSource() io.Reader {
	return secureReader{}
}

type secureReader struct{}

func (secureReader) Read(p []byte) (int, error) {
	b, err := zcrypto.RandBytes(len(p))
	if err != nil {
		return 0, err
	}
	n := copy(p, b)
	zcrypto.Erase(b)
	return n, nil
}
