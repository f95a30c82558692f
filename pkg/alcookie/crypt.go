package alcookie

import "fmt"

// Crypt applies the archive's symmetric XOR transform: every payload
// byte is combined with key[i mod KeySize]. The transform is its own
// inverse, so the same routine encrypts and decrypts. It carries no
// security guarantees and must not be used to protect secrets.
func Crypt(payload, key []byte) ([]byte, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: have %d bytes, want %d", ErrInvalidKeyLength, len(key), KeySize)
	}

	out := make([]byte, len(payload))
	for i, b := range payload {
		out[i] = b ^ key[i%KeySize]
	}

	return out, nil
}
