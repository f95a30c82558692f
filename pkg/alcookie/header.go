package alcookie

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// ValidateHeader checks the archive magic and version and returns the
// version found. The magic comparison is exact; the version is a
// little-endian signed 32-bit integer and must equal Version.
func ValidateHeader(data []byte) (int32, error) {
	if len(data) < HeaderSize {
		return 0, fmt.Errorf("%w: have %d bytes, want at least %d", ErrTruncatedHeader, len(data), HeaderSize)
	}

	if !bytes.Equal(data[:len(Magic)], []byte(Magic)) {
		return 0, fmt.Errorf("%w: %q", ErrBadMagic, data[:len(Magic)])
	}

	version := int32(binary.LittleEndian.Uint32(data[len(Magic):HeaderSize]))
	if version != Version {
		return version, fmt.Errorf("%w: %d", ErrUnsupportedVersion, version)
	}

	return version, nil
}
