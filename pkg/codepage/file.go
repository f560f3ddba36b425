package codepage

import (
	"bytes"
	"os"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// StripBOM returns b without a leading UTF-8 byte order mark.
func StripBOM(b []byte) []byte {
	return bytes.TrimPrefix(b, utf8BOM)
}

// LoadWithoutBOM reads the file at path and drops a leading UTF-8 BOM.
func LoadWithoutBOM(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return StripBOM(data), nil
}
