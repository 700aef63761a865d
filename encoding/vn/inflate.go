package vn

import (
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io/ioutil"
)

// ErrDecompression is returned when the raw bytes do not inflate.
var ErrDecompression = errors.New("vn: decompression failed")

// Inflate turns the raw compressed file bytes into the UTF-8 text
// payload the parser consumes.
func Inflate(data []byte) ([]byte, error) {
	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecompression, err)
	}
	defer zr.Close()

	text, err := ioutil.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecompression, err)
	}
	return text, nil
}
