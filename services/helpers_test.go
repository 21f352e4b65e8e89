package services

import (
	"bytes"
	"math"
)

func bytesReader(b []byte) *bytes.Reader {
	return bytes.NewReader(b)
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
