package utils

import (
	"crypto/rand"
	"encoding/binary"
)

const codeCharset = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// NewResetCode returns a short one-time code for email delivery. The
// charset skips characters that read ambiguously (0/O, 1/I).
func NewResetCode(length int) string {
	buf := make([]byte, length*8)
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}

	code := make([]byte, length)
	for i := range code {
		n := binary.BigEndian.Uint64(buf[i*8 : (i+1)*8])
		code[i] = codeCharset[n%uint64(len(codeCharset))]
	}
	return string(code)
}
