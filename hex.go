// Copyright 2020 Aleksandr Demakin. All rights reserved.

package floatbits

import (
	"encoding/hex"
	"strings"

	"golang.org/x/xerrors"
)

const (
	upperDigits = "0123456789ABCDEF"
	lowerDigits = "0123456789abcdef"
)

// HexOptions control hex emission.
type HexOptions struct {
	// Prefix prepends "0x".
	Prefix bool
	// Lowercase emits a-f instead of the default A-F.
	Lowercase bool
	// DelimitEvery inserts a '_' after every DelimitEvery bytes.
	// Zero disables delimiters; a negative interval is rejected with ErrConfig.
	DelimitEvery int
}

// stripHex removes an optional 0x/0X prefix and all '_' separators.
func stripHex(s string) string {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}
	if strings.IndexByte(s, '_') >= 0 {
		s = strings.ReplaceAll(s, "_", "")
	}
	return s
}

// DecodeHex parses hex text into bytes. The text may carry a 0x/0X prefix and
// '_' separators anywhere; digits are case-insensitive and their count must
// be even.
func DecodeHex(s string) ([]byte, error) {
	return decodeHex(s, 0)
}

// DecodeHexMax is DecodeHex with an upper bound on the decoded byte count.
// maxSize must be positive.
func DecodeHexMax(s string, maxSize int) ([]byte, error) {
	if maxSize <= 0 {
		return nil, xerrors.Errorf("max size %d is not positive: %w", maxSize, ErrConfig)
	}
	return decodeHex(s, maxSize)
}

// DecodeHexOK is the comma-ok form of DecodeHex.
func DecodeHexOK(s string) ([]byte, bool) {
	return discard(DecodeHex(s))
}

// DecodeHexMaxOK is the comma-ok form of DecodeHexMax.
func DecodeHexMaxOK(s string, maxSize int) ([]byte, bool) {
	return discard(DecodeHexMax(s, maxSize))
}

func decodeHex(s string, maxSize int) ([]byte, error) {
	s = stripHex(s)
	if len(s)%2 != 0 {
		return nil, xerrors.Errorf("odd number of digits (%d): %w", len(s), ErrFormat)
	}
	// The size cap is enforced on the digit count first, so oversized inputs
	// fail before any decoding work, and re-checked on the result.
	if maxSize > 0 && len(s)/2 > maxSize {
		return nil, errRangef("%d bytes exceed the maximum of %d", len(s)/2, maxSize)
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, xerrors.Errorf("%v: %w", err, ErrFormat)
	}
	if maxSize > 0 && len(b) > maxSize {
		return nil, errRangef("%d bytes exceed the maximum of %d", len(b), maxSize)
	}
	return b, nil
}

// EncodeHex renders bytes as hex text, two digits per byte, uppercase unless
// opts.Lowercase. A delimiter never appears before the first byte.
func EncodeHex(b []byte, opts HexOptions) (string, error) {
	if opts.DelimitEvery < 0 {
		return "", xerrors.Errorf("negative delimiter interval %d: %w", opts.DelimitEvery, ErrConfig)
	}
	digits := upperDigits
	if opts.Lowercase {
		digits = lowerDigits
	}
	var builder strings.Builder
	builder.Grow(2 + 2*len(b) + len(b))
	if opts.Prefix {
		builder.WriteString("0x")
	}
	for i, v := range b {
		if i > 0 && opts.DelimitEvery > 0 && i%opts.DelimitEvery == 0 {
			builder.WriteByte('_')
		}
		builder.WriteByte(digits[v>>4])
		builder.WriteByte(digits[v&0xf])
	}
	return builder.String(), nil
}

// EncodeHexOK is the comma-ok form of EncodeHex.
func EncodeHexOK(b []byte, opts HexOptions) (string, bool) {
	return discard(EncodeHex(b, opts))
}

// Float64FromHex parses exactly 16 hex digits (after prefix and separator
// stripping) as a big-endian float64 encoding. The hex textual form is always
// big-endian regardless of platform.
func Float64FromHex(s string) (float64, error) {
	b, err := DecodeHexMax(s, Float64Size)
	if err != nil {
		return 0, err
	}
	return Float64FromBytes(b)
}

// Float64FromHexOK is the comma-ok form of Float64FromHex.
func Float64FromHexOK(s string) (float64, bool) {
	return discard(Float64FromHex(s))
}

// Float64Hex renders f as 16 big-endian hex digits.
func Float64Hex(f float64, opts HexOptions) (string, error) {
	return EncodeHex(Float64Bytes(f), opts)
}

// Float64HexOK is the comma-ok form of Float64Hex.
func Float64HexOK(f float64, opts HexOptions) (string, bool) {
	return discard(Float64Hex(f, opts))
}

// Float32FromHex parses exactly 8 hex digits as a big-endian float32 encoding.
func Float32FromHex(s string) (float32, error) {
	b, err := DecodeHexMax(s, Float32Size)
	if err != nil {
		return 0, err
	}
	return Float32FromBytes(b)
}

// Float32FromHexOK is the comma-ok form of Float32FromHex.
func Float32FromHexOK(s string) (float32, bool) {
	return discard(Float32FromHex(s))
}

// Float32Hex renders f as 8 big-endian hex digits.
func Float32Hex(f float32, opts HexOptions) (string, error) {
	return EncodeHex(Float32Bytes(f), opts)
}

// Float32HexOK is the comma-ok form of Float32Hex.
func Float32HexOK(f float32, opts HexOptions) (string, bool) {
	return discard(Float32Hex(f, opts))
}
