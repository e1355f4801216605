// Copyright 2020 Aleksandr Demakin. All rights reserved.

package floatbits

import (
	"encoding/binary"
	"math"

	"golang.org/x/xerrors"
)

// NativeByteOrder is the byte order of the host platform, exposed for interop
// with memory-dumped data. It is never an implicit default: every no-suffix
// function in this package is big-endian.
var NativeByteOrder binary.ByteOrder = binary.NativeEndian

// Float64FromBytes decodes exactly 8 big-endian bytes into a float64.
// Every bit pattern decodes to some value; NaN payloads come through verbatim.
func Float64FromBytes(b []byte) (float64, error) {
	return Float64FromBytesOrder(b, binary.BigEndian)
}

// Float64FromBytesOrder decodes 8 bytes in the given byte order.
func Float64FromBytesOrder(b []byte, bo binary.ByteOrder) (float64, error) {
	if len(b) != Float64Size {
		return 0, xerrors.Errorf("got %d bytes, want %d: %w", len(b), Float64Size, ErrSize)
	}
	return math.Float64frombits(bo.Uint64(b)), nil
}

// Float64FromBytesOK is the comma-ok form of Float64FromBytes.
func Float64FromBytesOK(b []byte) (float64, bool) {
	return discard(Float64FromBytes(b))
}

// Float64FromBytesOrderOK is the comma-ok form of Float64FromBytesOrder.
func Float64FromBytesOrderOK(b []byte, bo binary.ByteOrder) (float64, bool) {
	return discard(Float64FromBytesOrder(b, bo))
}

// Float64Bytes encodes f as 8 big-endian bytes. It is total: infinities and
// NaNs encode like any other pattern.
func Float64Bytes(f float64) []byte {
	return Float64BytesOrder(f, binary.BigEndian)
}

// Float64BytesOrder encodes f in the given byte order.
func Float64BytesOrder(f float64, bo binary.ByteOrder) []byte {
	b := make([]byte, Float64Size)
	bo.PutUint64(b, math.Float64bits(f))
	return b
}

// Float32FromBytes decodes exactly 4 big-endian bytes into a float32.
func Float32FromBytes(b []byte) (float32, error) {
	return Float32FromBytesOrder(b, binary.BigEndian)
}

// Float32FromBytesOrder decodes 4 bytes in the given byte order.
func Float32FromBytesOrder(b []byte, bo binary.ByteOrder) (float32, error) {
	if len(b) != Float32Size {
		return 0, xerrors.Errorf("got %d bytes, want %d: %w", len(b), Float32Size, ErrSize)
	}
	return math.Float32frombits(bo.Uint32(b)), nil
}

// Float32FromBytesOK is the comma-ok form of Float32FromBytes.
func Float32FromBytesOK(b []byte) (float32, bool) {
	return discard(Float32FromBytes(b))
}

// Float32FromBytesOrderOK is the comma-ok form of Float32FromBytesOrder.
func Float32FromBytesOrderOK(b []byte, bo binary.ByteOrder) (float32, bool) {
	return discard(Float32FromBytesOrder(b, bo))
}

// Float32Bytes encodes f as 4 big-endian bytes.
func Float32Bytes(f float32) []byte {
	return Float32BytesOrder(f, binary.BigEndian)
}

// Float32BytesOrder encodes f in the given byte order.
func Float32BytesOrder(f float32, bo binary.ByteOrder) []byte {
	b := make([]byte, Float32Size)
	bo.PutUint32(b, math.Float32bits(f))
	return b
}
