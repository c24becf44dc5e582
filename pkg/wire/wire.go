// Package wire provides little-endian fixed-width field access at explicit
// byte offsets. Callers guarantee bounds; a short slice is a programming
// error and panics.
package wire

import "encoding/binary"

func Uint16(b []byte, offset int) uint16 {
	return binary.LittleEndian.Uint16(b[offset:])
}

func Uint32(b []byte, offset int) uint32 {
	return binary.LittleEndian.Uint32(b[offset:])
}

func Uint64(b []byte, offset int) uint64 {
	return binary.LittleEndian.Uint64(b[offset:])
}

func PutUint16(b []byte, offset int, v uint16) {
	binary.LittleEndian.PutUint16(b[offset:], v)
}

func PutUint32(b []byte, offset int, v uint32) {
	binary.LittleEndian.PutUint32(b[offset:], v)
}

func PutUint64(b []byte, offset int, v uint64) {
	binary.LittleEndian.PutUint64(b[offset:], v)
}
