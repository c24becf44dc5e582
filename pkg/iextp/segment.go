package iextp

import (
	"github.com/peter-kozarec/deeptick/pkg/wire"
)

// BlockFunc receives one message block together with the sequence number
// assigned to it. The record slice is valid only for the duration of the
// call.
type BlockFunc func(sequenceNumber uint64, record []byte)

// WalkBlocks splits the post-header message region of one packet into
// length-prefixed blocks and hands each one to fn. Sequence numbers start at
// firstSequenceNumber and advance by one per block handed out, whatever fn
// makes of it.
//
// The two-byte little-endian prefix declares the block length. A zero length
// is the end-of-messages sentinel and stops the walk cleanly. The record
// passed to fn is the declared length, capped only at the end of the region;
// the block content is opaque here and the consumer must defend against a
// record shorter than its declared length.
//
// Returns the number of blocks handed out.
func WalkBlocks(region []byte, firstSequenceNumber uint64, fn BlockFunc) int {
	offset := 0
	seq := firstSequenceNumber
	attempted := 0

	for offset+2 <= len(region) {
		length := int(wire.Uint16(region, offset))
		offset += 2

		if length == 0 {
			break
		}

		end := offset + length
		if end > len(region) {
			end = len(region)
		}
		fn(seq, region[offset:end])

		offset += length
		seq++
		attempted++
	}

	return attempted
}
