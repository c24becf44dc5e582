package iextp

import (
	"bytes"
	"testing"

	"github.com/peter-kozarec/deeptick/pkg/wire"
)

func block(record []byte) []byte {
	buf := make([]byte, 2+len(record))
	wire.PutUint16(buf, 0, uint16(len(record)))
	copy(buf[2:], record)
	return buf
}

type walked struct {
	seq    uint64
	record []byte
}

func collect(region []byte, firstSeq uint64) []walked {
	var out []walked
	WalkBlocks(region, firstSeq, func(seq uint64, record []byte) {
		out = append(out, walked{seq, append([]byte(nil), record...)})
	})
	return out
}

func TestWalkBlocks_SequenceNumbers(t *testing.T) {
	region := bytes.Join([][]byte{
		block([]byte("first")),
		block([]byte("second")),
		block([]byte("third")),
	}, nil)

	got := collect(region, 100)
	if len(got) != 3 {
		t.Fatalf("walked %d blocks; want 3", len(got))
	}
	for i, w := range got {
		if want := uint64(100 + i); w.seq != want {
			t.Errorf("block %d sequence = %d; want %d", i, w.seq, want)
		}
	}
	if string(got[2].record) != "third" {
		t.Errorf("block 2 record = %q; want %q", got[2].record, "third")
	}
}

func TestWalkBlocks_ZeroLengthSentinel(t *testing.T) {
	region := bytes.Join([][]byte{
		block([]byte("before")),
		{0x00, 0x00},
		block([]byte("after the sentinel, never seen")),
	}, nil)

	got := collect(region, 7)
	if len(got) != 1 {
		t.Fatalf("walked %d blocks; want 1", len(got))
	}
	if string(got[0].record) != "before" {
		t.Errorf("record = %q; want %q", got[0].record, "before")
	}
}

func TestWalkBlocks_TruncatedRecordIsClamped(t *testing.T) {
	// Declares 32 bytes, region ends after 5.
	region := append([]byte{0x20, 0x00}, []byte("stub!")...)

	got := collect(region, 0)
	if len(got) != 1 {
		t.Fatalf("walked %d blocks; want 1", len(got))
	}
	if string(got[0].record) != "stub!" {
		t.Errorf("record = %q; want the available remainder %q", got[0].record, "stub!")
	}
}

func TestWalkBlocks_ShortRegions(t *testing.T) {
	tests := []struct {
		name   string
		region []byte
	}{
		{"empty", nil},
		{"single byte", []byte{0x05}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := collect(tt.region, 0); len(got) != 0 {
				t.Errorf("walked %d blocks; want 0", len(got))
			}
		})
	}
}

func TestWalkBlocks_ReturnsAttempted(t *testing.T) {
	region := bytes.Join([][]byte{
		block([]byte("one")),
		block([]byte("two")),
	}, nil)

	if got := WalkBlocks(region, 0, func(uint64, []byte) {}); got != 2 {
		t.Errorf("WalkBlocks returned %d; want 2", got)
	}
}
