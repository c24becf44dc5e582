// Package iextp implements the IEX-TP transport framing layer: the fixed
// 40-byte session header that precedes each packet's payload and the
// length-prefixed message blocks that follow it.
package iextp

import (
	"errors"
	"fmt"

	"go.uber.org/zap/zapcore"

	"github.com/peter-kozarec/deeptick/pkg/wire"
)

const (
	HeaderSize = 40

	Version1       = 0x01
	DeepProtocolID = 0x8004
)

var (
	ErrHeaderTooShort   = errors.New("transport header too short")
	ErrVersionMismatch  = errors.New("unsupported transport version")
	ErrProtocolMismatch = errors.New("unexpected message protocol id")
)

type Header struct {
	Version             byte
	Reserved            byte
	MessageProtocolID   uint16
	ChannelID           uint32
	SessionID           uint32
	PayloadLength       uint16
	MessageCount        uint16
	StreamOffset        uint64
	FirstSequenceNumber uint64
	SendTime            uint64 // Unix nanoseconds
}

// DecodeHeader reads the ten fixed-layout header fields from the first 40
// bytes of a packet's payload. It does not validate them and does not touch
// the message region, which begins at byte 40 of the same slice.
func DecodeHeader(payload []byte) (Header, error) {
	if len(payload) < HeaderSize {
		return Header{}, fmt.Errorf("%w: have %d bytes, need %d", ErrHeaderTooShort, len(payload), HeaderSize)
	}

	return Header{
		Version:             payload[0],
		Reserved:            payload[1],
		MessageProtocolID:   wire.Uint16(payload, 2),
		ChannelID:           wire.Uint32(payload, 4),
		SessionID:           wire.Uint32(payload, 8),
		PayloadLength:       wire.Uint16(payload, 12),
		MessageCount:        wire.Uint16(payload, 14),
		StreamOffset:        wire.Uint64(payload, 16),
		FirstSequenceNumber: wire.Uint64(payload, 24),
		SendTime:            wire.Uint64(payload, 32),
	}, nil
}

// Validate checks the fields a DEEP decoder depends on. A mismatch means the
// capture comes from a different protocol generation and nothing past the
// header can be interpreted safely.
func (h Header) Validate() error {
	if h.Version != Version1 {
		return fmt.Errorf("%w: 0x%02x", ErrVersionMismatch, h.Version)
	}
	if h.MessageProtocolID != DeepProtocolID {
		return fmt.Errorf("%w: 0x%04x", ErrProtocolMismatch, h.MessageProtocolID)
	}
	return nil
}

// AppendTo appends the 40-byte wire form of h to dst.
func (h Header) AppendTo(dst []byte) []byte {
	var buf [HeaderSize]byte
	buf[0] = h.Version
	buf[1] = h.Reserved
	wire.PutUint16(buf[:], 2, h.MessageProtocolID)
	wire.PutUint32(buf[:], 4, h.ChannelID)
	wire.PutUint32(buf[:], 8, h.SessionID)
	wire.PutUint16(buf[:], 12, h.PayloadLength)
	wire.PutUint16(buf[:], 14, h.MessageCount)
	wire.PutUint64(buf[:], 16, h.StreamOffset)
	wire.PutUint64(buf[:], 24, h.FirstSequenceNumber)
	wire.PutUint64(buf[:], 32, h.SendTime)
	return append(dst, buf[:]...)
}

func (h Header) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddUint8("version", h.Version)
	enc.AddUint16("message_protocol_id", h.MessageProtocolID)
	enc.AddUint32("channel_id", h.ChannelID)
	enc.AddUint32("session_id", h.SessionID)
	enc.AddUint16("payload_length", h.PayloadLength)
	enc.AddUint16("message_count", h.MessageCount)
	enc.AddUint64("stream_offset", h.StreamOffset)
	enc.AddUint64("first_sequence_number", h.FirstSequenceNumber)
	enc.AddUint64("send_time", h.SendTime)
	return nil
}
