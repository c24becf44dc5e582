// Package pipeline drives the decoder: packets in capture order, messages in
// record order, ticks accumulated per symbol.
package pipeline

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/peter-kozarec/deeptick/pkg/capture"
	"github.com/peter-kozarec/deeptick/pkg/deep"
	"github.com/peter-kozarec/deeptick/pkg/iextp"
)

// PacketSource yields packets in capture order, io.EOF once exhausted.
type PacketSource interface {
	Next() (capture.Packet, error)
}

// Result holds everything a run accumulates. There is no shared state
// elsewhere; the single driving loop owns these maps and mutates them alone.
type Result struct {
	Packets  uint64
	Messages uint64
	Ticks    uint64

	// TypeCounts is a diagnostic histogram of decoded messages by type byte.
	TypeCounts map[byte]uint64

	// Symbols collects projected ticks under their grouping key, in decode
	// order per symbol.
	Symbols map[deep.Symbol][]deep.Tick
}

type Runner struct {
	logger     *zap.Logger
	multiplier deep.MultiplierFunc
}

func NewRunner(logger *zap.Logger, multiplier deep.MultiplierFunc) *Runner {
	return &Runner{
		logger:     logger,
		multiplier: multiplier,
	}
}

// Run drains the source. A header that is too short or fails protocol
// validation aborts the whole run; an individual record that fails to decode
// is logged and skipped without disturbing the sequence numbering of the
// records after it.
func (r *Runner) Run(source PacketSource) (*Result, error) {
	result := &Result{
		TypeCounts: make(map[byte]uint64),
		Symbols:    make(map[deep.Symbol][]deep.Tick),
	}

	for {
		packet, err := source.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if err := r.processPacket(packet, result); err != nil {
			return nil, err
		}
		result.Packets++
	}

	return result, nil
}

func (r *Runner) processPacket(packet capture.Packet, result *Result) error {
	header, err := iextp.DecodeHeader(packet.Payload)
	if err != nil {
		return fmt.Errorf("packet %d: %w", packet.Index, err)
	}
	if err := header.Validate(); err != nil {
		return fmt.Errorf("packet %d: %w", packet.Index, err)
	}

	region := packet.Payload[iextp.HeaderSize:]
	iextp.WalkBlocks(region, header.FirstSequenceNumber, func(seq uint64, record []byte) {
		message, err := deep.DecodeMessage(record, packet.Index, seq)
		if err != nil {
			r.logger.Warn("skipping undecodable message",
				zap.Uint64("packet", packet.Index),
				zap.Uint64("sequence", seq),
				zap.Int("record_bytes", len(record)),
				zap.Error(err))
			return
		}

		result.Messages++
		result.TypeCounts[message.Type]++

		if tick, symbol, ok := message.Tick(r.multiplier); ok {
			result.Symbols[symbol] = append(result.Symbols[symbol], tick)
			result.Ticks++
		}
	})

	return nil
}
