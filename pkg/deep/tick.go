package deep

import (
	"github.com/peter-kozarec/deeptick/pkg/utility/fixed"
)

// Tick is the normalized priced trading event. The symbol is deliberately
// absent: it is the key a tick is grouped under at the store boundary, not a
// per-record field.
type Tick struct {
	MessageType     byte
	MessageSubtype  byte
	Timestamp       uint64 // Unix nanoseconds
	Size            uint32
	Price           uint64
	PriceMultiplier uint64
	PacketIndex     uint64
	SequenceNumber  uint64
}

// MultiplierFunc resolves the price multiplier for a message timestamp. The
// multiplier converts the integer wire price into currency. Sessions may
// scale differently, so the lookup is injected rather than inlined.
type MultiplierFunc func(timestamp uint64) uint64

const DefaultPriceMultiplier = 10000

func ConstantMultiplier(uint64) uint64 {
	return DefaultPriceMultiplier
}

// Tick projects the message into a normalized tick keyed by its symbol.
// Only Trade Report and Price Level Update carry a tradable price and size;
// every other kind projects to nothing.
func (m Message) Tick(multiplier MultiplierFunc) (Tick, Symbol, bool) {
	var size uint32
	var price uint64
	var symbol Symbol

	switch body := m.Body.(type) {
	case TradeReport:
		symbol, size, price = body.Symbol, body.Size, body.Price
	case PriceLevelUpdate:
		symbol, size, price = body.Symbol, body.Size, body.Price
	default:
		return Tick{}, Symbol{}, false
	}

	return Tick{
		MessageType:     m.Type,
		MessageSubtype:  m.Subtype,
		Timestamp:       m.Timestamp,
		Size:            size,
		Price:           price,
		PriceMultiplier: multiplier(m.Timestamp),
		PacketIndex:     m.PacketIndex,
		SequenceNumber:  m.SequenceNumber,
	}, symbol, true
}

// DecimalPrice returns the tick price in currency, the integer wire price
// divided by the multiplier.
func (t Tick) DecimalPrice() fixed.Point {
	return fixed.FromUint64(t.Price, 0).Div(fixed.FromUint64(t.PriceMultiplier, 0))
}
