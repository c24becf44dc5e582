// Package deep decodes IEX DEEP market-data messages and projects the priced
// trading events among them into normalized ticks.
package deep

import "strings"

// Symbol is the fixed 8-byte instrument identifier, right-padded with
// spaces. It is compared and grouped as the exact byte sequence, padding
// included.
type Symbol [8]byte

func SymbolFromBytes(b []byte) Symbol {
	var s Symbol
	copy(s[:], b)
	return s
}

func (s Symbol) String() string { return string(s[:]) }

// Trimmed returns the symbol without its trailing space padding, for
// boundaries that key on the human-readable name.
func (s Symbol) Trimmed() string { return strings.TrimRight(string(s[:]), " ") }

// Reason is the 4-character halt reason code of the Trading Status message.
type Reason [4]byte

func (r Reason) String() string { return string(r[:]) }

// Message is one decoded DEEP message together with its provenance: the
// 0-based index of the packet it arrived in and the sequence number assigned
// to its record.
type Message struct {
	Type           byte
	Subtype        byte
	Timestamp      uint64 // Unix nanoseconds
	PacketIndex    uint64
	SequenceNumber uint64
	Body           Body
}

// Body is the closed set of message kinds. Only types in this package
// implement it.
type Body interface {
	isBody()
}

type SystemEvent struct {
	Event SystemEventCode
}

type SecurityDirectory struct {
	Symbol           Symbol
	Flags            byte
	RoundLotSize     uint32
	AdjustedPOCPrice uint64
	LULDTier         LULDTier
}

type TradingStatus struct {
	Symbol Symbol
	Status TradingStatusCode
	Reason Reason
}

type OperationalHalt struct {
	Symbol Symbol
	Status OperationalHaltCode
}

type ShortSalePriceTest struct {
	Symbol Symbol
	Status ShortSaleTestCode
	Detail ShortSaleDetailCode
}

type SecurityEvent struct {
	Symbol Symbol
	Event  SecurityEventCode
}

type PriceLevelUpdate struct {
	Symbol Symbol
	Size   uint32
	Price  uint64
	Flags  PriceLevelFlags
}

type TradeReport struct {
	Symbol         Symbol
	Size           uint32
	Price          uint64
	TradeID        uint64
	SaleConditions byte
}

type OfficialPrice struct {
	Symbol        Symbol
	PriceType     PriceTypeCode
	OfficialPrice uint64
}

// TradeBreak shares the Trade Report wire layout; it voids a previously
// reported trade identified by TradeID.
type TradeBreak struct {
	Symbol         Symbol
	Size           uint32
	Price          uint64
	TradeID        uint64
	SaleConditions byte
}

func (SystemEvent) isBody()        {}
func (SecurityDirectory) isBody()  {}
func (TradingStatus) isBody()      {}
func (OperationalHalt) isBody()    {}
func (ShortSalePriceTest) isBody() {}
func (SecurityEvent) isBody()      {}
func (PriceLevelUpdate) isBody()   {}
func (TradeReport) isBody()        {}
func (OfficialPrice) isBody()      {}
func (TradeBreak) isBody()         {}
