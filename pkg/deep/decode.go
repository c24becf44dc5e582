package deep

import (
	"errors"
	"fmt"

	"github.com/peter-kozarec/deeptick/pkg/wire"
)

// Message type bytes as they appear on the wire.
const (
	TypeSystemEvent        = 'S'
	TypeSecurityDirectory  = 'D'
	TypeTradingStatus      = 'H'
	TypeOperationalHalt    = 'O'
	TypeShortSalePriceTest = 'P'
	TypeSecurityEvent      = 'E'
	TypePriceLevelBuy      = '8'
	TypePriceLevelSell     = '5'
	TypeTradeReport        = 'T'
	TypeOfficialPrice      = 'X'
	TypeTradeBreak         = 'B'
	TypeAuctionInformation = 'A'
)

var (
	ErrRecordTooShort  = errors.New("record too short")
	ErrUnknownType     = errors.New("unknown message type")
	ErrUnknownSubtype  = errors.New("unknown message subtype")
	ErrUnknownCode     = errors.New("unknown field code")
	ErrUnsupportedType = errors.New("unsupported message type")
)

// Fixed extents of each variant's field region, measured from the start of
// the record. Trade Report and Trade Break are the only variants whose
// trailing field reaches past the common price/size prefix, so theirs is the
// length a malformed capture actually trips over.
const (
	commonPrefixSize  = 10 // type, subtype, timestamp
	tradeRecordSize   = 38
	directorySize     = 31
	tradingStatusSize = 22
	haltSize          = 18
	shortSaleSize     = 19
	securityEventSize = 18
	priceLevelSize    = 30
	officialPriceSize = 26
)

// DecodeMessage decodes one message record as produced by the segmenter.
// Every failure is a typed error; none of them is fatal to a run. The record
// begins with the common prefix (type byte, subtype byte, 64-bit nanosecond
// timestamp) and all type-specific fields sit at fixed offsets from the
// start of the record.
func DecodeMessage(record []byte, packetIndex, sequenceNumber uint64) (Message, error) {
	if len(record) < commonPrefixSize {
		return Message{}, fmt.Errorf("%w: have %d bytes, need %d for the common prefix",
			ErrRecordTooShort, len(record), commonPrefixSize)
	}

	msg := Message{
		Type:           record[0],
		Subtype:        record[1],
		Timestamp:      wire.Uint64(record, 2),
		PacketIndex:    packetIndex,
		SequenceNumber: sequenceNumber,
	}

	var err error
	switch msg.Type {
	case TypeSystemEvent:
		msg.Body, err = decodeSystemEvent(record)
	case TypeSecurityDirectory:
		msg.Body, err = decodeSecurityDirectory(record)
	case TypeTradingStatus:
		msg.Body, err = decodeTradingStatus(record)
	case TypeOperationalHalt:
		msg.Body, err = decodeOperationalHalt(record)
	case TypeShortSalePriceTest:
		msg.Body, err = decodeShortSalePriceTest(record)
	case TypeSecurityEvent:
		msg.Body, err = decodeSecurityEvent(record)
	case TypePriceLevelBuy, TypePriceLevelSell:
		msg.Body, err = decodePriceLevelUpdate(record)
	case TypeTradeReport:
		msg.Body, err = decodeTrade(record, false)
	case TypeOfficialPrice:
		msg.Body, err = decodeOfficialPrice(record)
	case TypeTradeBreak:
		msg.Body, err = decodeTrade(record, true)
	case TypeAuctionInformation:
		// The auction detail format is not decoded yet. Reject explicitly
		// rather than guess at the layout.
		err = fmt.Errorf("%w: auction information ('A')", ErrUnsupportedType)
	default:
		err = fmt.Errorf("%w: 0x%02x", ErrUnknownType, msg.Type)
	}
	if err != nil {
		return Message{}, err
	}
	return msg, nil
}

func decodeSystemEvent(record []byte) (Body, error) {
	event, ok := systemEventCode(record[1])
	if !ok {
		return nil, fmt.Errorf("%w: system event 0x%02x", ErrUnknownSubtype, record[1])
	}
	return SystemEvent{Event: event}, nil
}

func decodeSecurityDirectory(record []byte) (Body, error) {
	if len(record) < directorySize {
		return nil, fmt.Errorf("%w: have %d bytes, need %d", ErrRecordTooShort, len(record), directorySize)
	}
	// The subtype byte carries raw directory flags and is not validated.
	tier, ok := luldTier(record[30])
	if !ok {
		return nil, fmt.Errorf("%w: luld tier 0x%02x", ErrUnknownCode, record[30])
	}
	return SecurityDirectory{
		Symbol:           SymbolFromBytes(record[10:18]),
		Flags:            record[1],
		RoundLotSize:     wire.Uint32(record, 18),
		AdjustedPOCPrice: wire.Uint64(record, 22),
		LULDTier:         tier,
	}, nil
}

func decodeTradingStatus(record []byte) (Body, error) {
	if len(record) < tradingStatusSize {
		return nil, fmt.Errorf("%w: have %d bytes, need %d", ErrRecordTooShort, len(record), tradingStatusSize)
	}
	status, ok := tradingStatusCode(record[1])
	if !ok {
		return nil, fmt.Errorf("%w: trading status 0x%02x", ErrUnknownSubtype, record[1])
	}
	var reason Reason
	copy(reason[:], record[18:22])
	return TradingStatus{
		Symbol: SymbolFromBytes(record[10:18]),
		Status: status,
		Reason: reason,
	}, nil
}

func decodeOperationalHalt(record []byte) (Body, error) {
	if len(record) < haltSize {
		return nil, fmt.Errorf("%w: have %d bytes, need %d", ErrRecordTooShort, len(record), haltSize)
	}
	status, ok := operationalHaltCode(record[1])
	if !ok {
		return nil, fmt.Errorf("%w: operational halt status 0x%02x", ErrUnknownSubtype, record[1])
	}
	return OperationalHalt{
		Symbol: SymbolFromBytes(record[10:18]),
		Status: status,
	}, nil
}

func decodeShortSalePriceTest(record []byte) (Body, error) {
	if len(record) < shortSaleSize {
		return nil, fmt.Errorf("%w: have %d bytes, need %d", ErrRecordTooShort, len(record), shortSaleSize)
	}
	status, ok := shortSaleTestCode(record[1])
	if !ok {
		return nil, fmt.Errorf("%w: short sale test status 0x%02x", ErrUnknownSubtype, record[1])
	}
	detail, ok := shortSaleDetailCode(record[18])
	if !ok {
		return nil, fmt.Errorf("%w: short sale detail 0x%02x", ErrUnknownCode, record[18])
	}
	return ShortSalePriceTest{
		Symbol: SymbolFromBytes(record[10:18]),
		Status: status,
		Detail: detail,
	}, nil
}

func decodeSecurityEvent(record []byte) (Body, error) {
	if len(record) < securityEventSize {
		return nil, fmt.Errorf("%w: have %d bytes, need %d", ErrRecordTooShort, len(record), securityEventSize)
	}
	event, ok := securityEventCode(record[1])
	if !ok {
		return nil, fmt.Errorf("%w: security event 0x%02x", ErrUnknownSubtype, record[1])
	}
	return SecurityEvent{
		Symbol: SymbolFromBytes(record[10:18]),
		Event:  event,
	}, nil
}

func decodePriceLevelUpdate(record []byte) (Body, error) {
	if len(record) < priceLevelSize {
		return nil, fmt.Errorf("%w: have %d bytes, need %d", ErrRecordTooShort, len(record), priceLevelSize)
	}
	flags, ok := priceLevelFlags(record[1])
	if !ok {
		return nil, fmt.Errorf("%w: price level event flags 0x%02x", ErrUnknownSubtype, record[1])
	}
	return PriceLevelUpdate{
		Symbol: SymbolFromBytes(record[10:18]),
		Size:   wire.Uint32(record, 18),
		Price:  wire.Uint64(record, 22),
		Flags:  flags,
	}, nil
}

func decodeOfficialPrice(record []byte) (Body, error) {
	if len(record) < officialPriceSize {
		return nil, fmt.Errorf("%w: have %d bytes, need %d", ErrRecordTooShort, len(record), officialPriceSize)
	}
	priceType, ok := priceTypeCode(record[1])
	if !ok {
		return nil, fmt.Errorf("%w: official price type 0x%02x", ErrUnknownSubtype, record[1])
	}
	return OfficialPrice{
		Symbol:        SymbolFromBytes(record[10:18]),
		PriceType:     priceType,
		OfficialPrice: wire.Uint64(record, 18),
	}, nil
}

func decodeTrade(record []byte, isBreak bool) (Body, error) {
	// The subtype carries raw sale-condition flags; they are not mutually
	// exclusive, so there is no code set to validate against.
	if len(record) < tradeRecordSize {
		return nil, fmt.Errorf("%w: have %d bytes, need %d for a trade record",
			ErrRecordTooShort, len(record), tradeRecordSize)
	}
	symbol := SymbolFromBytes(record[10:18])
	size := wire.Uint32(record, 18)
	price := wire.Uint64(record, 22)
	tradeID := wire.Uint64(record, 30)
	if isBreak {
		return TradeBreak{
			Symbol:         symbol,
			Size:           size,
			Price:          price,
			TradeID:        tradeID,
			SaleConditions: record[1],
		}, nil
	}
	return TradeReport{
		Symbol:         symbol,
		Size:           size,
		Price:          price,
		TradeID:        tradeID,
		SaleConditions: record[1],
	}, nil
}
