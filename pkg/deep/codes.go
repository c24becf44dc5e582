package deep

// Enumerated field codes carried by DEEP messages. Each code set mirrors the
// exchange specification exactly; a byte outside the set rejects the whole
// record.

type SystemEventCode byte

const (
	SystemEventStartOfMessages     SystemEventCode = 'O'
	SystemEventStartOfSystemHours  SystemEventCode = 'S'
	SystemEventStartOfRegularHours SystemEventCode = 'R'
	SystemEventEndOfRegularHours   SystemEventCode = 'M'
	SystemEventEndOfSystemHours    SystemEventCode = 'E'
	SystemEventEndOfMessages       SystemEventCode = 'C'
)

func systemEventCode(b byte) (SystemEventCode, bool) {
	switch c := SystemEventCode(b); c {
	case SystemEventStartOfMessages, SystemEventStartOfSystemHours,
		SystemEventStartOfRegularHours, SystemEventEndOfRegularHours,
		SystemEventEndOfSystemHours, SystemEventEndOfMessages:
		return c, true
	}
	return 0, false
}

// LULDTier is the limit-up-limit-down price band classification from the
// Security Directory message.
type LULDTier byte

const (
	LULDTierNotApplicable LULDTier = 0x0
	LULDTier1NMSStock     LULDTier = 0x1
	LULDTier2NMSStock     LULDTier = 0x2
)

func luldTier(b byte) (LULDTier, bool) {
	switch t := LULDTier(b); t {
	case LULDTierNotApplicable, LULDTier1NMSStock, LULDTier2NMSStock:
		return t, true
	}
	return 0, false
}

type TradingStatusCode byte

const (
	TradingStatusHalted       TradingStatusCode = 'H'
	TradingStatusHaltReleased TradingStatusCode = 'O'
	TradingStatusPaused       TradingStatusCode = 'P'
	TradingStatusTrading      TradingStatusCode = 'T'
)

func tradingStatusCode(b byte) (TradingStatusCode, bool) {
	switch c := TradingStatusCode(b); c {
	case TradingStatusHalted, TradingStatusHaltReleased, TradingStatusPaused, TradingStatusTrading:
		return c, true
	}
	return 0, false
}

type OperationalHaltCode byte

const (
	OperationalHaltHalted    OperationalHaltCode = 'O'
	OperationalHaltNotHalted OperationalHaltCode = 'N'
)

func operationalHaltCode(b byte) (OperationalHaltCode, bool) {
	switch c := OperationalHaltCode(b); c {
	case OperationalHaltHalted, OperationalHaltNotHalted:
		return c, true
	}
	return 0, false
}

type ShortSaleTestCode byte

const (
	ShortSaleTestNotInEffect ShortSaleTestCode = 0x0
	ShortSaleTestInEffect    ShortSaleTestCode = 0x1
)

func shortSaleTestCode(b byte) (ShortSaleTestCode, bool) {
	switch c := ShortSaleTestCode(b); c {
	case ShortSaleTestNotInEffect, ShortSaleTestInEffect:
		return c, true
	}
	return 0, false
}

type ShortSaleDetailCode byte

const (
	ShortSaleDetailNone         ShortSaleDetailCode = ' '
	ShortSaleDetailActivated    ShortSaleDetailCode = 'A'
	ShortSaleDetailContinued    ShortSaleDetailCode = 'C'
	ShortSaleDetailDeactivated  ShortSaleDetailCode = 'D'
	ShortSaleDetailNotAvailable ShortSaleDetailCode = 'N'
)

func shortSaleDetailCode(b byte) (ShortSaleDetailCode, bool) {
	switch c := ShortSaleDetailCode(b); c {
	case ShortSaleDetailNone, ShortSaleDetailActivated, ShortSaleDetailContinued,
		ShortSaleDetailDeactivated, ShortSaleDetailNotAvailable:
		return c, true
	}
	return 0, false
}

type SecurityEventCode byte

const (
	SecurityEventOpeningComplete SecurityEventCode = 'O'
	SecurityEventClosingComplete SecurityEventCode = 'C'
)

func securityEventCode(b byte) (SecurityEventCode, bool) {
	switch c := SecurityEventCode(b); c {
	case SecurityEventOpeningComplete, SecurityEventClosingComplete:
		return c, true
	}
	return 0, false
}

type PriceLevelFlags byte

const (
	PriceLevelProcessingEvent PriceLevelFlags = 0x0
	PriceLevelEventComplete   PriceLevelFlags = 0x1
)

func priceLevelFlags(b byte) (PriceLevelFlags, bool) {
	switch f := PriceLevelFlags(b); f {
	case PriceLevelProcessingEvent, PriceLevelEventComplete:
		return f, true
	}
	return 0, false
}

type PriceTypeCode byte

const (
	PriceTypeOfficialOpening PriceTypeCode = 'Q'
	PriceTypeOfficialClosing PriceTypeCode = 'M'
)

func priceTypeCode(b byte) (PriceTypeCode, bool) {
	switch c := PriceTypeCode(b); c {
	case PriceTypeOfficialOpening, PriceTypeOfficialClosing:
		return c, true
	}
	return 0, false
}
