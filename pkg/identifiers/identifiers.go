package identifiers

import "fmt"

// Symbol is a venue-local ticker symbol. It may not contain '.' which is
// reserved as the InstrumentId separator.
type Symbol struct{ value string }

func NewSymbol(text string) (Symbol, error) {
	if err := checkNonEmpty("symbol", text); err != nil {
		return Symbol{}, err
	}
	if containsDot(text) {
		return Symbol{}, fmt.Errorf("%w: symbol %q contains '.'", ErrInvalidIdentifier, text)
	}
	return Symbol{value: intern(text)}, nil
}

func (s Symbol) String() string { return s.value }
func (s Symbol) IsZero() bool   { return s.value == "" }

// Venue identifies a trading venue or market operator.
type Venue struct{ value string }

func NewVenue(text string) (Venue, error) {
	if err := checkNonEmpty("venue", text); err != nil {
		return Venue{}, err
	}
	if containsDot(text) {
		return Venue{}, fmt.Errorf("%w: venue %q contains '.'", ErrInvalidIdentifier, text)
	}
	return Venue{value: intern(text)}, nil
}

func (v Venue) String() string { return v.value }
func (v Venue) IsZero() bool   { return v.value == "" }

func containsDot(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			return true
		}
	}
	return false
}

// InstrumentId is the composite of a Symbol and the Venue it trades on,
// with the textual form "SYMBOL.VENUE".
type InstrumentId struct {
	Symbol Symbol
	Venue  Venue
}

func NewInstrumentId(symbol Symbol, venue Venue) InstrumentId {
	return InstrumentId{Symbol: symbol, Venue: venue}
}

// InstrumentIdFromString parses "SYMBOL.VENUE", splitting on the last dot
// so symbols containing no dot compose with any venue.
func InstrumentIdFromString(text string) (InstrumentId, error) {
	if err := checkNonEmpty("instrument id", text); err != nil {
		return InstrumentId{}, err
	}
	i := lastDot(text)
	if i <= 0 || i == len(text)-1 {
		return InstrumentId{}, fmt.Errorf("%w: instrument id %q must have form SYMBOL.VENUE", ErrInvalidIdentifier, text)
	}
	symbol, err := NewSymbol(text[:i])
	if err != nil {
		return InstrumentId{}, err
	}
	venue, err := NewVenue(text[i+1:])
	if err != nil {
		return InstrumentId{}, err
	}
	return InstrumentId{Symbol: symbol, Venue: venue}, nil
}

func lastDot(s string) int {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == '.' {
			return i
		}
	}
	return -1
}

func (id InstrumentId) String() string { return id.Symbol.value + "." + id.Venue.value }
func (id InstrumentId) IsZero() bool   { return id.Symbol.IsZero() && id.Venue.IsZero() }

// TraderId identifies a trader within the system.
type TraderId struct{ value string }

func NewTraderId(text string) (TraderId, error) {
	if err := checkNonEmpty("trader id", text); err != nil {
		return TraderId{}, err
	}
	return TraderId{value: intern(text)}, nil
}

func (id TraderId) String() string { return id.value }

// StrategyId identifies a strategy instance.
type StrategyId struct{ value string }

func NewStrategyId(text string) (StrategyId, error) {
	if err := checkNonEmpty("strategy id", text); err != nil {
		return StrategyId{}, err
	}
	return StrategyId{value: intern(text)}, nil
}

func (id StrategyId) String() string { return id.value }

// ClientOrderId is the locally assigned order identifier.
type ClientOrderId struct{ value string }

func NewClientOrderId(text string) (ClientOrderId, error) {
	if err := checkNonEmpty("client order id", text); err != nil {
		return ClientOrderId{}, err
	}
	return ClientOrderId{value: intern(text)}, nil
}

func (id ClientOrderId) String() string { return id.value }

// VenueOrderId is the venue-assigned order identifier.
type VenueOrderId struct{ value string }

func NewVenueOrderId(text string) (VenueOrderId, error) {
	if err := checkNonEmpty("venue order id", text); err != nil {
		return VenueOrderId{}, err
	}
	return VenueOrderId{value: intern(text)}, nil
}

func (id VenueOrderId) String() string { return id.value }

// AccountId identifies an account with a venue or broker.
type AccountId struct{ value string }

func NewAccountId(text string) (AccountId, error) {
	if err := checkNonEmpty("account id", text); err != nil {
		return AccountId{}, err
	}
	return AccountId{value: intern(text)}, nil
}

func (id AccountId) String() string { return id.value }

// ClientId identifies a data or execution client.
type ClientId struct{ value string }

func NewClientId(text string) (ClientId, error) {
	if err := checkNonEmpty("client id", text); err != nil {
		return ClientId{}, err
	}
	return ClientId{value: intern(text)}, nil
}

func (id ClientId) String() string { return id.value }

// ComponentId identifies a system component.
type ComponentId struct{ value string }

func NewComponentId(text string) (ComponentId, error) {
	if err := checkNonEmpty("component id", text); err != nil {
		return ComponentId{}, err
	}
	return ComponentId{value: intern(text)}, nil
}

func (id ComponentId) String() string { return id.value }

// ExecAlgorithmId identifies an execution algorithm.
type ExecAlgorithmId struct{ value string }

func NewExecAlgorithmId(text string) (ExecAlgorithmId, error) {
	if err := checkNonEmpty("exec algorithm id", text); err != nil {
		return ExecAlgorithmId{}, err
	}
	return ExecAlgorithmId{value: intern(text)}, nil
}

func (id ExecAlgorithmId) String() string { return id.value }

// OrderListId identifies a list of related orders.
type OrderListId struct{ value string }

func NewOrderListId(text string) (OrderListId, error) {
	if err := checkNonEmpty("order list id", text); err != nil {
		return OrderListId{}, err
	}
	return OrderListId{value: intern(text)}, nil
}

func (id OrderListId) String() string { return id.value }

// PositionId identifies an open position.
type PositionId struct{ value string }

func NewPositionId(text string) (PositionId, error) {
	if err := checkNonEmpty("position id", text); err != nil {
		return PositionId{}, err
	}
	return PositionId{value: intern(text)}, nil
}

func (id PositionId) String() string { return id.value }

// TradeId is the venue-assigned identifier of a single trade.
type TradeId struct{ value string }

func NewTradeId(text string) (TradeId, error) {
	if err := checkNonEmpty("trade id", text); err != nil {
		return TradeId{}, err
	}
	return TradeId{value: intern(text)}, nil
}

func (id TradeId) String() string { return id.value }
