package enums

import "fmt"

// OrderStatus is the lifecycle state of an order.
type OrderStatus uint8

const (
	Initialized     OrderStatus = 1
	Denied          OrderStatus = 2
	Submitted       OrderStatus = 3
	Accepted        OrderStatus = 4
	Rejected        OrderStatus = 5
	Canceled        OrderStatus = 6
	Expired         OrderStatus = 7
	Triggered       OrderStatus = 8
	PendingUpdate   OrderStatus = 9
	PendingCancel   OrderStatus = 10
	PartiallyFilled OrderStatus = 11
	Filled          OrderStatus = 12
)

var orderStatusNames = map[OrderStatus]string{
	Initialized:     "INITIALIZED",
	Denied:          "DENIED",
	Submitted:       "SUBMITTED",
	Accepted:        "ACCEPTED",
	Rejected:        "REJECTED",
	Canceled:        "CANCELED",
	Expired:         "EXPIRED",
	Triggered:       "TRIGGERED",
	PendingUpdate:   "PENDING_UPDATE",
	PendingCancel:   "PENDING_CANCEL",
	PartiallyFilled: "PARTIALLY_FILLED",
	Filled:          "FILLED",
}

var orderStatusValues = invert(orderStatusNames)

func (s OrderStatus) String() string { return orderStatusNames[s] }

func OrderStatusFromString(s string) (OrderStatus, error) {
	v, ok := orderStatusValues[s]
	if !ok {
		return 0, fmt.Errorf("unknown OrderStatus %q", s)
	}
	return v, nil
}

// OrderType is the execution type of an order.
type OrderType uint8

const (
	Market             OrderType = 1
	Limit              OrderType = 2
	StopMarket         OrderType = 3
	StopLimit          OrderType = 4
	MarketToLimit      OrderType = 5
	MarketIfTouched    OrderType = 6
	LimitIfTouched     OrderType = 7
	TrailingStopMarket OrderType = 8
	TrailingStopLimit  OrderType = 9
)

var orderTypeNames = map[OrderType]string{
	Market:             "MARKET",
	Limit:              "LIMIT",
	StopMarket:         "STOP_MARKET",
	StopLimit:          "STOP_LIMIT",
	MarketToLimit:      "MARKET_TO_LIMIT",
	MarketIfTouched:    "MARKET_IF_TOUCHED",
	LimitIfTouched:     "LIMIT_IF_TOUCHED",
	TrailingStopMarket: "TRAILING_STOP_MARKET",
	TrailingStopLimit:  "TRAILING_STOP_LIMIT",
}

var orderTypeValues = invert(orderTypeNames)

func (t OrderType) String() string { return orderTypeNames[t] }

func OrderTypeFromString(s string) (OrderType, error) {
	v, ok := orderTypeValues[s]
	if !ok {
		return 0, fmt.Errorf("unknown OrderType %q", s)
	}
	return v, nil
}

// TimeInForce is how long an order remains active.
type TimeInForce uint8

const (
	GTC        TimeInForce = 1
	IOC        TimeInForce = 2
	FOK        TimeInForce = 3
	GTD        TimeInForce = 4
	DayTIF     TimeInForce = 5
	AtTheOpen  TimeInForce = 6
	AtTheClose TimeInForce = 7
)

var timeInForceNames = map[TimeInForce]string{
	GTC:        "GTC",
	IOC:        "IOC",
	FOK:        "FOK",
	GTD:        "GTD",
	DayTIF:     "DAY",
	AtTheOpen:  "AT_THE_OPEN",
	AtTheClose: "AT_THE_CLOSE",
}

var timeInForceValues = invert(timeInForceNames)

func (t TimeInForce) String() string { return timeInForceNames[t] }

func TimeInForceFromString(s string) (TimeInForce, error) {
	v, ok := timeInForceValues[s]
	if !ok {
		return 0, fmt.Errorf("unknown TimeInForce %q", s)
	}
	return v, nil
}

// LiquiditySide records whether a fill made or took liquidity.
type LiquiditySide uint8

const (
	NoLiquiditySide LiquiditySide = 0
	Maker           LiquiditySide = 1
	Taker           LiquiditySide = 2
)

var liquiditySideNames = map[LiquiditySide]string{
	NoLiquiditySide: "NO_LIQUIDITY_SIDE",
	Maker:           "MAKER",
	Taker:           "TAKER",
}

var liquiditySideValues = invert(liquiditySideNames)

func (s LiquiditySide) String() string { return liquiditySideNames[s] }

func LiquiditySideFromString(s string) (LiquiditySide, error) {
	v, ok := liquiditySideValues[s]
	if !ok {
		return NoLiquiditySide, fmt.Errorf("unknown LiquiditySide %q", s)
	}
	return v, nil
}

// PositionSide is the direction of an open position.
type PositionSide uint8

const (
	NoPositionSide PositionSide = 0
	Flat           PositionSide = 1
	Long           PositionSide = 2
	Short          PositionSide = 3
)

var positionSideNames = map[PositionSide]string{
	NoPositionSide: "NO_POSITION_SIDE",
	Flat:           "FLAT",
	Long:           "LONG",
	Short:          "SHORT",
}

var positionSideValues = invert(positionSideNames)

func (s PositionSide) String() string { return positionSideNames[s] }

func PositionSideFromString(s string) (PositionSide, error) {
	v, ok := positionSideValues[s]
	if !ok {
		return NoPositionSide, fmt.Errorf("unknown PositionSide %q", s)
	}
	return v, nil
}

// ContingencyType links an order to a contingency group.
type ContingencyType uint8

const (
	NoContingency ContingencyType = 0
	OCO           ContingencyType = 1
	OTO           ContingencyType = 2
	OUO           ContingencyType = 3
)

var contingencyTypeNames = map[ContingencyType]string{
	NoContingency: "NO_CONTINGENCY",
	OCO:           "OCO",
	OTO:           "OTO",
	OUO:           "OUO",
}

var contingencyTypeValues = invert(contingencyTypeNames)

func (t ContingencyType) String() string { return contingencyTypeNames[t] }

func ContingencyTypeFromString(s string) (ContingencyType, error) {
	v, ok := contingencyTypeValues[s]
	if !ok {
		return NoContingency, fmt.Errorf("unknown ContingencyType %q", s)
	}
	return v, nil
}

// TriggerType selects the price source that arms a conditional order.
type TriggerType uint8

const (
	NoTrigger      TriggerType = 0
	DefaultTrigger TriggerType = 1
	BidAsk         TriggerType = 2
	LastTrade      TriggerType = 3
	DoubleLast     TriggerType = 4
	DoubleBidAsk   TriggerType = 5
	LastOrBidAsk   TriggerType = 6
	MidPoint       TriggerType = 7
	MarkPrice      TriggerType = 8
	IndexPrice     TriggerType = 9
)

var triggerTypeNames = map[TriggerType]string{
	NoTrigger:      "NO_TRIGGER",
	DefaultTrigger: "DEFAULT",
	BidAsk:         "BID_ASK",
	LastTrade:      "LAST_TRADE",
	DoubleLast:     "DOUBLE_LAST",
	DoubleBidAsk:   "DOUBLE_BID_ASK",
	LastOrBidAsk:   "LAST_OR_BID_ASK",
	MidPoint:       "MID_POINT",
	MarkPrice:      "MARK_PRICE",
	IndexPrice:     "INDEX_PRICE",
}

var triggerTypeValues = invert(triggerTypeNames)

func (t TriggerType) String() string { return triggerTypeNames[t] }

func TriggerTypeFromString(s string) (TriggerType, error) {
	v, ok := triggerTypeValues[s]
	if !ok {
		return NoTrigger, fmt.Errorf("unknown TriggerType %q", s)
	}
	return v, nil
}

// TrailingOffsetType is the unit of a trailing stop offset.
type TrailingOffsetType uint8

const (
	NoTrailingOffset TrailingOffsetType = 0
	PriceOffset      TrailingOffsetType = 1
	BasisPoints      TrailingOffsetType = 2
	Ticks            TrailingOffsetType = 3
	PriceTier        TrailingOffsetType = 4
)

var trailingOffsetTypeNames = map[TrailingOffsetType]string{
	NoTrailingOffset: "NO_TRAILING_OFFSET",
	PriceOffset:      "PRICE",
	BasisPoints:      "BASIS_POINTS",
	Ticks:            "TICKS",
	PriceTier:        "PRICE_TIER",
}

var trailingOffsetTypeValues = invert(trailingOffsetTypeNames)

func (t TrailingOffsetType) String() string { return trailingOffsetTypeNames[t] }

func TrailingOffsetTypeFromString(s string) (TrailingOffsetType, error) {
	v, ok := trailingOffsetTypeValues[s]
	if !ok {
		return NoTrailingOffset, fmt.Errorf("unknown TrailingOffsetType %q", s)
	}
	return v, nil
}
