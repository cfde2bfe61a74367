package enums

import "fmt"

// AssetClass is the broad category of an instrument's underlying.
type AssetClass uint8

const (
	FX             AssetClass = 1
	Equity         AssetClass = 2
	Commodity      AssetClass = 3
	Metal          AssetClass = 4
	Energy         AssetClass = 5
	Bond           AssetClass = 6
	Index          AssetClass = 7
	Cryptocurrency AssetClass = 8
	SportsBetting  AssetClass = 9
)

var assetClassNames = map[AssetClass]string{
	FX:             "FX",
	Equity:         "EQUITY",
	Commodity:      "COMMODITY",
	Metal:          "METAL",
	Energy:         "ENERGY",
	Bond:           "BOND",
	Index:          "INDEX",
	Cryptocurrency: "CRYPTOCURRENCY",
	SportsBetting:  "SPORTS_BETTING",
}

var assetClassValues = invert(assetClassNames)

func (c AssetClass) String() string { return assetClassNames[c] }

func AssetClassFromString(s string) (AssetClass, error) {
	v, ok := assetClassValues[s]
	if !ok {
		return 0, fmt.Errorf("unknown AssetClass %q", s)
	}
	return v, nil
}

// AssetType is the contract structure of an instrument.
type AssetType uint8

const (
	Spot    AssetType = 1
	Swap    AssetType = 2
	Future  AssetType = 3
	Forward AssetType = 4
	CFD     AssetType = 5
	Option  AssetType = 6
	Warrant AssetType = 7
)

var assetTypeNames = map[AssetType]string{
	Spot:    "SPOT",
	Swap:    "SWAP",
	Future:  "FUTURE",
	Forward: "FORWARD",
	CFD:     "CFD",
	Option:  "OPTION",
	Warrant: "WARRANT",
}

var assetTypeValues = invert(assetTypeNames)

func (t AssetType) String() string { return assetTypeNames[t] }

func AssetTypeFromString(s string) (AssetType, error) {
	v, ok := assetTypeValues[s]
	if !ok {
		return 0, fmt.Errorf("unknown AssetType %q", s)
	}
	return v, nil
}

// AccountType is the kind of account held with a venue or broker.
type AccountType uint8

const (
	Cash    AccountType = 1
	Margin  AccountType = 2
	Betting AccountType = 3
)

var accountTypeNames = map[AccountType]string{
	Cash:    "CASH",
	Margin:  "MARGIN",
	Betting: "BETTING",
}

var accountTypeValues = invert(accountTypeNames)

func (t AccountType) String() string { return accountTypeNames[t] }

func AccountTypeFromString(s string) (AccountType, error) {
	v, ok := accountTypeValues[s]
	if !ok {
		return 0, fmt.Errorf("unknown AccountType %q", s)
	}
	return v, nil
}

// OmsType is the order management convention for positions.
type OmsType uint8

const (
	Unspecified OmsType = 0
	Netting     OmsType = 1
	Hedging     OmsType = 2
)

var omsTypeNames = map[OmsType]string{
	Unspecified: "UNSPECIFIED",
	Netting:     "NETTING",
	Hedging:     "HEDGING",
}

var omsTypeValues = invert(omsTypeNames)

func (t OmsType) String() string { return omsTypeNames[t] }

func OmsTypeFromString(s string) (OmsType, error) {
	v, ok := omsTypeValues[s]
	if !ok {
		return Unspecified, fmt.Errorf("unknown OmsType %q", s)
	}
	return v, nil
}

// OptionKind is call or put.
type OptionKind uint8

const (
	Call OptionKind = 1
	Put  OptionKind = 2
)

var optionKindNames = map[OptionKind]string{
	Call: "CALL",
	Put:  "PUT",
}

var optionKindValues = invert(optionKindNames)

func (k OptionKind) String() string { return optionKindNames[k] }

func OptionKindFromString(s string) (OptionKind, error) {
	v, ok := optionKindValues[s]
	if !ok {
		return 0, fmt.Errorf("unknown OptionKind %q", s)
	}
	return v, nil
}

// TradingState gates what order flow a component accepts.
type TradingState uint8

const (
	Active   TradingState = 1
	Halted   TradingState = 2
	Reducing TradingState = 3
)

var tradingStateNames = map[TradingState]string{
	Active:   "ACTIVE",
	Halted:   "HALTED",
	Reducing: "REDUCING",
}

var tradingStateValues = invert(tradingStateNames)

func (s TradingState) String() string { return tradingStateNames[s] }

func TradingStateFromString(s string) (TradingState, error) {
	v, ok := tradingStateValues[s]
	if !ok {
		return 0, fmt.Errorf("unknown TradingState %q", s)
	}
	return v, nil
}

// InstrumentCloseType is why an instrument stopped trading.
type InstrumentCloseType uint8

const (
	EndOfSession    InstrumentCloseType = 1
	ContractExpired InstrumentCloseType = 2
)

var instrumentCloseTypeNames = map[InstrumentCloseType]string{
	EndOfSession:    "END_OF_SESSION",
	ContractExpired: "CONTRACT_EXPIRED",
}

var instrumentCloseTypeValues = invert(instrumentCloseTypeNames)

func (t InstrumentCloseType) String() string { return instrumentCloseTypeNames[t] }

func InstrumentCloseTypeFromString(s string) (InstrumentCloseType, error) {
	v, ok := instrumentCloseTypeValues[s]
	if !ok {
		return 0, fmt.Errorf("unknown InstrumentCloseType %q", s)
	}
	return v, nil
}
