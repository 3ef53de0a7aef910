package domain

import "fmt"

// Action represents the direction of a proposed trade.
type Action int

const (
	ActionBuy Action = iota
	ActionSell
)

// action string constants to avoid magic strings
const (
	actionStringBuy  = "BUY"
	actionStringSell = "SELL"
)

// String returns the string representation of the action.
func (a Action) String() string {
	switch a {
	case ActionBuy:
		return actionStringBuy
	case ActionSell:
		return actionStringSell
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler so actions serialize
// losslessly in logs and JSON.
func (a Action) MarshalText() ([]byte, error) {
	switch a {
	case ActionBuy, ActionSell:
		return []byte(a.String()), nil
	}
	return nil, fmt.Errorf("invalid action: %d", int(a))
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Action) UnmarshalText(text []byte) error {
	switch string(text) {
	case actionStringBuy:
		*a = ActionBuy
	case actionStringSell:
		*a = ActionSell
	default:
		return fmt.Errorf("invalid action: %q", string(text))
	}
	return nil
}
