package tx

import "github.com/shopspring/decimal"

// Value is a multi-asset balance: asset unit identifier to quantity.
// A missing unit and a zero quantity are equivalent.
type Value map[string]decimal.Decimal

// NewValue creates a value holding a single asset quantity.
func NewValue(unit string, quantity decimal.Decimal) Value {
	return Value{unit: quantity}
}

// Quantity returns the balance of a unit, zero when absent.
func (v Value) Quantity(unit string) decimal.Decimal {
	if quantity, ok := v[unit]; ok {
		return quantity
	}

	return decimal.Zero
}

// Equal reports whether two values carry identical balances for every unit.
// Zero quantities are ignored on both sides, so {"x": 0} equals {}.
func (v Value) Equal(other Value) bool {
	for unit, quantity := range v {
		if !quantity.Equal(other.Quantity(unit)) {
			return false
		}
	}

	for unit, quantity := range other {
		if !quantity.Equal(v.Quantity(unit)) {
			return false
		}
	}

	return true
}

// Add returns a new value with the quantity added to the unit's balance.
// The receiver is not mutated.
func (v Value) Add(unit string, quantity decimal.Decimal) Value {
	result := v.Clone()
	if result == nil {
		result = Value{}
	}

	result[unit] = result.Quantity(unit).Add(quantity)

	return result
}

// Clone returns a deep copy of the value.
func (v Value) Clone() Value {
	if v == nil {
		return nil
	}

	cloned := make(Value, len(v))
	for unit, quantity := range v {
		cloned[unit] = quantity
	}

	return cloned
}
