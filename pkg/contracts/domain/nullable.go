package domain

import "encoding/json"

// Nullable is a float64 that can be absent. It replaces the NaN-style
// sentinel approach: a missing value is represented structurally, never as a
// reserved numeric value that could collide with real data.
type Nullable struct {
	Float64 float64
	Valid   bool
}

// Num returns a valid Nullable holding v.
func Num(v float64) Nullable {
	return Nullable{Float64: v, Valid: true}
}

// Null returns the missing value.
func Null() Nullable {
	return Nullable{}
}

// Or returns the held value, or fallback when missing.
func (n Nullable) Or(fallback float64) float64 {
	if !n.Valid {
		return fallback
	}
	return n.Float64
}

// MarshalJSON renders missing values as JSON null.
func (n Nullable) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Float64)
}

// UnmarshalJSON accepts a number or null.
func (n *Nullable) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*n = Nullable{}
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*n = Num(v)
	return nil
}
