package domain

import (
	"fmt"
	"math"
	"strconv"
)

// Money is an amount in sen (1/100 MYR).
type Money int64

func FromRinggit(v float64) Money {
	return Money(math.Round(v * 100))
}

func (m Money) Ringgit() float64 {
	return float64(m) / 100
}

func (m Money) String() string {
	sign := ""
	v := int64(m)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Money) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("%w: invalid amount %q", ErrValidation, s)
	}
	*m = FromRinggit(v)
	return nil
}
