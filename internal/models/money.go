package models

import (
	"fmt"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Money is an exact-decimal currency amount. Rental rates and booking costs
// must never pass through binary floating point; Money keeps them as decimals
// in memory and as Decimal128 in Mongo.
type Money struct {
	decimal.Decimal
}

func NewMoney(d decimal.Decimal) Money {
	return Money{Decimal: d}
}

func NewMoneyFromString(value string) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, fmt.Errorf("invalid money amount %q: %w", value, err)
	}
	return Money{Decimal: d}, nil
}

func ZeroMoney() Money {
	return Money{Decimal: decimal.Zero}
}

// MinorUnits returns the amount in cents, as payment processors expect.
func (m Money) MinorUnits() int64 {
	return m.Decimal.Shift(2).Round(0).IntPart()
}

func (m Money) Equal(other Money) bool {
	return m.Decimal.Equal(other.Decimal)
}

func (m Money) IsZero() bool {
	return m.Decimal.IsZero()
}

func (m Money) MulInt(n int64) Money {
	return Money{Decimal: m.Decimal.Mul(decimal.NewFromInt(n))}
}

func (m Money) MarshalBSONValue() (bsontype.Type, []byte, error) {
	d128, err := primitive.ParseDecimal128(m.Decimal.String())
	if err != nil {
		return 0, nil, fmt.Errorf("failed to encode money amount: %w", err)
	}
	return bson.MarshalValue(d128)
}

func (m *Money) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}

	var d128 primitive.Decimal128
	if err := raw.Unmarshal(&d128); err != nil {
		return fmt.Errorf("failed to decode money amount: %w", err)
	}

	d, err := decimal.NewFromString(d128.String())
	if err != nil {
		return fmt.Errorf("failed to parse money amount %q: %w", d128.String(), err)
	}

	m.Decimal = d
	return nil
}
