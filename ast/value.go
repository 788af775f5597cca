package ast

import (
	"strconv"
	"strings"
)

// ValueKind identifies the numeric type carried by a Value.
type ValueKind int

const (
	SingleFloatKind ValueKind = iota
	DoubleFloatKind
	LongKind
	UnsignedLongKind
	IntegerKind
	UnsignedIntegerKind
	ShortKind
	UnsignedShortKind
	ByteKind
	SignedByteKind
)

var valueKindNames = [...]string{
	SingleFloatKind:     "SingleFloat",
	DoubleFloatKind:     "DoubleFloat",
	LongKind:            "Long",
	UnsignedLongKind:    "UnsignedLong",
	IntegerKind:         "Integer",
	UnsignedIntegerKind: "UnsignedInteger",
	ShortKind:           "Short",
	UnsignedShortKind:   "UnsignedShort",
	ByteKind:            "Byte",
	SignedByteKind:      "SignedByte",
}

func (k ValueKind) String() string {
	if k >= 0 && int(k) < len(valueKindNames) {
		return valueKindNames[k]
	}
	return "ValueKind(" + strconv.Itoa(int(k)) + ")"
}

// Value is a typed numeric literal. The parser only builds Integer and
// SingleFloat; the other variants are the targets of a future literal suffix
// syntax (42u8, 3.0d).
type Value interface {
	Kind() ValueKind
	// String returns the literal in source form.
	String() string
}

type (
	SingleFloat     float32
	DoubleFloat     float64
	Long            int64
	UnsignedLong    uint64
	Integer         int32
	UnsignedInteger uint32
	Short           int16
	UnsignedShort   uint16
	Byte            uint8
	SignedByte      int8
)

func (SingleFloat) Kind() ValueKind     { return SingleFloatKind }
func (DoubleFloat) Kind() ValueKind     { return DoubleFloatKind }
func (Long) Kind() ValueKind            { return LongKind }
func (UnsignedLong) Kind() ValueKind    { return UnsignedLongKind }
func (Integer) Kind() ValueKind         { return IntegerKind }
func (UnsignedInteger) Kind() ValueKind { return UnsignedIntegerKind }
func (Short) Kind() ValueKind           { return ShortKind }
func (UnsignedShort) Kind() ValueKind   { return UnsignedShortKind }
func (Byte) Kind() ValueKind            { return ByteKind }
func (SignedByte) Kind() ValueKind      { return SignedByteKind }

func (v SingleFloat) String() string     { return formatFloat(float64(v), 32) }
func (v DoubleFloat) String() string     { return formatFloat(float64(v), 64) }
func (v Long) String() string            { return strconv.FormatInt(int64(v), 10) }
func (v UnsignedLong) String() string    { return strconv.FormatUint(uint64(v), 10) }
func (v Integer) String() string         { return strconv.FormatInt(int64(v), 10) }
func (v UnsignedInteger) String() string { return strconv.FormatUint(uint64(v), 10) }
func (v Short) String() string           { return strconv.FormatInt(int64(v), 10) }
func (v UnsignedShort) String() string   { return strconv.FormatUint(uint64(v), 10) }
func (v Byte) String() string            { return strconv.FormatUint(uint64(v), 10) }
func (v SignedByte) String() string      { return strconv.FormatInt(int64(v), 10) }

// formatFloat prints the shortest decimal that reads back to the same value.
// The result always contains a '.', so the lexer scans it as LiteralFloat.
func formatFloat(f float64, bitSize int) string {
	s := strconv.FormatFloat(f, 'f', -1, bitSize)
	if !strings.ContainsAny(s, ".IN") { // Inf and NaN have no decimal form
		s += ".0"
	}
	return s
}
