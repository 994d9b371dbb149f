package network

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/holiman/uint256"
)

var unitDecimals = map[string]int64{
	"wei":   0,
	"gwei":  9,
	"ether": 18,
}

// ParseGasPrice converts a decimal amount in unit ("wei", "gwei" or "ether") to wei.
func ParseGasPrice(amount, unit string) (*uint256.Int, error) {
	decimals, ok := unitDecimals[strings.ToLower(unit)]
	if !ok {
		return nil, fmt.Errorf("unknown gas price unit %q", unit)
	}

	r, ok := new(big.Rat).SetString(strings.TrimSpace(amount))
	if !ok {
		return nil, fmt.Errorf("invalid gas price amount %q", amount)
	}
	if r.Sign() < 0 {
		return nil, fmt.Errorf("gas price must not be negative, got %s %s", amount, unit)
	}

	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(decimals), nil)
	r.Mul(r, new(big.Rat).SetInt(scale))
	if !r.IsInt() {
		return nil, fmt.Errorf("gas price %s %s is not a whole number of wei", amount, unit)
	}

	wei, overflow := uint256.FromBig(r.Num())
	if overflow {
		return nil, fmt.Errorf("gas price %s %s overflows 256 bits", amount, unit)
	}
	return wei, nil
}

// ParseGasPriceString parses "<amount> <unit>", e.g. "1.5 gwei". A bare number is taken as wei.
func ParseGasPriceString(s string) (*uint256.Int, error) {
	fields := strings.Fields(s)
	switch len(fields) {
	case 1:
		return ParseGasPrice(fields[0], "wei")
	case 2:
		return ParseGasPrice(fields[0], fields[1])
	default:
		return nil, fmt.Errorf("invalid gas price %q, expected \"<amount> <unit>\"", s)
	}
}

// FormatGwei renders a wei amount in gwei without trailing zeros.
func FormatGwei(wei *uint256.Int) string {
	if wei == nil {
		return "auto"
	}
	gwei := new(big.Rat).SetFrac(wei.ToBig(), big.NewInt(1e9))
	s := strings.TrimRight(strings.TrimRight(gwei.FloatString(9), "0"), ".")
	return s + " gwei"
}
