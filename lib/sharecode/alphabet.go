package sharecode

import (
	"math/big"

	"github.com/cs2cfg/crosshairctl/lib/util"
	"github.com/samber/oops"
)

// Alphabet is the fixed 57-symbol dictionary share codes are written in.
// Case sensitive; visually ambiguous characters (I, g, l, 0, 1) are absent.
const Alphabet = "ABCDEFGHJKLMNOPQRSTUVWXYZabcdefhijkmnopqrstuvwxyz23456789"

// Base is the radix of the share-code numeral system.
const Base = 57

// invalidDigit marks bytes outside the alphabet in the decode map.
const invalidDigit = 0xFF

var decodeMap [256]byte

func init() {
	if len(Alphabet) != Base {
		util.Panicf("sharecode: alphabet has %d symbols, want %d", len(Alphabet), Base)
	}
	for i := range decodeMap {
		decodeMap[i] = invalidDigit
	}
	for i := 0; i < len(Alphabet); i++ {
		decodeMap[Alphabet[i]] = byte(i)
	}
}

// digitValue returns the numeric value of an alphabet symbol.
func digitValue(c byte) (int, error) {
	d := decodeMap[c]
	if d == invalidDigit {
		return 0, oops.With("symbol", string(c)).
			Wrapf(ErrInvalidSymbol, "character %q is not a share code symbol", c)
	}
	return int(d), nil
}

// symbol returns the alphabet character for a digit in [0, Base). Callers
// never pass an out-of-range digit; doing so is a bug, not an input error.
func symbol(d int) byte {
	if d < 0 || d >= Base {
		util.Panicf("sharecode: digit %d outside alphabet", d)
	}
	return Alphabet[d]
}

// digitsToInt folds payload characters into the payload integer. The format
// stores its least significant digit first, so chars must be passed in
// reverse reading order: acc = acc*57 + digit for each.
func digitsToInt(chars []byte) (*big.Int, error) {
	num := new(big.Int)
	base := big.NewInt(Base)
	d := new(big.Int)
	for _, c := range chars {
		v, err := digitValue(c)
		if err != nil {
			return nil, err
		}
		num.Mul(num, base)
		num.Add(num, d.SetInt64(int64(v)))
	}
	return num, nil
}

// intToDigits renders the payload integer as exactly width characters in
// reading order (least significant digit first). High-order zero digits
// come out as the alphabet's zero symbol, so short payloads still fill the
// mandated width.
func intToDigits(num *big.Int, width int) []byte {
	n := new(big.Int).Set(num)
	base := big.NewInt(Base)
	rem := new(big.Int)
	out := make([]byte, 0, width)
	for i := 0; i < width; i++ {
		n.QuoRem(n, base, rem)
		out = append(out, symbol(int(rem.Int64())))
	}
	if n.Sign() != 0 {
		util.Panicf("sharecode: payload integer does not fit %d digits", width)
	}
	return out
}
