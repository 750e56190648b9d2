// Package sharecode implements the CS2 crosshair share-code codec: the
// bidirectional transform between the CSGO-xxxxx-xxxxx-xxxxx-xxxxx-xxxxx
// string form and a crosshair.Profile.
//
// A code is a base-57 rendering of a 18-byte payload. Byte 0 is a guard
// checksum over the rest, byte 1 a constant version tag, and bytes 2..17
// a packed field stream (see layout.go). The codec is stateless, pure and
// safe for concurrent use.
package sharecode

import (
	"math/big"
	"strings"

	"github.com/cs2cfg/crosshairctl/lib/crosshair"
	"github.com/samber/oops"
	"github.com/sirupsen/logrus"
)

const (
	// codePrefix is the literal, case-sensitive prefix of every code.
	codePrefix = "CSGO"

	// groupCount payload groups of groupLength symbols, hyphen separated.
	groupCount  = 5
	groupLength = 5

	// payloadSymbols is the fixed number of alphabet characters in a code.
	payloadSymbols = groupCount * groupLength

	// payloadLength is the decoded payload size in bytes. 57^25 slightly
	// exceeds 2^144, so a syntactically valid code can still overflow the
	// payload; Decode rejects that as malformed.
	payloadLength = 18

	// versionTag is the constant second payload byte written on encode.
	// Decode tolerates any value there, matching the game client.
	versionTag = 1
)

var (
	// ErrMalformedCode reports a code whose shape is wrong: prefix,
	// length, separator placement, or a payload overflowing 18 bytes.
	ErrMalformedCode = oops.Errorf("malformed share code")

	// ErrInvalidSymbol reports a payload character outside the alphabet.
	ErrInvalidSymbol = oops.Errorf("symbol outside share code alphabet")

	// ErrChecksumMismatch reports a guard byte that does not match the
	// payload, almost always a transcription typo.
	ErrChecksumMismatch = oops.Errorf("share code checksum mismatch")

	// ErrInvalidFieldValue mirrors the profile model's range error so
	// callers can match every codec failure in one package.
	ErrInvalidFieldValue = crosshair.ErrInvalidFieldValue
)

// checksum is the guard value for a payload: the low eight bits of the
// byte sum of everything after the guard byte itself.
func checksum(payload []byte) byte {
	var sum uint16
	for _, b := range payload[1:] {
		sum += uint16(b)
	}
	return byte(sum)
}

// splitCode validates the textual shape of a code and returns its 25
// payload characters. Shape violations are reported before any base
// conversion is attempted.
func splitCode(code string) (string, error) {
	parts := strings.Split(code, "-")
	if len(parts) != groupCount+1 || parts[0] != codePrefix {
		return "", oops.With("code", code).
			Wrapf(ErrMalformedCode, "expected %s followed by %d hyphenated groups", codePrefix, groupCount)
	}
	for i, part := range parts[1:] {
		if len(part) != groupLength {
			return "", oops.
				With("group", i+1).
				With("length", len(part)).
				Wrapf(ErrMalformedCode, "group %d has %d characters, want %d", i+1, len(part), groupLength)
		}
	}
	return strings.Join(parts[1:], ""), nil
}

// Decode parses a share code into a crosshair profile.
//
// Failures are typed: ErrMalformedCode for shape violations,
// ErrInvalidSymbol for foreign characters, ErrChecksumMismatch when the
// guard byte disagrees with the payload, and ErrInvalidFieldValue when a
// field unpacks outside its declared range. Values are never clamped.
func Decode(code string) (crosshair.Profile, error) {
	log.WithField("code", code).Debug("Decoding share code")

	chars, err := splitCode(code)
	if err != nil {
		return crosshair.Profile{}, err
	}

	// The format stores its least significant digit first; fold the
	// characters in reverse reading order.
	reversed := make([]byte, payloadSymbols)
	for i := 0; i < payloadSymbols; i++ {
		reversed[i] = chars[payloadSymbols-1-i]
	}
	num, err := digitsToInt(reversed)
	if err != nil {
		return crosshair.Profile{}, err
	}
	if num.BitLen() > payloadLength*8 {
		return crosshair.Profile{}, oops.With("bits", num.BitLen()).
			Wrapf(ErrMalformedCode, "payload exceeds %d bytes", payloadLength)
	}

	payload := make([]byte, payloadLength)
	num.FillBytes(payload)

	if want := checksum(payload); payload[0] != want {
		log.WithFields(logrus.Fields{
			"stored":   payload[0],
			"computed": want,
		}).Debug("Share code checksum mismatch")
		return crosshair.Profile{}, oops.
			With("stored", payload[0]).
			With("computed", want).
			Wrapf(ErrChecksumMismatch, "guard byte %#02x, computed %#02x", payload[0], want)
	}

	profile := unpackFields(payload[2:])
	if err := profile.Validate(); err != nil {
		return crosshair.Profile{}, err
	}

	log.WithFields(logrus.Fields{
		"style": profile.Style,
		"color": profile.Color,
	}).Debug("Share code decoded")
	return profile, nil
}

// Encode renders a profile as its share code. The same profile always
// yields the same string, and Decode(Encode(p)) == p for any valid p.
//
// Callers are expected to validate (or clamp) user input before encoding;
// an out-of-range profile here is a precondition violation and fails with
// ErrInvalidFieldValue rather than producing a corrupt code.
func Encode(p crosshair.Profile) (string, error) {
	if err := p.Validate(); err != nil {
		return "", err
	}

	payload := make([]byte, 0, payloadLength)
	payload = append(payload, 0, versionTag)
	payload = append(payload, packFields(p)...)
	payload[0] = checksum(payload)

	num := new(big.Int).SetBytes(payload)
	digits := intToDigits(num, payloadSymbols)

	var sb strings.Builder
	sb.Grow(len(codePrefix) + payloadSymbols + groupCount)
	sb.WriteString(codePrefix)
	for g := 0; g < groupCount; g++ {
		sb.WriteByte('-')
		sb.Write(digits[g*groupLength : (g+1)*groupLength])
	}

	code := sb.String()
	log.WithField("code", code).Debug("Share code encoded")
	return code, nil
}
