package sharecode

import (
	"errors"
	"strings"
	"testing"

	"github.com/cs2cfg/crosshairctl/lib/crosshair"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// knownCode is the share code of the stock profile (crosshair.Default),
// verified against the external format byte for byte.
const knownCode = "CSGO-TAiA5-wLRjO-FeQ4z-bhdjA-Dq5uC"

func maxedProfile() crosshair.Profile {
	return crosshair.Profile{
		Style:             crosshair.StyleLegacy,
		Color:             crosshair.ColorCustom,
		Red:               255,
		Green:             255,
		Blue:              255,
		Alpha:             255,
		AlphaEnabled:      true,
		Size:              819.1,
		Thickness:         6.3,
		Gap:               12.7,
		FixedGap:          12.7,
		DeployedWeaponGap: true,
		OutlineEnabled:    true,
		OutlineThickness:  3.0,
		CenterDot:         true,
		TStyle:            true,
		FollowRecoil:      true,
		SplitDistance:     127,
		InnerSplitAlpha:   1.0,
		OuterSplitAlpha:   1.0,
		SplitSizeRatio:    1.0,
	}
}

func TestDecodeKnownCode(t *testing.T) {
	require := require.New(t)

	p, err := Decode(knownCode)
	require.NoError(err)
	require.Equal(crosshair.Default(), p)
}

func TestEncodeKnownProfile(t *testing.T) {
	code, err := Encode(crosshair.Default())
	require.NoError(t, err)
	assert.Equal(t, knownCode, code)
}

func TestDecodeEncodeByteIdentical(t *testing.T) {
	// Concrete codes with asymmetric field values so a packing-order bug
	// cannot cancel itself out.
	codes := []string{
		knownCode,
		"CSGO-7Xirj-p4GKV-KcfSu-yywy5-pkc7L", // every toggle on, every numeric field at max
		"CSGO-xrkrx-sNbwb-pemys-yXpRi-VyG8D", // negative gaps, custom color, dot only
	}
	for _, code := range codes {
		p, err := Decode(code)
		require.NoError(t, err, code)
		back, err := Encode(p)
		require.NoError(t, err, code)
		assert.Equal(t, code, back)
	}
}

func TestDecodeNegativeGapCode(t *testing.T) {
	require := require.New(t)

	p, err := Decode("CSGO-xrkrx-sNbwb-pemys-yXpRi-VyG8D")
	require.NoError(err)

	assert.Equal(t, crosshair.StyleClassic, p.Style)
	assert.Equal(t, crosshair.ColorCustom, p.Color)
	assert.Equal(t, uint8(50), p.Red)
	assert.Equal(t, uint8(250), p.Green)
	assert.Equal(t, uint8(50), p.Blue)
	assert.Equal(t, uint8(200), p.Alpha)
	assert.Equal(t, -12.8, p.Gap)
	assert.Equal(t, -4.5, p.FixedGap)
	assert.Equal(t, 0.5, p.OutlineThickness)
	assert.Equal(t, 1.2, p.Thickness)
	assert.Equal(t, 2.5, p.Size)
	assert.Equal(t, uint8(3), p.SplitDistance)
	assert.Equal(t, 0.6, p.InnerSplitAlpha)
	assert.Equal(t, 0.3, p.OuterSplitAlpha)
	assert.Equal(t, 0.2, p.SplitSizeRatio)
	assert.True(t, p.CenterDot)
	assert.False(t, p.OutlineEnabled)
	assert.False(t, p.AlphaEnabled)
	assert.False(t, p.TStyle)
	assert.False(t, p.FollowRecoil)
	assert.False(t, p.DeployedWeaponGap)
}

func TestRoundTripLaw(t *testing.T) {
	profiles := map[string]crosshair.Profile{
		"default": crosshair.Default(),
		"zero":    {AlphaEnabled: false},
		"maxed":   maxedProfile(),
		"negative_gaps": func() crosshair.Profile {
			p := crosshair.Default()
			p.Gap = -12.8
			p.FixedGap = -0.1
			return p
		}(),
		"mid": {
			Style:            crosshair.StyleClassicDynamic,
			Color:            crosshair.ColorYellow,
			Red:              128,
			Green:            64,
			Blue:             32,
			Alpha:            180,
			Size:             3.5,
			Thickness:        1.1,
			Gap:              -2.2,
			OutlineEnabled:   true,
			OutlineThickness: 1.5,
			SplitDistance:    7,
			InnerSplitAlpha:  0.4,
			OuterSplitAlpha:  0.7,
			SplitSizeRatio:   0.3,
		},
	}
	for name, p := range profiles {
		t.Run(name, func(t *testing.T) {
			code, err := Encode(p)
			require.NoError(t, err)
			back, err := Decode(code)
			require.NoError(t, err)
			assert.Equal(t, p, back)
		})
	}
}

func TestEncodeDeterministic(t *testing.T) {
	p := maxedProfile()
	first, err := Encode(p)
	require.NoError(t, err)
	second, err := Encode(p)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestDecodeMalformed(t *testing.T) {
	cases := map[string]string{
		"empty":               "",
		"truncated":           knownCode[:len(knownCode)-1],
		"extra_character":     knownCode + "A",
		"lowercase_prefix":    strings.Replace(knownCode, "CSGO", "csgo", 1),
		"missing_prefix":      strings.TrimPrefix(knownCode, "CSGO-"),
		"shifted_separator":   "CSGO-TAiA5w-LRjO-FeQ4z-bhdjA-Dq5uC",
		"missing_separator":   strings.Replace(knownCode, "-", "", 1),
		"too_many_groups":     knownCode + "-AAAAA",
		"payload_overflow":    "CSGO-99999-99999-99999-99999-99999",
	}
	for name, code := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Decode(code)
			if !errors.Is(err, ErrMalformedCode) {
				t.Errorf("Decode(%q) = %v, want ErrMalformedCode", code, err)
			}
		})
	}
}

func TestDecodeInvalidSymbol(t *testing.T) {
	// '0' and 'l' are outside the alphabet but look plausible.
	for _, code := range []string{
		strings.Replace(knownCode, "TAiA5", "TA0A5", 1),
		strings.Replace(knownCode, "wLRjO", "wlRjO", 1),
	} {
		_, err := Decode(code)
		if !errors.Is(err, ErrInvalidSymbol) {
			t.Errorf("Decode(%q) = %v, want ErrInvalidSymbol", code, err)
		}
	}
}

func TestDecodeChecksumMismatch(t *testing.T) {
	// The stock payload with its guard byte incremented by one.
	_, err := Decode("CSGO-RtNMn-UPqTd-K7xjv-2viHm-RPeyC")
	if !errors.Is(err, ErrChecksumMismatch) {
		t.Errorf("Decode = %v, want ErrChecksumMismatch", err)
	}
}

func TestDecodeInvalidFieldValue(t *testing.T) {
	cases := map[string]string{
		// Valid checksum, style field holds 7.
		"unknown_style": "CSGO-tSkWE-wirCw-fJjDY-376zn-cEbJD",
		// Valid checksum, outline thickness byte holds 200 (100.0).
		"outline_out_of_range": "CSGO-7NYUQ-r58ef-bk537-iivmz-apeOQ",
	}
	for name, code := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Decode(code)
			if !errors.Is(err, ErrInvalidFieldValue) {
				t.Errorf("Decode(%q) = %v, want ErrInvalidFieldValue", code, err)
			}
		})
	}
}

func TestEncodeRejectsOutOfRangeProfile(t *testing.T) {
	cases := map[string]func(*crosshair.Profile){
		"style":     func(p *crosshair.Profile) { p.Style = 6 },
		"color":     func(p *crosshair.Profile) { p.Color = 7 },
		"size":      func(p *crosshair.Profile) { p.Size = 820 },
		"thickness": func(p *crosshair.Profile) { p.Thickness = 6.4 },
		"gap_low":   func(p *crosshair.Profile) { p.Gap = -12.9 },
		"gap_high":  func(p *crosshair.Profile) { p.Gap = 12.8 },
		"split":     func(p *crosshair.Profile) { p.SplitDistance = 128 },
		"inner":     func(p *crosshair.Profile) { p.InnerSplitAlpha = 1.1 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			p := crosshair.Default()
			mutate(&p)
			_, err := Encode(p)
			if !errors.Is(err, ErrInvalidFieldValue) {
				t.Errorf("Encode = %v, want ErrInvalidFieldValue", err)
			}
		})
	}
}

// TestChecksumSensitivity flips every payload character of a valid code to
// every other alphabet symbol. Each mutation must either fail to decode or
// decode to a different profile; a silent false-accept of the original
// profile from a corrupted code would defeat the guard byte.
func TestChecksumSensitivity(t *testing.T) {
	original, err := Decode(knownCode)
	require.NoError(t, err)

	body := strings.ReplaceAll(strings.TrimPrefix(knownCode, "CSGO-"), "-", "")
	require.Len(t, body, payloadSymbols)

	rebuild := func(body string) string {
		groups := make([]string, 0, groupCount)
		for g := 0; g < groupCount; g++ {
			groups = append(groups, body[g*groupLength:(g+1)*groupLength])
		}
		return "CSGO-" + strings.Join(groups, "-")
	}

	rejected := 0
	for i := 0; i < payloadSymbols; i++ {
		for j := 0; j < Base; j++ {
			c := symbol(j)
			if body[i] == c {
				continue
			}
			mutated := rebuild(body[:i] + string(c) + body[i+1:])
			p, err := Decode(mutated)
			if err != nil {
				rejected++
				continue
			}
			assert.NotEqual(t, original, p, "mutation %q decoded to the original profile", mutated)
		}
	}
	// The checksum catches nearly every single-character typo; the rest
	// decode to visibly different profiles.
	assert.Greater(t, rejected, payloadSymbols*(Base-1)*9/10)
}
