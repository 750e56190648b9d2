package sharecode

import (
	"math"

	"github.com/cs2cfg/crosshairctl/lib/crosshair"
	"github.com/cs2cfg/crosshairctl/lib/util"
)

// fieldStreamBits is the width of the packed field stream: the payload
// frame minus the guard and version bytes.
const fieldStreamBits = (payloadLength - 2) * 8

// fieldSpec describes one entry of the externally dictated bit layout:
// a name for diagnostics, a width in bits, and the transforms between the
// raw field integer and the profile attribute. Pad fields have no
// transforms; they are written as zero and ignored on read.
type fieldSpec struct {
	name  string
	width int
	get   func(p *crosshair.Profile) uint64
	set   func(p *crosshair.Profile, raw uint64)
}

func boolField(name string, get func(p *crosshair.Profile) *bool) fieldSpec {
	return fieldSpec{
		name:  name,
		width: 1,
		get: func(p *crosshair.Profile) uint64 {
			if *get(p) {
				return 1
			}
			return 0
		},
		set: func(p *crosshair.Profile, raw uint64) {
			*get(p) = raw == 1
		},
	}
}

// tenths stores a non-negative real with one decimal of precision.
func tenthsField(name string, width int, get func(p *crosshair.Profile) *float64) fieldSpec {
	return fieldSpec{
		name:  name,
		width: width,
		get: func(p *crosshair.Profile) uint64 {
			return uint64(math.Round(*get(p) * 10))
		},
		set: func(p *crosshair.Profile, raw uint64) {
			*get(p) = float64(raw) / 10
		},
	}
}

// signedTenths stores a real in [-12.8, 12.7] as a two's-complement byte
// of tenths.
func signedTenthsField(name string, get func(p *crosshair.Profile) *float64) fieldSpec {
	return fieldSpec{
		name:  name,
		width: 8,
		get: func(p *crosshair.Profile) uint64 {
			return uint64(uint8(int8(math.Round(*get(p) * 10))))
		},
		set: func(p *crosshair.Profile, raw uint64) {
			*get(p) = float64(int8(uint8(raw))) / 10
		},
	}
}

func padField(width int) fieldSpec {
	return fieldSpec{name: "pad", width: width}
}

// fieldLayout is the authoritative packing order of the share-code field
// stream. Bits are consumed least significant first within each byte; a
// field may span a byte boundary (the 13-bit size does). The order is
// fixed by the external format and must never be rearranged.
var fieldLayout = []fieldSpec{
	signedTenthsField("gap", func(p *crosshair.Profile) *float64 { return &p.Gap }),
	{
		name:  "outline_thickness",
		width: 8,
		get: func(p *crosshair.Profile) uint64 {
			// Half-unit precision, unlike every other real field.
			return uint64(math.Round(p.OutlineThickness * 2))
		},
		set: func(p *crosshair.Profile, raw uint64) {
			p.OutlineThickness = float64(raw) / 2
		},
	},
	{
		name: "red", width: 8,
		get: func(p *crosshair.Profile) uint64 { return uint64(p.Red) },
		set: func(p *crosshair.Profile, raw uint64) { p.Red = uint8(raw) },
	},
	{
		name: "green", width: 8,
		get: func(p *crosshair.Profile) uint64 { return uint64(p.Green) },
		set: func(p *crosshair.Profile, raw uint64) { p.Green = uint8(raw) },
	},
	{
		name: "blue", width: 8,
		get: func(p *crosshair.Profile) uint64 { return uint64(p.Blue) },
		set: func(p *crosshair.Profile, raw uint64) { p.Blue = uint8(raw) },
	},
	{
		name: "alpha", width: 8,
		get: func(p *crosshair.Profile) uint64 { return uint64(p.Alpha) },
		set: func(p *crosshair.Profile, raw uint64) { p.Alpha = uint8(raw) },
	},
	{
		name: "split_distance", width: 7,
		get: func(p *crosshair.Profile) uint64 { return uint64(p.SplitDistance) },
		set: func(p *crosshair.Profile, raw uint64) { p.SplitDistance = uint8(raw) },
	},
	boolField("follow_recoil", func(p *crosshair.Profile) *bool { return &p.FollowRecoil }),
	signedTenthsField("fixed_gap", func(p *crosshair.Profile) *float64 { return &p.FixedGap }),
	{
		name: "color", width: 3,
		get: func(p *crosshair.Profile) uint64 { return uint64(p.Color) },
		set: func(p *crosshair.Profile, raw uint64) { p.Color = crosshair.Color(raw) },
	},
	boolField("outline_enabled", func(p *crosshair.Profile) *bool { return &p.OutlineEnabled }),
	tenthsField("inner_split_alpha", 4, func(p *crosshair.Profile) *float64 { return &p.InnerSplitAlpha }),
	tenthsField("outer_split_alpha", 4, func(p *crosshair.Profile) *float64 { return &p.OuterSplitAlpha }),
	tenthsField("split_size_ratio", 4, func(p *crosshair.Profile) *float64 { return &p.SplitSizeRatio }),
	tenthsField("thickness", 8, func(p *crosshair.Profile) *float64 { return &p.Thickness }),
	padField(1),
	{
		name: "style", width: 3,
		get: func(p *crosshair.Profile) uint64 { return uint64(p.Style) },
		set: func(p *crosshair.Profile, raw uint64) { p.Style = crosshair.Style(raw) },
	},
	boolField("center_dot", func(p *crosshair.Profile) *bool { return &p.CenterDot }),
	boolField("deployed_weapon_gap", func(p *crosshair.Profile) *bool { return &p.DeployedWeaponGap }),
	boolField("alpha_enabled", func(p *crosshair.Profile) *bool { return &p.AlphaEnabled }),
	boolField("t_style", func(p *crosshair.Profile) *bool { return &p.TStyle }),
	tenthsField("size", 13, func(p *crosshair.Profile) *float64 { return &p.Size }),
	padField(3),
	padField(16),
}

func init() {
	total := 0
	for _, f := range fieldLayout {
		total += f.width
	}
	if total != fieldStreamBits {
		util.Panicf("sharecode: field layout covers %d bits, want %d", total, fieldStreamBits)
	}
}

// packFields walks the layout table once, writing each attribute into the
// field stream at its fixed position.
func packFields(p crosshair.Profile) []byte {
	w := &bitWriter{buf: make([]byte, fieldStreamBits/8)}
	for _, f := range fieldLayout {
		if f.get == nil {
			w.write(0, f.width)
			continue
		}
		w.write(f.get(&p), f.width)
	}
	return w.buf
}

// unpackFields walks the layout table once over the field stream and
// rebuilds the profile. Range validation is the caller's step; this is
// purely the positional transform.
func unpackFields(stream []byte) crosshair.Profile {
	r := &bitReader{buf: stream}
	var p crosshair.Profile
	for _, f := range fieldLayout {
		raw := r.read(f.width)
		if f.set != nil {
			f.set(&p, raw)
		}
	}
	return p
}
