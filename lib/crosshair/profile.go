// Package crosshair defines the CS2 crosshair profile data model shared by
// the share-code codec, the profile library and the config writer.
package crosshair

import (
	"github.com/samber/oops"
)

// ErrInvalidFieldValue indicates a profile field outside its declared range
// or enum domain. Returned wrapped with the field name.
var ErrInvalidFieldValue = oops.Errorf("invalid field value")

// Style is the cl_crosshairstyle enumeration.
type Style uint8

const (
	StyleDefault Style = iota
	StyleDefaultStatic
	StyleClassic
	StyleClassicDynamic
	StyleClassicStatic
	StyleLegacy
)

// String returns the in-game name of the style.
func (s Style) String() string {
	switch s {
	case StyleDefault:
		return "default"
	case StyleDefaultStatic:
		return "default static"
	case StyleClassic:
		return "classic"
	case StyleClassicDynamic:
		return "classic dynamic"
	case StyleClassicStatic:
		return "classic static"
	case StyleLegacy:
		return "legacy"
	default:
		return "unknown"
	}
}

// Color is the cl_crosshaircolor preset. ColorCustom selects the explicit
// Red/Green/Blue channels.
type Color uint8

const (
	ColorRed Color = iota
	ColorGreen
	ColorYellow
	ColorBlue
	ColorCyan
	ColorCustom
)

func (c Color) String() string {
	switch c {
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorYellow:
		return "yellow"
	case ColorBlue:
		return "blue"
	case ColorCyan:
		return "cyan"
	case ColorCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// Profile is a flat, by-value record of every independently adjustable
// crosshair attribute. Fixed-point attributes (Size, Thickness, Gap,
// FixedGap, the split alpha mods) carry one decimal of precision; the
// outline thickness carries half-unit precision. Ranges are dictated by
// the share-code binary format and must not be widened.
type Profile struct {
	Style             Style   `json:"style" yaml:"style"`
	Color             Color   `json:"color" yaml:"color"`
	Red               uint8   `json:"red" yaml:"red"`
	Green             uint8   `json:"green" yaml:"green"`
	Blue              uint8   `json:"blue" yaml:"blue"`
	Alpha             uint8   `json:"alpha" yaml:"alpha"`
	AlphaEnabled      bool    `json:"alpha_enabled" yaml:"alpha_enabled"`
	Size              float64 `json:"size" yaml:"size"`
	Thickness         float64 `json:"thickness" yaml:"thickness"`
	Gap               float64 `json:"gap" yaml:"gap"`
	FixedGap          float64 `json:"fixed_gap" yaml:"fixed_gap"`
	DeployedWeaponGap bool    `json:"deployed_weapon_gap" yaml:"deployed_weapon_gap"`
	OutlineEnabled    bool    `json:"outline_enabled" yaml:"outline_enabled"`
	OutlineThickness  float64 `json:"outline_thickness" yaml:"outline_thickness"`
	CenterDot         bool    `json:"center_dot" yaml:"center_dot"`
	TStyle            bool    `json:"t_style" yaml:"t_style"`
	FollowRecoil      bool    `json:"follow_recoil" yaml:"follow_recoil"`
	SplitDistance     uint8   `json:"split_distance" yaml:"split_distance"`
	InnerSplitAlpha   float64 `json:"inner_split_alpha" yaml:"inner_split_alpha"`
	OuterSplitAlpha   float64 `json:"outer_split_alpha" yaml:"outer_split_alpha"`
	SplitSizeRatio    float64 `json:"split_size_ratio" yaml:"split_size_ratio"`
}

// Default returns the stock profile the editor starts from: a
// classic-static crosshair with the green color preset and an outline.
func Default() Profile {
	return Profile{
		Style:            StyleClassicStatic,
		Color:            ColorGreen,
		Red:              255,
		Green:            255,
		Blue:             255,
		Alpha:            255,
		AlphaEnabled:     true,
		Size:             5.0,
		Thickness:        0.5,
		Gap:              0.0,
		FixedGap:         0.0,
		OutlineEnabled:   true,
		OutlineThickness: 1.0,
		InnerSplitAlpha:  0.5,
		OuterSplitAlpha:  0.5,
		SplitSizeRatio:   0.5,
	}
}

func fieldErr(field string, value interface{}, bounds string) error {
	return oops.
		With("field", field).
		With("value", value).
		With("bounds", bounds).
		Wrapf(ErrInvalidFieldValue, "field %s out of range", field)
}

// Validate checks every field against the range dictated by the share-code
// format and returns an error naming the first offending field. Values are
// never clamped; a profile outside these bounds cannot be encoded.
func (p Profile) Validate() error {
	if p.Style > StyleLegacy {
		return fieldErr("style", p.Style, "0..5")
	}
	if p.Color > ColorCustom {
		return fieldErr("color", p.Color, "0..5")
	}
	if p.Size < 0 || p.Size > 819.1 {
		return fieldErr("size", p.Size, "0..819.1")
	}
	if p.Thickness < 0 || p.Thickness > 6.3 {
		return fieldErr("thickness", p.Thickness, "0..6.3")
	}
	if p.Gap < -12.8 || p.Gap > 12.7 {
		return fieldErr("gap", p.Gap, "-12.8..12.7")
	}
	if p.FixedGap < -12.8 || p.FixedGap > 12.7 {
		return fieldErr("fixed_gap", p.FixedGap, "-12.8..12.7")
	}
	if p.OutlineThickness < 0 || p.OutlineThickness > 3 {
		return fieldErr("outline_thickness", p.OutlineThickness, "0..3")
	}
	if p.SplitDistance > 127 {
		return fieldErr("split_distance", p.SplitDistance, "0..127")
	}
	if p.InnerSplitAlpha < 0 || p.InnerSplitAlpha > 1 {
		return fieldErr("inner_split_alpha", p.InnerSplitAlpha, "0..1")
	}
	if p.OuterSplitAlpha < 0 || p.OuterSplitAlpha > 1 {
		return fieldErr("outer_split_alpha", p.OuterSplitAlpha, "0..1")
	}
	if p.SplitSizeRatio < 0 || p.SplitSizeRatio > 1 {
		return fieldErr("split_size_ratio", p.SplitSizeRatio, "0..1")
	}
	return nil
}
