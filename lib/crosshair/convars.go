package crosshair

import (
	"strconv"
)

// Console variable names for every profile attribute, in the order the
// game's config.cfg conventionally lists them.
const (
	ConVarGap              = "cl_crosshairgap"
	ConVarOutlineThickness = "cl_crosshair_outlinethickness"
	ConVarColorR           = "cl_crosshaircolor_r"
	ConVarColorG           = "cl_crosshaircolor_g"
	ConVarColorB           = "cl_crosshaircolor_b"
	ConVarAlpha            = "cl_crosshairalpha"
	ConVarSplitDistance    = "cl_crosshair_dynamic_splitdist"
	ConVarFollowRecoil     = "cl_crosshair_recoil"
	ConVarFixedGap         = "cl_fixedcrosshairgap"
	ConVarColor            = "cl_crosshaircolor"
	ConVarDrawOutline      = "cl_crosshair_drawoutline"
	ConVarInnerSplitAlpha  = "cl_crosshair_dynamic_splitalpha_innermod"
	ConVarOuterSplitAlpha  = "cl_crosshair_dynamic_splitalpha_outermod"
	ConVarSplitSizeRatio   = "cl_crosshair_dynamic_maxdist_splitratio"
	ConVarThickness        = "cl_crosshairthickness"
	ConVarStyle            = "cl_crosshairstyle"
	ConVarDot              = "cl_crosshairdot"
	ConVarWeaponGap        = "cl_crosshairgap_useweaponvalue"
	ConVarUseAlpha         = "cl_crosshairusealpha"
	ConVarTStyle           = "cl_crosshair_t"
	ConVarSize             = "cl_crosshairsize"
)

// ConVar is a single console variable assignment.
type ConVar struct {
	Name  string
	Value string
}

func boolVar(v bool) string {
	if v {
		return "true"
	}
	return "false"
}

func realVar(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// ConVars renders the profile as ordered cl_crosshair* assignments, the
// textual contract shared with the config file writer.
func (p Profile) ConVars() []ConVar {
	return []ConVar{
		{ConVarGap, realVar(p.Gap)},
		{ConVarOutlineThickness, realVar(p.OutlineThickness)},
		{ConVarColorR, strconv.Itoa(int(p.Red))},
		{ConVarColorG, strconv.Itoa(int(p.Green))},
		{ConVarColorB, strconv.Itoa(int(p.Blue))},
		{ConVarAlpha, strconv.Itoa(int(p.Alpha))},
		{ConVarSplitDistance, strconv.Itoa(int(p.SplitDistance))},
		{ConVarFollowRecoil, boolVar(p.FollowRecoil)},
		{ConVarFixedGap, realVar(p.FixedGap)},
		{ConVarColor, strconv.Itoa(int(p.Color))},
		{ConVarDrawOutline, boolVar(p.OutlineEnabled)},
		{ConVarInnerSplitAlpha, realVar(p.InnerSplitAlpha)},
		{ConVarOuterSplitAlpha, realVar(p.OuterSplitAlpha)},
		{ConVarSplitSizeRatio, realVar(p.SplitSizeRatio)},
		{ConVarThickness, realVar(p.Thickness)},
		{ConVarStyle, strconv.Itoa(int(p.Style))},
		{ConVarDot, boolVar(p.CenterDot)},
		{ConVarWeaponGap, boolVar(p.DeployedWeaponGap)},
		{ConVarUseAlpha, boolVar(p.AlphaEnabled)},
		{ConVarTStyle, boolVar(p.TStyle)},
		{ConVarSize, realVar(p.Size)},
	}
}
