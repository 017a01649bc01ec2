package theme

// defaultSemanticMappings is the mapping table stamped into generated
// themes. Tokens reference generic class names (Primary, Syntax, ...)
// that the color_classes table redirects to the actual palette names.
// Editor tokens past the chrome colors carry font styling: keywords and
// magics render bold, comments and instances italic.
func defaultSemanticMappings() map[string]map[string]MappingValue {
	return map[string]map[string]MappingValue{
		VariantDark: {
			"COLOR_BACKGROUND_1": Reference("Primary.B10"),
			"COLOR_BACKGROUND_2": Reference("Primary.B20"),
			"COLOR_BACKGROUND_3": Reference("Primary.B30"),
			"COLOR_BACKGROUND_4": Reference("Primary.B40"),
			"COLOR_BACKGROUND_5": Reference("Primary.B50"),
			"COLOR_BACKGROUND_6": Reference("Primary.B60"),

			"COLOR_TEXT_1": Reference("Primary.B130"),
			"COLOR_TEXT_2": Reference("Primary.B120"),
			"COLOR_TEXT_3": Reference("Primary.B110"),
			"COLOR_TEXT_4": Reference("Primary.B100"),

			"COLOR_ACCENT_1": Reference("Secondary.B10"),
			"COLOR_ACCENT_2": Reference("Secondary.B20"),
			"COLOR_ACCENT_3": Reference("Secondary.B30"),
			"COLOR_ACCENT_4": Reference("Secondary.B40"),
			"COLOR_ACCENT_5": Reference("Secondary.B50"),

			"COLOR_DISABLED": Reference("Primary.B70"),

			"COLOR_SUCCESS_1": Reference("Success.B40"),
			"COLOR_SUCCESS_2": Reference("Success.B70"),
			"COLOR_SUCCESS_3": Reference("Success.B90"),

			"COLOR_ERROR_1": Reference("Error.B40"),
			"COLOR_ERROR_2": Reference("Error.B70"),
			"COLOR_ERROR_3": Reference("Error.B110"),

			"COLOR_WARN_1": Reference("Warning.B40"),
			"COLOR_WARN_2": Reference("Warning.B70"),
			"COLOR_WARN_3": Reference("Warning.B90"),
			"COLOR_WARN_4": Reference("Warning.B100"),

			"ICON_1": Reference("Primary.B140"),
			"ICON_2": Reference("Secondary.B80"),
			"ICON_3": Reference("Success.B80"),
			"ICON_4": Reference("Error.B70"),
			"ICON_5": Reference("Warning.B70"),
			"ICON_6": Reference("Primary.B30"),
			"ICON_7": Reference("GroupDark.B90"),

			"GROUP_1":  Reference("GroupDark.B10"),
			"GROUP_2":  Reference("GroupDark.B20"),
			"GROUP_3":  Reference("GroupDark.B30"),
			"GROUP_4":  Reference("GroupDark.B40"),
			"GROUP_5":  Reference("GroupDark.B50"),
			"GROUP_6":  Reference("GroupDark.B60"),
			"GROUP_7":  Reference("GroupDark.B70"),
			"GROUP_8":  Reference("GroupDark.B80"),
			"GROUP_9":  Reference("GroupDark.B90"),
			"GROUP_10": Reference("GroupDark.B100"),
			"GROUP_11": Reference("GroupDark.B110"),
			"GROUP_12": Reference("GroupDark.B120"),

			"COLOR_HIGHLIGHT_1": Reference("Secondary.B10"),
			"COLOR_HIGHLIGHT_2": Reference("Secondary.B20"),
			"COLOR_HIGHLIGHT_3": Reference("Secondary.B30"),
			"COLOR_HIGHLIGHT_4": Reference("Secondary.B50"),

			"COLOR_OCCURRENCE_1": Reference("Primary.B10"),
			"COLOR_OCCURRENCE_2": Reference("Primary.B20"),
			"COLOR_OCCURRENCE_3": Reference("Primary.B30"),
			"COLOR_OCCURRENCE_4": Reference("Primary.B50"),
			"COLOR_OCCURRENCE_5": Reference("Primary.B80"),

			"EDITOR_BACKGROUND":  Reference("Primary.B10"),
			"EDITOR_CURRENTLINE": Reference("Syntax.B10"),
			"EDITOR_CURRENTCELL": Reference("Syntax.B20"),
			"EDITOR_OCCURRENCE":  Reference("Syntax.B30"),
			"EDITOR_CTRLCLICK":   Reference("Syntax.B40"),
			"EDITOR_SIDEAREAS":   Reference("Syntax.B50"),
			"EDITOR_MATCHED_P":   Reference("Syntax.B60"),
			"EDITOR_UNMATCHED_P": Reference("Syntax.B70"),

			"EDITOR_NORMAL":     Formatted("Syntax.B80", false, false),
			"EDITOR_KEYWORD":    Formatted("Syntax.B90", true, false),
			"EDITOR_MAGIC":      Formatted("Syntax.B100", true, false),
			"EDITOR_BUILTIN":    Formatted("Syntax.B110", false, false),
			"EDITOR_DEFINITION": Formatted("Syntax.B120", false, false),
			"EDITOR_COMMENT":    Formatted("Syntax.B130", false, true),
			"EDITOR_STRING":     Formatted("Syntax.B140", false, false),
			"EDITOR_NUMBER":     Formatted("Syntax.B150", false, false),
			"EDITOR_INSTANCE":   Formatted("Syntax.B160", false, true),

			"PYTHON_LOGO_UP":         Reference("Logos.B10"),
			"PYTHON_LOGO_DOWN":       Reference("Logos.B20"),
			"SPYDER_LOGO_BACKGROUND": Reference("Logos.B30"),
			"SPYDER_LOGO_WEB":        Reference("Logos.B40"),
			"SPYDER_LOGO_SNAKE":      Reference("Logos.B50"),

			"SPECIAL_TABS_SEPARATOR": Reference("Primary.B70"),
			"SPECIAL_TABS_SELECTED":  Reference("Secondary.B20"),

			"COLOR_HEART": Reference("Secondary.B80"),

			"TIP_TITLE_COLOR":          Reference("Success.B80"),
			"TIP_CHAR_HIGHLIGHT_COLOR": Reference("Warning.B90"),

			"OPACITY_TOOLTIP": Number(230),
		},
		VariantLight: {
			"COLOR_BACKGROUND_1": Reference("Primary.B140"),
			"COLOR_BACKGROUND_2": Reference("Primary.B130"),
			"COLOR_BACKGROUND_3": Reference("Primary.B120"),
			"COLOR_BACKGROUND_4": Reference("Primary.B130"),
			"COLOR_BACKGROUND_5": Reference("Primary.B110"),
			"COLOR_BACKGROUND_6": Reference("Primary.B100"),

			"COLOR_TEXT_1": Reference("Primary.B20"),
			"COLOR_TEXT_2": Reference("Primary.B30"),
			"COLOR_TEXT_3": Reference("Primary.B40"),
			"COLOR_TEXT_4": Reference("Primary.B50"),

			"COLOR_ACCENT_1": Reference("Secondary.B140"),
			"COLOR_ACCENT_2": Reference("Secondary.B130"),
			"COLOR_ACCENT_3": Reference("Secondary.B120"),
			"COLOR_ACCENT_4": Reference("Secondary.B110"),
			"COLOR_ACCENT_5": Reference("Secondary.B100"),

			"COLOR_DISABLED": Reference("Primary.B80"),

			"COLOR_SUCCESS_1": Reference("Success.B110"),
			"COLOR_SUCCESS_2": Reference("Success.B80"),
			"COLOR_SUCCESS_3": Reference("Success.B60"),

			"COLOR_ERROR_1": Reference("Error.B110"),
			"COLOR_ERROR_2": Reference("Error.B80"),
			"COLOR_ERROR_3": Reference("Error.B40"),

			"COLOR_WARN_1": Reference("Warning.B110"),
			"COLOR_WARN_2": Reference("Warning.B80"),
			"COLOR_WARN_3": Reference("Warning.B60"),
			"COLOR_WARN_4": Reference("Warning.B50"),

			"ICON_1": Reference("Primary.B10"),
			"ICON_2": Reference("Secondary.B70"),
			"ICON_3": Reference("Success.B70"),
			"ICON_4": Reference("Error.B80"),
			"ICON_5": Reference("Warning.B80"),
			"ICON_6": Reference("Primary.B120"),
			"ICON_7": Reference("GroupLight.B90"),

			"GROUP_1":  Reference("GroupLight.B10"),
			"GROUP_2":  Reference("GroupLight.B20"),
			"GROUP_3":  Reference("GroupLight.B30"),
			"GROUP_4":  Reference("GroupLight.B40"),
			"GROUP_5":  Reference("GroupLight.B50"),
			"GROUP_6":  Reference("GroupLight.B60"),
			"GROUP_7":  Reference("GroupLight.B70"),
			"GROUP_8":  Reference("GroupLight.B80"),
			"GROUP_9":  Reference("GroupLight.B90"),
			"GROUP_10": Reference("GroupLight.B100"),
			"GROUP_11": Reference("GroupLight.B110"),
			"GROUP_12": Reference("GroupLight.B120"),

			"COLOR_HIGHLIGHT_1": Reference("Secondary.B140"),
			"COLOR_HIGHLIGHT_2": Reference("Secondary.B130"),
			"COLOR_HIGHLIGHT_3": Reference("Secondary.B120"),
			"COLOR_HIGHLIGHT_4": Reference("Secondary.B100"),

			"COLOR_OCCURRENCE_1": Reference("Primary.B140"),
			"COLOR_OCCURRENCE_2": Reference("Primary.B130"),
			"COLOR_OCCURRENCE_3": Reference("Primary.B120"),
			"COLOR_OCCURRENCE_4": Reference("Primary.B100"),
			"COLOR_OCCURRENCE_5": Reference("Primary.B70"),

			"EDITOR_BACKGROUND":  Reference("Primary.B140"),
			"EDITOR_CURRENTLINE": Reference("Syntax.B10"),
			"EDITOR_CURRENTCELL": Reference("Syntax.B20"),
			"EDITOR_OCCURRENCE":  Reference("Syntax.B30"),
			"EDITOR_CTRLCLICK":   Reference("Syntax.B40"),
			"EDITOR_SIDEAREAS":   Reference("Syntax.B50"),
			"EDITOR_MATCHED_P":   Reference("Syntax.B60"),
			"EDITOR_UNMATCHED_P": Reference("Syntax.B70"),

			"EDITOR_NORMAL":     Formatted("Syntax.B80", false, false),
			"EDITOR_KEYWORD":    Formatted("Syntax.B90", true, false),
			"EDITOR_MAGIC":      Formatted("Syntax.B100", true, false),
			"EDITOR_BUILTIN":    Formatted("Syntax.B110", false, false),
			"EDITOR_DEFINITION": Formatted("Syntax.B120", false, false),
			"EDITOR_COMMENT":    Formatted("Syntax.B130", false, true),
			"EDITOR_STRING":     Formatted("Syntax.B140", false, false),
			"EDITOR_NUMBER":     Formatted("Syntax.B150", false, false),
			"EDITOR_INSTANCE":   Formatted("Syntax.B160", false, true),

			"PYTHON_LOGO_UP":         Reference("Logos.B10"),
			"PYTHON_LOGO_DOWN":       Reference("Logos.B20"),
			"SPYDER_LOGO_BACKGROUND": Reference("Logos.B30"),
			"SPYDER_LOGO_WEB":        Reference("Logos.B40"),
			"SPYDER_LOGO_SNAKE":      Reference("Logos.B50"),

			"SPECIAL_TABS_SEPARATOR": Reference("Primary.B80"),
			"SPECIAL_TABS_SELECTED":  Reference("Secondary.B130"),

			"COLOR_HEART": Reference("Error.B70"),

			"TIP_TITLE_COLOR":          Reference("Success.B30"),
			"TIP_CHAR_HIGHLIGHT_COLOR": Reference("Warning.B40"),

			"OPACITY_TOOLTIP": Number(230),
		},
	}
}
