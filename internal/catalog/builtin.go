package catalog

// Builtin returns the kitty.conf settings catalog.
//
// Numeric ids are part of the share link format: once shipped an id is
// never reused or reassigned. New settings take the next free id.
func Builtin() *Catalog {
	return builtin
}

var builtin = MustNew(builtinCategories()...)

func builtinCategories() []Category {
	return []Category{
		{
			ID:    "fonts",
			Title: "Fonts",
			Settings: []Setting{
				{
					Key:     "font_family",
					ID:      1,
					Label:   "Font family",
					Type:    TypeString,
					Default: "monospace",
				},
				{
					Key:     "font_size",
					ID:      2,
					Label:   "Font size",
					Type:    TypeFloat,
					Default: "11.0",
					Min:     MinValue(1),
					Max:     MaxValue(72),
					Step:    0.5,
				},
				{
					Key:     "bold_font",
					ID:      3,
					Label:   "Bold font",
					Type:    TypeString,
					Default: "auto",
				},
				{
					Key:     "italic_font",
					ID:      4,
					Label:   "Italic font",
					Type:    TypeString,
					Default: "auto",
				},
				{
					Key:     "bold_italic_font",
					ID:      5,
					Label:   "Bold italic font",
					Type:    TypeString,
					Default: "auto",
				},
				{
					Key:     "disable_ligatures",
					ID:      6,
					Label:   "Disable ligatures",
					Type:    TypeEnum,
					Default: "never",
					Options: []string{"never", "cursor", "always"},
				},
				{
					Key:         "force_ltr",
					ID:          7,
					Label:       "Force LTR",
					Type:        TypeBool,
					Default:     "no",
					Description: "Disable bidirectional text support",
				},
				{
					Key:         "font_features",
					ID:          8,
					Label:       "Font features",
					Type:        TypeString,
					Default:     "none",
					Description: "OpenType features to enable/disable",
				},
				{
					Key:     "undercurl_style",
					ID:      9,
					Label:   "Undercurl style",
					Type:    TypeEnum,
					Default: "thin-sparse",
					Options: []string{"thin-sparse", "thin-dense", "thick-sparse", "thick-dense"},
				},
			},
		},
		{
			ID:    "cursor",
			Title: "Cursor",
			Settings: []Setting{
				{
					Key:     "cursor_shape",
					ID:      10,
					Label:   "Shape",
					Type:    TypeEnum,
					Default: "block",
					Options: []string{"block", "beam", "underline"},
				},
				{
					Key:     "cursor_shape_unfocused",
					ID:      11,
					Label:   "Unfocused shape",
					Type:    TypeEnum,
					Default: "hollow",
					Options: []string{"block", "beam", "underline", "hollow", "unchanged"},
				},
				{
					Key:         "cursor_beam_thickness",
					ID:          12,
					Label:       "Beam thickness",
					Type:        TypeFloat,
					Default:     "1.5",
					Min:         MinValue(0.5),
					Step:        0.5,
					Description: "Points",
				},
				{
					Key:         "cursor_underline_thickness",
					ID:          13,
					Label:       "Underline thickness",
					Type:        TypeFloat,
					Default:     "2.0",
					Min:         MinValue(0.5),
					Step:        0.5,
					Description: "Points",
				},
				{
					Key:         "cursor_blink_interval",
					ID:          14,
					Label:       "Blink interval",
					Type:        TypeFloat,
					Default:     "-1",
					Step:        0.1,
					Description: "Seconds. 0 = no blink, negative = system default",
				},
				{
					Key:         "cursor_stop_blinking_after",
					ID:          15,
					Label:       "Stop blinking after",
					Type:        TypeFloat,
					Default:     "15.0",
					Min:         MinValue(0),
					Step:        1,
					Description: "Seconds of inactivity. 0 = never stop",
				},
				{
					Key:         "cursor_text_color",
					ID:          16,
					Label:       "Text color",
					Type:        TypeString,
					Default:     "#111111",
					Description: "Color of text under cursor. 'background' or hex",
				},
				{
					Key:         "cursor_trail",
					ID:          17,
					Label:       "Trail",
					Type:        TypeInt,
					Default:     "0",
					Min:         MinValue(0),
					Description: "Trail duration in ms. 0 = disabled",
				},
			},
		},
		{
			ID:    "scrollback",
			Title: "Scrollback",
			Settings: []Setting{
				{
					Key:     "scrollback_lines",
					ID:      18,
					Label:   "Lines",
					Type:    TypeInt,
					Default: "2000",
					Min:     MinValue(0),
				},
				{
					Key:         "scrollback_pager",
					ID:          19,
					Label:       "Pager",
					Type:        TypeString,
					Default:     "less --chop-long-lines --RAW-CONTROL-CHARS +INPUT_LINE_NUMBER",
					Description: "Program to view scrollback",
				},
				{
					Key:         "scrollback_pager_history_size",
					ID:          20,
					Label:       "Pager history size",
					Type:        TypeInt,
					Default:     "0",
					Min:         MinValue(0),
					Description: "MB. 0 = disabled",
				},
				{
					Key:         "scrollback_fill_enlarged_window",
					ID:          21,
					Label:       "Fill enlarged window",
					Type:        TypeBool,
					Default:     "no",
					Description: "Fill new space from scrollback after enlarging",
				},
				{
					Key:     "wheel_scroll_multiplier",
					ID:      22,
					Label:   "Wheel scroll multiplier",
					Type:    TypeFloat,
					Default: "5.0",
					Step:    0.5,
				},
				{
					Key:     "touch_scroll_multiplier",
					ID:      23,
					Label:   "Touch scroll multiplier",
					Type:    TypeFloat,
					Default: "1.0",
					Step:    0.5,
				},
			},
		},
		{
			ID:    "mouse",
			Title: "Mouse",
			Settings: []Setting{
				{
					Key:         "mouse_hide_wait",
					ID:          24,
					Label:       "Hide wait",
					Type:        TypeFloat,
					Default:     "3.0",
					Step:        0.5,
					Description: "Seconds. 0 = disabled, negative = hide immediately",
				},
				{
					Key:     "url_color",
					ID:      25,
					Label:   "URL color",
					Type:    TypeColor,
					Default: "#0087bd",
				},
				{
					Key:     "url_style",
					ID:      26,
					Label:   "URL style",
					Type:    TypeEnum,
					Default: "curly",
					Options: []string{"curly", "straight", "double", "dotted", "dashed", "none"},
				},
				{
					Key:         "open_url_with",
					ID:          27,
					Label:       "Open URL with",
					Type:        TypeString,
					Default:     "default",
					Description: "Program to open URLs. 'default' = system handler",
				},
				{
					Key:     "detect_urls",
					ID:      28,
					Label:   "Detect URLs",
					Type:    TypeBool,
					Default: "yes",
				},
				{
					Key:     "show_hyperlink_targets",
					ID:      29,
					Label:   "Show hyperlink targets",
					Type:    TypeBool,
					Default: "no",
				},
				{
					Key:     "underline_hyperlinks",
					ID:      30,
					Label:   "Underline hyperlinks",
					Type:    TypeEnum,
					Default: "hover",
					Options: []string{"hover", "always", "never"},
				},
				{
					Key:     "copy_on_select",
					ID:      31,
					Label:   "Copy on select",
					Type:    TypeEnum,
					Default: "no",
					Options: []string{"no", "yes", "clipboard"},
				},
				{
					Key:     "paste_actions",
					ID:      32,
					Label:   "Paste actions",
					Type:    TypeString,
					Default: "quote-urls-at-prompt,confirm",
				},
				{
					Key:     "strip_trailing_spaces",
					ID:      33,
					Label:   "Strip trailing spaces",
					Type:    TypeEnum,
					Default: "never",
					Options: []string{"never", "smart", "always"},
				},
				{
					Key:     "focus_follows_mouse",
					ID:      34,
					Label:   "Focus follows mouse",
					Type:    TypeBool,
					Default: "no",
				},
			},
		},
		{
			ID:    "performance",
			Title: "Performance",
			Settings: []Setting{
				{
					Key:         "repaint_delay",
					ID:          35,
					Label:       "Repaint delay",
					Type:        TypeInt,
					Default:     "10",
					Min:         MinValue(0),
					Description: "Milliseconds",
				},
				{
					Key:         "input_delay",
					ID:          36,
					Label:       "Input delay",
					Type:        TypeInt,
					Default:     "3",
					Min:         MinValue(0),
					Description: "Milliseconds",
				},
				{
					Key:     "sync_to_monitor",
					ID:      37,
					Label:   "Sync to monitor",
					Type:    TypeBool,
					Default: "yes",
				},
			},
		},
		{
			ID:    "bell",
			Title: "Bell",
			Settings: []Setting{
				{
					Key:     "enable_audio_bell",
					ID:      38,
					Label:   "Audio bell",
					Type:    TypeBool,
					Default: "yes",
				},
				{
					Key:         "visual_bell_duration",
					ID:          39,
					Label:       "Visual bell duration",
					Type:        TypeFloat,
					Default:     "0.0",
					Min:         MinValue(0),
					Step:        0.1,
					Description: "Seconds. 0 = disabled",
				},
				{
					Key:         "visual_bell_color",
					ID:          40,
					Label:       "Visual bell color",
					Type:        TypeString,
					Default:     "none",
					Description: "'none' or hex color",
				},
				{
					Key:     "window_alert_on_bell",
					ID:      41,
					Label:   "Window alert on bell",
					Type:    TypeBool,
					Default: "yes",
				},
			},
		},
		{
			ID:    "window",
			Title: "Window",
			Settings: []Setting{
				{
					Key:     "remember_window_size",
					ID:      42,
					Label:   "Remember size",
					Type:    TypeBool,
					Default: "yes",
				},
				{
					Key:     "initial_window_width",
					ID:      43,
					Label:   "Initial width",
					Type:    TypeInt,
					Default: "640",
					Min:     MinValue(1),
				},
				{
					Key:     "initial_window_height",
					ID:      44,
					Label:   "Initial height",
					Type:    TypeInt,
					Default: "400",
					Min:     MinValue(1),
				},
				{
					Key:         "enabled_layouts",
					ID:          45,
					Label:       "Enabled layouts",
					Type:        TypeString,
					Default:     "*",
					Description: "Comma-separated. * = all",
				},
				{
					Key:         "window_border_width",
					ID:          46,
					Label:       "Border width",
					Type:        TypeString,
					Default:     "0.5pt",
					Description: "e.g. 0.5pt, 1px",
				},
				{
					Key:         "window_margin_width",
					ID:          47,
					Label:       "Margin",
					Type:        TypeInt,
					Default:     "0",
					Min:         MinValue(0),
					Description: "Points",
				},
				{
					Key:         "window_padding_width",
					ID:          48,
					Label:       "Padding",
					Type:        TypeInt,
					Default:     "0",
					Min:         MinValue(0),
					Description: "Points. Single value = all sides",
				},
				{
					Key:     "placement_strategy",
					ID:      49,
					Label:   "Placement",
					Type:    TypeEnum,
					Default: "center",
					Options: []string{"center", "top-left"},
				},
				{
					Key:     "active_border_color",
					ID:      50,
					Label:   "Active border color",
					Type:    TypeColor,
					Default: "#00ff00",
				},
				{
					Key:     "inactive_border_color",
					ID:      51,
					Label:   "Inactive border color",
					Type:    TypeColor,
					Default: "#cccccc",
				},
				{
					Key:     "inactive_text_alpha",
					ID:      52,
					Label:   "Inactive text alpha",
					Type:    TypeFloat,
					Default: "1.0",
					Min:     MinValue(0),
					Max:     MaxValue(1),
					Step:    0.05,
				},
				{
					Key:     "hide_window_decorations",
					ID:      53,
					Label:   "Hide decorations",
					Type:    TypeEnum,
					Default: "no",
					Options: []string{"no", "yes", "titlebar-only", "titlebar-and-corners"},
				},
				{
					Key:         "confirm_os_window_close",
					ID:          54,
					Label:       "Confirm close",
					Type:        TypeInt,
					Default:     "-1",
					Description: "-1 = confirm if multiple windows, 0 = never",
				},
				{
					Key:     "background_opacity",
					ID:      55,
					Label:   "Background opacity",
					Type:    TypeFloat,
					Default: "1.0",
					Min:     MinValue(0),
					Max:     MaxValue(1),
					Step:    0.05,
				},
				{
					Key:         "dynamic_background_opacity",
					ID:          56,
					Label:       "Dynamic background opacity",
					Type:        TypeBool,
					Default:     "no",
					Description: "Allow changing opacity at runtime",
				},
				{
					Key:     "background_image",
					ID:      57,
					Label:   "Background image",
					Type:    TypeFile,
					Default: "none",
					Accept:  "image/*",
				},
				{
					Key:     "background_image_layout",
					ID:      58,
					Label:   "Image layout",
					Type:    TypeEnum,
					Default: "tiled",
					Options: []string{"tiled", "mirror-tiled", "scaled", "clamped", "centered", "cscaled"},
				},
				{
					Key:         "background_image_linear",
					ID:          59,
					Label:       "Image linear filtering",
					Type:        TypeBool,
					Default:     "no",
					Description: "Smooth scaling instead of pixelated",
				},
				{
					Key:         "background_tint",
					ID:          60,
					Label:       "Background tint",
					Type:        TypeFloat,
					Default:     "0.0",
					Min:         MinValue(0),
					Max:         MaxValue(1),
					Step:        0.05,
					Description: "Tint image with background color for readability",
				},
			},
		},
		{
			ID:    "tab_bar",
			Title: "Tab Bar",
			Settings: []Setting{
				{
					Key:     "tab_bar_edge",
					ID:      61,
					Label:   "Edge",
					Type:    TypeEnum,
					Default: "bottom",
					Options: []string{"top", "bottom"},
				},
				{
					Key:     "tab_bar_style",
					ID:      62,
					Label:   "Style",
					Type:    TypeEnum,
					Default: "fade",
					Options: []string{"fade", "hidden", "powerline", "separator", "slant", "custom"},
				},
				{
					Key:     "tab_bar_align",
					ID:      63,
					Label:   "Alignment",
					Type:    TypeEnum,
					Default: "left",
					Options: []string{"left", "center", "right"},
				},
				{
					Key:     "tab_bar_margin_width",
					ID:      64,
					Label:   "Margin width",
					Type:    TypeFloat,
					Default: "0.0",
					Min:     MinValue(0),
					Step:    0.5,
				},
				{
					Key:     "tab_powerline_style",
					ID:      65,
					Label:   "Powerline style",
					Type:    TypeEnum,
					Default: "angled",
					Options: []string{"angled", "slanted", "round"},
				},
				{
					Key:     "active_tab_foreground",
					ID:      66,
					Label:   "Active tab fg",
					Type:    TypeColor,
					Default: "#000000",
				},
				{
					Key:     "active_tab_background",
					ID:      67,
					Label:   "Active tab bg",
					Type:    TypeColor,
					Default: "#eeeeee",
				},
				{
					Key:     "active_tab_font_style",
					ID:      68,
					Label:   "Active font style",
					Type:    TypeEnum,
					Default: "bold-italic",
					Options: []string{"normal", "bold", "italic", "bold-italic"},
				},
				{
					Key:     "inactive_tab_foreground",
					ID:      69,
					Label:   "Inactive tab fg",
					Type:    TypeColor,
					Default: "#444444",
				},
				{
					Key:     "inactive_tab_background",
					ID:      70,
					Label:   "Inactive tab bg",
					Type:    TypeColor,
					Default: "#999999",
				},
				{
					Key:     "inactive_tab_font_style",
					ID:      71,
					Label:   "Inactive font style",
					Type:    TypeEnum,
					Default: "normal",
					Options: []string{"normal", "bold", "italic", "bold-italic"},
				},
			},
		},
		{
			ID:    "colors",
			Title: "Colors",
			Settings: []Setting{
				{
					Key:     "foreground",
					ID:      72,
					Label:   "Foreground",
					Type:    TypeColor,
					Default: "#dddddd",
				},
				{
					Key:     "background",
					ID:      73,
					Label:   "Background",
					Type:    TypeColor,
					Default: "#000000",
				},
				{
					Key:     "selection_foreground",
					ID:      74,
					Label:   "Selection fg",
					Type:    TypeColor,
					Default: "#000000",
				},
				{
					Key:     "selection_background",
					ID:      75,
					Label:   "Selection bg",
					Type:    TypeColor,
					Default: "#fffacd",
				},
				{
					Key:     "cursor",
					ID:      76,
					Label:   "Cursor",
					Type:    TypeColor,
					Default: "#cccccc",
				},
				{
					Key:     "color0",
					ID:      77,
					Label:   "Black",
					Type:    TypeColor,
					Default: "#000000",
				},
				{
					Key:     "color1",
					ID:      78,
					Label:   "Red",
					Type:    TypeColor,
					Default: "#cc0403",
				},
				{
					Key:     "color2",
					ID:      79,
					Label:   "Green",
					Type:    TypeColor,
					Default: "#19cb00",
				},
				{
					Key:     "color3",
					ID:      80,
					Label:   "Yellow",
					Type:    TypeColor,
					Default: "#cecb00",
				},
				{
					Key:     "color4",
					ID:      81,
					Label:   "Blue",
					Type:    TypeColor,
					Default: "#0d73cc",
				},
				{
					Key:     "color5",
					ID:      82,
					Label:   "Magenta",
					Type:    TypeColor,
					Default: "#cb1ed1",
				},
				{
					Key:     "color6",
					ID:      83,
					Label:   "Cyan",
					Type:    TypeColor,
					Default: "#0dcdcd",
				},
				{
					Key:     "color7",
					ID:      84,
					Label:   "White",
					Type:    TypeColor,
					Default: "#dddddd",
				},
				{
					Key:     "color8",
					ID:      85,
					Label:   "Bright black",
					Type:    TypeColor,
					Default: "#767676",
				},
				{
					Key:     "color9",
					ID:      86,
					Label:   "Bright red",
					Type:    TypeColor,
					Default: "#f2201f",
				},
				{
					Key:     "color10",
					ID:      87,
					Label:   "Bright green",
					Type:    TypeColor,
					Default: "#23fd00",
				},
				{
					Key:     "color11",
					ID:      88,
					Label:   "Bright yellow",
					Type:    TypeColor,
					Default: "#fffd00",
				},
				{
					Key:     "color12",
					ID:      89,
					Label:   "Bright blue",
					Type:    TypeColor,
					Default: "#1a8fff",
				},
				{
					Key:     "color13",
					ID:      90,
					Label:   "Bright magenta",
					Type:    TypeColor,
					Default: "#fd28ff",
				},
				{
					Key:     "color14",
					ID:      91,
					Label:   "Bright cyan",
					Type:    TypeColor,
					Default: "#14ffff",
				},
				{
					Key:     "color15",
					ID:      92,
					Label:   "Bright white",
					Type:    TypeColor,
					Default: "#ffffff",
				},
			},
		},
		{
			ID:    "advanced",
			Title: "Advanced",
			Settings: []Setting{
				{
					Key:         "shell",
					ID:          93,
					Label:       "Shell",
					Type:        TypeString,
					Default:     ".",
					Description: ". = system default",
				},
				{
					Key:         "editor",
					ID:          94,
					Label:       "Editor",
					Type:        TypeString,
					Default:     ".",
					Description: ". = $VISUAL or $EDITOR",
				},
				{
					Key:     "close_on_child_death",
					ID:      95,
					Label:   "Close on child death",
					Type:    TypeBool,
					Default: "no",
				},
				{
					Key:     "allow_remote_control",
					ID:      96,
					Label:   "Remote control",
					Type:    TypeEnum,
					Default: "no",
					Options: []string{"no", "yes", "socket-only", "socket", "password"},
				},
				{
					Key:     "allow_hyperlinks",
					ID:      97,
					Label:   "Allow hyperlinks",
					Type:    TypeBool,
					Default: "yes",
				},
				{
					Key:     "shell_integration",
					ID:      98,
					Label:   "Shell integration",
					Type:    TypeString,
					Default: "enabled",
				},
				{
					Key:     "term",
					ID:      99,
					Label:   "TERM",
					Type:    TypeString,
					Default: "xterm-kitty",
				},
				{
					Key:         "update_check_interval",
					ID:          100,
					Label:       "Update check interval",
					Type:        TypeInt,
					Default:     "24",
					Min:         MinValue(0),
					Description: "Hours. 0 = disabled",
				},
				{
					Key:     "startup_session",
					ID:      101,
					Label:   "Startup session",
					Type:    TypeString,
					Default: "none",
				},
			},
		},
		{
			ID:    "macos",
			Title: "macOS",
			Settings: []Setting{
				{
					Key:     "macos_option_as_alt",
					ID:      102,
					Label:   "Option as Alt",
					Type:    TypeEnum,
					Default: "left",
					Options: []string{"no", "yes", "left", "right", "both"},
				},
				{
					Key:     "macos_quit_when_last_window_closed",
					ID:      103,
					Label:   "Quit on last close",
					Type:    TypeBool,
					Default: "yes",
				},
				{
					Key:         "macos_titlebar_color",
					ID:          104,
					Label:       "Titlebar color",
					Type:        TypeString,
					Default:     "system",
					Description: "system, background, or hex color",
				},
				{
					Key:     "macos_hide_from_tasks",
					ID:      105,
					Label:   "Hide from tasks",
					Type:    TypeBool,
					Default: "no",
				},
				{
					Key:     "macos_window_resizable",
					ID:      106,
					Label:   "Window resizable",
					Type:    TypeBool,
					Default: "yes",
				},
				{
					Key:     "macos_thicken_font",
					ID:      107,
					Label:   "Thicken font",
					Type:    TypeFloat,
					Default: "0",
					Min:     MinValue(0),
					Step:    0.25,
				},
				{
					Key:     "macos_traditional_fullscreen",
					ID:      108,
					Label:   "Traditional fullscreen",
					Type:    TypeBool,
					Default: "no",
				},
			},
		},
		{
			ID:    "linux",
			Title: "Linux",
			Settings: []Setting{
				{
					Key:     "linux_display_server",
					ID:      109,
					Label:   "Display server",
					Type:    TypeEnum,
					Default: "auto",
					Options: []string{"auto", "x11", "wayland"},
				},
				{
					Key:         "wayland_titlebar_color",
					ID:          110,
					Label:       "Wayland titlebar color",
					Type:        TypeString,
					Default:     "system",
					Description: "system, background, or hex color",
				},
			},
		},
	}
}
