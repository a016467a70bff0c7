package fx

// ParamKind is the scalar type of a filter parameter.
type ParamKind uint8

const (
	KindInt ParamKind = iota
	KindFloat
	KindEnum
	KindString
	KindBool
)

// String returns the kind's name.
func (k ParamKind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindEnum:
		return "enum"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	}
	return "unknown"
}

// ParamSpec describes one filter parameter for host-side introspection:
// its name, type, textual default, numeric bounds, and enum choices.
// It is metadata only; the typed config structs remain the sole way to
// invoke a filter.
type ParamSpec struct {
	Name    string
	Kind    ParamKind
	Default string
	Min     float64
	Max     float64
	Choices []string
}

// FilterSpec describes one filter and its accepted parameters.
type FilterSpec struct {
	Name   string
	Params []ParamSpec
}

// filterSpecs lists every filter in registration order.
var filterSpecs = []FilterSpec{
	{
		Name: "noise_effect",
		Params: []ParamSpec{
			{Name: "noise_type", Kind: KindEnum, Default: "film_grain",
				Choices: []string{"film_grain", "digital", "colored", "salt_pepper", "gaussian"}},
			{Name: "intensity", Kind: KindFloat, Default: "0.3", Min: 0, Max: 1},
			{Name: "grain_size", Kind: KindFloat, Default: "1.0", Min: 0.5, Max: 5},
			{Name: "color_variation", Kind: KindFloat, Default: "0.2", Min: 0, Max: 1},
			{Name: "noise_color", Kind: KindString, Default: "#FFFFFF"},
			{Name: "blend_mode", Kind: KindEnum, Default: "overlay",
				Choices: []string{"overlay", "add", "multiply", "screen"}},
			{Name: "pattern", Kind: KindEnum, Default: "random",
				Choices: []string{"random", "perlin", "cellular"}},
			{Name: "seed", Kind: KindInt, Default: "0", Min: 0, Max: 4294967295},
		},
	},
	{
		Name: "color_channel",
		Params: []ParamSpec{
			{Name: "operation", Kind: KindEnum, Default: "swap",
				Choices: []string{"swap", "invert", "adjust", "negative"}},
			{Name: "pair", Kind: KindEnum, Default: "red-green",
				Choices: []string{"red-green", "red-blue", "green-blue"}},
			{Name: "channel", Kind: KindEnum, Default: "red",
				Choices: []string{"red", "green", "blue"}},
			{Name: "factor", Kind: KindFloat, Default: "1.0", Min: 0, Max: 2},
		},
	},
	{
		Name: "chromatic_aberration",
		Params: []ParamSpec{
			{Name: "intensity", Kind: KindFloat, Default: "5.0", Min: 0, Max: 50},
			{Name: "pattern", Kind: KindEnum, Default: "radial",
				Choices: []string{"radial", "linear", "barrel", "custom"}},
			{Name: "red_shift_x", Kind: KindFloat, Default: "0.0", Min: -20, Max: 20},
			{Name: "red_shift_y", Kind: KindFloat, Default: "0.0", Min: -20, Max: 20},
			{Name: "blue_shift_x", Kind: KindFloat, Default: "0.0", Min: -20, Max: 20},
			{Name: "blue_shift_y", Kind: KindFloat, Default: "0.0", Min: -20, Max: 20},
			{Name: "center_x", Kind: KindFloat, Default: "0.5", Min: 0, Max: 1},
			{Name: "center_y", Kind: KindFloat, Default: "0.5", Min: 0, Max: 1},
			{Name: "falloff", Kind: KindEnum, Default: "quadratic",
				Choices: []string{"linear", "quadratic", "cubic"}},
			{Name: "edge_enhancement", Kind: KindFloat, Default: "0.0", Min: 0, Max: 1},
			{Name: "color_boost", Kind: KindFloat, Default: "1.0", Min: 0.5, Max: 2},
		},
	},
	{
		Name: "color_filter",
		Params: []ParamSpec{
			{Name: "filter_type", Kind: KindEnum, Default: "solid",
				Choices: []string{"solid", "gradient", "custom"}},
			{Name: "color", Kind: KindString, Default: "#FF0000"},
			{Name: "blend_mode", Kind: KindEnum, Default: "overlay",
				Choices: []string{"normal", "multiply", "screen", "overlay", "soft_light",
					"hard_light", "color_dodge", "color_burn", "linear_dodge",
					"linear_burn", "vivid_light", "difference"}},
			{Name: "opacity", Kind: KindFloat, Default: "0.5", Min: 0, Max: 1},
			{Name: "gradient_color2", Kind: KindString, Default: "#0000FF"},
			{Name: "gradient_angle", Kind: KindFloat, Default: "0.0", Min: 0, Max: 360},
		},
	},
	{
		Name: "color_shift_expansion",
		Params: []ParamSpec{
			{Name: "num_points", Kind: KindInt, Default: "5", Min: 1, Max: 50},
			{Name: "shift_amount", Kind: KindInt, Default: "5", Min: 1, Max: 20},
			{Name: "expansion_type", Kind: KindEnum, Default: "square",
				Choices: []string{"square", "circle", "diamond"}},
			{Name: "saturation_boost", Kind: KindFloat, Default: "0.0", Min: 0, Max: 1},
			{Name: "value_boost", Kind: KindFloat, Default: "0.0", Min: 0, Max: 1},
			{Name: "pattern_type", Kind: KindEnum, Default: "random",
				Choices: []string{"random", "grid", "edges"}},
			{Name: "color_theme", Kind: KindEnum, Default: "full-spectrum",
				Choices: []string{"full-spectrum", "warm", "cool", "pastel"}},
			{Name: "decay_factor", Kind: KindFloat, Default: "0.0", Min: 0, Max: 1},
			{Name: "seed", Kind: KindInt, Default: "0", Min: 0, Max: 4294967295},
		},
	},
	{
		Name: "curved_hue_shift",
		Params: []ParamSpec{
			{Name: "curve_value", Kind: KindFloat, Default: "180.0", Min: 1, Max: 360},
			{Name: "shift_amount", Kind: KindFloat, Default: "30.0", Min: -180, Max: 180},
		},
	},
	{
		Name: "gaussian_blur",
		Params: []ParamSpec{
			{Name: "radius", Kind: KindFloat, Default: "5.0", Min: 0.1, Max: 50},
			{Name: "sigma", Kind: KindFloat, Default: "0.0", Min: 0, Max: 20},
		},
	},
	{
		Name: "sharpen",
		Params: []ParamSpec{
			{Name: "method", Kind: KindEnum, Default: "unsharp_mask",
				Choices: []string{"unsharp_mask", "high_pass", "edge_enhance", "custom"}},
			{Name: "intensity", Kind: KindFloat, Default: "1.0", Min: 0, Max: 5},
			{Name: "radius", Kind: KindFloat, Default: "1.0", Min: 0.1, Max: 10},
			{Name: "threshold", Kind: KindInt, Default: "0", Min: 0, Max: 255},
			{Name: "edge_enhancement", Kind: KindFloat, Default: "0.0", Min: 0, Max: 2},
			{Name: "high_pass_radius", Kind: KindFloat, Default: "3.0", Min: 1, Max: 10},
			{Name: "custom_kernel", Kind: KindEnum, Default: "laplacian",
				Choices: []string{"laplacian", "sobel", "prewitt", "sharpen"}},
		},
	},
	{
		Name: "posterize",
		Params: []ParamSpec{
			{Name: "levels", Kind: KindInt, Default: "8", Min: 2, Max: 256},
			{Name: "dither", Kind: KindEnum, Default: "none",
				Choices: []string{"none", "floyd-steinberg", "atkinson", "ordered"}},
			{Name: "color_space", Kind: KindEnum, Default: "rgb",
				Choices: []string{"rgb", "hsv", "lab"}},
		},
	},
	{
		Name: "histogram_glitch",
		Params: []ParamSpec{
			{Name: "r_mode", Kind: KindEnum, Default: "solarize",
				Choices: []string{"solarize", "log", "gamma", "normal"}},
			{Name: "g_mode", Kind: KindEnum, Default: "log",
				Choices: []string{"solarize", "log", "gamma", "normal"}},
			{Name: "b_mode", Kind: KindEnum, Default: "gamma",
				Choices: []string{"solarize", "log", "gamma", "normal"}},
			{Name: "r_freq", Kind: KindFloat, Default: "1.0", Min: 0.1, Max: 10},
			{Name: "g_freq", Kind: KindFloat, Default: "1.0", Min: 0.1, Max: 10},
			{Name: "b_freq", Kind: KindFloat, Default: "1.0", Min: 0.1, Max: 10},
			{Name: "r_phase", Kind: KindFloat, Default: "0.0", Min: 0, Max: 6.28},
			{Name: "g_phase", Kind: KindFloat, Default: "0.0", Min: 0, Max: 6.28},
			{Name: "b_phase", Kind: KindFloat, Default: "0.0", Min: 0, Max: 6.28},
			{Name: "gamma_val", Kind: KindFloat, Default: "0.5", Min: 0.1, Max: 3},
		},
	},
	{
		Name: "cellular_noise",
		Params: []ParamSpec{
			{Name: "circle_size", Kind: KindInt, Default: "32", Min: 8, Max: 128},
			{Name: "layout", Kind: KindEnum, Default: "grid",
				Choices: []string{"grid", "hex"}},
			{Name: "noise_type", Kind: KindEnum, Default: "rgb",
				Choices: []string{"rgb", "grayscale", "palette", "gaussian"}},
			{Name: "blend_mode", Kind: KindEnum, Default: "overlay",
				Choices: []string{"overlay", "add", "multiply", "screen", "soft_light",
					"hard_light", "color_dodge", "color_burn", "linear_dodge",
					"linear_burn", "difference"}},
			{Name: "center_noise", Kind: KindFloat, Default: "0.0", Min: 0, Max: 1},
			{Name: "edge_noise", Kind: KindFloat, Default: "1.0", Min: 0, Max: 1},
			{Name: "reverse_gradient", Kind: KindBool, Default: "false"},
			{Name: "opacity", Kind: KindFloat, Default: "1.0", Min: 0, Max: 1},
			{Name: "palette_path", Kind: KindString, Default: ""},
			{Name: "seed", Kind: KindInt, Default: "0", Min: 0, Max: 4294967295},
		},
	},
	{
		Name: "pixelate",
		Params: []ParamSpec{
			{Name: "pixel_width", Kind: KindInt, Default: "8", Min: 1, Max: 256},
			{Name: "pixel_height", Kind: KindInt, Default: "8", Min: 1, Max: 256},
			{Name: "attribute", Kind: KindEnum, Default: "color",
				Choices: []string{"color", "brightness", "hue", "saturation", "luminance"}},
		},
	},
	{
		Name: "rgb_channel_shift",
		Params: []ParamSpec{
			{Name: "mode", Kind: KindEnum, Default: "shift",
				Choices: []string{"shift", "mirror"}},
			{Name: "shift_amount", Kind: KindInt, Default: "10", Min: 1, Max: 100},
			{Name: "direction", Kind: KindEnum, Default: "horizontal",
				Choices: []string{"horizontal", "vertical"}},
			{Name: "centered_channel", Kind: KindEnum, Default: "red",
				Choices: []string{"red", "green", "blue"}},
		},
	},
	{
		Name: "jpeg_artifacts",
		Params: []ParamSpec{
			{Name: "intensity", Kind: KindFloat, Default: "0.5", Min: 0, Max: 1},
		},
	},
}

// Filters returns the introspection specs for every filter.
func Filters() []FilterSpec {
	out := make([]FilterSpec, len(filterSpecs))
	copy(out, filterSpecs)
	return out
}

// LookupFilter returns the spec for a filter by name.
func LookupFilter(name string) (FilterSpec, bool) {
	for _, fs := range filterSpecs {
		if fs.Name == name {
			return fs, true
		}
	}
	return FilterSpec{}, false
}
