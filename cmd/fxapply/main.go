// Command fxapply applies one fx filter to an image file.
//
// Filter parameters come from a YAML file using the same names the
// parameter schema reports, for example:
//
//	fxapply -input in.png -filter posterize -params posterize.yaml -output out.png
//
// with posterize.yaml holding:
//
//	levels: 4
//	dither: floyd-steinberg
//	color_space: hsv
//
// Missing parameters keep their defaults. Run with -list to print every
// filter and its parameters.
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/jpeg"
	"log"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/xwave/fx"
)

func main() {
	var (
		input  = flag.String("input", "", "input image (png or jpeg)")
		output = flag.String("output", "out.png", "output file")
		filter = flag.String("filter", "", "filter name")
		params = flag.String("params", "", "yaml file of filter parameters")
		list   = flag.Bool("list", false, "list filters and exit")
	)
	flag.Parse()

	if *list {
		listFilters()
		return
	}
	if *input == "" || *filter == "" {
		flag.Usage()
		os.Exit(2)
	}

	f, err := os.Open(*input)
	if err != nil {
		log.Fatalf("open input: %v", err)
	}
	img, _, err := image.Decode(f)
	f.Close()
	if err != nil {
		log.Fatalf("decode input: %v", err)
	}
	src, err := fx.FromImage(img)
	if err != nil {
		log.Fatalf("convert input: %v", err)
	}

	var raw []byte
	if *params != "" {
		raw, err = os.ReadFile(*params)
		if err != nil {
			log.Fatalf("read params: %v", err)
		}
	}

	out, err := apply(*filter, src, raw)
	if err != nil {
		log.Fatalf("apply %s: %v", *filter, err)
	}

	if err := out.SavePNG(*output); err != nil {
		log.Fatalf("save output: %v", err)
	}
	log.Printf("%s applied, saved to %s (%dx%d)", *filter, *output, out.Width(), out.Height())
}

func listFilters() {
	for _, fs := range fx.Filters() {
		fmt.Println(fs.Name)
		for _, p := range fs.Params {
			line := fmt.Sprintf("  %-18s %-6s default=%s", p.Name, p.Kind, p.Default)
			if p.Kind == fx.KindInt || p.Kind == fx.KindFloat {
				line += fmt.Sprintf(" range=[%g, %g]", p.Min, p.Max)
			}
			if len(p.Choices) > 0 {
				line += " choices=" + strings.Join(p.Choices, ",")
			}
			fmt.Println(line)
		}
	}
}

// decode unmarshals raw YAML into dst, leaving dst untouched when no
// params file was given.
func decode(raw []byte, dst any) error {
	if len(raw) == 0 {
		return nil
	}
	return yaml.Unmarshal(raw, dst)
}

func apply(name string, src *fx.Raster, raw []byte) (*fx.Raster, error) {
	switch name {
	case "noise_effect":
		return applyNoise(src, raw)
	case "color_channel":
		return applyColorChannel(src, raw)
	case "chromatic_aberration":
		return applyAberration(src, raw)
	case "color_filter":
		return applyColorFilter(src, raw)
	case "color_shift_expansion":
		return applyExpansion(src, raw)
	case "curved_hue_shift":
		return applyHueShift(src, raw)
	case "gaussian_blur":
		return applyBlur(src, raw)
	case "sharpen":
		return applySharpen(src, raw)
	case "posterize":
		return applyPosterize(src, raw)
	case "histogram_glitch":
		return applyHistogram(src, raw)
	case "cellular_noise":
		return applyCellular(src, raw)
	case "pixelate":
		return applyPixelate(src, raw)
	case "rgb_channel_shift":
		return applyChannelShift(src, raw)
	case "jpeg_artifacts":
		return applyJPEG(src, raw)
	}
	return nil, fmt.Errorf("unknown filter %q", name)
}

func applyNoise(src *fx.Raster, raw []byte) (*fx.Raster, error) {
	p := struct {
		NoiseType      string  `yaml:"noise_type"`
		Intensity      float64 `yaml:"intensity"`
		GrainSize      float64 `yaml:"grain_size"`
		ColorVariation float64 `yaml:"color_variation"`
		NoiseColor     string  `yaml:"noise_color"`
		BlendMode      string  `yaml:"blend_mode"`
		Pattern        string  `yaml:"pattern"`
		Seed           int64   `yaml:"seed"`
	}{
		NoiseType: "film_grain", Intensity: 0.3, GrainSize: 1,
		ColorVariation: 0.2, NoiseColor: "#FFFFFF",
		BlendMode: "overlay", Pattern: "random",
	}
	if err := decode(raw, &p); err != nil {
		return nil, err
	}
	cfg := fx.DefaultNoiseEffectConfig()
	var err error
	if cfg.Type, err = fx.ParseNoiseType(p.NoiseType); err != nil {
		return nil, err
	}
	if cfg.Blend, err = fx.ParseNoiseBlend(p.BlendMode); err != nil {
		return nil, err
	}
	if cfg.Pattern, err = fx.ParseNoisePattern(p.Pattern); err != nil {
		return nil, err
	}
	if cfg.NoiseColor, err = fx.HexColor(p.NoiseColor); err != nil {
		return nil, err
	}
	cfg.Intensity = p.Intensity
	cfg.GrainSize = p.GrainSize
	cfg.ColorVariation = p.ColorVariation
	cfg.Seed = p.Seed
	return fx.NoiseEffect(src, cfg)
}

func applyColorChannel(src *fx.Raster, raw []byte) (*fx.Raster, error) {
	p := struct {
		Operation string  `yaml:"operation"`
		Pair      string  `yaml:"pair"`
		Channel   string  `yaml:"channel"`
		Factor    float64 `yaml:"factor"`
	}{Operation: "swap", Pair: "red-green", Channel: "red", Factor: 1}
	if err := decode(raw, &p); err != nil {
		return nil, err
	}
	cfg := fx.DefaultChannelMixConfig()
	var err error
	if cfg.Op, err = fx.ParseChannelOp(p.Operation); err != nil {
		return nil, err
	}
	if cfg.Pair, err = fx.ParseSwapPair(p.Pair); err != nil {
		return nil, err
	}
	if cfg.Channel, err = fx.ParseChannel(p.Channel); err != nil {
		return nil, err
	}
	cfg.Factor = p.Factor
	return fx.ChannelMix(src, cfg)
}

func applyAberration(src *fx.Raster, raw []byte) (*fx.Raster, error) {
	p := struct {
		Intensity       float64 `yaml:"intensity"`
		Pattern         string  `yaml:"pattern"`
		RedShiftX       float64 `yaml:"red_shift_x"`
		RedShiftY       float64 `yaml:"red_shift_y"`
		BlueShiftX      float64 `yaml:"blue_shift_x"`
		BlueShiftY      float64 `yaml:"blue_shift_y"`
		CenterX         float64 `yaml:"center_x"`
		CenterY         float64 `yaml:"center_y"`
		Falloff         string  `yaml:"falloff"`
		EdgeEnhancement float64 `yaml:"edge_enhancement"`
		ColorBoost      float64 `yaml:"color_boost"`
	}{
		Intensity: 5, Pattern: "radial", CenterX: 0.5, CenterY: 0.5,
		Falloff: "quadratic", ColorBoost: 1,
	}
	if err := decode(raw, &p); err != nil {
		return nil, err
	}
	cfg := fx.DefaultChromaticAberrationConfig()
	var err error
	if cfg.Pattern, err = fx.ParseAberrationPattern(p.Pattern); err != nil {
		return nil, err
	}
	if cfg.Falloff, err = fx.ParseFalloff(p.Falloff); err != nil {
		return nil, err
	}
	cfg.Intensity = p.Intensity
	cfg.RedShiftX, cfg.RedShiftY = p.RedShiftX, p.RedShiftY
	cfg.BlueShiftX, cfg.BlueShiftY = p.BlueShiftX, p.BlueShiftY
	cfg.CenterX, cfg.CenterY = p.CenterX, p.CenterY
	cfg.EdgeEnhancement = p.EdgeEnhancement
	cfg.ColorBoost = p.ColorBoost
	return fx.ChromaticAberration(src, cfg)
}

func applyColorFilter(src *fx.Raster, raw []byte) (*fx.Raster, error) {
	p := struct {
		FilterType     string  `yaml:"filter_type"`
		Color          string  `yaml:"color"`
		BlendMode      string  `yaml:"blend_mode"`
		Opacity        float64 `yaml:"opacity"`
		GradientColor2 string  `yaml:"gradient_color2"`
		GradientAngle  float64 `yaml:"gradient_angle"`
	}{
		FilterType: "solid", Color: "#FF0000", BlendMode: "overlay",
		Opacity: 0.5, GradientColor2: "#0000FF",
	}
	if err := decode(raw, &p); err != nil {
		return nil, err
	}
	cfg := fx.DefaultColorFilterConfig()
	var err error
	if cfg.Type, err = fx.ParseFilterType(p.FilterType); err != nil {
		return nil, err
	}
	if cfg.Mode, err = fx.ParseBlendMode(p.BlendMode); err != nil {
		return nil, err
	}
	if cfg.Color, err = fx.HexColor(p.Color); err != nil {
		return nil, err
	}
	if cfg.GradientColor2, err = fx.HexColor(p.GradientColor2); err != nil {
		return nil, err
	}
	cfg.Opacity = p.Opacity
	cfg.GradientAngle = p.GradientAngle
	return fx.ColorFilter(src, cfg)
}

func applyExpansion(src *fx.Raster, raw []byte) (*fx.Raster, error) {
	p := struct {
		NumPoints       int     `yaml:"num_points"`
		ShiftAmount     int     `yaml:"shift_amount"`
		ExpansionType   string  `yaml:"expansion_type"`
		SaturationBoost float64 `yaml:"saturation_boost"`
		ValueBoost      float64 `yaml:"value_boost"`
		PatternType     string  `yaml:"pattern_type"`
		ColorTheme      string  `yaml:"color_theme"`
		DecayFactor     float64 `yaml:"decay_factor"`
		Seed            int64   `yaml:"seed"`
	}{
		NumPoints: 5, ShiftAmount: 5, ExpansionType: "square",
		PatternType: "random", ColorTheme: "full-spectrum",
	}
	if err := decode(raw, &p); err != nil {
		return nil, err
	}
	cfg := fx.DefaultColorShiftExpansionConfig()
	var err error
	if cfg.Shape, err = fx.ParseExpansionShape(p.ExpansionType); err != nil {
		return nil, err
	}
	if cfg.Pattern, err = fx.ParsePointPattern(p.PatternType); err != nil {
		return nil, err
	}
	if cfg.Theme, err = fx.ParseColorTheme(p.ColorTheme); err != nil {
		return nil, err
	}
	cfg.NumPoints = p.NumPoints
	cfg.ShiftAmount = p.ShiftAmount
	cfg.SaturationBoost = p.SaturationBoost
	cfg.ValueBoost = p.ValueBoost
	cfg.DecayFactor = p.DecayFactor
	cfg.Seed = p.Seed
	return fx.ColorShiftExpansion(src, cfg)
}

func applyHueShift(src *fx.Raster, raw []byte) (*fx.Raster, error) {
	p := struct {
		CurveValue  float64 `yaml:"curve_value"`
		ShiftAmount float64 `yaml:"shift_amount"`
	}{CurveValue: 180, ShiftAmount: 30}
	if err := decode(raw, &p); err != nil {
		return nil, err
	}
	return fx.CurvedHueShift(src, fx.CurvedHueShiftConfig{
		CurveValue:  p.CurveValue,
		ShiftAmount: p.ShiftAmount,
	})
}

func applyBlur(src *fx.Raster, raw []byte) (*fx.Raster, error) {
	p := struct {
		Radius float64 `yaml:"radius"`
		Sigma  float64 `yaml:"sigma"`
	}{Radius: 5}
	if err := decode(raw, &p); err != nil {
		return nil, err
	}
	return fx.GaussianBlur(src, fx.GaussianBlurConfig{Radius: p.Radius, Sigma: p.Sigma})
}

func applySharpen(src *fx.Raster, raw []byte) (*fx.Raster, error) {
	p := struct {
		Method          string  `yaml:"method"`
		Intensity       float64 `yaml:"intensity"`
		Radius          float64 `yaml:"radius"`
		Threshold       int     `yaml:"threshold"`
		EdgeEnhancement float64 `yaml:"edge_enhancement"`
		HighPassRadius  float64 `yaml:"high_pass_radius"`
		CustomKernel    string  `yaml:"custom_kernel"`
	}{
		Method: "unsharp_mask", Intensity: 1, Radius: 1,
		HighPassRadius: 3, CustomKernel: "laplacian",
	}
	if err := decode(raw, &p); err != nil {
		return nil, err
	}
	cfg := fx.DefaultSharpenConfig()
	var err error
	if cfg.Method, err = fx.ParseSharpenMethod(p.Method); err != nil {
		return nil, err
	}
	if cfg.Kernel, err = fx.ParseSharpenKernel(p.CustomKernel); err != nil {
		return nil, err
	}
	cfg.Intensity = p.Intensity
	cfg.Radius = p.Radius
	cfg.Threshold = p.Threshold
	cfg.EdgeEnhancement = p.EdgeEnhancement
	cfg.HighPassRadius = p.HighPassRadius
	return fx.Sharpen(src, cfg)
}

func applyPosterize(src *fx.Raster, raw []byte) (*fx.Raster, error) {
	p := struct {
		Levels     int    `yaml:"levels"`
		Dither     string `yaml:"dither"`
		ColorSpace string `yaml:"color_space"`
	}{Levels: 8, Dither: "none", ColorSpace: "rgb"}
	if err := decode(raw, &p); err != nil {
		return nil, err
	}
	cfg := fx.DefaultPosterizeConfig()
	var err error
	if cfg.Dither, err = fx.ParseDitherMode(p.Dither); err != nil {
		return nil, err
	}
	if cfg.Space, err = fx.ParsePosterizeSpace(p.ColorSpace); err != nil {
		return nil, err
	}
	cfg.Levels = p.Levels
	return fx.Posterize(src, cfg)
}

func applyHistogram(src *fx.Raster, raw []byte) (*fx.Raster, error) {
	p := struct {
		RMode  string  `yaml:"r_mode"`
		GMode  string  `yaml:"g_mode"`
		BMode  string  `yaml:"b_mode"`
		RFreq  float64 `yaml:"r_freq"`
		GFreq  float64 `yaml:"g_freq"`
		BFreq  float64 `yaml:"b_freq"`
		RPhase float64 `yaml:"r_phase"`
		GPhase float64 `yaml:"g_phase"`
		BPhase float64 `yaml:"b_phase"`
		Gamma  float64 `yaml:"gamma_val"`
	}{
		RMode: "solarize", GMode: "log", BMode: "gamma",
		RFreq: 1, GFreq: 1, BFreq: 1, Gamma: 0.5,
	}
	if err := decode(raw, &p); err != nil {
		return nil, err
	}
	cfg := fx.DefaultHistogramGlitchConfig()
	var err error
	if cfg.Red.Mode, err = fx.ParseCurveMode(p.RMode); err != nil {
		return nil, err
	}
	if cfg.Green.Mode, err = fx.ParseCurveMode(p.GMode); err != nil {
		return nil, err
	}
	if cfg.Blue.Mode, err = fx.ParseCurveMode(p.BMode); err != nil {
		return nil, err
	}
	cfg.Red.Freq, cfg.Red.Phase = p.RFreq, p.RPhase
	cfg.Green.Freq, cfg.Green.Phase = p.GFreq, p.GPhase
	cfg.Blue.Freq, cfg.Blue.Phase = p.BFreq, p.BPhase
	cfg.Gamma = p.Gamma
	return fx.HistogramGlitch(src, cfg)
}

func applyCellular(src *fx.Raster, raw []byte) (*fx.Raster, error) {
	p := struct {
		CircleSize      int     `yaml:"circle_size"`
		Layout          string  `yaml:"layout"`
		NoiseType       string  `yaml:"noise_type"`
		BlendMode       string  `yaml:"blend_mode"`
		CenterNoise     float64 `yaml:"center_noise"`
		EdgeNoise       float64 `yaml:"edge_noise"`
		ReverseGradient bool    `yaml:"reverse_gradient"`
		Opacity         float64 `yaml:"opacity"`
		PalettePath     string  `yaml:"palette_path"`
		Seed            int64   `yaml:"seed"`
	}{
		CircleSize: 32, Layout: "grid", NoiseType: "rgb",
		BlendMode: "overlay", EdgeNoise: 1, Opacity: 1,
	}
	if err := decode(raw, &p); err != nil {
		return nil, err
	}
	cfg := fx.DefaultCellularNoiseConfig()
	var err error
	if cfg.Layout, err = fx.ParseCellLayout(p.Layout); err != nil {
		return nil, err
	}
	if cfg.Noise, err = fx.ParseCellNoiseType(p.NoiseType); err != nil {
		return nil, err
	}
	if cfg.Mode, err = fx.ParseCellBlendMode(p.BlendMode); err != nil {
		return nil, err
	}
	cfg.CircleSize = p.CircleSize
	cfg.CenterNoise = p.CenterNoise
	cfg.EdgeNoise = p.EdgeNoise
	cfg.ReverseGradient = p.ReverseGradient
	cfg.Opacity = p.Opacity
	cfg.PalettePath = p.PalettePath
	cfg.Seed = p.Seed
	return fx.CellularNoise(src, cfg)
}

func applyPixelate(src *fx.Raster, raw []byte) (*fx.Raster, error) {
	p := struct {
		PixelWidth  int    `yaml:"pixel_width"`
		PixelHeight int    `yaml:"pixel_height"`
		Attribute   string `yaml:"attribute"`
	}{PixelWidth: 8, PixelHeight: 8, Attribute: "color"}
	if err := decode(raw, &p); err != nil {
		return nil, err
	}
	cfg := fx.DefaultPixelateConfig()
	var err error
	if cfg.Attribute, err = fx.ParsePixelateAttribute(p.Attribute); err != nil {
		return nil, err
	}
	cfg.PixelWidth = p.PixelWidth
	cfg.PixelHeight = p.PixelHeight
	return fx.Pixelate(src, cfg)
}

func applyChannelShift(src *fx.Raster, raw []byte) (*fx.Raster, error) {
	p := struct {
		Mode            string `yaml:"mode"`
		ShiftAmount     int    `yaml:"shift_amount"`
		Direction       string `yaml:"direction"`
		CenteredChannel string `yaml:"centered_channel"`
	}{Mode: "shift", ShiftAmount: 10, Direction: "horizontal", CenteredChannel: "red"}
	if err := decode(raw, &p); err != nil {
		return nil, err
	}
	cfg := fx.DefaultChannelShiftConfig()
	var err error
	if cfg.Mode, err = fx.ParseShiftMode(p.Mode); err != nil {
		return nil, err
	}
	if cfg.Direction, err = fx.ParseShiftDirection(p.Direction); err != nil {
		return nil, err
	}
	if cfg.Centered, err = fx.ParseChannel(p.CenteredChannel); err != nil {
		return nil, err
	}
	cfg.ShiftAmount = p.ShiftAmount
	return fx.ChannelShift(src, cfg)
}

func applyJPEG(src *fx.Raster, raw []byte) (*fx.Raster, error) {
	p := struct {
		Intensity float64 `yaml:"intensity"`
	}{Intensity: 0.5}
	if err := decode(raw, &p); err != nil {
		return nil, err
	}
	return fx.JPEGArtifacts(src, fx.JPEGArtifactsConfig{Intensity: p.Intensity})
}
