package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"softraster/internal/camera"
	"softraster/internal/config"
	"softraster/internal/encode"
	"softraster/internal/framebuffer"
	"softraster/internal/image2d"
	"softraster/internal/mathutil"
	"softraster/internal/model"
	"softraster/internal/pixel"
	"softraster/internal/shader"
	"softraster/internal/texture"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	modelPath := flag.String("model", "", "Path to a .dmd model file")
	texturePath := flag.String("texture", "", "Path to an albedo image (png/jpeg/tga/bmp)")
	outputPath := flag.String("output", "", "Output path; a .png suffix writes PNG, anything else WebP (default: render.webp)")
	spin := flag.Float64("spin", 0, "Model rotation about the Y axis, degrees")
	tilt := flag.Float64("tilt", 0, "Model rotation about the X axis, degrees")

	flag.Parse()

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	cfg.Resolve(config.Flags{OutputPath: *outputPath})

	if *modelPath == "" {
		fmt.Fprintln(os.Stderr, "Error: -model is required")
		os.Exit(1)
	}

	modelBytes, err := os.ReadFile(*modelPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading model: %v\n", err)
		os.Exit(1)
	}

	mdl, ok := model.BuildModelFromDMD(modelBytes)
	if !ok {
		fmt.Fprintln(os.Stderr, "Error: failed to decode model")
		os.Exit(1)
	}
	if len(mdl.Units) == 0 {
		fmt.Fprintln(os.Stderr, "Error: model has no render units")
		os.Exit(1)
	}

	texCache := texture.NewCache()
	albedo := blankAlbedo()
	if *texturePath != "" {
		if img := texCache.Resolve(*texturePath); img != nil {
			albedo = img
		} else {
			fmt.Fprintf(os.Stderr, "Warning: texture %q could not be loaded, using a blank 1x1 albedo\n", *texturePath)
		}
	}
	fmt.Printf("Model: %d render unit(s)\n", len(mdl.Units))

	fb := framebuffer.New(cfg.Width, cfg.Height)
	fb.Clear(pixel.RGBA8{R: cfg.ClearColorR, G: cfg.ClearColorG, B: cfg.ClearColorB, A: 255}, cfg.ClearDepth)

	cam := camera.New()
	cam.Position = mathutil.Vec3{0, 0, 3}

	aspect := float32(cfg.Width) / float32(cfg.Height)
	proj := mathutil.Perspective(mathutil.Deg2Rad(60), aspect, 0.1, 100)
	view := cam.ViewMatrix()

	rot := mathutil.Mat3Mul(
		mathutil.RotY(mathutil.Deg2Rad(float32(*spin))),
		mathutil.RotX(mathutil.Deg2Rad(float32(*tilt))),
	)
	modelMat := mathutil.FromMat3Translation(rot, mathutil.Vec3{})

	mvp := mathutil.Mat4Mul(proj, mathutil.Mat4Mul(view, modelMat))

	sh := shader.New()

	// Each unit's material names its own albedo relative to the model file;
	// units without one (or with a missing file) share the -texture image.
	modelDir := filepath.Dir(*modelPath)

	start := time.Now()
	for i := range mdl.Units {
		unit := &mdl.Units[i]
		tex := albedo
		if unit.Material.AlbedoPath != "" {
			if resolved := texCache.Resolve(filepath.Join(modelDir, unit.Material.AlbedoPath)); resolved != nil {
				tex = resolved
			}
		}
		unit.Material.AlbedoTex = tex
		sh.Draw(mvp, unit.Mesh, tex, fb)
	}
	elapsed := time.Since(start)

	fmt.Printf("Rendered %dx%d in %.3fs\n", cfg.Width, cfg.Height, elapsed.Seconds())

	if strings.HasSuffix(strings.ToLower(cfg.OutputPath), ".png") {
		err = encode.EncodePNG(fb.Color, cfg.OutputPath)
	} else {
		err = encode.EncodeWebP(fb.Color, cfg.OutputPath)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding output: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %s\n", cfg.OutputPath)
}

// blankAlbedo returns a 1x1 white texture, used when -texture is empty or
// fails to decode so shader.Draw still has something to sample.
func blankAlbedo() *image2d.Image2D[pixel.RGBA8] {
	img := image2d.New[pixel.RGBA8](1, 1)
	img.Set(0, 0, pixel.RGBA8{R: 255, G: 255, B: 255, A: 255})
	return img
}
