// Command spin renders an orbiting view of a lit, textured cube to a
// sequence of WebP frames. It is the end-to-end demo for the linmath
// package: per-frame orientations come from quaternions, the camera from a
// Mat3, and the rasterizer runs entirely on the library types.
package main

import (
	"flag"
	"fmt"
	"image"
	"math"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"linmath"
	"linmath/internal/config"
	"linmath/internal/render"

	"github.com/HugoSmits86/nativewebp"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	outputDir := flag.String("out", "", "Output directory (default: frames)")
	frames := flag.Int("frames", 0, "Number of frames in the orbit (default: 36)")
	size := flag.Int("size", 0, "Frame edge length in pixels (default: 512)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	texture := flag.String("texture", "", "Optional TGA/PNG/JPEG texture (default: checkerboard)")

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

	cfg.Resolve(config.Flags{
		OutputDir: *outputDir,
		Texture:   *texture,
		Size:      *size,
		Frames:    *frames,
		Workers:   *workers,
	})

	tex := render.Checkerboard(256, 8)
	if cfg.Texture != "" {
		loaded, err := render.LoadTexture(cfg.Texture)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading texture: %v\n", err)
			os.Exit(1)
		}
		tex = loaded
	}

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output dir: %v\n", err)
		os.Exit(1)
	}

	mesh := render.Cube()
	view := linmath.Mat3RotationX(linmath.Deg2Rad(-cfg.TiltDeg))
	opt := render.Options{
		Size:        cfg.Size,
		Supersample: cfg.Supersample,
		Texture:     tex,
		Light:       render.DefaultLight(),
	}

	start := time.Now()
	errs := renderAll(cfg, mesh, view, opt)

	failed := 0
	for i, err := range errs {
		if err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "frame %d: %v\n", i, err)
		}
	}
	fmt.Printf("Rendered %d/%d frames to %s in %.1fs\n",
		cfg.Frames-failed, cfg.Frames, cfg.OutputDir, time.Since(start).Seconds())
	if failed > 0 {
		os.Exit(1)
	}
}

// renderAll renders every frame of the orbit through a worker pool.
func renderAll(cfg config.Config, mesh render.Mesh, view linmath.Mat3, opt render.Options) []error {
	total := cfg.Frames
	errs := make([]error, total)
	var processed atomic.Int64

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				fmt.Printf("  [%d/%d] frames\n", processed.Load(), total)
			}
		}
	}()

	frameChan := make(chan int, cfg.Workers*2)
	var wg sync.WaitGroup

	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range frameChan {
				errs[idx] = renderFrame(cfg, mesh, view, opt, idx)
				processed.Add(1)
			}
		}()
	}

	for i := 0; i < total; i++ {
		frameChan <- i
	}
	close(frameChan)

	wg.Wait()
	close(done)

	return errs
}

func renderFrame(cfg config.Config, mesh render.Mesh, view linmath.Mat3, opt render.Options, idx int) error {
	yaw := 2 * math.Pi * float64(idx) / float64(cfg.Frames)
	orientation := linmath.QuatFromEuler(linmath.Vec3{X: yaw}, linmath.EulerYXZ)

	img := render.Frame(mesh, orientation, view, opt)
	return writeWebP(filepath.Join(cfg.OutputDir, fmt.Sprintf("frame_%03d.webp", idx)), img)
}

func writeWebP(path string, img *image.NRGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("spin: create %s: %w", path, err)
	}
	defer f.Close()

	if err := nativewebp.Encode(f, img, nil); err != nil {
		return fmt.Errorf("spin: encode %s: %w", path, err)
	}
	return nil
}
