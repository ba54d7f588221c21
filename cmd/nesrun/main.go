// Command nesrun is a thin SDL2 host: it opens a window, loads an iNES
// image, drives the console forward, and uploads whatever the PPU paints
// into a texture once per frame. It carries none of the teacher's
// multi-view debug UI (pattern/nametable viewers, audio, font-rendered
// overlays) — those are out of scope here; this is only the window+
// texture+keyboard loop the spec allows as an external collaborator.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"os"
	"os/signal"
	"runtime"
	"runtime/pprof"
	"syscall"
	"time"

	"github.com/flga/nes/nes"
	"github.com/veandco/go-sdl2/sdl"
)

func init() {
	runtime.LockOSThread()
}

// Config mirrors the teacher's cmd/vnes/main.go flag set: ROM path,
// strict/lenient PRG-write mode, trace output, zoom factor, and profiling.
type Config struct {
	ROMPath    string
	Lenient    bool
	Trace      string
	Zoom       int
	CPUProfile string
	MemProfile string
}

func parseFlags() Config {
	var cfg Config
	flag.BoolVar(&cfg.Lenient, "lenient-prg-writes", false, "accept CPU writes into $8000-$FFFF instead of ignoring them")
	flag.StringVar(&cfg.Trace, "trace", "", "write the emulator's log output to this path instead of stderr")
	flag.IntVar(&cfg.Zoom, "zoom", 3, "integer scale factor for the display window")
	flag.StringVar(&cfg.CPUProfile, "cpuprofile", "", "write cpu profile to file")
	flag.StringVar(&cfg.MemProfile, "memprofile", "", "write memory profile to file")
	flag.Parse()
	cfg.ROMPath = flag.Arg(0)
	return cfg
}

const (
	screenWidth  = 256
	screenHeight = 240
)

// pixelFramebuffer adapts an SDL streaming texture's locked pixel buffer to
// nes.Framebuffer, so the PPU can paint directly into GPU-uploadable memory
// without an intermediate image.RGBA copy. Pixel format is ABGR8888, matching
// the texture created in run.
type pixelFramebuffer struct {
	pixels []byte
	pitch  int
}

func (t *pixelFramebuffer) Set(x, y int, c color.RGBA) {
	off := y*t.pitch + x*4
	t.pixels[off+0] = c.R
	t.pixels[off+1] = c.G
	t.pixels[off+2] = c.B
	t.pixels[off+3] = 0xFF
}

func loadROM(console *nes.Console, path string, lenient bool) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("nesrun: unable to open rom: %w", err)
	}
	defer f.Close()

	var opts []nes.LoadOption
	if lenient {
		opts = append(opts, nes.WithLenientPRGWrites())
	}
	return console.Load(f, opts...)
}

var keyMap = map[sdl.Keycode]nes.Button{
	sdl.K_z:      nes.ButtonA,
	sdl.K_x:      nes.ButtonB,
	sdl.K_RETURN: nes.ButtonStart,
	sdl.K_RSHIFT: nes.ButtonSelect,
	sdl.K_UP:     nes.ButtonUp,
	sdl.K_DOWN:   nes.ButtonDown,
	sdl.K_LEFT:   nes.ButtonLeft,
	sdl.K_RIGHT:  nes.ButtonRight,
}

func run(cfg Config) error {
	out := os.Stderr
	if cfg.Trace != "" {
		f, err := os.Create(cfg.Trace)
		if err != nil {
			return fmt.Errorf("nesrun: unable to create trace file: %w", err)
		}
		defer f.Close()
		out = f
	}
	log := nes.NewLogger(out)

	console := nes.New(log)
	if cfg.ROMPath != "" {
		if err := loadROM(console, cfg.ROMPath, cfg.Lenient); err != nil {
			return err
		}
	}

	if err := sdl.Init(sdl.INIT_GAMECONTROLLER | sdl.INIT_JOYSTICK | sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return fmt.Errorf("nesrun: unable to init sdl: %w", err)
	}
	defer sdl.Quit()

	window, err := sdl.CreateWindow(
		"nesrun",
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(screenWidth*cfg.Zoom), int32(screenHeight*cfg.Zoom),
		sdl.WINDOW_SHOWN,
	)
	if err != nil {
		return fmt.Errorf("nesrun: unable to create window: %w", err)
	}
	defer window.Destroy()

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		return fmt.Errorf("nesrun: unable to create renderer: %w", err)
	}
	defer renderer.Destroy()

	texture, err := renderer.CreateTexture(sdl.PIXELFORMAT_ABGR8888, sdl.TEXTUREACCESS_STREAMING, screenWidth, screenHeight)
	if err != nil {
		return fmt.Errorf("nesrun: unable to create texture: %w", err)
	}
	defer texture.Destroy()

	sigchan := make(chan os.Signal, 1)
	signal.Notify(sigchan, os.Interrupt, syscall.SIGTERM)

	var buttons [2]nes.Buttons

	frameInterval := time.Second / 60
	running := true
	for running {
		select {
		case <-sigchan:
			running = false
		default:
		}

		for evt := sdl.PollEvent(); evt != nil; evt = sdl.PollEvent() {
			switch e := evt.(type) {
			case *sdl.QuitEvent:
				running = false
			case *sdl.KeyboardEvent:
				if e.Keysym.Sym == sdl.K_ESCAPE && e.Type == sdl.KEYUP {
					running = false
					continue
				}
				if btn, ok := keyMap[e.Keysym.Sym]; ok {
					buttons[0][btn] = e.Type == sdl.KEYDOWN
				}
			}
		}
		console.SetButtons(0, buttons[0])
		console.SetButtons(1, buttons[1])

		pixels, pitch, err := texture.Lock(nil)
		if err != nil {
			return fmt.Errorf("nesrun: unable to lock texture: %w", err)
		}
		img := &pixelFramebuffer{pixels: pixels, pitch: pitch}

		if console.Loaded() {
			startFrame := console.PPU.Frame
			for console.PPU.Frame == startFrame {
				if err := console.Clock(img); err != nil {
					texture.Unlock()
					return fmt.Errorf("nesrun: emulation halted: %w", err)
				}
			}
		}
		texture.Unlock()

		renderer.Clear()
		renderer.Copy(texture, nil, nil)
		renderer.Present()

		time.Sleep(frameInterval)
	}

	return nil
}

func main() {
	cfg := parseFlags()

	if cfg.CPUProfile != "" {
		f, err := os.Create(cfg.CPUProfile)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		defer f.Close()
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	if err := run(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if cfg.MemProfile != "" {
		f, err := os.Create(cfg.MemProfile)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}
		defer f.Close()
		runtime.GC()
		pprof.WriteHeapProfile(f)
	}
}
