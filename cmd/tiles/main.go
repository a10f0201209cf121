package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"eight-way-tiles/internal/input"
	"eight-way-tiles/internal/machine"
	"eight-way-tiles/internal/server"
	"eight-way-tiles/internal/ui"
	"eight-way-tiles/internal/world"
)

const (
	defaultAddr = ":2222"
	hostKeyPath = "host_key"
)

type options struct {
	mode    string
	world   string
	name    string
	script  string
	gen     int64
	size    string
	frames  int
	route   string
	outPNG  string
	expect  string
	addr    string
	hostKey string
	debug   bool
	line    int
	tinted  bool
	scale   int
	logFile string
}

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)

	var o options
	flag.StringVar(&o.mode, "mode", "window", "front end: window, term, ssh or headless")
	flag.StringVar(&o.world, "world", "", "world JSON file or directory of worlds (default: identity world)")
	flag.StringVar(&o.name, "name", "", "world to show when -world is a directory")
	flag.StringVar(&o.script, "script", "", "Lua script building the world")
	flag.Int64Var(&o.gen, "gen", 0, "generate a terrain world from this seed")
	flag.StringVar(&o.size, "size", "32x16", "world size in tiles for -gen and -script")
	flag.IntVar(&o.frames, "frames", 0, "headless: frames to run (default: length of -route)")
	flag.StringVar(&o.route, "route", "", `joystick route, e.g. "R40 D20 DR10"`)
	flag.StringVar(&o.outPNG, "outpng", "", "headless: write the last frame as PNG")
	flag.StringVar(&o.expect, "expect", "", "headless: expected CRC32 of the screen (hex)")
	flag.StringVar(&o.addr, "addr", defaultAddr, "ssh: listen address (PORT overrides)")
	flag.StringVar(&o.hostKey, "hostkey", hostKeyPath, "ssh: host key file, created if missing")
	flag.BoolVar(&o.debug, "debug", false, "colour the border by raster handler phase")
	flag.IntVar(&o.line, "line", 0, "raster compare line 1..311 (0 = 250, the bottom border)")
	flag.BoolVar(&o.tinted, "tinted", false, "term/ssh: colour each character code")
	flag.IntVar(&o.scale, "scale", 0, "window: scale factor")
	flag.StringVar(&o.logFile, "log", "", "write log to this file")
	flag.Parse()

	if o.logFile != "" {
		f, err := os.OpenFile(o.logFile, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
		if err != nil {
			log.Fatalf("Open log: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	} else if o.mode == "term" {
		// The console owns the terminal.
		log.SetOutput(io.Discard)
	}

	tiles, err := loadWorld(o)
	if err != nil {
		log.Fatalf("World error: %v", err)
	}
	log.Printf("World loaded: %s (%dx%d tiles)", tiles.Name, tiles.WidthInTiles(), tiles.HeightInTiles())

	cfg := machine.Config{RasterLine: o.line, RasterDebug: o.debug}

	switch o.mode {
	case "window":
		err = runWindow(o, cfg, tiles)
	case "term":
		err = runTerm(o, cfg, tiles)
	case "ssh":
		err = runSSH(o, cfg, tiles)
	case "headless":
		var res result
		res, err = runHeadless(o, cfg, tiles)
		if res.frames > 0 {
			fmt.Printf("frames=%d view=%d,%d steps=%d crc32=%08x\n", res.frames, res.view.X, res.view.Y, res.steps, res.crc)
		}
	default:
		err = fmt.Errorf("unknown mode %q", o.mode)
	}
	if err != nil {
		log.Fatalf("%s: %v", o.mode, err)
	}
}

func loadWorld(o options) (*world.Store, error) {
	switch {
	case o.world != "":
		fi, err := os.Stat(o.world)
		if err != nil {
			return nil, err
		}
		if !fi.IsDir() {
			return world.Load(o.world)
		}
		all, err := world.LoadDir(o.world)
		if err != nil {
			return nil, err
		}
		for _, name := range world.Names(all) {
			log.Printf("World available: %s", name)
		}
		return world.Pick(all, o.name)
	case o.script != "":
		w, h, err := parseSize(o.size)
		if err != nil {
			return nil, err
		}
		return world.RunScript(o.script, w, h)
	case o.gen != 0:
		w, h, err := parseSize(o.size)
		if err != nil {
			return nil, err
		}
		return world.Generate(w, h, o.gen)
	}
	return world.Default(), nil
}

func joystick(o options, fallback input.Joystick) (input.Joystick, error) {
	if o.route == "" {
		return fallback, nil
	}
	return input.ParseRoute(o.route)
}

func runWindow(o options, cfg machine.Config, tiles *world.Store) error {
	joy, err := joystick(o, ui.Keyboard{})
	if err != nil {
		return err
	}
	m, err := machine.New(cfg, tiles, joy)
	if err != nil {
		return err
	}
	return ui.NewApp(ui.Config{Scale: o.scale}, m).Run()
}

func runTerm(o options, cfg machine.Config, tiles *world.Store) error {
	loop := machine.NewLoop(tiles, cfg)
	go loop.Run()
	defer loop.Stop()

	name := os.Getenv("USER")
	if name == "" {
		name = "console"
	}
	return server.ServeConsole(loop, os.Stdin, os.Stdout, name, o.tinted)
}

func runSSH(o options, cfg machine.Config, tiles *world.Store) error {
	// Generate host key if it doesn't exist
	if err := ensureHostKey(o.hostKey); err != nil {
		return fmt.Errorf("host key: %w", err)
	}

	loop := machine.NewLoop(tiles, cfg)
	go loop.Run()
	defer loop.Stop()

	listenAddr := o.addr
	if port := os.Getenv("PORT"); port != "" {
		listenAddr = ":" + port
	}
	srv := server.NewSSHServer(listenAddr, o.hostKey, loop)
	srv.Tinted = o.tinted
	log.Printf("Starting 8-way tiles, connect with: ssh -t -p %s YourName@localhost", strings.TrimPrefix(listenAddr, ":"))
	return srv.Start()
}

var errChecksum = errors.New("screen checksum mismatch")

func ensureHostKey(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil // key already exists
	}

	log.Println("Generating new host key...")
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return err
	}

	keyBytes, err := x509.MarshalPKCS8PrivateKey(priv)
	if err != nil {
		return err
	}

	pemBlock := &pem.Block{
		Type:  "PRIVATE KEY",
		Bytes: keyBytes,
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer f.Close()

	return pem.Encode(f, pemBlock)
}

func parseSize(s string) (int, int, error) {
	parts := strings.SplitN(s, "x", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid size %q (expected WxH)", s)
	}
	w, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid width %q", parts[0])
	}
	h, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid height %q", parts[1])
	}
	return w, h, nil
}
