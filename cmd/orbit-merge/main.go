package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/orbit-merge/audio"
	"github.com/lixenwraith/orbit-merge/config"
	"github.com/lixenwraith/orbit-merge/engine"
	"github.com/lixenwraith/orbit-merge/parameter"
	"github.com/lixenwraith/orbit-merge/physics"
	"github.com/lixenwraith/orbit-merge/physics/chipmunk"
	"github.com/lixenwraith/orbit-merge/render"
)

var (
	configFlag = flag.String("config", "", "Path to a TOML config file")
	debugFlag  = flag.Bool("debug", false, "Write a debug log to "+parameter.LogDir)
	seedFlag   = flag.Uint64("seed", 0, "RNG seed, 0 picks one from the clock")
)

// Overridable in tests
var (
	logDir      = parameter.LogDir
	logFileName = parameter.LogFileName
	maxLogSize  = int64(parameter.MaxLogSize)
)

// setupLogging routes the standard logger to a file in debug mode and discards it otherwise
// The terminal is in raw mode for the whole run, so nothing may reach stdout or stderr
func setupLogging(debugMode bool) *os.File {
	if !debugMode {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("orbit-merge-%s.log", time.Now().Format("20060102-150405")))
		_ = os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f
}

func newWorld(cfg config.PhysicsConfig) physics.World {
	if cfg.Backend == parameter.BackendChipmunk {
		return chipmunk.NewWorld()
	}
	return physics.NewCircleWorld(cfg.Solver)
}

func main() {
	var screen tcell.Screen

	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			if screen != nil {
				screen.Fini()
			}
			fmt.Fprintf(os.Stderr, "\n\x1b[31mORBIT-MERGE CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}

	session := engine.NewSession(cfg.Config, newWorld(cfg.Physics), engine.WithLogger(log.Default()))
	log.Printf("session ready: backend=%s seed=%d", cfg.Physics.Backend, cfg.Seed)

	// Audio is optional; the game runs silently when the device is unavailable
	soundManager := audio.NewSoundManager(cfg.Audio)
	if err := soundManager.Initialize(); err != nil {
		log.Printf("audio disabled: %v", err)
	} else {
		defer soundManager.Cleanup()
	}
	session.Subscribe(audio.NewEventHandler(soundManager))

	screen, err = tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create terminal screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	renderer := render.NewTerminalRenderer(screen)

	eventChan := make(chan tcell.Event, 256)
	quit := make(chan struct{})
	// Input polling uses raw goroutine as it interacts directly with terminal
	go func() {
		defer func() {
			if r := recover(); r != nil {
				screen.Fini()
				fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
				fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
				os.Exit(1)
			}
		}()

		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-quit:
				return
			}
		}
	}()
	defer close(quit)

	tickTicker := time.NewTicker(cfg.TickInterval)
	defer tickTicker.Stop()
	frameTicker := time.NewTicker(parameter.FrameUpdateInterval)
	defer frameTicker.Stop()

	renderer.Draw(session.Snapshot())

	for {
		select {
		case ev := <-eventChan:
			if !handleEvent(session, screen, ev) {
				log.Printf("quit at tick %d, score %d", session.TickCount(), session.Score())
				return
			}

		case <-tickTicker.C:
			session.Tick()

		case <-frameTicker.C:
			renderer.Draw(session.Snapshot())
		}
	}
}

// handleEvent applies one terminal event; it returns false when the player quits
func handleEvent(session *engine.Session, screen tcell.Screen, ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyEnter:
			session.OnInput()
		case tcell.KeyRune:
			switch ev.Rune() {
			case ' ':
				session.OnInput()
			case 'r', 'R':
				session.Reset()
			case 'q', 'Q':
				return false
			}
		}
	case *tcell.EventResize:
		screen.Sync()
	}
	return true
}
