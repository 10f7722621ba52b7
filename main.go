package main

import (
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"runtime"

	"github.com/thelolagemann/dmgcore/internal/boot"
	"github.com/thelolagemann/dmgcore/internal/cartridge"
	"github.com/thelolagemann/dmgcore/internal/config"
	"github.com/thelolagemann/dmgcore/internal/display"
	"github.com/thelolagemann/dmgcore/internal/display/sdl"
	"github.com/thelolagemann/dmgcore/internal/gameboy"
	"github.com/thelolagemann/dmgcore/internal/monitor"
	"github.com/thelolagemann/dmgcore/pkg/log"
	"github.com/thelolagemann/dmgcore/pkg/utils"
)

func init() {
	// SDL must be driven from the main thread
	runtime.LockOSThread()
}

func main() {
	cfg, err := config.Parse(os.Args[0], os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger := log.New(log.WithLevel(cfg.LogLevel))
	if err := run(cfg, logger); err != nil {
		logger.Fatalf("%v", err)
	}
}

func run(cfg *config.Config, logger log.Logger) error {
	// a missing or unreadable rom is fatal
	loader := cartridge.NewLoader(logger)
	loader.Init(cfg.ROMPath)
	defer loader.Destroy()

	opts := []gameboy.Opt{
		gameboy.WithLogger(logger),
		gameboy.WithDelay(cfg.Delay),
	}

	if cfg.BootROMPath != "" {
		b, err := utils.LoadFile(cfg.BootROMPath)
		if err != nil {
			return fmt.Errorf("unable to load boot rom: %w", err)
		}
		if len(b) != boot.Size {
			return fmt.Errorf("unable to load boot rom: expected %d bytes, got %d", boot.Size, len(b))
		}
		opts = append(opts, gameboy.WithBootROM(boot.LoadBootROM(b)))
	}

	if cfg.MonitorAddr != "" {
		mon := monitor.New(logger, monitor.Options{Compression: cfg.MonitorCompression})
		defer mon.Close()

		srv := &http.Server{Addr: cfg.MonitorAddr, Handler: mon.Handler()}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Errorf("monitor: %v", err)
			}
		}()
		defer srv.Close()

		logger.Infof("monitor listening on %s", cfg.MonitorAddr)
		opts = append(opts, gameboy.WithPublisher(mon))
	}

	gb := gameboy.New(loader.Bytes(), opts...)
	defer gb.Destroy()

	var d display.Display
	if cfg.Headless {
		d = display.NewHeadless(cfg.Frames)
	} else {
		w, err := sdl.New()
		if err != nil {
			return err
		}
		d = w
	}
	defer d.Close()

	return gb.Run(d)
}
