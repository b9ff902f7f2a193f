package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/william-cutler/platformer/audio"
	"github.com/william-cutler/platformer/engine"
	"github.com/william-cutler/platformer/entity"
	"github.com/william-cutler/platformer/level"
	"github.com/william-cutler/platformer/logging"
	"github.com/william-cutler/platformer/metrics"
	"github.com/william-cutler/platformer/parameter"
	"github.com/william-cutler/platformer/render"
)

var (
	configFlag  = flag.String("config", "", "tuning YAML file (falls back to $"+parameter.ConfigEnv+")")
	levelFlag   = flag.String("level", "", "level YAML file; a generated level is used when empty")
	seedFlag    = flag.Int64("seed", 0, "seed for the generated level (0 picks one from the clock)")
	widthFlag   = flag.Int("width", 200, "generated level width in blocks")
	debugFlag   = flag.Bool("debug", false, "write debug logs to platformer.log")
	metricsFlag = flag.String("metrics", "", "serve Prometheus metrics on this address, e.g. :2112")
	muteFlag    = flag.Bool("mute", false, "start with audio muted")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "platformer: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	opts := logging.Options{}
	if *debugFlag {
		opts = logging.Options{Level: "debug", File: "platformer.log"}
	}
	log, logCloser, err := logging.Setup(opts)
	if err != nil {
		return err
	}
	defer logCloser.Close()

	tuning, err := parameter.Load(*configFlag)
	if err != nil {
		return err
	}

	world, err := loadWorld(tuning, log)
	if err != nil {
		return err
	}

	game := engine.NewGame(tuning, world, log)

	collector := metrics.NewCollector(game.Player().Health().Current)
	game.Subscribe(collector)
	if *metricsFlag != "" {
		srv := collector.Serve(*metricsFlag, log)
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			_ = srv.Shutdown(ctx)
		}()
	}

	audioCfg := audio.LoadConfig()
	sound := audio.NewSoundManager(audioCfg, log)
	if err := sound.Initialize(); err != nil {
		log.WithError(err).Warn("audio unavailable, continuing without sound")
	}
	defer sound.Cleanup()
	sound.SetMuted(*muteFlag)
	game.Subscribe(sound)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()

	// Panic recovery: restore the terminal before printing the crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mPLATFORMER CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	view := render.NewTerminal(screen)
	view.SetMuted(*muteFlag)

	draw := func(g *engine.Game) { view.Render(g) }
	sched := engine.NewClockScheduler(game, tuning.TickDuration, draw)
	sched.Submit(draw)
	sched.Start()
	defer sched.Stop()

	ctl := newControls(sched, view, sound)
	return loop(screen, sched, ctl, log)
}

// loop pumps terminal events into the controls until quit or a game loop crash
func loop(screen tcell.Screen, sched *engine.ClockScheduler, ctl *controls, log logrus.FieldLogger) error {
	events := make(chan tcell.Event, 256)
	quit := make(chan struct{})
	defer close(quit)
	go screen.ChannelEvents(events, quit)

	ticker := time.NewTicker(parameter.FrameUpdateInterval)
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if ctl.handle(ev) {
				log.Info("quit requested")
				return nil
			}
		case <-ticker.C:
			ctl.tick()
		case <-sched.Done():
			return sched.Err()
		}
	}
}

// loadWorld builds the level file when given, otherwise a generated level
func loadWorld(t parameter.Tuning, log logrus.FieldLogger) (entity.World, error) {
	var lvl level.Level
	if *levelFlag != "" {
		var err error
		if lvl, err = level.Load(*levelFlag); err != nil {
			return entity.World{}, err
		}
	} else {
		seed := *seedFlag
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		lvl = level.Generate(seed, *widthFlag)
		log.WithFields(logrus.Fields{"seed": seed, "width": *widthFlag}).Info("level generated")
	}
	return level.Build(t, lvl.Placements)
}
