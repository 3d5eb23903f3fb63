package main

import (
	"fmt"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tomz197/wormhole/internal/config"
	"github.com/tomz197/wormhole/internal/loop/desktop"
	"github.com/tomz197/wormhole/internal/loop/session"
	"github.com/tomz197/wormhole/internal/physics"

	loopconfig "github.com/tomz197/wormhole/internal/loop/config"
)

func main() {
	logger, closeLog, err := config.NewFileLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = closeLog() }()

	seed := config.GetEnvUint64("GAME_SEED", uint64(time.Now().UnixNano()))
	logger.Info("starting desktop game", "seed", seed)

	g := desktop.NewGame(session.Options{
		Bounds: physics.Bounds{Width: loopconfig.DefaultViewWidth, Height: loopconfig.DefaultViewHeight},
		Rand:   physics.NewRand(seed),
		Logger: logger,
	})

	ebiten.SetWindowSize(int(loopconfig.DefaultViewWidth), int(loopconfig.DefaultViewHeight))
	ebiten.SetWindowTitle("Wormhole")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil {
		logger.Error("game error", "err", err)
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}
