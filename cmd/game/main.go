package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"github.com/pkg/profile"
	"golang.org/x/term"

	"github.com/tomz197/pastelshooter/internal/config"
	"github.com/tomz197/pastelshooter/internal/draw"
	"github.com/tomz197/pastelshooter/internal/input"
	"github.com/tomz197/pastelshooter/internal/loop"
	loopconfig "github.com/tomz197/pastelshooter/internal/loop/config"
	"github.com/tomz197/pastelshooter/internal/tui"
)

func main() {
	if err := config.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to load .env: %v\n", err)
	}

	renderer := flag.String("renderer", config.GetEnv("RENDERER", "ansi"), "frontend: ansi or tcell")
	seed := flag.Int64("seed", 0, "random seed (0 picks one from the clock)")
	prof := flag.String("profile", "off", "profiling: cpu, mem or off")
	stars := flag.Int("stars", config.GetEnvInt("STAR_COUNT", loopconfig.StarCount), "number of background stars")
	fps := flag.Int("fps", config.GetEnvInt("FPS", loopconfig.TargetFPS), "frame rate cap")
	validate := flag.Bool("validate", false, "check session invariants every frame")
	flag.Parse()

	logger := config.NewLogger("game")
	if err := run(logger, *renderer, *seed, *prof, *stars, *fps, *validate); err != nil {
		logger.Error("Game error", "err", err)
		os.Exit(1)
	}
}

func run(logger *log.Logger, renderer string, seed int64, prof string, stars, fps int, validate bool) error {
	switch prof {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "off":
	default:
		return fmt.Errorf("unknown profile mode %q", prof)
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	session := loop.NewSession(loop.SessionOptions{
		Rand:      rand.New(rand.NewSource(seed)),
		StarCount: stars,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The frontends own the terminal while playing, so session logs go to
	// LOG_FILE or nowhere.
	playLogger, closeLog, err := config.LogFile(logger, config.GetEnv("LOG_FILE", ""))
	if err != nil {
		return err
	}
	defer closeLog()

	opts := loop.Options{Logger: playLogger, Validate: validate}
	hold := config.GetEnvDuration("KEY_HOLD", input.DefaultHoldDuration)
	clock := loop.NewFrameClock(fps)

	switch renderer {
	case "ansi":
		err = runANSI(ctx, session, clock, hold, opts)
	case "tcell":
		err = runTcell(ctx, session, clock, hold, opts)
	default:
		err = fmt.Errorf("unknown renderer %q", renderer)
	}
	if err != nil {
		return err
	}

	st := session.Stats()
	logger.Info("Thanks for playing", "seed", seed, "best", st.Best, "kills", st.Kills)
	return nil
}

// runANSI plays on the raw terminal using escape sequences.
func runANSI(ctx context.Context, s *loop.Session, clock loop.Clock, hold time.Duration, opts loop.Options) error {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	fe := draw.NewTerminal(bufio.NewReader(os.Stdin), os.Stdout, draw.TerminalOptions{
		HoldDuration: hold,
	})
	fe.Start()
	defer fe.Close()

	return loop.Run(ctx, s, fe, clock, opts)
}

// runTcell plays on a tcell screen.
func runTcell(ctx context.Context, s *loop.Session, clock loop.Clock, hold time.Duration, opts loop.Options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	fe := tui.New(screen, tui.Options{HoldDuration: hold})
	return loop.Run(ctx, s, fe, clock, opts)
}
