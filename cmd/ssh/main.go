package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"
	"github.com/google/uuid"

	"github.com/tomz197/pastelshooter/internal/config"
	"github.com/tomz197/pastelshooter/internal/draw"
	"github.com/tomz197/pastelshooter/internal/input"
	"github.com/tomz197/pastelshooter/internal/loop"
	loopconfig "github.com/tomz197/pastelshooter/internal/loop/config"
)

const (
	defaultHost        = "::"
	defaultPort        = "2222"
	defaultHostKeyPath = "/app/keys/host_key"
)

// host holds what every SSH session shares.
type host struct {
	logger *log.Logger
	hold   time.Duration
	idle   time.Duration
	ctx    context.Context // Cancelled on server shutdown
}

func main() {
	if err := config.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to load .env: %v\n", err)
	}

	logger := config.NewLogger("ssh")
	hostAddr := config.GetEnv("SSH_HOST", defaultHost)
	port := config.GetEnv("SSH_PORT", defaultPort)
	hostKeyPath := config.GetEnv("SSH_HOST_KEY", defaultHostKeyPath)
	logger.Info("SSH config", "host", hostAddr, "port", port, "hostKeyPath", hostKeyPath)

	ctx, cancelSessions := context.WithCancel(context.Background())
	defer cancelSessions()

	h := &host{
		logger: logger,
		hold:   config.GetEnvDuration("KEY_HOLD", input.DefaultHoldDuration),
		idle:   config.GetEnvDuration("IDLE_TIMEOUT", loopconfig.InactivityDisconnect),
		ctx:    ctx,
	}

	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(hostAddr, port)),
		wish.WithMiddleware(
			h.gameMiddleware,
			activeterm.Middleware(),
			logging.StructuredMiddlewareWithLogger(logger, log.InfoLevel),
		),
		// Set TCP_NODELAY to reduce latency for game input
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}

	if hostKeyPath != "" {
		opts = append(opts, wish.WithHostKeyPath(hostKeyPath))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		logger.Fatal("Failed to create server", "err", err)
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	logger.Info("Starting SSH server", "addr", net.JoinHostPort(hostAddr, port))
	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			logger.Fatal("Server error", "err", err)
		}
	}()

	<-done
	logger.Info("Shutting down server...")

	// Ends every running game at its next frame boundary.
	cancelSessions()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Shutdown error", "err", err)
	}
}

// gameMiddleware runs one independent game per SSH session.
func (h *host) gameMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		pty, winCh, ok := sess.Pty()
		if !ok {
			fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
			return
		}

		id := uuid.New().String()
		logger := h.logger.With("session", id, "user", sess.User())
		logger.Info("New game session", "terminal", pty.Term, "width", pty.Window.Width, "height", pty.Window.Height)

		window := newWindowSize(pty.Window)
		go window.follow(winCh)

		ctx, cancel := context.WithCancel(sess.Context())
		defer cancel()
		stop := context.AfterFunc(h.ctx, cancel)
		defer stop()

		if err := h.play(ctx, sess, window.size, logger); err != nil {
			logger.Error("Game error", "err", err)
		}

		logger.Info("Session ended")
		next(sess)
	}
}

// play runs a fresh session until the player quits, idles out or disconnects.
func (h *host) play(ctx context.Context, sess ssh.Session, size draw.TermSizeFunc, logger *log.Logger) error {
	session := loop.NewSession(loop.SessionOptions{
		Rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	})

	fe := draw.NewTerminal(bufio.NewReader(sess), sess, draw.TerminalOptions{
		SizeFunc:     size,
		HoldDuration: h.hold,
	})
	fe.Start()
	defer fe.Close()

	err := loop.Run(ctx, session, fe, loop.NewFrameClock(loopconfig.TargetFPS), loop.Options{
		Logger:      logger,
		IdleTimeout: h.idle,
	})

	st := session.Stats()
	logger.Info("Game over", "best", st.Best, "kills", st.Kills, "resets", st.Resets)
	return err
}
