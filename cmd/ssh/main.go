package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"
	"github.com/tomz197/wormhole/internal/config"
	"github.com/tomz197/wormhole/internal/loop/client"
	"github.com/tomz197/wormhole/internal/physics"
)

const (
	defaultHost        = "::"
	defaultPort        = "2222"
	defaultHostKeyPath = "/app/keys/host_key"

	shutdownGrace = 15 * time.Second // players watch the countdown screen
	closeTimeout  = 5 * time.Second
)

// games tracks the running sessions so shutdown can wait for their
// countdown screens to finish.
type games struct {
	ctx    context.Context
	wg     sync.WaitGroup
	seed   uint64
	ids    atomic.Uint64
	live   atomic.Int64
	logger *log.Logger
}

func main() {
	logger := config.NewLogger(os.Stderr)
	if err := run(logger); err != nil {
		logger.Fatal("ssh server failed", "err", err)
	}
}

func run(logger *log.Logger) error {
	addr := net.JoinHostPort(config.GetEnv("SSH_HOST", defaultHost), config.GetEnv("SSH_PORT", defaultPort))
	hostKeyPath := config.GetEnv("SSH_HOST_KEY", defaultHostKeyPath)
	logger.Info("ssh config", "addr", addr, "hostKeyPath", hostKeyPath)

	gameCtx, cancelGames := context.WithCancel(context.Background())
	defer cancelGames()
	g := &games{
		ctx:    gameCtx,
		seed:   config.GetEnvUint64("GAME_SEED", uint64(time.Now().UnixNano())),
		logger: logger,
	}

	opts := []ssh.Option{
		wish.WithAddress(addr),
		wish.WithMiddleware(
			g.middleware,
			activeterm.Middleware(),
			logging.MiddlewareWithLogger(logger),
		),
		ssh.WrapConn(noDelay),
	}
	if hostKeyPath != "" {
		opts = append(opts, wish.WithHostKeyPath(hostKeyPath))
	}
	s, err := wish.NewServer(opts...)
	if err != nil {
		return fmt.Errorf("create server: %w", err)
	}

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("starting ssh server", "addr", addr)
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case err := <-serveErr:
		return fmt.Errorf("serve: %w", err)
	case <-sigCtx.Done():
	}

	logger.Info("shutting down, notifying players", "players", g.live.Load())
	cancelGames()
	g.wait(shutdownGrace)

	ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// noDelay sets TCP_NODELAY so key presses are not batched.
func noDelay(_ ssh.Context, conn net.Conn) net.Conn {
	if tcp, ok := conn.(*net.TCPConn); ok {
		_ = tcp.SetNoDelay(true)
	}
	return conn
}

// wait blocks until every session has ended or timeout passes.
func (g *games) wait(timeout time.Duration) {
	finished := make(chan struct{})
	go func() {
		g.wg.Wait()
		close(finished)
	}()
	select {
	case <-finished:
		g.logger.Info("all players disconnected")
	case <-time.After(timeout):
		g.logger.Warn("shutdown grace period elapsed", "players", g.live.Load())
	}
}

// middleware runs one single-player game per SSH session.
func (g *games) middleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		pty, winCh, ok := sess.Pty()
		if !ok {
			fmt.Fprintln(sess.Stderr(), "a terminal is required, connect with: ssh -t")
			return
		}

		g.wg.Add(1)
		g.live.Add(1)
		defer func() {
			g.live.Add(-1)
			g.wg.Done()
		}()
		n := g.ids.Add(1)

		sessLog := g.logger.With("user", sess.User(), "session", n)
		sessLog.Info("new game session", "terminal", pty.Term, "width", pty.Window.Width, "height", pty.Window.Height)

		win := newWindow(pty.Window.Width, pty.Window.Height)
		go win.follow(winCh)

		c := client.NewClient(bufio.NewReader(sess), sess, client.ClientOptions{
			TermSizeFunc: win.Size,
			Logger:       sessLog,
			Rand:         physics.NewRand(g.seed + n),
			Inactivity:   true,
		})
		if err := c.Run(g.ctx); err != nil {
			sessLog.Error("game error", "err", err)
		}

		sessLog.Info("session ended")
		next(sess)
	}
}
