package core

import (
	"context"
	"crypto/subtle"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gliderlabs/ssh"
	"github.com/sirupsen/logrus"

	"github.com/steuyve/lsh/core/builtin"
	"github.com/steuyve/lsh/core/config"
	"github.com/steuyve/lsh/core/launch"
	"github.com/steuyve/lsh/core/sessionlog"
)

// Server exposes the interpreter over SSH: every accepted session gets
// its own Shell wired to the session's streams. The working directory
// stays process-wide, so concurrent sessions share it just like
// consecutive commands in a single session do.
type Server struct {
	config *config.Configuration
	ssh    *ssh.Server
}

func NewServer(cfg *config.Configuration) (*Server, error) {
	s := &Server{config: cfg}
	s.ssh = &ssh.Server{
		Addr: fmt.Sprintf(":%d", cfg.SSH.Port),
		Handler: func(sess ssh.Session) {
			s.handle(sess)
		},
		PasswordHandler: func(ctx ssh.Context, password string) bool {
			return acceptPassword(cfg.SSH.Password, password)
		},
	}

	if keyPath := cfg.SSH.HostKey; keyPath != "" {
		if err := s.ssh.SetOption(ssh.HostKeyFile(keyPath)); err != nil {
			return nil, fmt.Errorf("host key %s: %w", keyPath, err)
		}
	}

	return s, nil
}

// acceptPassword compares passwords in constant time. An empty
// configured password rejects every login.
func acceptPassword(configured, offered string) bool {
	if configured == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(configured), []byte(offered)) == 1
}

func (s *Server) ListenAndServe() error {
	return s.ssh.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.ssh.Shutdown(ctx)
}

func (s *Server) handle(sess ssh.Session) {
	logger := logrus.WithFields(logrus.Fields{
		"user":   sess.User(),
		"remote": sess.RemoteAddr(),
	})
	logger.Info("session opened")
	defer logger.Info("session closed")

	pty, winch, isPty := sess.Pty()
	width := pty.Window.Width
	go func() {
		for window := range winch {
			width = window.Width
		}
	}()

	var recorder *sessionlog.Recorder
	if dir := s.config.LogDir; dir != "" {
		fd, err := OpenSessionLog(dir)
		if err != nil {
			logger.WithError(err).Warn("session log unavailable")
		} else {
			defer fd.Close()
			recorder = sessionlog.New(fd)
		}
	}

	shell, err := NewShell(Options{
		Stdin:      sess,
		Stdout:     sess,
		Stderr:     sess.Stderr(),
		IsTerminal: isPty,
		Width: func() int {
			return width
		},
		Getenv: func(key string) string {
			if key == EnvUser {
				return sess.User()
			}
			return os.Getenv(key)
		},
		Launcher: &launch.Stream{Stdin: sess, Stdout: sess, Stderr: sess.Stderr()},
		Log:      recorder,
		NoColor:  SuppressColor(s.config.Color, isPty),
	})
	if err != nil {
		fmt.Fprintf(sess.Stderr(), "lsh: %v\n", err)
		sess.Exit(1)
		return
	}
	defer shell.Close()

	status, err := shell.RunStartup(s.config.Startup)
	switch {
	case err != nil:
		logger.WithError(err).Warn("startup dispatch failed")
		sess.Exit(1)
		return
	case status == builtin.Terminate:
		sess.Exit(0)
		return
	}

	if err := shell.Run(); err != nil {
		logger.WithError(err).Warn("session ended with error")
		sess.Exit(1)
		return
	}
	sess.Exit(0)
}

// OpenSessionLog creates a timestamped log file under dir.
func OpenSessionLog(dir string) (*os.File, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, err
	}
	name := fmt.Sprintf("%s.jsonl", time.Now().Format(time.RFC3339))
	return os.Create(filepath.Join(dir, name))
}
