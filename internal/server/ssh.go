package server

import (
	"fmt"
	"log"

	"github.com/gliderlabs/ssh"

	"eight-way-tiles/internal/machine"
)

// SSHServer wraps the SSH listener and loop integration.
type SSHServer struct {
	loop    *machine.Loop
	addr    string
	hostKey string

	// Tinted starts new sessions in colour-per-code mode.
	Tinted bool
}

// NewSSHServer creates a new SSH server bound to the given address.
func NewSSHServer(addr string, hostKey string, loop *machine.Loop) *SSHServer {
	return &SSHServer{
		loop:    loop,
		addr:    addr,
		hostKey: hostKey,
	}
}

// Start begins listening for SSH connections.
func (s *SSHServer) Start() error {
	server := &ssh.Server{
		Addr: s.addr,
		Handler: func(sess ssh.Session) {
			s.handleSession(sess)
		},
	}

	// Set host key
	if err := server.SetOption(ssh.HostKeyFile(s.hostKey)); err != nil {
		return fmt.Errorf("set host key: %w", err)
	}

	log.Printf("SSH server listening on %s", s.addr)
	return server.ListenAndServe()
}

func (s *SSHServer) handleSession(sess ssh.Session) {
	// Require PTY
	ptyReq, winCh, ok := sess.Pty()
	if !ok {
		fmt.Fprintln(sess, "Error: PTY required. Use: ssh -t ...")
		return
	}

	resize := make(chan Size)
	go func() {
		defer close(resize)
		for win := range winCh {
			resize <- Size{Width: win.Width, Height: win.Height}
		}
	}()

	err := Serve(s.loop, sess, Session{
		Name:   sess.User(),
		Size:   Size{Width: ptyReq.Window.Width, Height: ptyReq.Window.Height},
		Resize: resize,
		Tinted: s.Tinted,
	})
	if err != nil {
		log.Printf("session %s: %v", sess.User(), err)
	}
}
