package mcp

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

type Server struct {
	version string
	log     logrus.FieldLogger
}

// Option customizes a Server.
type Option func(*Server)

// WithLogger overrides the diagnostic logger. Diagnostics never go to the
// protocol stream.
func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Server) {
		if l != nil {
			s.log = l
		}
	}
}

// NewServer returns a server that announces version in its ready event.
func NewServer(version string, opts ...Option) *Server {
	s := &Server{version: version, log: logrus.StandardLogger()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type readResult struct {
	line []byte
	err  error
}

// Serve announces readiness on w and then answers newline-delimited JSON
// requests read from r, one at a time, until r reaches EOF or ctx is
// canceled. Both cases return nil.
func (s *Server) Serve(ctx context.Context, r io.Reader, w io.Writer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	bw := bufio.NewWriter(w)
	if err := writeNDJSON(bw, newReadyEvent(s.version)); err != nil {
		return fmt.Errorf("write ready event: %w", err)
	}
	s.log.WithField("version", s.version).Debug("server ready")

	// The reader goroutine owns r and reads one line per tick on next, so
	// the next line is only requested after the previous response is out.
	next := make(chan struct{})
	lines := make(chan readResult)
	defer close(next)
	go func() {
		br := bufio.NewReader(r)
		for range next {
			line, err := readLine(br)
			select {
			case lines <- readResult{line: line, err: err}:
			case <-ctx.Done():
				return
			}
			if err != nil {
				return
			}
		}
	}()

	for {
		select {
		case next <- struct{}{}:
		case <-ctx.Done():
			s.log.Debug("server interrupted")
			return nil
		}

		var res readResult
		select {
		case res = <-lines:
		case <-ctx.Done():
			s.log.Debug("server interrupted")
			return nil
		}
		if ctx.Err() != nil {
			return nil
		}

		if res.err != nil {
			if errors.Is(res.err, io.EOF) {
				s.log.Debug("input closed")
				return nil
			}
			return fmt.Errorf("read request: %w", res.err)
		}

		resp := s.handleLine(res.line)
		if resp == nil {
			continue
		}
		if err := writeNDJSON(bw, resp); err != nil {
			return fmt.Errorf("write message: %w", err)
		}
	}
}

// handleLine parses and dispatches one raw input line. Blank lines yield
// no response.
func (s *Server) handleLine(line []byte) *Response {
	data := bytes.TrimSpace(line)
	if len(data) == 0 {
		return nil
	}

	var req Request
	if err := json.Unmarshal(data, &req); err != nil {
		s.log.WithError(err).Debug("rejecting malformed request")
		return invalidJSON(err)
	}

	resp := Handle(&req)
	if resp != nil {
		s.log.WithFields(logrus.Fields{
			"id":     string(resp.ID),
			"method": req.methodName(),
			"error":  resp.Error != nil,
		}).Debug("handled request")
	}
	return resp
}
