// Package comm provides the socket interface to a running ferret service.
package comm

import (
	"bufio"
	"fmt"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"strings"

	"github.com/ferret-sh/ferret/internal/common/history"
	"github.com/ferret-sh/ferret/internal/filter"
)

const (
	// match;<pattern>;<subject>
	ActionMatch = "match"
	// filter;<pattern>
	ActionFilter = "filter"
	// accept;<pattern>;<identifier>
	ActionAccept = "accept"
)

// connection id
var cid uint32

// Service answers match and filter requests over a line-based unix
// socket protocol. Every response ends with a "done" line.
type Service struct {
	candidates func() []string
	opts       filter.Options
	hist       *history.History
}

func NewService(candidates func() []string, opts filter.Options, hist *history.History) *Service {
	return &Service{
		candidates: candidates,
		opts:       opts,
		hist:       hist,
	}
}

func SocketFile() string {
	return filepath.Join(os.TempDir(), "ferret.sock")
}

func (s *Service) StartListen() {
	file := SocketFile()
	os.Remove(file)

	l, err := net.ListenUnix("unix", &net.UnixAddr{
		Name: file,
	})
	if err != nil {
		slog.Error("comm", "socket", err)
		os.Exit(1)
	}
	defer l.Close()

	slog.Info("comm", "listen", "starting")

	for {
		conn, err := l.AcceptUnix()
		if err != nil {
			slog.Error("comm", "accept", err)
			continue
		}

		slog.Info("comm", "connection", "new")

		cid++

		go s.handle(conn, cid)
	}
}

func (s *Service) handle(conn net.Conn, sid uint32) {
	defer conn.Close()

	scanner := bufio.NewScanner(conn)

	for scanner.Scan() {
		message := scanner.Text()
		slog.Info("comm", "request", message, "cid", sid)

		request := strings.SplitN(message, ";", 3)

		switch request[0] {
		case ActionMatch:
			if len(request) != 3 {
				writeInvalid(conn, message)
				continue
			}

			present, score := s.opts.Weights.MatchString(request[2], request[1])
			fmt.Fprintf(conn, "score;%t;%d\n", present, score)
		case ActionFilter:
			if len(request) != 2 {
				writeInvalid(conn, message)
				continue
			}

			pattern := request[1]

			opts := s.opts
			if s.hist != nil {
				opts.Boost = func(text string) int {
					return s.hist.CalcUsageScore(pattern, text)
				}
			}

			for _, m := range filter.RankStrings(pattern, s.candidates(), opts) {
				fmt.Fprintf(conn, "item;%d;%s\n", m.Score, m.Text)
			}
		case ActionAccept:
			if len(request) != 3 {
				writeInvalid(conn, message)
				continue
			}

			if s.hist != nil {
				s.hist.Save(request[1], request[2])
			}
		default:
			writeInvalid(conn, message)
			continue
		}

		fmt.Fprintln(conn, "done")
	}

	if err := scanner.Err(); err != nil {
		slog.Error("comm", "connection", err, "cid", sid)
	}
}

// writeInvalid reports a malformed request and still terminates the
// response, so clients reading until "done" never hang.
func writeInvalid(conn net.Conn, message string) {
	slog.Error("comm", "requestinvalid", message)
	fmt.Fprintf(conn, "error: invalid request '%s'\n", message)
	fmt.Fprintln(conn, "done")
}
