package comm

import (
	"bufio"
	"fmt"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ferret-sh/ferret/internal/filter"
)

func newTestService() *Service {
	candidates := func() []string {
		return []string{"FuzzyStringMatcher", "FileSystemManager"}
	}

	return NewService(candidates, filter.DefaultOptions(), nil)
}

func request(t *testing.T, s *Service, req string) []string {
	t.Helper()

	client, server := net.Pipe()
	defer client.Close()

	go s.handle(server, 1)

	_, err := fmt.Fprintln(client, req)
	require.NoError(t, err)

	var lines []string

	scanner := bufio.NewScanner(client)
	for scanner.Scan() {
		if scanner.Text() == "done" {
			return lines
		}

		lines = append(lines, scanner.Text())
	}

	t.Fatalf("response not terminated: %v", scanner.Err())
	return nil
}

func TestHandleMatch(t *testing.T) {
	lines := request(t, newTestService(), "match;fsm;FileSystemManager")

	require.Len(t, lines, 1)
	assert.Equal(t, "score;true;22", lines[0])
}

func TestHandleMatchNotPresent(t *testing.T) {
	lines := request(t, newTestService(), "match;xyz;hello")

	require.Len(t, lines, 1)
	assert.Equal(t, "score;false;-5", lines[0])
}

func TestHandleFilter(t *testing.T) {
	lines := request(t, newTestService(), "filter;fsm")

	require.Len(t, lines, 2)
	assert.Equal(t, "item;22;FileSystemManager", lines[0])
	assert.Equal(t, "item;15;FuzzyStringMatcher", lines[1])
}

func TestHandleInvalid(t *testing.T) {
	lines := request(t, newTestService(), "bogus;request")

	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "error: invalid request")
}

func TestHandleMatchMissingSubject(t *testing.T) {
	lines := request(t, newTestService(), "match;fsm")

	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "error: invalid request")
}
