package comm

import (
	"bufio"
	"fmt"
	"log"
	"log/slog"
	"net"
	"os"
)

// Send forwards a raw request to a running ferret service and prints the
// response lines until the terminating "done".
func Send(req string) {
	conn, err := net.Dial("unix", SocketFile())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to connect: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close()

	_, err = fmt.Fprintf(conn, "%s\n", req)
	if err != nil {
		log.Fatal(err)
	}

	scanner := bufio.NewScanner(conn)

	for scanner.Scan() {
		text := scanner.Text()

		if text == "done" {
			break
		}

		fmt.Println(text)
	}

	if err := scanner.Err(); err != nil {
		slog.Error("comm", "request", err)
	}
}
