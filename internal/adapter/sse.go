package adapter

import (
	"bufio"
	"io"
	"strings"
	"sync"
)

// maxEventLine caps a single SSE line; payloads are small JSON objects.
const maxEventLine = 1024 * 1024

// Event is one dispatched Server-Sent Event.
type Event struct {
	// Name is the value of the "event:" field, "message" when absent.
	Name string
	// Data is the concatenation of all "data:" lines joined with "\n".
	Data string
	// ID is the last "id:" field seen, if any.
	ID string
}

type sseStream struct {
	body    io.ReadCloser
	scanner *bufio.Scanner

	closeOnce sync.Once
	closeErr  error
}

func newSSEStream(body io.ReadCloser) *sseStream {
	scanner := bufio.NewScanner(body)
	scanner.Buffer(make([]byte, 64*1024), maxEventLine)
	return &sseStream{body: body, scanner: scanner}
}

// Next implements [EventStream]. It reads lines until a blank line dispatches
// an event. Comment lines (":" prefix) and events without data are skipped.
func (s *sseStream) Next() (Event, error) {
	var (
		name    string
		id      string
		data    []string
		hasData bool
	)

	for s.scanner.Scan() {
		line := strings.TrimSuffix(s.scanner.Text(), "\r")

		if line == "" {
			if !hasData {
				name = ""
				continue
			}
			if name == "" {
				name = "message"
			}
			return Event{Name: name, Data: strings.Join(data, "\n"), ID: id}, nil
		}

		if strings.HasPrefix(line, ":") {
			continue
		}

		field, value, _ := strings.Cut(line, ":")
		value = strings.TrimPrefix(value, " ")

		switch field {
		case "event":
			name = value
		case "data":
			data = append(data, value)
			hasData = true
		case "id":
			id = value
		}
	}

	if err := s.scanner.Err(); err != nil {
		return Event{}, err
	}
	return Event{}, io.EOF
}

// Close implements [EventStream].
func (s *sseStream) Close() error {
	s.closeOnce.Do(func() {
		s.closeErr = s.body.Close()
	})
	return s.closeErr
}
