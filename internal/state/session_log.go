package state

import (
	"bytes"
	"strings"

	"pkt.systems/pslog"
)

// sessionLog collects structured debug entries for a single session. It
// lives and dies with the session; nothing is written anywhere else.
type sessionLog struct {
	buf    bytes.Buffer
	logger pslog.Logger
}

func newSessionLog() *sessionLog {
	l := &sessionLog{}
	l.logger = pslog.NewWithOptions(&l.buf, pslog.Options{
		Mode:     pslog.ModeStructured,
		NoColor:  true,
		MinLevel: pslog.DebugLevel,
	})
	return l
}

// Lines returns the collected entries in write order.
func (l *sessionLog) Lines() []string {
	if l == nil || l.buf.Len() == 0 {
		return nil
	}
	raw := strings.Split(strings.TrimRight(l.buf.String(), "\n"), "\n")
	lines := raw[:0]
	for _, line := range raw {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
