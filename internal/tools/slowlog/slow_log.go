package slowlog

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Logger times named breakpoints inside a request. Used to tell apart
// time spent waiting on the supplier from time spent assembling the
// response.
type Logger interface {
	Start(name string)
	Stop(name string) time.Duration
}

type slowLogger struct {
	log     *zerolog.Logger
	running map[string]time.Time
	sync.Mutex
}

func (s *slowLogger) Start(name string) {
	s.Lock()
	// Starting the same name again resets the timer
	s.running[name] = time.Now()
	s.Unlock()
}

func (s *slowLogger) Stop(name string) time.Duration {
	s.Lock()
	defer s.Unlock()

	started := s.running[name]
	delete(s.running, name)

	duration := time.Since(started)

	s.log.Debug().
		Float64("duration", duration.Seconds()).
		Str("breakpoint_name", name).
		Msg("")

	return duration
}

func CreateLogger(log *zerolog.Logger) *slowLogger {
	labeled := log.With().Str("label", "slowlog").Logger()
	return &slowLogger{
		log:     &labeled,
		running: make(map[string]time.Time),
	}
}
