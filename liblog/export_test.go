package liblog

import "time"

// only for tests

func SetNow(s *Sink, now func() time.Time) {
	s.now = now
}
