package liblog_test

import (
	"bytes"
	"testing"
	"time"

	"opengl-sandbox/liblog"
)

func frozenClock() time.Time {
	return time.Date(2023, 10, 14, 9, 30, 5, 0, time.UTC)
}

func TestLogfLineFormat(t *testing.T) {
	buf := new(bytes.Buffer)
	sink := liblog.New(buf)
	liblog.SetNow(sink, frozenClock)

	sink.Logf("GL version: %s", "3.3.0")

	want := "2023-10-14 09:30:05 | GL version: 3.3.0\n"
	if got := buf.String(); got != want {
		t.Errorf("logged line should be %q but was %q", want, got)
	}
}

func TestLogfTrimsTrailingWhitespace(t *testing.T) {
	buf := new(bytes.Buffer)
	sink := liblog.New(buf)
	liblog.SetNow(sink, frozenClock)

	sink.Logf("message with padding   \t\n")

	want := "2023-10-14 09:30:05 | message with padding\n"
	if got := buf.String(); got != want {
		t.Errorf("logged line should be %q but was %q", want, got)
	}
}

func TestLogfWritesAllOutputs(t *testing.T) {
	first := new(bytes.Buffer)
	second := new(bytes.Buffer)
	sink := liblog.New(first, second)
	liblog.SetNow(sink, frozenClock)

	sink.Logf("hello")

	if first.String() != second.String() {
		t.Errorf("outputs should receive identical lines, %q vs %q", first.String(), second.String())
	}
	if first.Len() == 0 {
		t.Error("outputs should not be empty")
	}
}

func TestDiscard(t *testing.T) {
	// must simply not panic
	liblog.Discard.Logf("ignored %d", 42)
}
