package debug

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
)

type debug struct {
	Encode bool
	Decode bool
	Keys   bool
}

var (
	d      *debug
	theLog *slog.Logger
)

func init() {
	d = &debug{}
	d.Encode = boolEnv("CODING_DEBUG_ENCODE")
	d.Decode = boolEnv("CODING_DEBUG_DECODE")
	d.Keys = boolEnv("CODING_DEBUG_KEYS")
	theLog = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Encode() bool {
	return d.Encode
}
func Decode() bool {
	return d.Decode
}
func Keys() bool {
	return d.Keys
}

// SetEncode, SetDecode and SetKeys override the environment.
func SetEncode(v bool) {
	d.Encode = v
}
func SetDecode(v bool) {
	d.Decode = v
}
func SetKeys(v bool) {
	d.Keys = v
}

// SetLogger replaces the destination of Logf and Log.
func SetLogger(l *slog.Logger) {
	theLog = l
}

func Logf(msg string, args ...any) {
	theLog.Debug(fmt.Sprintf(msg, args...))
}

// Log emits a structured debug record.
func Log(msg string, args ...any) {
	theLog.Debug(msg, args...)
}
