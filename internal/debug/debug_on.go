//go:build debug

package debug

import (
	"log"
	"os"
	"strings"
	"sync/atomic"

	"github.com/davecgh/go-spew/spew"
)

const Enabled = true

var logger = log.New(os.Stdout, "|DEBUG| ", 0)

var indent int32

// Printf prints debug messages. Only available if compiled with "debug" tag
func Printf(f string, args ...interface{}) {
	pad := strings.Repeat("  ", int(atomic.LoadInt32(&indent)))
	logger.Printf(pad+f, args...)
}

// Guard closes an indented trace section opened by IPrintf.
type Guard struct{}

// IPrintf prints a message and opens an indented section; pair it with
// IRelease on the returned guard.
func IPrintf(f string, args ...interface{}) Guard {
	Printf(f, args...)
	atomic.AddInt32(&indent, 1)
	return Guard{}
}

func (Guard) IRelease(f string, args ...interface{}) {
	if atomic.AddInt32(&indent, -1) < 0 {
		atomic.StoreInt32(&indent, 0)
	}
	Printf(f, args...)
}

// Dump dumps the objects using go-spew
func Dump(v ...interface{}) {
	spew.Dump(v...)
}
