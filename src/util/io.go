package util

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"sync"
)

// ----------------------------
// ----- Type definitions -----
// ----------------------------

// Writer buffers diagnostic/IR-dump output in a strings.Builder. When Flush
// or Close is called the buffer is emptied and sent to the assigned output
// writer through channel c. Grounded on hhramberg-go-vslc/src/util/io.go;
// kept even though (per spec.md §5) the compilation pipeline itself never
// fans out goroutines, since the IR dumps (DumpPh1IR/DumpPh2IR and the
// LLVM text of -llvm-dump) are the only output this repo writes and doing so through the same single-consumer channel
// handoff as the teacher costs nothing and matches its texture.
type Writer struct {
	sb strings.Builder
	c  chan string
}

// ---------------------
// ----- Globals -----
// ---------------------

var wc chan string     // Write channel used for receiving data from callers.
var cc chan error      // Close channel used by main thread to signal to end write operations.
var wg *sync.WaitGroup // Used for synchronising when I/O finished writing to output.

// ---------------------
// ----- Functions -----
// ---------------------

// Write writes a format string to the Writer's buffer.
func (w *Writer) Write(format string, args ...interface{}) {
	w.sb.WriteString(fmt.Sprintf(format, args...))
}

// WriteString writes a plain string to the Writer's buffer.
func (w *Writer) WriteString(s string) {
	w.sb.WriteString(s)
}

// Flush empties the Writer's buffer and sends the buffer data to the
// designated output writer over the Writer's channel.
func (w *Writer) Flush() {
	wg.Add(1)
	w.c <- w.sb.String()
	w.sb = strings.Builder{}
}

// Close flushes the Writer's buffer and then detaches the Writer from the
// shared channel.
func (w *Writer) Close() {
	w.Flush()
	w.c = nil
	wg.Done()
}

// NewWriter returns a new Writer that writes to the sink set up by
// ListenWrite. Must not be called before ListenWrite.
func NewWriter() Writer {
	wg.Add(1)
	return Writer{
		sb: strings.Builder{},
		c:  wc,
	}
}

// ListenWrite listens for Writer output. The received data is written to
// file f if f is non-nil, or to stdout otherwise. The function loops until
// Close sends the termination signal.
func ListenWrite(opt Options, f *os.File, wgg *sync.WaitGroup) {
	wg = wgg
	wc = make(chan string, 1)
	cc = make(chan error, 1) // Buffered to catch Close before the listener is invoked.

	var w *bufio.Writer
	if f != nil {
		w = bufio.NewWriter(f)
	} else {
		w = bufio.NewWriter(os.Stdout)
	}

	go func(wc chan string, cc chan error) {
		defer close(wc)
		defer close(cc)
		for {
			select {
			case s := <-wc:
				if _, err := w.WriteString(s); err != nil {
					fmt.Println(err)
				}
				if err := w.Flush(); err != nil {
					fmt.Println(err)
				}
				wgg.Done()
			case <-cc:
				// Write out data handed over before the termination signal.
				for len(wc) > 0 {
					if _, err := w.WriteString(<-wc); err != nil {
						fmt.Println(err)
					}
					if err := w.Flush(); err != nil {
						fmt.Println(err)
					}
					wgg.Done()
				}
				return
			}
		}
	}(wc, cc)
}

// Close sends the termination signal to the writer listener.
func Close() {
	cc <- nil
}
