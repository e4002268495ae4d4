package util

import (
	"bufio"
	"errors"
	"io"
	"io/ioutil"
	"os"
	"time"
)

// ReadSource reads source code from file or stdin (ReadSource). If
// Options.Src names a file it is read directly; otherwise the function
// waits briefly for input on stdin, returning an error if none arrives.
func ReadSource(opt Options) (string, error) {
	if len(opt.Src) > 0 {
		b, err := ioutil.ReadFile(opt.Src)
		return string(b), err
	}

	c := make(chan string)
	cerr := make(chan error)

	go func(c chan string, cerr chan error) {
		defer close(c)
		defer close(cerr)
		reader := bufio.NewReader(os.Stdin)
		text, err := reader.ReadString(0)
		if err == nil || (err == io.EOF && len(text) > 0) {
			c <- text
		} else {
			cerr <- err
		}
	}(c, cerr)

	select {
	case <-time.After(500 * time.Millisecond):
		return "", errors.New("expected input from stdin, got none")
	case s := <-c:
		return s, nil
	}
}
