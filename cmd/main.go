package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/evanjt06/lrucache/cache"
	"github.com/evanjt06/lrucache/internal"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// missValue is what a miss prints as on the wire.
const missValue = -1

var errUnexpectedEOF = errors.New("unexpected end of input")

func main() {
	verbose := flag.Bool("v", false, "log cache activity to stderr")
	dump := flag.Bool("dump", false, "print the final cache contents to stderr")
	flag.Parse()

	level := zapcore.InfoLevel
	if *verbose {
		level = zapcore.DebugLevel
	}
	logger := internal.NewLogger(os.Stderr, level)
	defer func() { _ = logger.Sync() }()

	var dumpTo io.Writer
	if *dump {
		dumpTo = os.Stderr
	}

	if err := run(os.Stdin, os.Stdout, dumpTo, logger); err != nil {
		logger.Errorw("Run failed", "error", err)
		_ = logger.Sync()
		os.Exit(1)
	}
}

// run reads "n capacity" followed by n get/set commands from in and writes
// the result of every get to out, one per line.
func run(in io.Reader, out io.Writer, dumpTo io.Writer, logger *zap.SugaredLogger) (err error) {
	sc := bufio.NewScanner(in)
	sc.Split(bufio.ScanWords)
	w := bufio.NewWriter(out)
	defer func() {
		err = multierr.Append(err, w.Flush())
	}()

	r := &reader{sc: sc}
	n, err := r.int("command count")
	if err != nil {
		return err
	}
	capacity, err := r.int("capacity")
	if err != nil {
		return err
	}

	c, err := cache.New(capacity, cache.WithLogger(logger))
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, c.Close())
	}()

	for i := 1; i <= n; i++ {
		if err := exec(r, c, w); err != nil {
			return fmt.Errorf("command %d: %w", i, err)
		}
	}

	if dumpTo != nil {
		err = multierr.Append(err, c.Print(dumpTo))
	}
	return err
}

func exec(r *reader, c *cache.LRUCache, w io.Writer) error {
	cmd, err := r.word("command")
	if err != nil {
		return err
	}

	switch cmd {
	case "get":
		key, err := r.int("key")
		if err != nil {
			return err
		}
		value, ok := c.Get(key)
		if !ok {
			value = missValue
		}
		_, err = fmt.Fprintln(w, value)
		return err
	case "set":
		key, err := r.int("key")
		if err != nil {
			return err
		}
		value, err := r.int("value")
		if err != nil {
			return err
		}
		c.Set(key, value)
		return nil
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

type reader struct {
	sc *bufio.Scanner
}

func (r *reader) word(what string) (string, error) {
	if !r.sc.Scan() {
		if err := r.sc.Err(); err != nil {
			return "", err
		}
		return "", fmt.Errorf("reading %s: %w", what, errUnexpectedEOF)
	}
	return r.sc.Text(), nil
}

func (r *reader) int(what string) (int, error) {
	s, err := r.word(what)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", what, s, err)
	}
	return v, nil
}
