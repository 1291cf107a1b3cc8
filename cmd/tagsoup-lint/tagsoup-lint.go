package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"

	"github.com/jessevdk/go-flags"
	"github.com/panjf2000/ants/v2"
	"github.com/sirupsen/logrus"
	"github.com/tagsoup-go/tagsoup"
	"github.com/tagsoup-go/tagsoup/filter"
)

type cmdopts struct {
	Clean    bool     `long:"clean" description:"write the repaired markup to stdout"`
	Encoding string   `long:"encoding" description:"default encoding for unlabeled input"`
	Jobs     int      `long:"jobs" short:"j" default:"1" description:"number of files processed concurrently"`
	Strip    []string `long:"strip" description:"remove the named element and its content (repeatable)"`
	Verbose  bool     `long:"verbose" short:"v" description:"log parser internals"`
	Version  bool     `long:"version" description:"display the version and exit"`
}

func main() {
	os.Exit(_main())
}

func showUsage() {
	fmt.Printf(`Usage : tagsoup-lint [options] HTMLfiles ...
	Parse the HTML files, report every repair the parser had to make,
	and optionally (--clean) emit the repaired markup
	--version : display the version of the library used
`)
}

func _main() int {
	opts := cmdopts{}
	args, err := flags.ParseArgs(&opts, os.Args[1:])
	if err != nil {
		showUsage()
		return 1
	}

	if opts.Version {
		fmt.Printf("tagsoup-lint: using tagsoup version %s\n", tagsoup.Version)
		return 0
	}

	if opts.Verbose {
		l := logrus.New()
		l.SetLevel(logrus.DebugLevel)
		tagsoup.SetLogger(l)
	}

	if len(args) == 0 {
		st, err := os.Stdin.Stat()
		if err != nil || st.Mode()&os.ModeCharDevice != 0 {
			showUsage()
			return 1
		}
		return lint(&opts, "-", os.Stdin, os.Stdout, os.Stderr)
	}

	if opts.Jobs < 1 {
		opts.Jobs = 1
	}
	pool, err := ants.NewPool(opts.Jobs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		return 1
	}
	defer pool.Release()

	var (
		wg   sync.WaitGroup
		code int32
		mu   sync.Mutex
	)
	for _, f := range args {
		f := f
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()

			fh, err := os.Open(f)
			if err != nil {
				mu.Lock()
				fmt.Fprintf(os.Stderr, "%s\n", err)
				mu.Unlock()
				atomic.StoreInt32(&code, 1)
				return
			}
			defer fh.Close()

			var out, errs bytes.Buffer
			rc := lint(&opts, f, fh, &out, &errs)
			if rc != 0 {
				atomic.StoreInt32(&code, int32(rc))
			}

			mu.Lock()
			io.Copy(os.Stdout, &out)
			io.Copy(os.Stderr, &errs)
			mu.Unlock()
		}); err != nil {
			wg.Done()
			mu.Lock()
			fmt.Fprintf(os.Stderr, "%s\n", err)
			mu.Unlock()
			atomic.StoreInt32(&code, 1)
		}
	}
	wg.Wait()

	return int(atomic.LoadInt32(&code))
}

func lint(opts *cmdopts, name string, in io.Reader, out, errOut io.Writer) int {
	buf, err := io.ReadAll(in)
	if err != nil {
		fmt.Fprintf(errOut, "%s\n", err)
		return 1
	}

	var handler tagsoup.ParseOption
	var w *filter.Writer
	if opts.Clean {
		w = filter.NewWriter(out)
		if len(opts.Strip) > 0 {
			handler = tagsoup.WithSAX(filter.NewElementRemover(w, opts.Strip...))
		} else {
			handler = tagsoup.WithSAX(w)
		}
	} else {
		handler = tagsoup.WithSAX(tagsoup.NewTreeBuilder())
	}

	popts := []tagsoup.ParseOption{
		handler,
		tagsoup.WithDiagnosticHandler(func(d tagsoup.Diagnostic) {
			fmt.Fprintf(errOut, "%s:%d:%d: %s\n", name, d.LineNumber, d.Column, d.Err)
		}),
	}
	if opts.Encoding != "" {
		popts = append(popts, tagsoup.WithDefaultEncoding(opts.Encoding))
	}

	p, err := tagsoup.NewParser(popts...)
	if err != nil {
		fmt.Fprintf(errOut, "%s\n", err)
		return 1
	}

	if err := p.Parse(context.Background(), buf); err != nil {
		fmt.Fprintf(errOut, "%s: %s\n", name, err)
		return 1
	}
	if w != nil {
		if err := w.Err(); err != nil {
			fmt.Fprintf(errOut, "%s: %s\n", name, err)
			return 1
		}
		fmt.Fprintln(out)
	}
	return 0
}
