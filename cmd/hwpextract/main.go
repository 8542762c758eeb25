// Command hwpextract extracts plain text (tables rendered as Markdown)
// from HWP/HWPX/HWPML documents, one file or a whole directory tree at a
// time.
package main

import (
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/alexeyco/simpletable"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/mattn/go-runewidth"
	"github.com/olekukonko/tablewriter"

	"github.com/kohwp/hwp"
	"github.com/kohwp/hwp/internal/container"
)

var (
	outDir       = flag.String("o", "", "write extracted text to files in this directory instead of stdout")
	jobs         = flag.Int("j", runtime.NumCPU(), "number of files to process concurrently in directory mode")
	recursive    = flag.Bool("r", false, "recurse into subdirectories")
	listStreams  = flag.Bool("list-streams", false, "list the OLE container's streams instead of extracting text")
	streamFormat = flag.String("format", "ascii", "stream listing format: ascii|pretty|simple")
)

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <file-or-directory>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	stderr := colorable.NewColorableStderr()
	if !isatty.IsTerminal(os.Stderr.Fd()) {
		color.NoColor = true
	}
	errColor := color.New(color.FgRed)
	progressColor := color.New(color.Faint)

	path := flag.Arg(0)
	info, err := os.Stat(path)
	if err != nil {
		errColor.Fprintf(stderr, "hwpextract: %v\n", err)
		os.Exit(1)
	}

	if *listStreams {
		if info.IsDir() {
			errColor.Fprintln(stderr, "hwpextract: --list-streams requires a single file")
			os.Exit(1)
		}
		if err := runListStreams(path); err != nil {
			errColor.Fprintf(stderr, "hwpextract: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if info.IsDir() {
		if ok := runBatch(path, stderr, errColor, progressColor); !ok {
			os.Exit(1)
		}
		return
	}

	if err := extractOne(path); err != nil {
		errColor.Fprintf(stderr, "hwpextract: %v\n", err)
		os.Exit(1)
	}
}

// extractOne extracts a single file's text, writing to *outDir/<name>.txt
// when -o is set or to stdout otherwise.
func extractOne(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	text, meta, err := hwp.ExtractTextWithMetadata(file)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if meta.Title != "" || meta.Author != "" {
		color.New(color.Faint).Fprintf(os.Stderr, "hwpextract: %s: title=%q author=%q\n", path, meta.Title, meta.Author)
	}

	if *outDir == "" {
		fmt.Print(text)
		return nil
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		return err
	}
	outPath := filepath.Join(*outDir, strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))+".txt")
	return os.WriteFile(outPath, []byte(text), 0o644)
}

// runBatch walks a directory, extracting every recognized document
// concurrently across *jobs workers. It returns false if any file failed.
func runBatch(root string, stderr io.Writer, errColor, progressColor *color.Color) bool {
	var paths []string
	walk := func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if p != root && !*recursive {
				return fs.SkipDir
			}
			return nil
		}
		switch strings.ToLower(filepath.Ext(p)) {
		case ".hwp", ".hwpx", ".hwpml":
			paths = append(paths, p)
		}
		return nil
	}
	if err := filepath.WalkDir(root, walk); err != nil {
		errColor.Fprintf(stderr, "hwpextract: %v\n", err)
		return false
	}

	sem := make(chan struct{}, max(1, *jobs))
	var wg sync.WaitGroup
	var mu sync.Mutex
	ok := true

	for _, p := range paths {
		p := p
		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()

			err := extractOne(p)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errColor.Fprintf(stderr, "FAIL %s: %v\n", p, err)
				ok = false
			} else {
				progressColor.Fprintf(stderr, "ok   %s\n", p)
			}
		}()
	}
	wg.Wait()

	return ok
}

// runListStreams prints the OLE container's stream names for a binary HWP
// 5.x file, in one of three selectable table formats.
func runListStreams(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	c, err := container.Open(file)
	if err != nil {
		return err
	}
	names, err := c.Streams()
	if err != nil {
		return err
	}

	const wideNameThreshold = 40
	faint := color.New(color.Faint)
	for _, name := range names {
		if runewidth.StringWidth(name) > wideNameThreshold {
			faint.Fprintf(os.Stderr, "hwpextract: stream name %q is %d columns wide, tables below may not align\n", name, runewidth.StringWidth(name))
		}
	}

	switch *streamFormat {
	case "pretty":
		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"#", "stream"})
		for i, name := range names {
			t.AppendRow(table.Row{i, name})
		}
		t.Render()
	case "simple":
		t := simpletable.New()
		t.Header = &simpletable.Header{
			Cells: []*simpletable.Cell{
				{Align: simpletable.AlignCenter, Text: "#"},
				{Align: simpletable.AlignLeft, Text: "stream"},
			},
		}
		for i, name := range names {
			t.Body.Cells = append(t.Body.Cells, []*simpletable.Cell{
				{Text: fmt.Sprintf("%d", i)},
				{Text: name},
			})
		}
		t.SetStyle(simpletable.StyleDefault)
		fmt.Println(t.String())
	default:
		w := tablewriter.NewWriter(os.Stdout)
		w.SetHeader([]string{"#", "stream"})
		for i, name := range names {
			w.Append([]string{fmt.Sprintf("%d", i), name})
		}
		w.Render()
	}

	return nil
}
