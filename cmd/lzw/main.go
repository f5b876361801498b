// Command lzw compresses or decompresses a file using the codec
// implemented by the github.com/joshvarga/lzw package. Argument
// parsing, output filename defaulting, and file open/close mechanics
// all live here, outside the core package, per the package's own
// scope boundary.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/joshvarga/lzw"
	"github.com/joshvarga/lzw/internal/codeclog"
)

// zapLogger adapts *zap.SugaredLogger to codeclog.Logger.
type zapLogger struct {
	s *zap.SugaredLogger
}

func (l zapLogger) Printf(format string, args ...interface{}) { l.s.Infof(format, args...) }
func (l zapLogger) Println(args ...interface{})               { l.s.Info(args...) }

func main() {
	inputFile := flag.String("i", "", "input file")
	outputFile := flag.String("o", "", "output file")
	decompress := flag.Bool("d", false, "decompress instead of compress")
	verbose := flag.Bool("v", false, "log dictionary resets and width bumps")
	veryVerbose := flag.Bool("vv", false, "log a compression summary as well as -v")
	flag.Parse()

	if *inputFile == "" {
		flag.PrintDefaults()
		os.Exit(0)
	}

	if *verbose || *veryVerbose {
		zl, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer zl.Sync()
		sugar := zl.Sugar()
		codeclog.SetDebugLogger(zapLogger{sugar})
		if *veryVerbose {
			codeclog.SetStatsLogger(zapLogger{sugar})
		}
	}

	out := *outputFile
	if out == "" {
		out = defaultOutputFile(*inputFile, *decompress)
	}

	if err := run(*inputFile, out, *decompress); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			fmt.Fprintln(os.Stderr, "Given file does not exist")
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// defaultOutputFile mirrors the extension-substitution the original
// implementation's CLI performed: ".lzw" for compressed output,
// ".txt" for decompressed output, replacing whatever extension the
// input file already had.
func defaultOutputFile(inputFile string, decompress bool) string {
	ext := ".lzw"
	if decompress {
		ext = ".txt"
	}
	trimmed := strings.TrimSuffix(inputFile, filepath.Ext(inputFile))
	return trimmed + ext
}

func run(inputFile, outputFile string, decompress bool) error {
	in, err := os.Open(inputFile)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(outputFile)
	if err != nil {
		return err
	}
	defer out.Close()

	if decompress {
		r, err := lzw.NewReader(in)
		if err != nil {
			return err
		}
		defer r.Close()
		_, err = io.Copy(out, r)
		return err
	}

	w := lzw.NewWriter(out)
	if _, err := io.Copy(w, in); err != nil {
		return err
	}
	return w.Close()
}
