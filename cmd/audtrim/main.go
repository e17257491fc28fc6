// SPDX-License-Identifier: EPL-2.0

// Command audtrim cuts a range out of an audio file and writes it as WAV.
//
//	audtrim -in take.mp3 -start 1.5 -end 4 -out take.wav
//	audtrim -in take.flac -tui
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/ik5/audtrim"
	"github.com/ik5/audtrim/export"
	"github.com/ik5/audtrim/internal/ui"
	"github.com/ik5/audtrim/session"
)

func main() {
	err := run(os.Args[1:], os.Stdout)
	if err != nil {
		log.Fatal(err)
	}
}

func run(args []string, stdout io.Writer) error {
	flagSet := flag.NewFlagSet("audtrim", flag.ContinueOnError)

	input := flagSet.String("in", "", "audio file to edit (wav, aiff, mp3, ogg, flac)")
	start := flagSet.Float64("start", 0, "start of the range to keep, in seconds")
	end := flagSet.Float64("end", -1, "end of the range to keep, in seconds; negative means the end of the file")
	remove := flagSet.Bool("remove", false, "discard all audio instead of cutting")
	output := flagSet.String("out", "", "file to write to (default <input>-trimmed.wav)")
	formatName := flagSet.String("format", "wav", "output format")
	rate := flagSet.Int("rate", 0, "output sample rate in hertz; 0 keeps the input rate")
	mono := flagSet.Bool("mono", false, "downmix the output to mono")
	interactive := flagSet.Bool("tui", false, "open the interactive editor")
	verbose := flagSet.Bool("v", false, "log to stderr")

	err := flagSet.Parse(args)
	if err != nil {
		return err
	}

	if *input == "" {
		return errors.New("missing -in")
	}

	format, err := export.ParseFormat(*formatName)
	if err != nil {
		return err
	}

	logger := log.New(io.Discard, "audtrim: ", log.LstdFlags)
	if *verbose {
		logger.SetOutput(os.Stderr)
	}

	base := strings.TrimSuffix(filepath.Base(*input), filepath.Ext(*input)) + "-trimmed"
	opts := []export.Option{export.WithBaseName(base), export.WithSampleRate(*rate)}
	if *mono {
		opts = append(opts, export.WithMono())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	sess := session.New(session.WithLogger(logger))
	defer sess.Close()

	err = load(ctx, sess, *input)
	if err != nil {
		return err
	}

	if *interactive {
		return ui.Run(ui.Options{Session: sess, OutputPath: *output, Export: opts})
	}

	if *remove {
		err = sess.ApplyRemove()
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, "removed all audio, nothing written")

		return nil
	}

	if *end < 0 {
		*end = sess.Current().Duration()
	}
	err = sess.ApplyCut(*start, *end)
	if err != nil {
		return err
	}

	res, err := sess.Export(format, opts...)
	if err != nil {
		return err
	}

	path := *output
	if path == "" {
		path = filepath.Join(filepath.Dir(*input), res.Filename)
	}

	err = os.WriteFile(path, res.Data, 0o644)
	if err != nil {
		return fmt.Errorf("error creating %s: %w", path, err)
	}

	fmt.Fprintf(stdout, "wrote %s: %v\n", path, sess.Current())

	return nil
}

func load(ctx context.Context, sess *session.Session, path string) error {
	dec, ok := audtrim.DefaultRegistry().Get(audtrim.FormatOf(path))
	if !ok {
		return fmt.Errorf("%w: %s", audtrim.ErrUnknownFormat, path)
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("error opening %s: %w", path, err)
	}
	defer file.Close()

	return sess.LoadFrom(ctx, file, dec)
}
