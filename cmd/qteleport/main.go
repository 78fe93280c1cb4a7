// qteleport encodes text through the simulated quantum teleportation
// pipeline or the BB84-style encoding variant, decodes the measured
// outcomes, and reports whether the round trip reproduced the input.
package main

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/schollz/progressbar/v3"
	flag "github.com/spf13/pflag"

	"github.com/quantumcomm/teleport/teleport"
	"github.com/quantumcomm/teleport/teleport/compress"
	"github.com/quantumcomm/teleport/teleport/sim"
)

var (
	file        = flag.String("file", "", "Path to a text file to send. Mutually exclusive with --text.")
	text        = flag.String("text", "", "Literal text to send.")
	mode        = flag.String("mode", "teleport", "Pipeline to run: teleport or bb84.")
	shots       = flag.Int("shots", -1, "Shots per circuit. Non-positive values select the adaptive heuristic.")
	noise       = flag.Bool("noise", false, "Run circuits with the bit-flip/readout noise model.")
	gateFlip    = flag.Float64("gate-flip", 0.01, "Per-gate X error probability when --noise is set.")
	readout     = flag.Float64("readout", 0.02, "Readout flip probability when --noise is set.")
	compression = flag.String("compression", "none", "Compression strategy for bb84 mode: none, brotli, or adaptive.")
	output      = flag.String("output", "", "Path to write a JSON run record (bb84 mode only).")
	envFile     = flag.String("env-file", ".env", "Env file holding "+teleport.KeyEnvVar+".")
	seed        = flag.Int64("seed", 0, "PRNG seed. Zero seeds from the current time.")
	logLevel    = flag.String("log-level", "info", "Log level: debug, info, warn, or error.")
	pretty      = flag.Bool("pretty", false, "Pretty console log output.")
	quiet       = flag.Bool("quiet", false, "Suppress the progress bar.")
)

func main() {
	flag.Parse()
	logger := newLogger(*logLevel, *pretty)

	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(s))

	var noiseModel *sim.NoiseModel
	if *noise {
		noiseModel = &sim.NoiseModel{
			GateFlip: *gateFlip,
			Readout:  *readout,
			Seed:     uint64(s),
		}
	}

	var received string
	var stats teleport.Stats
	var err error
	switch *mode {
	case "teleport":
		received, stats, err = runTeleport(rng, noiseModel, logger)
	case "bb84":
		received, stats, err = runBB84(rng, noiseModel, logger)
	default:
		logger.Fatal().Str("mode", *mode).Msg("unknown mode")
	}
	if err != nil {
		logger.Fatal().Err(err).Msg("pipeline failed")
	}

	fmt.Printf("Received Data: %s\n", received)
	fmt.Printf("Sent Data == Received Data: %v\n", stats.Match)
	if !stats.Match {
		fmt.Printf("Percentage of similarity: %.2f\n", stats.PercentMatch)
	}
	fmt.Printf("Time taken: %s\n", teleport.FormatDuration(stats.Elapsed))
}

func runTeleport(rng *rand.Rand, noiseModel *sim.NoiseModel, logger zerolog.Logger) (string, teleport.Stats, error) {
	tp, err := teleport.NewTeleporter(teleport.Opts{
		FilePath: *file,
		Text:     *text,
		Shots:    *shots,
		Noise:    noiseModel,
		Rand:     rng,
		Logger:   &logger,
		Progress: progress("Processing bits"),
	})
	if err != nil {
		return "", teleport.Stats{}, err
	}
	return tp.Run()
}

func runBB84(rng *rand.Rand, noiseModel *sim.NoiseModel, logger zerolog.Logger) (string, teleport.Stats, error) {
	strategy, err := compress.ParseStrategy(*compression)
	if err != nil {
		return "", teleport.Stats{}, err
	}
	data := *text
	if *file != "" {
		if data != "" {
			return "", teleport.Stats{}, errors.New("exactly one of {--file, --text} must be specified")
		}
		data, err = teleport.TextFromFile(*file)
		if err != nil {
			return "", teleport.Stats{}, err
		}
	}
	if _, err := teleport.EnsureKey(*envFile, sim.NewLocal(rng), rng, logger); err != nil {
		return "", teleport.Stats{}, err
	}
	b, err := teleport.NewBB84(teleport.BB84Opts{
		Text:        data,
		Compression: strategy,
		Shots:       *shots,
		Noise:       noiseModel,
		Rand:        rng,
		OutputPath:  *output,
		Logger:      &logger,
		Progress:    progress("Processing bits"),
	})
	if err != nil {
		return "", teleport.Stats{}, err
	}
	return b.Run()
}

// progress adapts a progressbar to the pipeline's per-circuit callback. The
// bar is created lazily because the total is only known once the pipeline
// has encoded its input.
func progress(desc string) func(done, total int) {
	if *quiet {
		return nil
	}
	var bar *progressbar.ProgressBar
	return func(done, total int) {
		if bar == nil {
			bar = progressbar.NewOptions(total,
				progressbar.OptionSetDescription(desc),
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionClearOnFinish(),
			)
		}
		_ = bar.Set(done)
	}
}

func newLogger(level string, pretty bool) zerolog.Logger {
	lvl := zerolog.InfoLevel
	switch level {
	case "debug":
		lvl = zerolog.DebugLevel
	case "info":
		lvl = zerolog.InfoLevel
	case "warn":
		lvl = zerolog.WarnLevel
	case "error":
		lvl = zerolog.ErrorLevel
	}
	var out io.Writer = os.Stderr
	if pretty {
		out = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}
