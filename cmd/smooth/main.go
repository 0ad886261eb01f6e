package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	movavg "github.com/angas/movavg-go"
	"github.com/lmittmann/tint"
	"github.com/spf13/viper"
)

// Prints the running average of its numeric arguments, one line per sample.
// Configured through SMOOTH_WINDOW and SMOOTH_FAST.
func main() {
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      slog.LevelInfo,
		TimeFormat: time.RFC3339Nano,
	}))
	slog.SetDefault(logger)

	viper.SetEnvPrefix("smooth")
	viper.AutomaticEnv()
	viper.SetDefault("window", 5)
	viper.SetDefault("fast", false)

	window := viper.GetInt("window")

	samples := make([]float64, 0, len(os.Args[1:]))
	for _, arg := range os.Args[1:] {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			logger.Error("argument is not a number", slog.String("arg", arg), slog.Any("error", err))
			os.Exit(1)
		}
		samples = append(samples, v)
	}

	if viper.GetBool("fast") {
		logger.Info("smoothing with fast division", slog.Int("window", window), slog.Int("samples", len(samples)))
		m, err := movavg.NewFast[float64, float64](window)
		if err != nil {
			logger.Error("bad window size", slog.Any("error", err))
			os.Exit(1)
		}
		run(&m, samples, logger)
		return
	}

	logger.Info("smoothing with precise division", slog.Int("window", window), slog.Int("samples", len(samples)))
	m, err := movavg.New[float64, float64](window)
	if err != nil {
		logger.Error("bad window size", slog.Any("error", err))
		os.Exit(1)
	}
	run(&m, samples, logger)
}

func run[D movavg.Divider[float64]](m *movavg.MovAvg[float64, float64, D], samples []float64, logger *slog.Logger) {
	for _, v := range samples {
		avg, err := m.Feed(v)
		if err != nil {
			logger.Error("feed failed", slog.Float64("sample", v), slog.Any("error", err))
			os.Exit(1)
		}
		fmt.Printf("%g\t%g\n", v, avg)
	}
}
