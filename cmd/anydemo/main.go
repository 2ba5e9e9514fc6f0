package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/oliverbestmann/erased"
	"github.com/pkg/profile"
)

func main() {
	verbose := flag.Bool("v", false, "log type registrations")
	profileMode := flag.String("profile", "", "write a profile: cpu or mem")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	switch *profileMode {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.Quiet).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.Quiet).Stop()
	default:
		slog.Error("Unknown profile mode", slog.String("mode", *profileMode))
		os.Exit(2)
	}

	run()
}

func run() {
	a := erased.Of(23)

	b := a.Take()
	printAs[int](&b)

	c := b.Clone()
	printAs[int](&c)

	d := erased.Of("string")
	printAs[string](&d)

	e := d.Take()
	printAs[string](&e)

	// wrong type on purpose
	printAs[float64](&e)

	// d was moved from
	printAs[string](&d)

	stats := erased.ReadHeapStats()
	slog.Info("Heap blocks",
		slog.Int64("allocated", stats.Allocated),
		slog.Int64("released", stats.Released),
	)

	e.Reset()
}

func printAs[T any](value *erased.Any) {
	result, ok := erased.CastOk[T](value)
	if !ok {
		fmt.Printf("ERROR! %s\n", value)
		return
	}

	fmt.Printf("%v (%s)\n", result, value.Policy())
}
