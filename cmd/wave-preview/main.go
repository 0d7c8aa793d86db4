package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/guptarohit/asciigraph"

	"ecovolt/internal/chart"
	"ecovolt/internal/simulator"
)

func main() {
	selection := flag.String("selection", string(chart.Default), "signal to plot: wind, solar or demand")
	offset := flag.Int("offset", 0, "offset of the first plotted tick")
	ticks := flag.Int("ticks", 1, "number of consecutive ticks to plot")
	height := flag.Int("height", 12, "plot height in rows")
	width := flag.Int("width", 72, "plot width in columns")
	flag.Parse()

	sel, err := chart.ParseSelection(*selection)
	if err != nil {
		log.Fatalf("Invalid selection: %v", err)
	}

	if err := preview(os.Stdout, sel, *offset, *ticks, *height, *width); err != nil {
		log.Fatal(err)
	}
}

// preview steps an engine to offset and plots the actual and forecast lines
// of sel once per tick.
func preview(w io.Writer, sel chart.Selection, offset, ticks, height, width int) error {
	if ticks < 1 {
		return fmt.Errorf("ticks must be at least 1, got %d", ticks)
	}
	if offset < 0 {
		return fmt.Errorf("offset must not be negative, got %d", offset)
	}

	eng := simulator.New(nil)
	for eng.State().Offset < offset {
		eng.Step()
	}

	v := chart.ViewFor(sel)
	for t := 0; t < ticks; t++ {
		if t > 0 {
			eng.Step()
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		snap := eng.Snapshot()
		actual, forecast := chart.Values(snap.Series, sel)
		plot := asciigraph.PlotMany([][]float64{actual, forecast},
			asciigraph.Height(height),
			asciigraph.Width(width),
			asciigraph.LowerBound(v.Domain[0]),
			asciigraph.UpperBound(v.Domain[1]),
			asciigraph.Caption(chart.Title(sel, snap.Offset)+": "+v.ValueField+" / "+v.ForecastField),
		)
		if _, err := fmt.Fprintln(w, plot); err != nil {
			return err
		}
	}
	return nil
}
