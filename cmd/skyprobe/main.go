// Command skyprobe samples the atmosphere model over a range of hours and
// prints the derived palette and celestial positions. Useful for tuning
// keyframes without launching the GUI.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"snowglobe/internal/atmosphere"
	"snowglobe/internal/core"
)

func main() {
	from := flag.Float64("from", 0, "first hour to sample")
	to := flag.Float64("to", 24, "last hour to sample")
	step := flag.Float64("step", 1, "sampling step in hours")
	flag.Parse()

	if *step <= 0 {
		log.Fatalf("step must be positive, got %v", *step)
	}
	if *to < *from {
		log.Fatalf("range [%v, %v] is inverted", *from, *to)
	}

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "hour\tsky top\tsky bottom\ttint\tsun\tmoon\tstars")
	for hour := *from; hour <= *to+1e-9; hour += *step {
		snap := atmosphere.At(hour)
		fmt.Fprintf(w, "%.2f\t%s\t%s\t%s\t%s\t%s\t%.2f\n",
			hour,
			core.FormatHexColor(snap.SkyTop),
			core.FormatHexColor(snap.SkyBottom),
			core.FormatHexColor(snap.Tint),
			describeBody(snap.Sun),
			describeBody(snap.Moon),
			snap.StarOpacity,
		)
	}
	w.Flush()
}

func describeBody(b atmosphere.Body) string {
	if !b.Visible {
		return "-"
	}
	return fmt.Sprintf("%.0f%%,%.0f%%", b.X, b.Y)
}
