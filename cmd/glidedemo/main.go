// Command glidedemo scores a flight from a CSV fix log and prints the
// resulting path and distance. It exists to give the library a runnable
// entry point alongside the package API, in the spirit of the teacher's
// small cmd/ utilities (cmd/designer, cmd/planettgtr): flags parsed
// with the flag package and mapped onto the library's Config options.
package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/weglide/glidescore"
)

var (
	igcFile     = flag.String("fixes", "", "CSV file of lat,lon,alt rows (decimal degrees, metres)")
	legs        = flag.Int("legs", glidescore.DefaultLegs, "number of legs to score")
	heightLimit = flag.Float64("height-limit", glidescore.DefaultHeightLimit, "maximum altitude loss between start and end, in metres")
	constrained = flag.Bool("height-constrained", false, "run the height-constrained solver instead of the unconstrained optimum")
)

func main() {
	flag.Parse()
	if *igcFile == "" {
		log.Fatal("glidedemo: -fixes is required")
	}

	fs, err := readFixes(*igcFile)
	if err != nil {
		log.Fatalf("glidedemo: %s", err)
	}

	cfg := glidescore.NewConfig(glidescore.WithLegs(*legs), glidescore.WithHeightLimit(*heightLimit))
	s := glidescore.NewScorer(cfg)

	if *constrained {
		res, err := s.ScoreWithHeight(context.Background(), fs)
		if err != nil {
			log.Fatalf("glidedemo: %s", err)
		}
		fmt.Printf("path: %v\ndistance: %.2f km\niterations: %d\n", res.Path, res.Distance, res.Stats.Iterations)
		return
	}

	res, err := s.Score(context.Background(), fs)
	if err != nil {
		log.Fatalf("glidedemo: %s", err)
	}
	fmt.Printf("path: %v\ndistance: %.2f km\n", res.Path, res.Distance)
}

// readFixes loads a CSV file with no header, one "lat,lon,alt" row per fix.
func readFixes(path string) (glidescore.FixSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return glidescore.FixSet{}, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 3

	var fs glidescore.FixSet
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return glidescore.FixSet{}, err
		}
		lat, err := strconv.ParseFloat(rec[0], 64)
		if err != nil {
			return glidescore.FixSet{}, fmt.Errorf("parsing lat: %w", err)
		}
		lon, err := strconv.ParseFloat(rec[1], 64)
		if err != nil {
			return glidescore.FixSet{}, fmt.Errorf("parsing lon: %w", err)
		}
		alt, err := strconv.ParseFloat(rec[2], 64)
		if err != nil {
			return glidescore.FixSet{}, fmt.Errorf("parsing alt: %w", err)
		}
		fs.Lat = append(fs.Lat, lat)
		fs.Lon = append(fs.Lon, lon)
		fs.Alt = append(fs.Alt, alt)
	}
	return fs, nil
}
