package main

import (
	"fmt"
	"log"

	"github.com/beetlebugorg/iso8211/pkg/exchangeset"
)

func main() {
	// Load the catalogue of an exchange set
	cat, err := exchangeset.LoadFile("ENC_ROOT/CATALOG.031")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Catalogue lists %d files\n\n", len(cat.Entries))

	for _, cell := range cat.BaseCells() {
		fmt.Printf("Cell: %s\n", cell.File)
		fmt.Printf("  Volume: %s\n", cell.Volume)
		fmt.Printf("  CRC: %s\n", cell.CRC)
		if cell.HasBounds {
			fmt.Printf("  Bounds: [%.4f,%.4f] to [%.4f,%.4f]\n",
				cell.Bounds.MinLon, cell.Bounds.MinLat,
				cell.Bounds.MaxLon, cell.Bounds.MaxLat)
		}
	}

	// Example location query
	idx := cat.Index()
	lon, lat := -71.05, 42.35
	matches := idx.Contains(lon, lat)
	fmt.Printf("\nFiles covering location %.4f, %.4f: %d\n", lon, lat, len(matches))
	for _, e := range matches {
		fmt.Printf("  %s\n", e.File)
	}
}
