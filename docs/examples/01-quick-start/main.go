package main

import (
	"fmt"
	"log"

	"github.com/beetlebugorg/iso8211/pkg/iso8211"
)

func main() {
	// Open the file and compile its DDR
	f, err := iso8211.OpenFile("ENC_ROOT/CATALOG.031")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	// Print the schema
	schema := f.Schema()
	fmt.Printf("Fields: %d\n", schema.Len())
	for _, tag := range schema.Tags() {
		def, _ := schema.Field(tag)
		fmt.Printf("  %s %s %v\n", tag, def.Name, def.Specs())
	}

	// Stream the data records
	for rec, err := range f.Records() {
		if err != nil {
			log.Fatal(err)
		}
		for _, field := range rec.Fields {
			fmt.Printf("%s:", field.Tag)
			for _, sf := range field.Subfields {
				fmt.Printf(" %s=%v", sf.Name, sf.Value)
			}
			fmt.Println()
		}
	}
}
