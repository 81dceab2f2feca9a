package main

import (
	"flag"
	"fmt"
	"os"

	"uva-matrix/internal/exporter/word"
)

// gentemplate writes the Word report template so it can be restyled in Word.
// Placeholders must stay inside a single text run.
func main() {
	out := flag.String("o", "template.docx", "Output path")
	flag.Parse()

	f, err := os.Create(*out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}

	if err := word.WriteTemplate(f); err != nil {
		f.Close()
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}
	if err := f.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Template written to %s\n", *out)
}
