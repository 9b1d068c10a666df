// hyraxcommit commits to the contents of a file and writes the serialized
// commitment and blinding factors to disk. The blinding seed comes from the
// system CSPRNG; the blinding-factor output is the only secret artifact and
// is written with owner-only permissions.
package main

import (
	"crypto/rand"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/pflag"

	"hyrax-pcs/hyrax"
	"hyrax-pcs/prof"
)

func main() {
	inputPath := pflag.String("input-image-filepath", "", "file whose contents are committed (required)")
	commitmentPath := pflag.String("output-commitment-filepath", "commitment.bin", "destination for the serialized commitment")
	blindingPath := pflag.String("output-blinding-factors-filepath", "blinding_factors.bin", "destination for the serialized blinding factors")
	verbose := pflag.Bool("verbose", false, "print per-phase timings")
	pflag.Parse()

	if *inputPath == "" {
		pflag.Usage()
		log.Fatalf("hyraxcommit: --input-image-filepath is required")
	}

	data, err := os.ReadFile(*inputPath)
	if err != nil {
		log.Fatalf("hyraxcommit: read input: %v", err)
	}

	seed := make([]byte, hyrax.SeedSize)
	if _, err := rand.Read(seed); err != nil {
		log.Fatalf("hyraxcommit: draw blinding seed: %v", err)
	}

	start := time.Now()
	out, err := hyrax.ComputeCommitmentsBinaryOutputs(data, seed)
	if err != nil {
		log.Fatalf("hyraxcommit: commit: %v", err)
	}
	elapsed := time.Since(start)

	// Both outputs land only after the whole computation succeeded; a failed
	// run leaves no partial files behind.
	if err := os.WriteFile(*commitmentPath, out.Commitment, 0o644); err != nil {
		log.Fatalf("hyraxcommit: write commitment: %v", err)
	}
	if err := os.WriteFile(*blindingPath, out.BlindingFactors, 0o600); err != nil {
		log.Fatalf("hyraxcommit: write blinding factors: %v", err)
	}

	rows := hyrax.RowCount(len(data), hyrax.DefaultRowLen)
	fmt.Printf("committed %d bytes as %d rows in %s\n", len(data), rows, elapsed)
	fmt.Printf("  commitment       -> %s (%d bytes)\n", *commitmentPath, len(out.Commitment))
	fmt.Printf("  blinding factors -> %s (%d bytes)\n", *blindingPath, len(out.BlindingFactors))

	if *verbose {
		fmt.Println("phase timings:")
		prof.Report(os.Stdout, prof.SnapshotAndReset())
	}
}
