// gengenerators derives the public commitment generator set and writes its
// compressed serialization to a file, message generators first and the
// blinding generator last. External verifiers use the file to rebuild the
// commitment key without rerunning the derivation.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/pflag"

	"hyrax-pcs/hyrax"
	"hyrax-pcs/pedersen"
)

func main() {
	count := pflag.Int("count", hyrax.DefaultRowLen, "number of message generators")
	publicString := pflag.String("public-string", hyrax.PublicString, "public string the generators are derived from")
	outputPath := pflag.String("output-generators-filepath", "generators.bin", "destination for the serialized generator set")
	pflag.Parse()

	c, err := pedersen.New(*count, *publicString)
	if err != nil {
		log.Fatalf("gengenerators: derive: %v", err)
	}

	points := append(c.Generators[:len(c.Generators):len(c.Generators)], c.BlindingGenerator)
	buf := hyrax.SerializeCommitment(points)
	if err := os.WriteFile(*outputPath, buf, 0o644); err != nil {
		log.Fatalf("gengenerators: write: %v", err)
	}
	fmt.Printf("wrote %d generators plus blinding generator (%d bytes) to %s\n",
		*count, len(buf), *outputPath)
}
