// Command keygen generates an SXDH commitment key for the ppe package
// and writes it, base64-encoded, to a file or stdout.
package main

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/AlvinHon/gs-ppe/ppe"
)

func main() {
	outputFile := flag.String("output", "", "output file for the commitment key (optional, defaults to stdout)")
	verbose := flag.Bool("verbose", false, "log key generation steps")
	flag.Parse()

	if *verbose {
		ppe.SetLogger(ppe.NewLogger(os.Stderr))
	} else {
		ppe.SetLogger(zerolog.Nop())
	}

	ck, err := ppe.RandCommitmentKeys(rand.Reader)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error generating commitment key: %v\n", err)
		os.Exit(1)
	}

	encoded := struct {
		CommitmentKey string `json:"commitmentKey"`
	}{
		CommitmentKey: base64.StdEncoding.EncodeToString(ck.Marshal()),
	}

	data, err := json.MarshalIndent(encoded, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "error serializing commitment key: %v\n", err)
		os.Exit(1)
	}

	if *outputFile == "" {
		fmt.Println(string(data))
		return
	}
	if err := os.WriteFile(*outputFile, data, 0o600); err != nil {
		fmt.Fprintf(os.Stderr, "error writing to file: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("commitment key written to %s\n", *outputFile)
}
