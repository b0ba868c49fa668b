// Command bench measures Setup, Verify and Randomize throughput for the
// ppe package against a configurable equation shape, optionally running
// iterations concurrently, prints the sample count of each Prometheus
// latency histogram and writes a PNG latency chart.
package main

import (
	"context"
	"crypto/rand"
	"expvar"
	"flag"
	"fmt"
	"math/big"
	"os"
	"sync"
	"time"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/AlvinHon/gs-ppe/internal/benchconfig"
	"github.com/AlvinHon/gs-ppe/internal/benchreport"
	"github.com/AlvinHon/gs-ppe/ppe"
)

func main() {
	configPath := flag.String("config", "", "YAML benchmark config (optional, flags below override it)")
	witnessesG1 := flag.Int("g1", 0, "number of G1 witnesses (0 = use config)")
	witnessesG2 := flag.Int("g2", 0, "number of G2 witnesses (0 = use config)")
	iterations := flag.Int("iterations", 0, "iterations per operation (0 = use config)")
	concurrency := flag.Int("concurrency", 0, "concurrent workers (0 = use config)")
	outputDir := flag.String("output", "", "directory for the latency chart (empty = use config)")
	verbose := flag.Bool("verbose", false, "log each benchmark phase")
	flag.Parse()

	if *verbose {
		ppe.SetLogger(ppe.NewLogger(os.Stderr))
	} else {
		ppe.SetLogger(zerolog.Nop())
	}

	cfg, err := benchconfig.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *witnessesG1 > 0 {
		cfg.WitnessesG1 = *witnessesG1
	}
	if *witnessesG2 > 0 {
		cfg.WitnessesG2 = *witnessesG2
	}
	if *iterations > 0 {
		cfg.Iterations = *iterations
	}
	if *concurrency > 0 {
		cfg.Concurrency = *concurrency
	}
	if *outputDir != "" {
		cfg.OutputDir = *outputDir
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ck, eq, x, y, err := buildFixture(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	report := benchreport.New("setup", "verify", "randomize")
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(cfg.Concurrency)

	var completed expvar.Int
	for i := 0; i < cfg.Iterations; i++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			start := time.Now()
			ps, err := ppe.Setup(rand.Reader, ck, eq, x, y)
			setupElapsed := time.Since(start)
			if err != nil {
				return fmt.Errorf("setup: %w", err)
			}

			start = time.Now()
			err = ps.Verify()
			verifyElapsed := time.Since(start)
			if err != nil {
				return fmt.Errorf("verify: %w", err)
			}

			start = time.Now()
			rps, err := ps.Randomize(rand.Reader)
			randomizeElapsed := time.Since(start)
			if err != nil {
				return fmt.Errorf("randomize: %w", err)
			}
			if err := rps.Verify(); err != nil {
				return fmt.Errorf("verify randomized: %w", err)
			}

			mu.Lock()
			report.Observe(benchreport.Sample{Operation: "setup", Duration: setupElapsed})
			report.Observe(benchreport.Sample{Operation: "verify", Duration: verifyElapsed})
			report.Observe(benchreport.Sample{Operation: "randomize", Duration: randomizeElapsed})
			mu.Unlock()

			completed.Add(1)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		fmt.Fprintf(os.Stderr, "benchmark run %q failed: %v\n", cfg.Name, err)
		os.Exit(1)
	}

	fmt.Printf("completed %d iterations over %d/%d witnesses\n", completed.Value(), cfg.WitnessesG1, cfg.WitnessesG2)

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	path, err := report.WritePNG(cfg.OutputDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("latency chart written to %s\n", path)

	metricFamilies, err := report.Registry().Gather()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	for _, mf := range metricFamilies {
		var samples uint64
		for _, m := range mf.GetMetric() {
			samples += m.GetHistogram().GetSampleCount()
		}
		fmt.Printf("%s: %d samples\n", mf.GetName(), samples)
	}
}

// buildFixture constructs a commitment key and a satisfiable equation
// whose shape matches cfg, with fresh random witnesses.
func buildFixture(cfg benchconfig.Config) (*ppe.CommitmentKeys, *ppe.Equation, []bls12381.G1Affine, []bls12381.G2Affine, error) {
	ck, err := ppe.RandCommitmentKeys(rand.Reader)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	_, _, g1Gen, g2Gen := bls12381.Generators()

	m, n := cfg.WitnessesG1, cfg.WitnessesG2
	a := make([]bls12381.G1Affine, n)
	b := make([]bls12381.G2Affine, m)
	x := make([]bls12381.G1Affine, m)
	y := make([]bls12381.G2Affine, n)
	gamma := make([][]*big.Int, m)

	scale1 := func() (bls12381.G1Affine, error) {
		s, err := ppe.RandomNonzeroScalar(rand.Reader)
		if err != nil {
			return bls12381.G1Affine{}, err
		}
		var p bls12381.G1Jac
		p.FromAffine(&g1Gen)
		p.ScalarMultiplication(&p, s)
		var out bls12381.G1Affine
		out.FromJacobian(&p)
		return out, nil
	}
	scale2 := func() (bls12381.G2Affine, error) {
		s, err := ppe.RandomNonzeroScalar(rand.Reader)
		if err != nil {
			return bls12381.G2Affine{}, err
		}
		var p bls12381.G2Jac
		p.FromAffine(&g2Gen)
		p.ScalarMultiplication(&p, s)
		var out bls12381.G2Affine
		out.FromJacobian(&p)
		return out, nil
	}

	for i := range x {
		if x[i], err = scale1(); err != nil {
			return nil, nil, nil, nil, err
		}
	}
	for j := range y {
		if y[j], err = scale2(); err != nil {
			return nil, nil, nil, nil, err
		}
	}
	for j := range a {
		if a[j], err = scale1(); err != nil {
			return nil, nil, nil, nil, err
		}
	}
	for i := range b {
		if b[i], err = scale2(); err != nil {
			return nil, nil, nil, nil, err
		}
	}
	for i := range gamma {
		gamma[i] = make([]*big.Int, n)
		for j := range gamma[i] {
			gamma[i][j], err = ppe.RandomScalar(rand.Reader)
			if err != nil {
				return nil, nil, nil, nil, err
			}
		}
	}

	tT, err := targetFor(a, b, gamma, x, y)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	eq, err := ppe.NewEquation(a, b, gamma, tT)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	return ck, eq, x, y, nil
}

// targetFor computes the right-hand side value a satisfiable equation
// must declare, by evaluating the same pairing-product the verifier
// will check, directly against the witnesses.
func targetFor(a []bls12381.G1Affine, b []bls12381.G2Affine, gamma [][]*big.Int, x []bls12381.G1Affine, y []bls12381.G2Affine) (bls12381.GT, error) {
	g1s := make([]bls12381.G1Affine, 0, len(a)+len(x)+len(x)*len(y))
	g2s := make([]bls12381.G2Affine, 0, len(a)+len(x)+len(x)*len(y))

	g1s = append(g1s, a...)
	g2s = append(g2s, y...)

	g1s = append(g1s, x...)
	g2s = append(g2s, b...)

	for i := range x {
		for j := range y {
			if gamma[i][j].Sign() == 0 {
				continue
			}
			var p bls12381.G1Jac
			p.FromAffine(&x[i])
			p.ScalarMultiplication(&p, gamma[i][j])
			var affine bls12381.G1Affine
			affine.FromJacobian(&p)
			g1s = append(g1s, affine)
			g2s = append(g2s, y[j])
		}
	}

	return bls12381.Pair(g1s, g2s)
}
