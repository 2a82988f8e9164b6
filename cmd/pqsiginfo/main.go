// Command pqsiginfo prints what the post-quantum signature suite sees on
// this host: the backend, its enabled mechanisms, and the resolution and
// mode of every supported scheme. With -roundtrip it also runs a
// generate/sign/verify cycle per scheme.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"

	pqsig "github.com/qrp2p/pqsig-go"
	"github.com/qrp2p/pqsig-go/mechanism"
)

// Config carries the process streams so tests can capture output.
type Config struct {
	Stdout io.Writer
	Stderr io.Writer
}

func DefaultConfig() Config {
	return Config{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

func run(args []string, cfg Config) error {
	fs := flag.NewFlagSet("pqsiginfo", flag.ContinueOnError)
	fs.SetOutput(cfg.Stderr)
	var (
		nodeID    = fs.String("node", "", "node identity for mock key derivation (default: NODE_ID env, then PID)")
		mockOnly  = fs.Bool("mock-only", false, "skip the backend probe and run everything on the mock engine")
		roundtrip = fs.Bool("roundtrip", false, "run a generate/sign/verify cycle per scheme")
		message   = fs.String("message", "hello", "payload for -roundtrip")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	// Pick up NODE_ID and friends from a local .env if present.
	_ = godotenv.Load()

	opts := suiteOptions(*nodeID, *mockOnly)
	suite, err := pqsig.New(opts...)
	if err != nil {
		return fmt.Errorf("create suite: %w", err)
	}

	printSuite(cfg.Stdout, suite)
	printResolution(cfg.Stdout, suite)

	if *roundtrip {
		fmt.Fprintln(cfg.Stdout)
		if err := runRoundtrips(cfg.Stdout, opts, []byte(*message)); err != nil {
			return err
		}
	}
	return nil
}

func suiteOptions(nodeID string, mockOnly bool) []pqsig.Option {
	var opts []pqsig.Option
	if nodeID != "" {
		opts = append(opts, pqsig.WithNodeID(nodeID))
	}
	if mockOnly {
		opts = append(opts, pqsig.WithMockOnly())
	}
	return opts
}

func printSuite(w io.Writer, suite *pqsig.Suite) {
	name := suite.BackendName()
	if name == "" {
		name = "(none)"
	}
	fmt.Fprintf(w, "backend:    %s\n", name)
	fmt.Fprintf(w, "available:  %v\n", suite.Available())
	if reason := suite.DegradeReason(); reason != nil {
		fmt.Fprintf(w, "reason:     %v\n", reason)
	}
	fmt.Fprintf(w, "node id:    %s\n", suite.NodeID())

	mechs := suite.Mechanisms()
	fmt.Fprintf(w, "mechanisms: %d\n", len(mechs))
	for _, m := range mechs {
		fmt.Fprintf(w, "  %s\n", m)
	}
}

func printResolution(w io.Writer, suite *pqsig.Suite) {
	fmt.Fprintln(w)
	enabled := suite.Mechanisms()
	for _, family := range []mechanism.Family{mechanism.Dilithium, mechanism.Sphincs} {
		for _, level := range mechanism.Levels(family) {
			name, ok := mechanism.Resolve(family, level, enabled)
			if !ok {
				name = "(no enabled variant, mock)"
			}
			fmt.Fprintf(w, "%-9s level %d: %s\n", family, level, name)
		}
	}
}

// runRoundtrips exercises every scheme on a fresh Suite per family, so a
// family that cannot resolve does not push its sibling into mock mode for
// the report.
func runRoundtrips(w io.Writer, opts []pqsig.Option, message []byte) error {
	build := map[mechanism.Family]func(*pqsig.Suite, int) (pqsig.Algorithm, error){
		mechanism.Dilithium: (*pqsig.Suite).Dilithium,
		mechanism.Sphincs:   (*pqsig.Suite).Sphincs,
	}

	for _, family := range []mechanism.Family{mechanism.Dilithium, mechanism.Sphincs} {
		suite, err := pqsig.New(opts...)
		if err != nil {
			return fmt.Errorf("create suite: %w", err)
		}
		for _, level := range mechanism.Levels(family) {
			alg, err := build[family](suite, level)
			if err != nil {
				return fmt.Errorf("construct %s level %d: %w", family, level, err)
			}

			keys := alg.GenerateKeyPair()
			sig := alg.Sign(keys.PrivateKey, message)
			status := "FAILED"
			if alg.Verify(keys.PublicKey, message, sig) {
				status = "ok"
			}
			fmt.Fprintf(w, "%-42s sig=%4dB roundtrip=%s\n", alg.Name(), len(sig), status)
		}
	}
	return nil
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
