// SPDX-LICENSE-IDENTIFIER: GPL-2.0-Only
// (C) 2024 Author: <kisfg@hotmail.com>
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"triviumlite/config"
)

var param struct {
	config    string
	seed      uint8
	input     string
	digest    string
	bits      int
	trace     string
	instances int
	random    bool
	verbose   bool
}

func init() {
	pflag.StringVarP(&param.config, "config", "c", "", "Bench configuration (yaml)")
	pflag.Uint8VarP(&param.seed, "seed", "s", config.DefaultSeed, "Seed byte")
	pflag.StringVarP(&param.input, "input", "i", "", "Payload as hex, e.g. 'de ad be ef'")
	pflag.StringVarP(&param.digest, "digest", "d", "", "Keystream digest: sm3, sha256, sha3-256, sha512, sha3-512, blake2b-256, blake2s-256, blake2b-512")
	pflag.IntVarP(&param.bits, "bits", "n", 0, "Keystream bits to fingerprint (multiple of 8)")
	pflag.StringVarP(&param.trace, "trace", "t", "", "Write the pin-level trace of 'bench' to this file")
	pflag.IntVarP(&param.instances, "instances", "j", 0, "Farm workers")
	pflag.BoolVarP(&param.random, "random", "r", false, "Draw a random seed")
	pflag.BoolVarP(&param.verbose, "verbose", "v", false, "Log every clock edge / farm job")

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage:\n  %s [options] <%s>\n\nOptions:\n", os.Args[0], strings.Join(actionNames(), "|"))
		pflag.PrintDefaults()
	}
}

// loadConfig layers: defaults, then the yaml file, then flags given explicitly.
func loadConfig() (*config.BenchConfig, error) {
	cfg := config.Default()
	if len(param.config) > 0 {
		if cfg = config.ParseBenchYAML(param.config); cfg == nil {
			return nil, fmt.Errorf("config '%s' could not be loaded", param.config)
		}
	}
	b := &cfg.Bench
	if pflag.CommandLine.Changed("seed") {
		b.Seed = param.seed
		b.Seeds = nil
	}
	if len(param.input) > 0 {
		b.Plaintext = param.input
	}
	if len(param.digest) > 0 {
		b.Digest = param.digest
	}
	if param.bits > 0 {
		b.KeystreamBits = param.bits
	}
	if len(param.trace) > 0 {
		b.Trace = param.trace
	}
	if param.instances > 0 {
		b.Instances = param.instances
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func evaluate(ctx context.Context, out io.Writer, name string) error {
	act, ok := actions[name]
	if !ok {
		return errors.New(fmt.Sprintf("action '%s' not recognized", name))
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if param.random {
		if cfg.Bench.Seed, err = randomSeed(); err != nil {
			return err
		}
		cfg.Bench.Seeds = nil
		log.Printf("random seed %#02x\n", cfg.Bench.Seed)
	}
	return act(ctx, out, cfg)
}

func main() {
	pflag.Parse()

	args := pflag.Args()
	if len(args) != 1 {
		pflag.Usage()
		os.Exit(1)
	}

	if err := evaluate(context.Background(), os.Stdout, args[0]); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}
