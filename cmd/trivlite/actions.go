// SPDX-LICENSE-IDENTIFIER: GPL-2.0-Only
// (C) 2024 Author: <kisfg@hotmail.com>
package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"triviumlite/config"
	cryptoprotect "triviumlite/cryptoProtect"
	"triviumlite/pins"
	"triviumlite/service"
	"triviumlite/utils"
)

type action func(ctx context.Context, out io.Writer, cfg *config.BenchConfig) error

var actions = map[string]action{
	"flip":      doFlip,
	"roundtrip": doRoundTrip,
	"keystream": doKeystream,
	"bench":     doBench,
	"farm":      doFarm,
}

var errMismatch = errors.New("round trip did not restore the payload")

func actionNames() []string {
	res := make([]string, 0, len(actions))
	for k := range actions {
		res = append(res, k)
	}
	sort.Strings(res)
	return res
}

func randomSeed() (uint8, error) { return cryptoprotect.GenerateSeed() }

func newCipher(seed uint8) cryptoprotect.StreamCipher {
	c := &cryptoprotect.TriviumLite{}
	c.SetKey([]byte{seed})
	return c
}

// flip encrypts, or decrypts, the payload: one fresh session.
func doFlip(_ context.Context, out io.Writer, cfg *config.BenchConfig) error {
	res, err := newCipher(cfg.Bench.Seed).FlipFlow(cfg.PlaintextBytes())
	if err != nil {
		return err
	}
	fmt.Fprintln(out, utils.HexSpaced(res))
	return nil
}

func doRoundTrip(_ context.Context, out io.Writer, cfg *config.BenchConfig) error {
	c := newCipher(cfg.Bench.Seed)
	plain := cfg.PlaintextBytes()
	mid, err := c.EncryptFlow(plain)
	if err != nil {
		return err
	}
	back, err := c.DecryptFlow(mid)
	if err != nil {
		return err
	}
	for i := range plain {
		fmt.Fprintf(out, "[%d] 0x%02x -> 0x%02x -> 0x%02x\n", i, plain[i], mid[i], back[i])
	}
	if !bytes.Equal(plain, back) {
		return errMismatch
	}
	return nil
}

func doKeystream(_ context.Context, out io.Writer, cfg *config.BenchConfig) error {
	h, err := cryptoprotect.HashByName(cfg.Bench.Digest)
	if err != nil {
		return err
	}
	for _, seed := range cfg.SeedList() {
		d := cryptoprotect.KeystreamDigest(seed, cfg.Bench.KeystreamBits/8, h)
		fmt.Fprintf(out, "seed 0x%02x %s/%d: %x\n", seed, cfg.Bench.Digest, cfg.Bench.KeystreamBits, d)
	}
	return nil
}

// bench replays the reference pin sequence: reset, seed, stream, reset pulse, seed, stream back.
func doBench(_ context.Context, out io.Writer, cfg *config.BenchConfig) error {
	p := pins.New()
	rec := &pins.Recorder{Verbose: param.verbose}
	p.Attach(rec)

	plain := cfg.PlaintextBytes()
	if err := p.HoldReset(3); err != nil {
		return err
	}
	if err := p.LoadSeed(cfg.Bench.Seed); err != nil {
		return err
	}
	mid, err := p.Stream(plain)
	if err != nil {
		return err
	}
	if err = p.ResetPulse(); err != nil {
		return err
	}
	if err = p.LoadSeed(cfg.Bench.Seed); err != nil {
		return err
	}
	back, err := p.Stream(mid)
	if err != nil {
		return err
	}

	for i := range plain {
		verdict := `PASS`
		if plain[i] != back[i] {
			verdict = `FAIL`
		}
		fmt.Fprintf(out, "%s: [%d] 0x%02x -> 0x%02x -> 0x%02x\n", verdict, i, plain[i], mid[i], back[i])
	}
	fmt.Fprintf(out, "%d clock edges\n", p.Cycle())

	if len(cfg.Bench.Trace) > 0 {
		f, err := os.Create(cfg.Bench.Trace)
		if err != nil {
			return err
		}
		defer f.Close()
		if err = pins.EncodeTrace(f, rec.Records); err != nil {
			return err
		}
	}
	if !bytes.Equal(plain, back) {
		return errMismatch
	}
	return nil
}

func doFarm(ctx context.Context, out io.Writer, cfg *config.BenchConfig) error {
	plain := cfg.PlaintextBytes()
	var jobs []service.Job
	for i, seed := range cfg.SeedList() {
		jobs = append(jobs, service.Job{ID: i, Seed: seed, Payload: plain, Verify: true})
	}
	f := &service.Farm{Workers: cfg.Bench.Instances, Verbose: param.verbose}
	res, err := f.Run(ctx, jobs)
	for _, r := range res {
		fmt.Fprintf(out, "job %d seed 0x%02x: %s verified=%v\n", r.ID, r.Seed, utils.HexSpaced(r.Output), r.Verified)
	}
	return err
}
