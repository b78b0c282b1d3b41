package config

import (
	"errors"
	"log"
	"os"
	"path/filepath"
	"testing"
)

func TestParser(t *testing.T) {
	now := ParseBenchYAML("./example_bench.yaml")
	if now == nil {
		t.Fatal(`unable to parse bench yaml.`)
	}
	log.Println(now.Bench.Seed)
	log.Println(now.Bench.Digest)
	log.Println(now.Bench.Seeds)
	if now.Bench.Seed != 0x76 || now.Bench.KeystreamBits != 128 || now.Bench.Instances != 4 {
		t.Errorf("unexpected values: %+v", now.Bench)
	}
	if got := now.PlaintextBytes(); len(got) != 4 || got[0] != 0xDE || got[3] != 0xEF {
		t.Errorf("plaintext % x", got)
	}
	if len(now.SeedList()) != 4 {
		t.Errorf("seed list %v", now.SeedList())
	}
}

func TestDefaultsSurviveMissingKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("bench:\n  Seed: 0x10\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	now := ParseBenchYAML(path)
	if now == nil {
		t.Fatal(`partial config rejected`)
	}
	if now.Bench.Seed != 0x10 || now.Bench.Digest != DefaultDigest || now.Bench.Instances != DefaultInstances {
		t.Errorf("defaults lost: %+v", now.Bench)
	}
	if s := now.SeedList(); len(s) != 1 || s[0] != 0x10 {
		t.Errorf("seed list %v", s)
	}
}

func TestValidate(t *testing.T) {
	c := Default()
	c.Bench.KeystreamBits = 12
	if err := c.Validate(); !errors.Is(err, ErrKeystreamBits) {
		t.Errorf("KeystreamBits 12: %v", err)
	}
	c = Default()
	c.Bench.Instances = 0
	if err := c.Validate(); !errors.Is(err, ErrInstances) {
		t.Errorf("Instances 0: %v", err)
	}
	c = Default()
	c.Bench.Plaintext = `xyz`
	if c.Validate() == nil {
		t.Error(`bad hex accepted`)
	}
	c = Default()
	c.Bench.Seeds = []int{0x10, 0x100}
	if err := c.Validate(); !errors.Is(err, ErrSeedRange) {
		t.Errorf("seed 0x100: %v", err)
	}
	if ParseBenchYAML("./missing.yaml") != nil {
		t.Error(`missing file parsed`)
	}
}
