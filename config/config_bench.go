// SPDX-LICENSE-IDENTIFIER: GPL-2.0-ONLY
// (C) 2024 Author: <kisfg@hotmail.com>

package config

import (
	"errors"
	"log"
	"os"
	"sync"

	"triviumlite/defErr"
	"triviumlite/utils"

	"gopkg.in/yaml.v3"
)

type (
	bench struct {
		Seed          uint8  `yaml:"Seed"`
		Plaintext     string `yaml:"Plaintext"`
		Digest        string `yaml:"Digest"`
		KeystreamBits int    `yaml:"KeystreamBits"`
		Trace         string `yaml:"Trace"`
		Instances     int    `yaml:"Instances"`
		Seeds         []int  `yaml:"Seeds"` // farm runs one stream per seed
	}
	BenchConfig struct {
		Bench bench `yaml:"bench"`
	}
)

const (
	DefaultSeed          uint8 = 0x76
	DefaultPlaintext           = `deadbeef`
	DefaultDigest              = `sm3`
	DefaultKeystreamBits       = 64
	DefaultInstances           = 4
)

var (
	safe_read_bench sync.RWMutex

	ErrKeystreamBits = errors.New("config: KeystreamBits must be a positive multiple of 8")
	ErrInstances     = errors.New("config: Instances must be positive")
	ErrSeedRange     = errors.New("config: Seeds entries must fit in one byte")
)

// Default mirrors the reference bench: seed 0x76 over DE AD BE EF.
func Default() *BenchConfig {
	return &BenchConfig{Bench: bench{
		Seed:          DefaultSeed,
		Plaintext:     DefaultPlaintext,
		Digest:        DefaultDigest,
		KeystreamBits: DefaultKeystreamBits,
		Instances:     DefaultInstances,
	}}
}

// ParseBenchYAML returns nil when the file is unreadable or malformed. Missing keys keep their defaults.
func ParseBenchYAML(path string) *BenchConfig {
	safe_read_bench.RLock()
	cfg_data, err := os.ReadFile(path)
	safe_read_bench.RUnlock()
	if err != nil {
		log.Println(err.Error())
		return nil
	}
	res := Default()
	err = yaml.Unmarshal(cfg_data, res)
	if err != nil {
		log.Println(err.Error())
		return nil
	}
	if err = res.Validate(); err != nil {
		log.Println(err.Error())
		return nil
	}
	return res
}

func (c *BenchConfig) Validate() error {
	b := &c.Bench
	if b.KeystreamBits <= 0 || b.KeystreamBits%8 != 0 {
		return ErrKeystreamBits
	}
	if b.Instances <= 0 {
		return ErrInstances
	}
	for _, s := range b.Seeds {
		if s < 0 || s > 0xFF {
			return ErrSeedRange
		}
	}
	if _, err := utils.ParseHexBytes(b.Plaintext); err != nil {
		return defErr.DescribeThenConcat(`config: Plaintext`, err)
	}
	return nil
}

func (c *BenchConfig) PlaintextBytes() []byte {
	res, _ := utils.ParseHexBytes(c.Bench.Plaintext)
	return res
}

// SeedList is Seeds when given, otherwise just Seed.
func (c *BenchConfig) SeedList() []uint8 {
	if len(c.Bench.Seeds) != 0 {
		res := make([]uint8, len(c.Bench.Seeds))
		for i, s := range c.Bench.Seeds {
			res[i] = uint8(s)
		}
		return res
	}
	return []uint8{c.Bench.Seed}
}
