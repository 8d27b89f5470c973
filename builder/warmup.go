// SPDX-License-Identifier: MIT
// Package: clados/builder
//
// warmup.go — YAML warm-up configuration: which bases and product tables to
// construct ahead of first use.
//
//	parallelism: 4
//	bases: [0, 3]
//	signatures: ["+++", "-+++"]
//
// Decoding rejects unknown keys. Validation runs through a shared
// go-playground validator carrying the custom "signature" tag.

package builder

import (
	"errors"
	"io"
	"runtime"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/clados/signature"
)

// configValidate is the validator instance for Config.
// Initialized in init() with custom validators.
var configValidate *validator.Validate

func init() {
	configValidate = validator.New()
	_ = configValidate.RegisterValidation("signature", validateSignatureField)
}

// validateSignatureField is the "signature" tag: a non-empty '+'/'-' string
// of at most MaxGenerators characters.
func validateSignatureField(fl validator.FieldLevel) bool {
	return signature.Validate(fl.Field().String())
}

// Config lists the entries to construct on Warm.
type Config struct {
	// Parallelism caps goroutines per product table; 0 keeps the default.
	Parallelism int `yaml:"parallelism" validate:"gte=0"`
	// Bases are generator counts.
	Bases []int `yaml:"bases" validate:"dive,gte=0,lte=14"`
	// Signatures are product-table keys, e.g. "+++" or "-+++".
	Signatures []string `yaml:"signatures" validate:"dive,signature"`
}

// Validate checks cfg against its tags.
// Errors: ErrBadConfig.
func (cfg Config) Validate() error {
	if err := configValidate.Struct(cfg); err != nil {
		return builderErrorf(MethodLoadConfig, ErrBadConfig, "%v", err)
	}

	return nil
}

// LoadConfig decodes and validates a YAML warm-up configuration.
// An empty document yields the zero Config.
// Errors: ErrBadConfig on malformed YAML, unknown keys, or failed validation.
func LoadConfig(r io.Reader) (Config, error) {
	var cfg Config

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, builderErrorf(MethodLoadConfig, ErrBadConfig, "decode: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// OptionsFromConfig maps the builder knobs of cfg onto options for New.
func OptionsFromConfig(cfg Config) []BuilderOption {
	var opts []BuilderOption
	if cfg.Parallelism > 0 {
		opts = append(opts, WithParallelism(cfg.Parallelism))
	}

	return opts
}

// Warm constructs every basis and product table listed in cfg. Entries are
// built concurrently; the registry collapses duplicates. The first failure
// is returned, and entries that completed stay registered.
// Errors: ErrBadConfig, or any CreateBasis/CreateProduct error.
func (b *Builder) Warm(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for _, n := range cfg.Bases {
		g.Go(func() error {
			if _, err := b.CreateBasis(n); err != nil {
				return builderErrorf(MethodWarm, err, "basis %d", n)
			}
			return nil
		})
	}
	for _, sig := range cfg.Signatures {
		g.Go(func() error {
			if _, err := b.CreateProduct(sig); err != nil {
				return builderErrorf(MethodWarm, err, "product %q", sig)
			}
			return nil
		})
	}

	return g.Wait()
}
