// Package yaml loads enrichment policy overrides from YAML files.
package yaml

import (
	"errors"
	"io"
	"os"

	"github.com/fwojciec/proddesc"
	"gopkg.in/yaml.v3"
)

// Policy overrides the built-in quality gate and link denylist. Unset fields
// keep the defaults.
//
//	quality:
//	  min_length: 40
//	  refusal_phrases: ["нет данных"]
//	  extra_refusal_phrases: ["as an ai"]
//	search:
//	  denylist: ["wikipedia.org", "avito.ru"]
//	language: Russian
type Policy struct {
	Quality struct {
		MinLength *int `yaml:"min_length"`

		// RefusalPhrases replaces the default list.
		RefusalPhrases []string `yaml:"refusal_phrases"`

		// ExtraRefusalPhrases is appended to the default or replaced list.
		ExtraRefusalPhrases []string `yaml:"extra_refusal_phrases"`
	} `yaml:"quality"`

	Search struct {
		Denylist []string `yaml:"denylist"`
	} `yaml:"search"`

	Language string `yaml:"language"`
}

// LoadPolicy reads a policy file. Unknown keys are rejected so typos do not
// silently fall back to defaults.
func LoadPolicy(path string) (*Policy, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, proddesc.Errorf(proddesc.ENOTFOUND, "policy file %q not found", path)
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return DecodePolicy(f)
}

// DecodePolicy parses a policy document. An empty document yields an empty Policy.
func DecodePolicy(r io.Reader) (*Policy, error) {
	var p Policy
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return nil, proddesc.Errorf(proddesc.EINVALID, "parse policy: %v", err)
	}
	if p.Quality.MinLength != nil && *p.Quality.MinLength < 0 {
		return nil, proddesc.Errorf(proddesc.EINVALID, "quality.min_length must not be negative")
	}
	return &p, nil
}

// QualityGate returns the default gate with the policy overrides applied.
func (p *Policy) QualityGate() *proddesc.QualityGate {
	g := proddesc.DefaultQualityGate()
	if p.Quality.MinLength != nil {
		g.MinLength = *p.Quality.MinLength
	}
	phrases := g.RefusalPhrases
	if p.Quality.RefusalPhrases != nil {
		phrases = p.Quality.RefusalPhrases
	}
	g.RefusalPhrases = append(append([]string(nil), phrases...), p.Quality.ExtraRefusalPhrases...)
	return g
}

// Denylist returns the policy denylist, or def when the policy sets none.
func (p *Policy) Denylist(def []string) []string {
	if p.Search.Denylist != nil {
		return p.Search.Denylist
	}
	return def
}
