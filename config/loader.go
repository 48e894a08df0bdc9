// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package config

import (
	"github.com/Masterminds/semver/v3"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/samber/oops"
	"github.com/spf13/pflag"
)

// Load reads a Bundle from a YAML file at path, optionally overridden
// by flags bound in overrides (nil to skip). The merged data is
// validated against the generated schema before decoding, and the
// decoded version is then checked to be strict semver.
func Load(path string, overrides *pflag.FlagSet) (Bundle, error) {
	k := koanf.New(".")

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return Bundle{}, oops.In("config").Code("InvalidArgument").Wrapf(err, "load bundle file %s", path)
	}
	return loadFromKoanf(k, overrides)
}

// LoadBytes decodes a Bundle from raw YAML bytes (e.g. fetched from
// S3Source), applying the same validation as Load.
func LoadBytes(data []byte, overrides *pflag.FlagSet) (Bundle, error) {
	k := koanf.New(".")
	if err := k.Load(rawProvider{data: data}, yaml.Parser()); err != nil {
		return Bundle{}, oops.In("config").Code("InvalidArgument").Wrapf(err, "load bundle bytes")
	}
	return loadFromKoanf(k, overrides)
}

func loadFromKoanf(k *koanf.Koanf, overrides *pflag.FlagSet) (Bundle, error) {
	if overrides != nil {
		if err := k.Load(posflag.Provider(overrides, ".", k), nil); err != nil {
			return Bundle{}, oops.In("config").Code("InvalidArgument").Wrapf(err, "apply flag overrides")
		}
	}

	raw, err := yaml.Parser().Marshal(k.All())
	if err != nil {
		return Bundle{}, oops.In("config").Wrapf(err, "re-marshal merged config")
	}
	if err := ValidateSchema(raw); err != nil {
		return Bundle{}, err
	}

	var b Bundle
	if err := k.Unmarshal("", &b); err != nil {
		return Bundle{}, oops.In("config").Code("InvalidArgument").Wrapf(err, "decode bundle")
	}

	if _, err := semver.StrictNewVersion(b.Version); err != nil {
		return Bundle{}, oops.In("config").Code("InvalidArgument").Wrapf(err, "bundle version %q is not valid semver", b.Version)
	}

	return b, nil
}
