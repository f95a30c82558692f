package main

import (
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/env"
)

// initConfig loads environment overrides to `ko` object. The decompiler
// deliberately takes no flags; `ALUMINUM_COOKIE__FILE` and
// `ALUMINUM_COOKIE__KEY` are the only knobs.
func initConfig() (*koanf.Koanf, error) {
	ko := koanf.New(".")

	err := ko.Load(env.Provider("ALUMINUM_", ".", func(s string) string {
		return strings.Replace(strings.ToLower(
			strings.TrimPrefix(s, "ALUMINUM_")), "__", ".", -1)
	}), nil)
	if err != nil {
		return nil, err
	}

	return ko, nil
}
