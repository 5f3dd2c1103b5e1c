// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

var knownLogLevels = map[string]struct{}{
	"":         {},
	"trace":    {},
	"debug":    {},
	"info":     {},
	"warn":     {},
	"error":    {},
	"fatal":    {},
	"panic":    {},
	"disabled": {},
}

// validate checks that the final merged [StructuredConfig] is usable.
// Only values that can be checked without touching the network or the
// filesystem are validated here.
func (cfg *StructuredConfig) validate() error {
	if _, ok := knownLogLevels[strings.ToLower(cfg.App.LogLevel)]; !ok {
		return ErrInvalidAppConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if strings.TrimSpace(cfg.Storage.DB.DSN) == "" {
		return ErrInvalidStorageConfigs
	}

	if strings.TrimSpace(cfg.Adapter.HTTPAddress) == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if !strings.HasPrefix(cfg.Adapter.RefreshPath, "/") || !strings.HasPrefix(cfg.Adapter.LogoutPath, "/") {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
