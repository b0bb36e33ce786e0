// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"strings"

	"github.com/MKhiriev/taskio/internal/dynamic"
	"github.com/MKhiriev/taskio/internal/logger"
	"github.com/MKhiriev/taskio/models"
)

// loadSecretKeys parses the raw DEVICE_KEYS env payload. Two shapes are
// meaningful:
//
//   - a JSON list of keys, appended to every task's device_keys;
//   - a JSON object mapping aliases to keys, used to resolve placeholders.
//
// An empty or malformed payload degrades to null (no injection) with a
// warning, so a broken secret never blocks the sweep.
func loadSecretKeys(raw string, log *logger.Logger) dynamic.Value {
	if strings.TrimSpace(raw) == "" {
		return dynamic.Null()
	}

	keys, err := dynamic.ParseString(raw, "DEVICE_KEYS")
	if err != nil {
		log.Warn().Err(err).Msg("DEVICE_KEYS is not valid json, ignoring")
		return dynamic.Null()
	}

	log.Debug().Str("shape", keys.Kind().String()).Msg("loaded secret keys")
	return keys
}

// injectDeviceKeys merges secret keys into payload's device_keys list,
// in place. payload must be the task's body copy — never the stored body,
// or the secrets would be written back to disk on save.
//
// List-shaped keys are appended with de-duplication. Object-shaped keys
// replace aliases in the existing list; when the list is empty, every secret
// value is injected.
func injectDeviceKeys(payload dynamic.Value, keys dynamic.Value, log *logger.Logger) {
	obj := payload.Object()
	if obj == nil {
		return
	}

	existingVal, _ := obj.Get(models.TaskKeyDeviceKeys)
	existing := existingVal.Items()

	switch keys.Kind() {
	case dynamic.KindArray:
		merged := dedupe(append(append([]dynamic.Value{}, existing...), keys.Items()...))
		if added := len(merged) - len(existing); added > 0 {
			log.Debug().Int("added", added).Msg("appended secret keys")
		}
		obj.Set(models.TaskKeyDeviceKeys, dynamic.Array(merged...))

	case dynamic.KindObject:
		secrets := keys.Object()
		if len(existing) == 0 && secrets.Len() > 0 {
			all := make([]dynamic.Value, 0, secrets.Len())
			for _, alias := range secrets.Keys() {
				value, _ := secrets.Get(alias)
				all = append(all, value)
			}
			log.Debug().Int("count", len(all)).Msg("device_keys empty, injecting all secrets")
			obj.Set(models.TaskKeyDeviceKeys, dynamic.Array(all...))
			return
		}

		resolved := make([]dynamic.Value, 0, len(existing))
		for _, item := range existing {
			if secret, ok := secrets.Get(item.Str()); ok && item.Kind() == dynamic.KindString {
				log.Debug().Str("alias", item.Str()).Msg("resolved device key alias")
				resolved = append(resolved, secret)
				continue
			}
			resolved = append(resolved, item)
		}
		obj.Set(models.TaskKeyDeviceKeys, dynamic.Array(resolved...))

	default:
		// No secrets: still guarantee the field exists so receivers can
		// rely on its presence.
		if _, ok := obj.Get(models.TaskKeyDeviceKeys); !ok {
			obj.Set(models.TaskKeyDeviceKeys, dynamic.Array())
		}
	}
}

// dedupe keeps the first occurrence of each key, comparing by serialized
// form so non-string entries are handled too.
func dedupe(items []dynamic.Value) []dynamic.Value {
	seen := make(map[string]struct{}, len(items))
	out := make([]dynamic.Value, 0, len(items))
	for _, item := range items {
		text, err := dynamic.EncodeCompact(item)
		if err != nil {
			out = append(out, item)
			continue
		}
		if _, dup := seen[text]; dup {
			continue
		}
		seen[text] = struct{}{}
		out = append(out, item)
	}
	return out
}
