// Copyright (c) 2026 Keymaster Team
// SecureEdit - masked secret entry
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package security provides the caller-owned secret type handed out when an
// edit buffer materializes its contents. It redacts itself in logs and
// encodings and knows how to scrub and compare itself.
package security
