// Copyright (c) 2026 Keymaster Team
// SecureEdit - masked secret entry
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package codec converts secrets between UTF-8 bytes, runes and UTF-16.
// Intermediate buffers it allocates itself are scrubbed; buffers passed in
// by the caller stay the caller's to wipe.
package codec
