// Copyright (c) 2026 Keymaster Team
// SecureEdit - masked secret entry
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package secretstore holds the authoritative secret of an edit buffer as a
// sequence of runes. Two representations exist behind the Store interface:
// Protected keeps the runes encrypted inside a memguard enclave and only
// decrypts them into mlocked, guard-paged buffers for the duration of a
// single-unit mutation; Plain keeps a zeroing rune slice and is used when the
// protected primitive cannot be initialised on the running platform.
//
// The representation is chosen once by New and never changes for the life
// of the Store.
package secretstore
