// Copyright (c) 2026 Keymaster Team
// SecureEdit - masked secret entry
// This source code is licensed under the MIT license found in the LICENSE file.

package secretstore

import (
	"encoding/binary"

	"github.com/awnumar/memguard"
	"github.com/toeirei/secureedit/internal/logging"
)

// unitSize is the number of bytes one rune occupies inside the enclave.
const unitSize = 4

// Protected keeps the secret encrypted in a memguard enclave. Every
// mutation decrypts into a locked buffer, writes a resized copy into a
// second locked buffer and seals that one; both plaintext buffers are wiped
// before the call returns.
//
// A single-unit mutation therefore costs O(n) copying plus one locked
// allocation. Rebuilding a secret of n runes through Append costs O(n²) and n
// allocations; use Reset, which seals once.
type Protected struct {
	enclave *memguard.Enclave // nil while empty
	n       int
}

// NewProtected returns an empty protected store. Callers normally go through
// New, which checks that protected memory is available first.
func NewProtected() *Protected { return &Protected{} }

func (p *Protected) Kind() Kind { return KindProtected }

func (p *Protected) Len() int { return p.n }

func (p *Protected) Append(r rune) { p.InsertAt(p.n, r) }

func (p *Protected) InsertAt(i int, r rune) {
	i = clamp(i, 0, p.n)
	p.rewrite(p.n+1, func(dst, src []byte) {
		copy(dst, src[:i*unitSize])
		binary.LittleEndian.PutUint32(dst[i*unitSize:], uint32(r))
		copy(dst[(i+1)*unitSize:], src[i*unitSize:])
	})
}

func (p *Protected) RemoveAt(i int) {
	if p.n == 0 {
		return
	}
	i = clamp(i, 0, p.n-1)
	p.rewrite(p.n-1, func(dst, src []byte) {
		copy(dst, src[:i*unitSize])
		copy(dst[i*unitSize:], src[(i+1)*unitSize:])
	})
}

func (p *Protected) Clear() {
	p.enclave = nil
	p.n = 0
}

func (p *Protected) Destroy() { p.Clear() }

func (p *Protected) Reset(runes []rune) {
	p.Clear()
	if len(runes) == 0 {
		return
	}
	next := memguard.NewBuffer(len(runes) * unitSize)
	dst := next.Bytes()
	for i, r := range runes {
		binary.LittleEndian.PutUint32(dst[i*unitSize:], uint32(r))
	}
	p.enclave = next.Seal()
	p.n = len(runes)
}

func (p *Protected) Materialize() *Materialized {
	out := make([]rune, p.n)
	if p.n == 0 {
		return &Materialized{Runes: out}
	}
	buf := p.open()
	if buf == nil {
		return &Materialized{Runes: out[:0]}
	}
	defer buf.Destroy()
	raw := buf.Bytes()
	for i := range out {
		out[i] = rune(binary.LittleEndian.Uint32(raw[i*unitSize:]))
	}
	return &Materialized{Runes: out}
}

// open decrypts the enclave. A failure means the session key was purged;
// the secret is unrecoverable at that point and the store resets to empty.
func (p *Protected) open() *memguard.LockedBuffer {
	if p.enclave == nil {
		return nil
	}
	buf, err := p.enclave.Open()
	if err != nil {
		logging.Errorf("secretstore: cannot open enclave, discarding secret: %v", err)
		p.Clear()
		return nil
	}
	return buf
}

// rewrite replaces the secret by a buffer of n runes filled from the
// current plaintext. src is empty when the store is empty. When the enclave
// cannot be opened the mutation is dropped along with the secret.
func (p *Protected) rewrite(n int, fill func(dst, src []byte)) {
	var src []byte
	if p.enclave != nil {
		old := p.open()
		if old == nil {
			return
		}
		defer old.Destroy()
		src = old.Bytes()
	}
	if n == 0 {
		p.Clear()
		return
	}

	next := memguard.NewBuffer(n * unitSize)
	fill(next.Bytes(), src)
	p.enclave = next.Seal()
	p.n = n
}

// protectedAvailable allocates and frees a locked buffer. memguard panics
// when it cannot lock memory, which is turned into a false result here.
func protectedAvailable() (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			logging.Debugf("secretstore: memguard probe failed: %v", r)
			ok = false
		}
	}()
	b := memguard.NewBuffer(unitSize)
	b.Destroy()
	return true
}

var _ Store = (*Protected)(nil)
