// Copyright 2026 stackdump project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

package symbolize

import (
	"debug/elf"
	"sort"
	"sync"

	"github.com/ianlancetaylor/demangle"
)

// symtab lazily loads the executable's ELF symbol table and resolves
// addresses the Go runtime does not know about (cgo code, assembly
// thunks). On systems where the executable is not an ELF image the
// load fails silently and every lookup returns "".
//
// Note: symbol values are link-time addresses, so lookups are only
// meaningful for non-relocated executables. Same caveat applies to
// the external addr2line tier.
type symtab struct {
	once sync.Once
	syms []elfSym
}

type elfSym struct {
	addr uint64
	size uint64
	name string
}

func (st *symtab) find(exe string, addr uint64) string {
	st.once.Do(func() { st.load(exe) })
	syms := st.syms
	idx := sort.Search(len(syms), func(i int) bool {
		return syms[i].addr > addr
	})
	if idx == 0 {
		return ""
	}
	s := syms[idx-1]
	if s.size > 0 {
		if addr < s.addr+s.size {
			return s.name
		}
		return ""
	}
	// Zero-sized symbols cover up to the start of the next one
	// (hand-written assembly often has no size info).
	limit := s.addr + 4096
	if idx < len(syms) {
		limit = syms[idx].addr
	}
	if addr < limit {
		return s.name
	}
	return ""
}

func (st *symtab) load(exe string) {
	if exe == "" {
		return
	}
	ef, err := elf.Open(exe)
	if err != nil {
		return
	}
	defer ef.Close()
	symbols, err := ef.Symbols()
	if err != nil {
		return
	}
	for _, sym := range symbols {
		if elf.ST_TYPE(sym.Info) != elf.STT_FUNC || sym.Value == 0 {
			continue
		}
		name := sym.Name
		if d, err := demangle.ToString(name); err == nil {
			name = d
		}
		st.syms = append(st.syms, elfSym{sym.Value, sym.Size, name})
	}
	sort.Slice(st.syms, func(i, j int) bool {
		return st.syms[i].addr < st.syms[j].addr
	})
}
