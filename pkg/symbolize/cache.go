// Copyright 2026 stackdump project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

package symbolize

import (
	"sync"
)

// cache memoizes per-address tool output in a thread-safe way, so that
// repeated dumps of the same stack do not re-spawn the translator for
// every frame. Failures are cached as well.
type cache struct {
	mu sync.RWMutex
	m  map[uintptr]cacheVal
}

type cacheVal struct {
	lines []string
	err   error
}

func (c *cache) get(pc uintptr, inner func() ([]string, error)) ([]string, error) {
	c.mu.RLock()
	val, ok := c.m[pc]
	c.mu.RUnlock()
	if ok {
		return val.lines, val.err
	}
	lines, err := inner()
	c.mu.Lock()
	if c.m == nil {
		c.m = make(map[uintptr]cacheVal)
	}
	c.m[pc] = cacheVal{lines, err}
	c.mu.Unlock()
	return lines, err
}
