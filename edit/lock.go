// SPDX-License-Identifier: EPL-2.0

package edit

import "sync"

// pathLocks hands out one mutex per path. Entries are dropped once no
// goroutine holds or waits on them.
type pathLocks struct {
	mtx   sync.Mutex
	paths map[string]*pathLock
}

type pathLock struct {
	sync.Mutex
	refs int
}

func (l *pathLocks) lock(path string) func() {
	l.mtx.Lock()
	if l.paths == nil {
		l.paths = make(map[string]*pathLock)
	}
	pl, ok := l.paths[path]
	if !ok {
		pl = &pathLock{}
		l.paths[path] = pl
	}
	pl.refs++
	l.mtx.Unlock()

	pl.Lock()

	return func() {
		pl.Unlock()

		l.mtx.Lock()
		pl.refs--
		if pl.refs == 0 {
			delete(l.paths, path)
		}
		l.mtx.Unlock()
	}
}

func (l *pathLocks) len() int {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	return len(l.paths)
}
