// SPDX-License-Identifier: Unlicense OR MIT

package font

type faceCache struct {
	m          map[faceKey]*faceElem
	head, tail *faceElem
}

type faceElem struct {
	next, prev *faceElem
	key        faceKey
	face       *Face
}

type faceKey struct {
	family string
	size   float32
}

const maxFaces = 32

func (l *faceCache) Get(k faceKey) (*Face, bool) {
	if e, ok := l.m[k]; ok {
		l.remove(e)
		l.insert(e)
		return e.face, true
	}
	return nil, false
}

func (l *faceCache) Put(k faceKey, f *Face) {
	if l.m == nil {
		l.m = make(map[faceKey]*faceElem)
		l.head = new(faceElem)
		l.tail = new(faceElem)
		l.head.prev = l.tail
		l.tail.next = l.head
	}
	if old, ok := l.m[k]; ok {
		l.remove(old)
	}
	e := &faceElem{key: k, face: f}
	l.m[k] = e
	l.insert(e)
	if len(l.m) > maxFaces {
		oldest := l.tail.next
		l.remove(oldest)
		delete(l.m, oldest.key)
	}
}

// Purge drops every cached face. Faces already handed out stay usable.
func (l *faceCache) Purge() {
	l.m = nil
	l.head, l.tail = nil, nil
}

func (l *faceCache) Len() int {
	return len(l.m)
}

func (l *faceCache) remove(e *faceElem) {
	e.next.prev = e.prev
	e.prev.next = e.next
}

func (l *faceCache) insert(e *faceElem) {
	e.next = l.head
	e.prev = l.head.prev
	e.prev.next = e
	e.next.prev = e
}
