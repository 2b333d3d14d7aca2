package appbuf

import "sync"

const (
	poolInitCap = 64
	poolMaxCap  = 4096
)

// scratchPool recycles the short-lived byte slices used to assemble
// struct layouts and encoded text before they hit caller memory.
var scratchPool = sync.Pool{
	New: func() any {
		buf := make([]byte, 0, poolInitCap)
		return &buf
	},
}

func getScratch() *[]byte {
	return scratchPool.Get().(*[]byte)
}

func putScratch(buf *[]byte) {
	if cap(*buf) > poolMaxCap {
		return
	}
	*buf = (*buf)[:0]
	scratchPool.Put(buf)
}
