package rest

import "io"

// ProgressFunc receives the upload percentage, floor(sent/total*100).
type ProgressFunc func(pct int)

// progressReader reports percentage on every read of the request body.
// Reported values never decrease and end at 100 once the body has been
// fully consumed by the transport.
type progressReader struct {
	r     io.Reader
	total int64
	sent  int64
	last  int
	fn    ProgressFunc
}

func newProgressReader(r io.Reader, total int64, fn ProgressFunc) *progressReader {
	return &progressReader{r: r, total: total, fn: fn}
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n > 0 && p.fn != nil && p.total > 0 {
		p.sent += int64(n)
		pct := int(p.sent * 100 / p.total)
		if pct > 100 {
			pct = 100
		}
		if pct < p.last {
			pct = p.last
		}
		p.last = pct
		p.fn(pct)
	}
	return n, err
}
