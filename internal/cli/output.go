package cli

import (
	"fmt"
	"io"
	"strings"

	"go.dw1.io/compacthash/internal/jsonout"
)

// record is the JSON form of one result.
type record struct {
	Path  string   `json:"path"`
	Size  int64    `json:"size"`
	Seed  string   `json:"seed"`
	Words []string `json:"words,omitempty"`
	CID   string   `json:"cid,omitempty"`
}

// printer writes results as text lines ("<digest>  <path>") or JSON lines.
type printer struct {
	w   io.Writer
	enc jsonout.Encoder
}

func newPrinter(w io.Writer, asJSON bool) *printer {
	p := &printer{w: w}
	if asJSON {
		p.enc = jsonout.NewEncoder(w)
	}

	return p
}

func (p *printer) print(r record) error {
	if p.enc != nil {
		return p.enc.Encode(r)
	}

	digest := r.CID
	if digest == "" {
		digest = strings.Join(r.Words, " ")
	}
	_, err := fmt.Fprintf(p.w, "%s  %s\n", digest, r.Path)

	return err
}
