package app

import (
	"fmt"
	"io"
	"math"

	"github.com/dustin/go-humanize"
	"github.com/go-faster/errors"
	"github.com/go-faster/jx"

	"github.com/Blackdeer1524/chainhash/src/hashtable"
)

type Report struct {
	Results []LookupResult[string]
	Stats   hashtable.Stats
}

func WriteText(w io.Writer, r Report) error {
	for _, res := range r.Results {
		var err error
		if res.Found() {
			_, err = fmt.Fprintf(w, "%s => %s\n", res.Key, res.Value)
		} else {
			_, err = fmt.Fprintf(w, "%s: not found\n", res.Key)
		}

		if err != nil {
			return errors.Wrap(err, "write result")
		}
	}

	if len(r.Results) > 0 {
		if _, err := fmt.Fprintln(w); err != nil {
			return errors.Wrap(err, "write separator")
		}
	}

	s := r.Stats
	rows := []struct {
		name  string
		value string
	}{
		{"slots", humanize.Comma(int64(s.Slots))},
		{"entries", humanize.Comma(int64(s.Entries))},
		{"used slots", humanize.Comma(int64(s.UsedSlots))},
		{"longest chain", humanize.Comma(int64(s.LongestChain))},
		{"load factor", humanize.FtoaWithDigits(math.Round(s.LoadFactor*1000)/1000, 3)},
	}

	for _, row := range rows {
		if _, err := fmt.Fprintf(w, "%-14s %s\n", row.name+":", row.value); err != nil {
			return errors.Wrap(err, "write stats")
		}
	}

	return nil
}

func WriteJSON(w io.Writer, r Report) error {
	var e jx.Encoder

	e.ObjStart()

	e.FieldStart("results")
	e.ArrStart()
	for _, res := range r.Results {
		e.ObjStart()
		e.FieldStart("key")
		e.Str(res.Key)
		e.FieldStart("found")
		e.Bool(res.Found())
		if res.Found() {
			e.FieldStart("value")
			e.Str(res.Value)
		}
		e.ObjEnd()
	}
	e.ArrEnd()

	s := r.Stats
	e.FieldStart("stats")
	e.ObjStart()
	e.FieldStart("slots")
	e.UInt32(s.Slots)
	e.FieldStart("entries")
	e.Int(s.Entries)
	e.FieldStart("used_slots")
	e.UInt32(s.UsedSlots)
	e.FieldStart("longest_chain")
	e.Int(s.LongestChain)
	e.FieldStart("load_factor")
	e.Float64(s.LoadFactor)
	e.ObjEnd()

	e.ObjEnd()

	if _, err := w.Write(append(e.Bytes(), '\n')); err != nil {
		return errors.Wrap(err, "write json report")
	}

	return nil
}
