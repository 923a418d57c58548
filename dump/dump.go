// Package dump renders the final machine state as tabular CSV
// reports: a data memory projection over an inclusive address range,
// and an optional operand stack listing.
package dump

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"
)

// ParseRange parses an inclusive "start:end" address range.
func ParseRange(text string) (start, end int, err error) {
	lo, hi, ok := strings.Cut(text, ":")
	if !ok {
		err = ErrRange(text)
		return
	}

	start, err = strconv.Atoi(strings.TrimSpace(lo))
	if err != nil {
		err = ErrRange(text)
		return
	}
	end, err = strconv.Atoi(strings.TrimSpace(hi))
	if err != nil {
		err = ErrRange(text)
		return
	}

	if start < 0 || end < 0 || end < start {
		err = ErrRange(text)
	}
	return
}

// WriteCSV writes the memory projection for [start, end], one row per
// address. Addresses outside the live array get an empty value cell.
func WriteCSV(w io.Writer, mem []int64, start, end int) (err error) {
	cw := csv.NewWriter(w)

	err = cw.Write([]string{"address", "value"})
	if err != nil {
		return
	}

	for addr := start; addr <= end; addr++ {
		row := []string{strconv.Itoa(addr), ""}
		if addr >= 0 && addr < len(mem) {
			row[1] = strconv.FormatInt(mem[addr], 10)
		}
		err = cw.Write(row)
		if err != nil {
			return
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteStack writes the operand stack, top first, depth 0 the top.
func WriteStack(w io.Writer, stack []int64) (err error) {
	cw := csv.NewWriter(w)

	err = cw.Write([]string{"depth", "value"})
	if err != nil {
		return
	}

	for n := len(stack) - 1; n >= 0; n-- {
		depth := len(stack) - 1 - n
		err = cw.Write([]string{strconv.Itoa(depth), strconv.FormatInt(stack[n], 10)})
		if err != nil {
			return
		}
	}

	cw.Flush()
	return cw.Error()
}
