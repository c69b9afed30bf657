package table

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"sort"
	"strconv"
)

// Stack merges numbered shard files (prefix1.csv, prefix2.csv, ...) under
// dir into a single table at output, in shard-number order. All shards must
// share one column set; the merged file carries a single header row.
func Stack(dir, prefix, output string) (rows, shards int, err error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, 0, err
	}

	re := regexp.MustCompile("^" + regexp.QuoteMeta(prefix) + `(\d+)\.csv$`)
	type shard struct {
		n    int
		path string
	}
	var found []shard
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		m := re.FindStringSubmatch(e.Name())
		if m == nil {
			continue
		}
		n, _ := strconv.Atoi(m[1])
		found = append(found, shard{n: n, path: filepath.Join(dir, e.Name())})
	}
	if len(found) == 0 {
		return 0, 0, fmt.Errorf("table: no %s<N>.csv shards in %s", prefix, dir)
	}
	sort.Slice(found, func(i, j int) bool { return found[i].n < found[j].n })

	var w *Writer
	for _, sh := range found {
		header, data, err := ReadRows(sh.path)
		if err != nil {
			return rows, shards, err
		}
		if header == nil {
			continue
		}
		if w == nil {
			w, err = NewWriter(output, header)
			if err != nil {
				return rows, shards, err
			}
		} else if !slices.Equal(header, w.Columns()) {
			return rows, shards, fmt.Errorf("%w: %s has columns %v", ErrHeaderMismatch, sh.path, header)
		}
		for _, row := range data {
			if err := w.Append(row); err != nil {
				return rows, shards, err
			}
		}
		rows += len(data)
		shards++
	}
	if w == nil {
		return 0, 0, fmt.Errorf("%w: all shards empty", ErrEmptyTable)
	}
	return rows, shards, nil
}
