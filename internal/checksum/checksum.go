package checksum

import (
	"fmt"
	"hash/fnv"
	"strconv"

	"github.com/knowhow-tools/probe/internal/config"
)

// Calculate computes a checksum over the fixture values that feed the
// checks. Editors tend to fire several write events per save, and some
// rewrite the file without changing it; comparing checksums lets watch
// mode skip re-running checks when nothing relevant changed.
func Calculate(cfg *config.Config) string {
	content := normalize(cfg)

	// FNV-1a, rendered as an 8-character hex string
	h := fnv.New32a()
	h.Write([]byte(content))

	return fmt.Sprintf("%08x", h.Sum32())
}

// normalize renders the fixture values in a stable order, independent
// of formatting and comments in the underlying TOML.
func normalize(cfg *config.Config) string {
	want := "none"
	if cfg.Fib.Want != nil {
		want = strconv.Itoa(*cfg.Fib.Want)
	}
	return fmt.Sprintf("fib.n=%d\nfib.want=%s\nexample.name=%s\nexample.value=%d\nexample.multiplier=%s\n",
		cfg.Fib.N,
		want,
		cfg.Example.Name,
		cfg.Example.Value,
		strconv.FormatFloat(cfg.Example.Multiplier, 'f', -1, 64))
}
