package app

import (
	"bufio"
	"strings"

	"github.com/go-faster/errors"
	"github.com/spf13/afero"

	"github.com/Blackdeer1524/chainhash/src/pkg/utils"
)

// ReadDataset parses a file of key=value lines. Blank lines and lines
// starting with # are skipped. Pairs are returned in file order.
func ReadDataset(fs afero.Fs, path string) ([]utils.Pair[string, string], error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open dataset")
	}
	defer f.Close()

	var pairs []utils.Pair[string, string]

	sc := bufio.NewScanner(f)
	for lineNum := 1; sc.Scan(); lineNum++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, errors.Errorf("%s:%d: expected key=value", path, lineNum)
		}

		pairs = append(pairs, utils.Pair[string, string]{
			First:  key,
			Second: strings.TrimSpace(value),
		})
	}

	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "read dataset")
	}

	return pairs, nil
}
