// Package filex holds filesystem helpers for the CLI.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureDir creates dir (relative paths resolve against the working
// directory) and returns its absolute path.
func EnsureDir(dir string) (string, error) {
	if !filepath.IsAbs(dir) {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("getwd: %w", err)
		}
		dir = filepath.Join(cwd, dir)
	}

	if err := os.MkdirAll(dir, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}

	return dir, nil
}

// ReportFileName maps an object key such as "reports/u1/2024/01/02/<id>.json"
// onto a flat local file name "2024-01-02-<id>.json".
func ReportFileName(key string) string {
	base := filepath.Base(key)
	day := filepath.Dir(key)
	d, m, y := filepath.Base(day), filepath.Base(filepath.Dir(day)), filepath.Base(filepath.Dir(filepath.Dir(day)))
	if len(y) != 4 || len(m) != 2 || len(d) != 2 {
		return base
	}
	return y + "-" + m + "-" + d + "-" + base
}
