//go:build !unix

package health

import "os"

// writable probes dir by creating and removing a temporary file.
func writable(dir string) error {
	f, err := os.CreateTemp(dir, ".gh-notifier-probe-*")
	if err != nil {
		return err
	}
	name := f.Name()
	f.Close()
	return os.Remove(name)
}
