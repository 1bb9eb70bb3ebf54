package reviewer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/reaandrew/snapreview/utils"
)

// ManifestFiles are the conventional snapcraft.yaml locations, in the order
// they are tried.
var ManifestFiles = []string{
	"snap/snapcraft.yaml",
	"snapcraft.yaml",
	".snapcraft.yaml",
}

var ErrManifestNotFound = errors.New("cannot find snapcraft.yaml file")

// FindManifest returns the first conventional manifest that exists under
// dir. The path is slash separated and includes dir, so annotations point at
// the file from the working directory; for the working directory itself it
// is "./<name>".
func FindManifest(dir string) (string, error) {
	for _, name := range ManifestFiles {
		if _, ok := utils.FirstExisting(filepath.Join(dir, name)); ok {
			if filepath.Clean(dir) == "." {
				return "./" + name, nil
			}
			return filepath.ToSlash(filepath.Join(dir, name)), nil
		}
	}
	return "", ErrManifestNotFound
}

// ReadManifestLines splits the manifest on newlines, keeping empty lines so
// indices line up with the file.
func ReadManifestLines(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}
	return strings.Split(string(content), "\n"), nil
}
