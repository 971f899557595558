package gen

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFiles writes the generated files into outputDir, creating it when
// missing. A sidecar left behind by an earlier failed run is removed once
// its file is written.
func WriteFiles(files []GeneratedFile, outputDir string) error {
	if err := os.MkdirAll(outputDir, dirPerm); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	for _, file := range files {
		path := filepath.Join(outputDir, file.Filename)
		if err := replaceFile(path, file.Content); err != nil {
			return fmt.Errorf("writing file %s: %w", file.Filename, err)
		}

		sidecar := filepath.Join(outputDir, sidecarName(file.Filename))
		if err := os.Remove(sidecar); err == nil {
			Logger().Debug("removed stale sidecar", zap.String("path", sidecar))
		}

		Logger().Debug("wrote generated file", zap.String("path", path), zap.Int("bytes", len(file.Content)))
	}

	return nil
}

// writeDebugUnformatted keeps code that go/format rejected next to the
// intended output, under a name that does not collide with it.
func writeDebugUnformatted(outDir, filename string, content []byte) error {
	if outDir == "" || filename == "" {
		return nil
	}

	if err := os.MkdirAll(outDir, dirPerm); err != nil {
		return err
	}

	return replaceFile(filepath.Join(outDir, sidecarName(filename)), content)
}

func sidecarName(filename string) string {
	return strings.TrimSuffix(filename, ".go") + ".unformatted.go"
}

// replaceFile writes content to a temporary file in the same directory and
// renames it over path, so readers never observe a half-written codec.
func replaceFile(path string, content []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}

	name := tmp.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(name)
		}
	}()

	if _, err = tmp.Write(content); err != nil {
		_ = tmp.Close()
		return err
	}

	if err = tmp.Close(); err != nil {
		return err
	}

	if err = os.Chmod(name, filePerm); err != nil {
		return err
	}

	err = os.Rename(name, path)
	return err
}
