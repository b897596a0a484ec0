// Package pack archives a scenario's output directory into a single
// tar.gz, the Go analogue of original_source/package.py's recursive zip
// builder. Where package.py bundles the whole project (scripts, docs,
// every scenario's results) into one submission zip, pack archives one
// scenario at a time behind the `covercore pack` subcommand (spec §6),
// matching bench.py's own tar/tar.gz packaging step for S*.csv files.
package pack

import (
	"archive/tar"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"

	"github.com/lmarques/covercore/internal/errs"
)

// Manifest lists the files actually written to the archive, in order.
type Manifest struct {
	ArchivePath string
	Entries     []string
}

// Dir archives every regular file directly under srcDir into a gzip-
// compressed tar at destPath, returning a Manifest of what was included.
func Dir(srcDir, destPath string) (Manifest, error) {
	entries, err := os.ReadDir(srcDir)
	if err != nil {
		return Manifest{}, errs.IOError("pack: read "+srcDir, err)
	}

	if err := os.MkdirAll(filepath.Dir(destPath), 0o755); err != nil {
		return Manifest{}, errs.IOError("pack: mkdir", err)
	}
	out, err := os.Create(destPath)
	if err != nil {
		return Manifest{}, errs.IOError("pack: create "+destPath, err)
	}
	defer out.Close()

	gz := gzip.NewWriter(out)
	tw := tar.NewWriter(gz)

	man := Manifest{ArchivePath: destPath}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return Manifest{}, errs.IOError("pack: stat "+e.Name(), err)
		}
		if err := addFile(tw, filepath.Join(srcDir, e.Name()), e.Name(), info); err != nil {
			return Manifest{}, err
		}
		man.Entries = append(man.Entries, e.Name())
	}

	if err := tw.Close(); err != nil {
		return Manifest{}, errs.IOError("pack: close tar writer", err)
	}
	if err := gz.Close(); err != nil {
		return Manifest{}, errs.IOError("pack: close gzip writer", err)
	}
	return man, nil
}

func addFile(tw *tar.Writer, path, arcname string, info os.FileInfo) error {
	hdr, err := tar.FileInfoHeader(info, "")
	if err != nil {
		return errs.IOError("pack: header for "+path, err)
	}
	hdr.Name = arcname

	if err := tw.WriteHeader(hdr); err != nil {
		return errs.IOError("pack: write header for "+path, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return errs.IOError("pack: open "+path, err)
	}
	defer f.Close()

	if _, err := io.Copy(tw, f); err != nil {
		return errs.IOError("pack: copy "+path, err)
	}
	return nil
}
