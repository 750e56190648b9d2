// Package cfg moves CS2 configuration between accounts and writes
// crosshair settings into config files.
package cfg

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/samber/oops"
	"github.com/sirupsen/logrus"
)

// CopyConfig copies a CS2 config directory into another account's config
// directory, creating it when absent. With backup set and an existing
// target, the target's current contents are copied aside first; the
// returned path names that backup (empty when none was taken).
func CopyConfig(srcDir, dstDir string, backup bool) (string, error) {
	fi, err := os.Stat(srcDir)
	if err != nil {
		return "", oops.With("path", srcDir).Wrapf(err, "source config directory unavailable")
	}
	if !fi.IsDir() {
		return "", oops.With("path", srcDir).Errorf("source config path is not a directory")
	}

	backupPath := ""
	if backup {
		if _, err := os.Stat(dstDir); err == nil {
			backupPath = fmt.Sprintf("%s.backup.%d", dstDir, time.Now().Unix())
			if err := copyTree(dstDir, backupPath); err != nil {
				return "", oops.With("path", backupPath).Wrapf(err, "backing up target config")
			}
			log.WithField("path", backupPath).Debug("Target config backed up")
		}
	}

	if err := copyTree(srcDir, dstDir); err != nil {
		return backupPath, oops.Wrapf(err, "copying config")
	}

	log.WithFields(logrus.Fields{
		"from": srcDir,
		"to":   dstDir,
	}).Debug("Config copied")
	return backupPath, nil
}

// copyTree recursively copies a directory. Files are overwritten; extra
// files already present in dst are left in place.
func copyTree(src, dst string) error {
	if err := os.MkdirAll(dst, 0o755); err != nil {
		return oops.With("path", dst).Wrapf(err, "creating directory")
	}
	entries, err := os.ReadDir(src)
	if err != nil {
		return oops.With("path", src).Wrapf(err, "reading directory")
	}
	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())
		if entry.IsDir() {
			if err := copyTree(srcPath, dstPath); err != nil {
				return err
			}
			continue
		}
		if err := copyFile(srcPath, dstPath); err != nil {
			return err
		}
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return oops.With("path", src).Wrapf(err, "opening source file")
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return oops.With("path", dst).Wrapf(err, "creating target file")
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return oops.With("path", dst).Wrapf(err, "copying file contents")
	}
	return out.Close()
}
