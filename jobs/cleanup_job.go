package jobs

import (
	"log"
	"os"
	"path/filepath"
	"time"
)

const (
	uploadDir    = "uploads"
	maxUploadAge = 24 * time.Hour
)

// CleanupStaleUploads removes documents that failed mid-pipeline and were
// never deleted by the generation handler.
func CleanupStaleUploads() {
	entries, err := os.ReadDir(uploadDir)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("upload cleanup: %v", err)
		}
		return
	}

	cutoff := time.Now().Add(-maxUploadAge)
	for _, entry := range entries {
		info, err := entry.Info()
		if err != nil || info.IsDir() {
			continue
		}
		if info.ModTime().Before(cutoff) {
			path := filepath.Join(uploadDir, entry.Name())
			if err := os.Remove(path); err != nil {
				log.Printf("upload cleanup: failed to remove %s: %v", path, err)
				continue
			}
			log.Printf("upload cleanup: removed stale file %s", path)
		}
	}
}
