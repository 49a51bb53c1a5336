// Package naming converts between repository names, repository directory
// names, and backup archive names.
package naming

import (
	"strconv"
	"strings"
	"time"
)

const (
	// RepositoryDirectorySuffix terminates every canonical repository directory name.
	RepositoryDirectorySuffix = ".git"
	// BackupArchiveSuffix terminates every backup archive name.
	BackupArchiveSuffix = ".backup.tar.bz2"
	// BackupTimestampSeparator separates the repository name from the archive timestamp.
	BackupTimestampSeparator = "."
	// ExportMarkerFileName is the marker file whose presence allows git-daemon to export a repository.
	ExportMarkerFileName = "git-daemon-export-ok"
)

// Canonicalize returns name with the repository directory suffix, appending it when absent.
func Canonicalize(name string) string {
	if strings.HasSuffix(name, RepositoryDirectorySuffix) {
		return name
	}
	return name + RepositoryDirectorySuffix
}

// DisplayName strips the repository directory suffix or, failing that, the backup archive suffix.
func DisplayName(filename string) string {
	if trimmed, found := strings.CutSuffix(filename, RepositoryDirectorySuffix); found {
		return trimmed
	}
	if trimmed, found := strings.CutSuffix(filename, BackupArchiveSuffix); found {
		return trimmed
	}
	return filename
}

// BackupArchiveName builds <repository-name>.<unix-timestamp>.backup.tar.bz2 for directoryName.
func BackupArchiveName(directoryName string, timestamp time.Time) string {
	return DisplayName(directoryName) + BackupTimestampSeparator + strconv.FormatInt(timestamp.Unix(), 10) + BackupArchiveSuffix
}

// BackupRepositoryName extracts the repository name and creation time from a backup archive name.
// The boolean is false when archiveName does not follow the backup naming scheme.
func BackupRepositoryName(archiveName string) (string, time.Time, bool) {
	stem, found := strings.CutSuffix(archiveName, BackupArchiveSuffix)
	if !found {
		return "", time.Time{}, false
	}
	separatorIndex := strings.LastIndex(stem, BackupTimestampSeparator)
	if separatorIndex <= 0 {
		return "", time.Time{}, false
	}
	seconds, parseError := strconv.ParseInt(stem[separatorIndex+1:], 10, 64)
	if parseError != nil {
		return "", time.Time{}, false
	}
	return stem[:separatorIndex], time.Unix(seconds, 0), true
}
