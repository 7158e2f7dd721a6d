package job

// Package job turns a user's DownloadRequest into the declarative JobSpec the
// download engine consumes. Build is pure: it touches neither the filesystem
// nor the network.
