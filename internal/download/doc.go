package download

// Package download adapts a JobSpec to the yt-dlp engine (via
// github.com/lrstanley/go-ytdlp). It runs one job synchronously, relays raw
// progress hooks to the caller, and wraps every engine failure in EngineError.
