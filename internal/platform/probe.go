package platform

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/ytget/ytdlp/v2"
)

// DefaultProbeTimeout bounds a title lookup
const DefaultProbeTimeout = 15 * time.Second

// YouTube hosts the probe understands
var youTubeHosts = []string{"youtube.com", "www.youtube.com", "m.youtube.com", "youtu.be"}

// TitleProber looks up a video title ahead of the download so the status line
// can name it. Only YouTube watch/short links are supported.
type TitleProber struct {
	timeout time.Duration
}

// NewTitleProber creates a prober with the default timeout
func NewTitleProber() *TitleProber {
	return &TitleProber{timeout: DefaultProbeTimeout}
}

// SetTimeout sets the timeout for probe operations
func (p *TitleProber) SetTimeout(timeout time.Duration) {
	p.timeout = timeout
}

// Supports reports whether rawURL is something the prober can resolve
func (p *TitleProber) Supports(rawURL string) bool {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return false
	}
	host := strings.ToLower(u.Host)
	for _, h := range youTubeHosts {
		if host == h {
			return true
		}
	}
	return false
}

// Title resolves the video title for rawURL
func (p *TitleProber) Title(ctx context.Context, rawURL string) (string, error) {
	if !p.Supports(rawURL) {
		return "", fmt.Errorf("unsupported URL for title probe: %s", rawURL)
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	_, info, err := ytdlp.New().ResolveURL(ctx, rawURL)
	if err != nil {
		return "", fmt.Errorf("failed to resolve video info: %w", err)
	}
	if info == nil || strings.TrimSpace(info.Title) == "" {
		return "", fmt.Errorf("no title in video info")
	}
	return strings.TrimSpace(info.Title), nil
}
