package platform

// Package platform contains OS integration and external tooling glue:
// filesystem helpers, converter binary discovery, folder reveal, and the
// best-effort title probe.
