// Package replay exposes the configuration record the host replay library
// consumes at page initialization. The record is passed through verbatim:
// none of the flags carry algorithmic weight inside this module.
package replay

import "github.com/arcpath/arcpath/internal/rewrite"

// StaticSubPath is the sub-path, under the serving prefix, where the replay
// host finds the static assets it injects into replayed pages.
const StaticSubPath = "_zim_static/"

// TargetFrame is the name of the top frame the replay library drives.
const TargetFrame = "___wb_replay_top_frame"

// RewriteFunc is the rewrite entry point handed to the replay host, invoked
// once per intercepted reference.
type RewriteFunc func(url string) (string, error)

// Config is handed to the replay host once per page/frame context.
type Config struct {
	Rewrite RewriteFunc `json:"-"`

	Prefix         string `json:"prefix"`
	StaticPrefix   string `json:"staticPrefix"`
	OriginalScheme string `json:"originalScheme"`
	OriginalHost   string `json:"originalHost"`

	EnableAutoFetch        bool   `json:"enableAutoFetch"`
	ConvertPostToGet       bool   `json:"convertPostToGet"`
	TargetFrame            string `json:"targetFrame"`
	IsServiceWorkerContext bool   `json:"isSW"`

	// Bookkeeping slots owned by the replay library; inert here.
	Timestamp  string `json:"timestamp"`
	Collection string `json:"collection"`
	ProxyMagic string `json:"proxyMagic"`
}

// NewConfig builds the replay-host record for one archival context.
func NewConfig(ctx *rewrite.Context) *Config {
	return &Config{
		Rewrite:                ctx.Rewrite,
		Prefix:                 ctx.ServingPrefix,
		StaticPrefix:           ctx.ServingPrefix + StaticSubPath,
		OriginalScheme:         ctx.OriginalScheme,
		OriginalHost:           ctx.OriginalHost,
		EnableAutoFetch:        true,
		ConvertPostToGet:       true,
		TargetFrame:            TargetFrame,
		IsServiceWorkerContext: true,
	}
}
