package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"sort"
	"strings"
)

type ValidationError struct {
	Problems []string
}

func (v *ValidationError) Add(format string, args ...any) {
	v.Problems = append(v.Problems, fmt.Sprintf(format, args...))
}

func (v *ValidationError) Error() string {
	return fmt.Sprintf("%d validation error(s)", len(v.Problems))
}

func (c *Config) Validate() error {
	v := &ValidationError{}

	if c.ConfigVersion != 1 {
		v.Add("configVersion must be 1")
	}

	c.validateContext(v)

	if c.Server.Listen != "" {
		if err := validateListen(c.Server.Listen); err != nil {
			v.Add("server.listen invalid: %v", err)
		}
	}

	if c.Metrics.Enabled {
		if err := validateListen(c.Metrics.Listen); err != nil {
			v.Add("metrics.listen invalid: %v", err)
		}
	}

	if len(v.Problems) > 0 {
		sort.Strings(v.Problems)
		return v
	}
	return nil
}

func (c *Config) validateContext(v *ValidationError) {
	ctx := c.Context

	if ctx.CurrentURL == "" {
		v.Add("context.currentUrl is required")
	} else if err := validateURL(ctx.CurrentURL); err != nil {
		v.Add("context.currentUrl invalid: %v", err)
	}

	if ctx.OriginalURL == "" {
		v.Add("context.originalUrl is required")
	} else if err := validateURL(ctx.OriginalURL); err != nil {
		v.Add("context.originalUrl invalid: %v", err)
	}

	if ctx.OriginalHost == "" {
		v.Add("context.originalHost is required")
	} else if err := validateHost(ctx.OriginalHost); err != nil {
		v.Add("context.originalHost invalid: %v", err)
	}

	if ctx.OriginalScheme == "" {
		v.Add("context.originalScheme is required")
	} else if !strings.HasSuffix(ctx.OriginalScheme, ":") {
		v.Add("context.originalScheme must end with a colon, e.g. %q", "https:")
	}

	if ctx.ServingPrefix == "" {
		v.Add("context.servingPrefix is required")
	} else {
		if !strings.HasPrefix(ctx.ServingPrefix, "/") {
			v.Add("context.servingPrefix must be an absolute path")
		}
		if !strings.HasSuffix(ctx.ServingPrefix, "/") {
			v.Add("context.servingPrefix must end with a slash")
		}
	}
}

func validateListen(addr string) error {
	if strings.TrimSpace(addr) == "" {
		return errors.New("address is required")
	}
	if _, err := net.ResolveTCPAddr("tcp", addr); err != nil {
		return err
	}
	return nil
}

func validateURL(raw string) error {
	parsed, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return errors.New("must include scheme and host")
	}
	return nil
}

// validateHost expects scheme+host with no trailing path, the form the
// original-host passthrough check compares against.
func validateHost(raw string) error {
	parsed, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return errors.New("must include scheme and host")
	}
	if parsed.Path != "" && parsed.Path != "/" {
		return errors.New("must not include a path")
	}
	return nil
}
