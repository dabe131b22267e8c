package config

import (
	"flag"
	"fmt"
	"time"
)

// ParseFlags parses configuration flags from args (without the program
// name). Parsing stops at the first non-flag argument, so subcommands and
// their operands are left for the caller.
//
// Flags:
//
//	-a device API base URL
//	-app-key application key
//	-app-secret application secret
//	-device-type channel platform (ios, android, ...)
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-retry-initial-delay first backoff delay for recoverable failures
//	-retry-max-delay backoff cap
//	-retry-max-attempts retry budget for recoverable failures
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := newFlagSet()
	if err := fs.set.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return fs.config(), nil
}

// explicitlySet reports whether name appeared on the command line.
func (f *flagSet) explicitlySet(name string) bool {
	found := false
	f.set.Visit(func(fl *flag.Flag) {
		if fl.Name == name {
			found = true
		}
	})
	return found
}

// Args returns the positional arguments left after the configuration flags.
func Args(args []string) []string {
	fs := newFlagSet()
	if err := fs.set.Parse(args); err != nil {
		return nil
	}
	return fs.set.Args()
}

type flagSet struct {
	set *flag.FlagSet

	address           string
	appKey            string
	appSecret         string
	deviceType        string
	requestTimeout    time.Duration
	retryInitialDelay time.Duration
	retryMaxDelay     time.Duration
	retryMaxAttempts  uint64
	jsonConfigPath    string
}

func newFlagSet() *flagSet {
	f := &flagSet{set: flag.NewFlagSet("userctl", flag.ContinueOnError)}

	f.set.StringVar(&f.address, "a", "", "Device API base URL")
	f.set.StringVar(&f.appKey, "app-key", "", "Application key")
	f.set.StringVar(&f.appSecret, "app-secret", "", "Application secret")
	f.set.StringVar(&f.deviceType, "device-type", "", "Channel device type")
	f.set.DurationVar(&f.requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	f.set.DurationVar(&f.retryInitialDelay, "retry-initial-delay", 0, "Initial retry delay")
	f.set.DurationVar(&f.retryMaxDelay, "retry-max-delay", 0, "Maximum retry delay")
	f.set.Uint64Var(&f.retryMaxAttempts, "retry-max-attempts", 0, "Maximum retry attempts")
	f.set.StringVar(&f.jsonConfigPath, "c", "", "JSON config file path")
	f.set.StringVar(&f.jsonConfigPath, "config", "", "JSON config file path (alias)")

	return f
}

func (f *flagSet) config() *StructuredConfig {
	var maxAttempts *uint64
	if f.explicitlySet("retry-max-attempts") {
		maxAttempts = uint64Ptr(f.retryMaxAttempts)
	}

	return &StructuredConfig{
		App: App{
			Key:        f.appKey,
			Secret:     f.appSecret,
			DeviceType: f.deviceType,
		},
		Adapter: Adapter{
			HTTPAddress:    f.address,
			RequestTimeout: f.requestTimeout,
		},
		Workers: Workers{
			RetryInitialDelay: f.retryInitialDelay,
			RetryMaxDelay:     f.retryMaxDelay,
			RetryMaxAttempts:  maxAttempts,
		},
		JSONFilePath: f.jsonConfigPath,
	}
}
