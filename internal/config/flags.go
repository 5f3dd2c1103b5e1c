package config

import (
	"time"

	"github.com/spf13/pflag"
)

// FlagValues receives the values of the configuration flags. It is filled
// by the flag set parser, so it must only be read after parsing.
type FlagValues struct {
	address        string
	requestTimeout time.Duration
	refreshPath    string
	logoutPath     string
	dsn            string
	logFile        string
	logLevel       string
	jsonConfigPath string
}

// bindFlags registers all configuration flags on fs.
//
// Flags:
//
//	-a/--address          Orders API base address
//	--request-timeout     request timeout (e.g. "30s", "1m")
//	--refresh-path        token refresh endpoint path
//	--logout-path         logout endpoint path
//	-d/--db               credential store DSN
//	--log-file            log file path
//	--log-level           log level
//	-c/--config           json file path with configs
func bindFlags(fs *pflag.FlagSet) *FlagValues {
	v := &FlagValues{}

	fs.StringVarP(&v.address, "address", "a", "", "Orders API base address")
	fs.DurationVar(&v.requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&v.refreshPath, "refresh-path", "", "Token refresh endpoint path")
	fs.StringVar(&v.logoutPath, "logout-path", "", "Logout endpoint path")
	fs.StringVarP(&v.dsn, "db", "d", "", "Credential store DSN (default <user config dir>/ordersctl/credentials.db)")
	fs.StringVar(&v.logFile, "log-file", "", "Log file path")
	fs.StringVar(&v.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVarP(&v.jsonConfigPath, "config", "c", "", "JSON config file path")

	return v
}

// config converts the parsed flag values into a [StructuredConfig] layer.
func (v *FlagValues) config() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogFile:  v.logFile,
			LogLevel: v.logLevel,
		},
		Adapter: Adapter{
			HTTPAddress:    v.address,
			RequestTimeout: v.requestTimeout,
			RefreshPath:    v.refreshPath,
			LogoutPath:     v.logoutPath,
		},
		Storage: Storage{
			DB: DB{DSN: v.dsn},
		},
		JSONFilePath: v.jsonConfigPath,
	}
}
