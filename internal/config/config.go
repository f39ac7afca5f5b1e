// Package config loads the demo CLI's settings: its identity and log
// level, which the CLI's logger reads, and a set of TSIG defaults, which
// the CLI loads but does not read. The protocol packages (dnsname, rrtype, dnsrecords,
// dnskey, tsig) never depend on this package; they take every parameter
// through their own constructors.
package config

import (
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// TSIGSettings holds the demo CLI's default signer parameters.
type TSIGSettings struct {
	Algorithm  string `mapstructure:"algorithm"`
	Fudge      uint16 `mapstructure:"fudge"`
	SignerName string `mapstructure:"signerName"`
}

// AppSettings holds the demo CLI's identity and logging defaults.
type AppSettings struct {
	ID       string `mapstructure:"id"`
	LogLevel string `mapstructure:"logLevel"`
}

var (
	tsigSettings TSIGSettings
	appSettings  AppSettings
)

// InitConfig loads configuration from configFilePath if non-empty,
// falling back to built-in defaults for any key the file does not
// override. Environment variables prefixed DNSSECPROTO_ take precedence
// over both.
func InitConfig(configFilePath string) error {
	v := viper.New()
	v.SetEnvPrefix("DNSSECPROTO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("app.id", "dnssecproto")
	v.SetDefault("app.logLevel", "info")
	v.SetDefault("tsig.algorithm", "hmac-sha256.")
	v.SetDefault("tsig.fudge", 300)
	v.SetDefault("tsig.signerName", "dnssecproto-key.")

	if configFilePath != "" {
		v.SetConfigFile(configFilePath)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("config: reading %s: %v", configFilePath, err)
		}
	}

	if err := v.UnmarshalKey("app", &appSettings, viper.DecodeHook(mapstructure.StringToTimeDurationHookFunc())); err != nil {
		return fmt.Errorf("config: decoding app settings: %v", err)
	}
	if err := v.UnmarshalKey("tsig", &tsigSettings); err != nil {
		return fmt.Errorf("config: decoding tsig settings: %v", err)
	}
	return nil
}

// App returns the loaded application settings.
func App() AppSettings { return appSettings }

// TSIG returns the loaded TSIG default settings.
func TSIG() TSIGSettings { return tsigSettings }
