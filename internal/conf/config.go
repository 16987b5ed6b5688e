// Package conf wraps viper for the macenroll tool. Settings come from an
// optional env-format config file and from MACENROLL_* environment variables;
// the rest of the code receives an immutable snapshot and never reaches into
// the environment itself.
package conf

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Defaults are the constant enrollment fields merged into every assembled
// record unless a record-specific value overrides them.
type Defaults struct {
	LocationGroupID string
	PlatformID      int
	MessageType     int
	Ownership       string
}

// Credentials authenticate the upload transport. They live in the same
// config surface but are kept out of Settings.String and of any logging.
type Credentials struct {
	Username string
	Password string
}

// Settings is the full configuration snapshot consumed by the tool.
type Settings struct {
	Defaults
	Credentials Credentials

	// Upload destination. TestMode redirects uploads to UploadDir on the
	// local filesystem instead of the network transport.
	Host      string
	Share     string
	TestMode  bool
	UploadDir string

	// Where discrepancy reports and the working record list are written.
	OutputDir string
	LogFile   string
}

// Load reads the configuration. configFile may be empty, in which case only
// defaults and environment variables apply. A missing config file is not an
// error; an unreadable one is.
func Load(configFile string) (*Settings, error) {
	v := viper.New()
	v.SetEnvPrefix("macenroll")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("locationgroupid", "570")
	v.SetDefault("platformid", 10)
	v.SetDefault("messagetype", 1)
	v.SetDefault("ownership", "C")
	v.SetDefault("testmode", true)
	v.SetDefault("uploaddir", "uploads")
	v.SetDefault("outputdir", ".")
	v.SetDefault("share", "enrollment")

	if configFile != "" {
		v.SetConfigFile(configFile)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "could not read config file %s", configFile)
		}
	}

	return &Settings{
		Defaults: Defaults{
			LocationGroupID: v.GetString("locationgroupid"),
			PlatformID:      v.GetInt("platformid"),
			MessageType:     v.GetInt("messagetype"),
			Ownership:       v.GetString("ownership"),
		},
		Credentials: Credentials{
			Username: v.GetString("username"),
			Password: v.GetString("password"),
		},
		Host:      v.GetString("host"),
		Share:     v.GetString("share"),
		TestMode:  v.GetBool("testmode"),
		UploadDir: v.GetString("uploaddir"),
		OutputDir: v.GetString("outputdir"),
		LogFile:   v.GetString("logfile"),
	}, nil
}
