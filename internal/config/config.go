package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/kirsle/configdir"
	"github.com/spf13/viper"
)

type (
	Config struct {
		Information Information `mapstructure:"information"`
		Binaries    Binaries    `mapstructure:"binaries"`
	}

	Information struct {
		RcloneConnectionName string `mapstructure:"rclone_connection_name"`
		ClientName           string `mapstructure:"client_name"`
		BucketName           string `mapstructure:"bucket_name"`
		ServerName           string `mapstructure:"server_name"`
	}

	Binaries struct {
		Restic string `mapstructure:"restic"`
	}
)

func Read(configFile string) (config *Config, v *viper.Viper, err error) {
	v = viper.New()
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else if configFile = os.Getenv("RESTICENV_CONFIG"); configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yml")
		v.AddConfigPath(".")
		v.AddConfigPath(configdir.LocalConfig("resticenv"))
		v.AddConfigPath("/etc/resticenv")
	}

	err = v.ReadInConfig()
	if err != nil {
		return
	}
	config = new(Config)
	err = v.Unmarshal(config)
	return
}

func (c *Config) PlaceEnvironmentVariables() {
	replace := func(r *string) { *r = os.ExpandEnv(*r) }

	replace(&c.Information.RcloneConnectionName)
	replace(&c.Information.ClientName)
	replace(&c.Information.BucketName)
	replace(&c.Information.ServerName)
	replace(&c.Binaries.Restic)
}

// Check validates all required fields at once, before anything is rendered.
func (c *Config) Check() error {
	required := []struct {
		value string
		path  string
	}{
		{c.Information.RcloneConnectionName, "information.rclone_connection_name"},
		{c.Information.ClientName, "information.client_name"},
		{c.Information.BucketName, "information.bucket_name"},
		{c.Information.ServerName, "information.server_name"},
		{c.Binaries.Restic, "binaries.restic"},
	}
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			return fmt.Errorf("configuration: field `%s` cannot be empty", field.path)
		}
	}
	return nil
}
