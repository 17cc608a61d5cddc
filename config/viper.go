package config

import (
	"time"

	"github.com/spf13/viper"
)

// ViperConfig is a Config backed by the global viper instance.
type ViperConfig struct{}

func (v *ViperConfig) Set(key string, value interface{}) {
	viper.Set(key, value)
}

func (v *ViperConfig) SetDefault(key string, value interface{}) {
	viper.SetDefault(key, value)
}

func (v *ViperConfig) Get(key string) interface{} {
	return viper.Get(key)
}

func (v *ViperConfig) GetInt(param string) int {
	return viper.GetInt(param)
}

func (v *ViperConfig) GetString(param string) string {
	return viper.GetString(param)
}

func (v *ViperConfig) GetBool(param string) bool {
	return viper.GetBool(param)
}

func (v *ViperConfig) GetDuration(param string) time.Duration {
	return viper.GetDuration(param)
}

func (v *ViperConfig) GetStringSlice(param string) []string {
	return viper.GetStringSlice(param)
}
